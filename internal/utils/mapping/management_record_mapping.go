package mapping

import (
	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/fegundez/maqtrack/internal/models"
)

// ToDomainManagementRecord converts a model ManagementRecord to its domain
// form. There is no model-bound counterpart: management records are
// materialized upstream and never written by this application.
func ToDomainManagementRecord(m models.ManagementRecord) domain.ManagementRecord {
	return domain.ManagementRecord{
		RecordID:     m.RecordID,
		PurchaseID:   m.PurchaseID,
		MachineID:    m.MachineID,
		SalesState:   domain.SalesState(m.SalesState),
		PurchaseType: domain.PurchaseType(m.PurchaseType),
		Incoterm:     domain.Incoterm(m.Incoterm),
		CurrencyCode: m.CurrencyCode,

		PrecioFOB:        m.PrecioFOB,
		CifUSD:           m.CifUSD,
		CifLocal:         m.CifLocal,
		Inland:           m.Inland,
		GastosPto:        m.GastosPto,
		Flete:            m.Flete,
		Trasld:           m.Trasld,
		Rptos:            m.Rptos,
		MantEjec:         m.MantEjec,
		CostTotalArancel: m.CostTotalArancel,
		Proyectado:       m.Proyectado,
		PvpEst:           m.PvpEst,

		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
