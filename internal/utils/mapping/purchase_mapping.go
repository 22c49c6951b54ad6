package mapping

import (
	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/fegundez/maqtrack/internal/models"
)

// ToModelPurchase converts a domain Purchase to a model Purchase.
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:           d.PurchaseID,
		Supplier:             d.Supplier,
		MachineDescription:   d.MachineDescription,
		Incoterm:             string(d.Incoterm),
		CurrencyCode:         d.CurrencyCode,
		EXWValue:             d.EXWValue,
		FOBExpenses:          d.FOBExpenses,
		DisassemblyLoadValue: d.DisassemblyLoadValue,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchase converts a model Purchase to a domain Purchase.
func ToDomainPurchase(m models.Purchase) domain.Purchase {
	return domain.Purchase{
		PurchaseID:           m.PurchaseID,
		Supplier:             m.Supplier,
		MachineDescription:   m.MachineDescription,
		Incoterm:             domain.Incoterm(m.Incoterm),
		CurrencyCode:         m.CurrencyCode,
		EXWValue:             m.EXWValue,
		FOBExpenses:          m.FOBExpenses,
		DisassemblyLoadValue: m.DisassemblyLoadValue,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}
