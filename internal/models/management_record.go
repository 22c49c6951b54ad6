package models

import "github.com/shopspring/decimal"

// ManagementRecord is the storage model for the management_records table.
// The table is materialized by upstream triggers on purchase/auction
// changes; this application only reads it.
type ManagementRecord struct {
	RecordID     string `json:"recordID"`
	PurchaseID   string `json:"purchaseID"`
	MachineID    string `json:"machineID"`
	SalesState   string `json:"salesState"`
	PurchaseType string `json:"purchaseType"`
	Incoterm     string `json:"incoterm"`
	CurrencyCode string `json:"currencyCode"`

	PrecioFOB        decimal.NullDecimal `json:"precioFOB"`
	CifUSD           decimal.NullDecimal `json:"cifUSD"`
	CifLocal         decimal.NullDecimal `json:"cifLocal"`
	Inland           decimal.NullDecimal `json:"inland"`
	GastosPto        decimal.NullDecimal `json:"gastosPto"`
	Flete            decimal.NullDecimal `json:"flete"`
	Trasld           decimal.NullDecimal `json:"trasld"`
	Rptos            decimal.NullDecimal `json:"rptos"`
	MantEjec         decimal.NullDecimal `json:"mantEjec"`
	CostTotalArancel decimal.NullDecimal `json:"costTotalArancel"`
	Proyectado       decimal.NullDecimal `json:"proyectado"`
	PvpEst           decimal.NullDecimal `json:"pvpEst"`

	AuditFields
}
