package domain

import "github.com/shopspring/decimal"

// SalesState is the sale status carried on a management record.
type SalesState string

const (
	SalesStateOK     SalesState = "OK"
	SalesStateX      SalesState = "X"
	SalesStateBlanco SalesState = "BLANCO"
)

// KnownSalesStates lists the canonical states in display order. Records may
// still carry other values; aggregation counts them rather than dropping them.
var KnownSalesStates = []SalesState{SalesStateOK, SalesStateX, SalesStateBlanco}

// PurchaseType is how the machine was acquired.
type PurchaseType string

const (
	PurchaseTypeSubasta       PurchaseType = "SUBASTA"
	PurchaseTypeCompraDirecta PurchaseType = "COMPRA_DIRECTA"
	PurchaseTypeStock         PurchaseType = "STOCK"
)

// KnownPurchaseTypes is the canonical acquisition-type enum.
var KnownPurchaseTypes = []PurchaseType{
	PurchaseTypeSubasta,
	PurchaseTypeCompraDirecta,
	PurchaseTypeStock,
}

// ManagementRecord is one row per machine/purchase combination in the
// consolidated management view. The row is materialized upstream from the
// machine/auction/purchase entities; this core only reads and aggregates it.
// Monetary fields are nullable: a missing value counts as 0 in sums but is
// distinguished from 0 where the margin calculation requires presence.
type ManagementRecord struct {
	RecordID     string       `json:"recordID"` // Primary Key (UUID)
	PurchaseID   string       `json:"purchaseID"`
	MachineID    string       `json:"machineID"`
	SalesState   SalesState   `json:"salesState"`
	PurchaseType PurchaseType `json:"purchaseType"`
	Incoterm     Incoterm     `json:"incoterm"`
	CurrencyCode string       `json:"currencyCode"`

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
