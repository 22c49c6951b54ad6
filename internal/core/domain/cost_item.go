package domain

import "github.com/shopspring/decimal"

// CostCategory is the closed set of cost buckets tracked per purchase.
type CostCategory string

const (
	CostInland    CostCategory = "INLAND"
	CostGastosPto CostCategory = "GASTOS_PTO"
	CostFlete     CostCategory = "FLETE"
	CostTrasld    CostCategory = "TRASLD"
	CostRepuestos CostCategory = "REPUESTOS"
	CostMantEjec  CostCategory = "MANT_EJEC"
)

// KnownCostCategories lists the categories in display order.
var KnownCostCategories = []CostCategory{
	CostInland,
	CostGastosPto,
	CostFlete,
	CostTrasld,
	CostRepuestos,
	CostMantEjec,
}

var costCategoryLabels = map[CostCategory]string{
	CostInland:    "Inland",
	CostGastosPto: "Gastos de puerto",
	CostFlete:     "Flete",
	CostTrasld:    "Traslado",
	CostRepuestos: "Repuestos",
	CostMantEjec:  "Mantenimiento ejecutado",
}

// Label returns the display label for the category, or the raw value for
// categories outside the known set.
func (c CostCategory) Label() string {
	if label, ok := costCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// IsKnown reports whether the category is one of the six tracked buckets.
func (c CostCategory) IsKnown() bool {
	_, ok := costCategoryLabels[c]
	return ok
}

// CostItem is a single cost entry belonging to a purchase. Any number of
// items may exist per category; amounts are stored rounded to 2 decimals.
type CostItem struct {
	CostItemID string          `json:"costItemID"` // Primary Key (UUID)
	PurchaseID string          `json:"purchaseID"` // FK -> Purchase.PurchaseID
	Category   CostCategory    `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	AuditFields
}
