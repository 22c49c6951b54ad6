package models

import "github.com/shopspring/decimal"

// CostItem is the storage model for the cost_items table.
type CostItem struct {
	CostItemID string          `json:"costItemID"`
	PurchaseID string          `json:"purchaseID"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	AuditFields
}
