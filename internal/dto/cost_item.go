package dto

import (
	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCostItemRequest defines the payload for adding a cost entry to a
// purchase. The category is validated against the closed enum at the
// boundary; legacy rows outside the enum can still exist in storage.
type CreateCostItemRequest struct {
	PurchaseID string          `json:"purchaseID" binding:"required"`
	Category   string          `json:"category" binding:"required,oneof=INLAND GASTOS_PTO FLETE TRASLD REPUESTOS MANT_EJEC"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// CostItemResponse defines the API shape of a cost item.
type CostItemResponse struct {
	CostItemID string          `json:"costItemID"`
	PurchaseID string          `json:"purchaseID"`
	Category   string          `json:"category"`
	Label      string          `json:"label"`
	Amount     decimal.Decimal `json:"amount"`
}

// ToCostItemResponse converts a domain.CostItem to its API shape.
func ToCostItemResponse(item *domain.CostItem) CostItemResponse {
	return CostItemResponse{
		CostItemID: item.CostItemID,
		PurchaseID: item.PurchaseID,
		Category:   string(item.Category),
		Label:      item.Category.Label(),
		Amount:     item.Amount,
	}
}

// ToListCostItemResponse converts a slice of cost items to response DTOs.
func ToListCostItemResponse(items []domain.CostItem) []CostItemResponse {
	responses := make([]CostItemResponse, len(items))
	for i := range items {
		responses[i] = ToCostItemResponse(&items[i])
	}
	return responses
}

// CostTotalsResponse defines the API shape of per-category cost totals.
type CostTotalsResponse struct {
	Inland    decimal.Decimal `json:"inland"`
	GastosPto decimal.Decimal `json:"gastos_pto"`
	Flete     decimal.Decimal `json:"flete"`
	Trasld    decimal.Decimal `json:"trasld"`
	Repuestos decimal.Decimal `json:"repuestos"`
	MantEjec  decimal.Decimal `json:"mant_ejec"`
	Total     decimal.Decimal `json:"total"`
}

// ToCostTotalsResponse converts domain.CategoryTotals to its API shape.
func ToCostTotalsResponse(t domain.CategoryTotals) CostTotalsResponse {
	return CostTotalsResponse{
		Inland:    t.Inland,
		GastosPto: t.GastosPto,
		Flete:     t.Flete,
		Trasld:    t.Trasld,
		Repuestos: t.Repuestos,
		MantEjec:  t.MantEjec,
		Total:     t.Total,
	}
}

// CostSummaryRowResponse is one labeled line of a cost breakdown.
type CostSummaryRowResponse struct {
	Type   string          `json:"type"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CostSummaryResponse defines the API shape of a purchase cost breakdown.
type CostSummaryResponse struct {
	Rows  []CostSummaryRowResponse `json:"rows"`
	Total decimal.Decimal          `json:"total"`
}

// ToCostSummaryResponse converts a domain.CostSummary to its API shape.
func ToCostSummaryResponse(s *domain.CostSummary) CostSummaryResponse {
	rows := make([]CostSummaryRowResponse, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = CostSummaryRowResponse{
			Type:   string(row.Category),
			Label:  row.Label,
			Amount: row.Amount,
		}
	}
	return CostSummaryResponse{Rows: rows, Total: s.Total}
}
