package dto

import (
	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConsolidationQuery defines the optional equality filters of the
// consolidated view endpoints.
type ConsolidationQuery struct {
	SalesState   *string `form:"salesState" binding:"omitempty,max=20"`
	TipoCompra   *string `form:"tipoCompra" binding:"omitempty,max=30"`
	TipoIncoterm *string `form:"tipoIncoterm" binding:"omitempty,oneof=EXW FOB CIF"`
	Currency     *string `form:"currency" binding:"omitempty,len=3,uppercase"`
}

// ToFilter converts the query into a domain filter.
func (q ConsolidationQuery) ToFilter() domain.ConsolidationFilter {
	filter := domain.ConsolidationFilter{CurrencyCode: q.Currency}
	if q.SalesState != nil {
		state := domain.SalesState(*q.SalesState)
		filter.SalesState = &state
	}
	if q.TipoCompra != nil {
		purchaseType := domain.PurchaseType(*q.TipoCompra)
		filter.PurchaseType = &purchaseType
	}
	if q.TipoIncoterm != nil {
		incoterm := domain.Incoterm(*q.TipoIncoterm)
		filter.Incoterm = &incoterm
	}
	return filter
}

// ConsolidatedTotalsResponse defines the API shape of the portfolio rollup.
type ConsolidatedTotalsResponse struct {
	TotalMachines  int                `json:"total_machines"`
	TotalFOB       decimal.Decimal    `json:"total_fob"`
	TotalCIF       decimal.Decimal    `json:"total_cif"`
	TotalCosts     CostTotalsResponse `json:"total_costs"`
	TotalProjected decimal.Decimal    `json:"total_projected"`
	ByState        map[string]int     `json:"by_state"`
	ByType         map[string]int     `json:"by_type"`
}

// ToConsolidatedTotalsResponse converts domain.PortfolioTotals to its API shape.
func ToConsolidatedTotalsResponse(t domain.PortfolioTotals) ConsolidatedTotalsResponse {
	byState := make(map[string]int, len(t.ByState))
	for state, count := range t.ByState {
		byState[string(state)] = count
	}
	byType := make(map[string]int, len(t.ByType))
	for purchaseType, count := range t.ByType {
		byType[string(purchaseType)] = count
	}
	return ConsolidatedTotalsResponse{
		TotalMachines:  t.TotalMachines,
		TotalFOB:       t.TotalFOB,
		TotalCIF:       t.TotalCIF,
		TotalCosts:     ToCostTotalsResponse(t.TotalCosts),
		TotalProjected: t.TotalProjected,
		ByState:        byState,
		ByType:         byType,
	}
}

// ConsolidatedStatsResponse extends the totals with margin statistics.
type ConsolidatedStatsResponse struct {
	ConsolidatedTotalsResponse
	AverageMargin           decimal.Decimal `json:"average_margin"`
	MachinesWithProjections int             `json:"machines_with_projections"`
}

// ToConsolidatedStatsResponse converts domain.PortfolioStats to its API shape.
func ToConsolidatedStatsResponse(s domain.PortfolioStats) ConsolidatedStatsResponse {
	return ConsolidatedStatsResponse{
		ConsolidatedTotalsResponse: ToConsolidatedTotalsResponse(s.PortfolioTotals),
		AverageMargin:              s.AverageMargin,
		MachinesWithProjections:    s.MachinesWithProjections,
	}
}
