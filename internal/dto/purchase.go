package dto

import (
	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the payload for registering a purchase.
type CreatePurchaseRequest struct {
	Supplier             string           `json:"supplier" binding:"required,max=200"`
	MachineDescription   string           `json:"machineDescription" binding:"required,max=500"`
	Incoterm             string           `json:"incoterm" binding:"required,oneof=EXW FOB CIF"`
	CurrencyCode         string           `json:"currencyCode" binding:"required,len=3,uppercase"`
	EXWValue             *decimal.Decimal `json:"exwValue" binding:"omitempty"`
	FOBExpenses          *decimal.Decimal `json:"fobExpenses" binding:"omitempty"`
	DisassemblyLoadValue *decimal.Decimal `json:"disassemblyLoadValue" binding:"omitempty"`
}

// UpdatePurchaseRequest defines the mutable fields of a purchase. Nil
// fields are left untouched.
type UpdatePurchaseRequest struct {
	Supplier             *string          `json:"supplier" binding:"omitempty,max=200"`
	MachineDescription   *string          `json:"machineDescription" binding:"omitempty,max=500"`
	Incoterm             *string          `json:"incoterm" binding:"omitempty,oneof=EXW FOB CIF"`
	CurrencyCode         *string          `json:"currencyCode" binding:"omitempty,len=3,uppercase"`
	EXWValue             *decimal.Decimal `json:"exwValue" binding:"omitempty"`
	FOBExpenses          *decimal.Decimal `json:"fobExpenses" binding:"omitempty"`
	DisassemblyLoadValue *decimal.Decimal `json:"disassemblyLoadValue" binding:"omitempty"`
}

// PurchaseResponse defines the API shape of a purchase. The FOB-suppressed
// fields are omitted for FOB-incoterm purchases (display-only suppression;
// stored values are untouched).
type PurchaseResponse struct {
	PurchaseID           string           `json:"purchaseID"`
	Supplier             string           `json:"supplier"`
	MachineDescription   string           `json:"machineDescription"`
	Incoterm             string           `json:"incoterm"`
	CurrencyCode         string           `json:"currencyCode"`
	EXWValue             *decimal.Decimal `json:"exwValue,omitempty"`
	FOBExpenses          *decimal.Decimal `json:"fobExpenses,omitempty"`
	DisassemblyLoadValue *decimal.Decimal `json:"disassemblyLoadValue,omitempty"`
}

func nullableAmount(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// ToPurchaseResponse converts a domain.Purchase to its API shape.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	resp := PurchaseResponse{
		PurchaseID:         p.PurchaseID,
		Supplier:           p.Supplier,
		MachineDescription: p.MachineDescription,
		Incoterm:           string(p.Incoterm),
		CurrencyCode:       p.CurrencyCode,
		EXWValue:           nullableAmount(p.EXWValue),
	}
	if p.Incoterm != domain.IncotermFOB {
		resp.FOBExpenses = nullableAmount(p.FOBExpenses)
		resp.DisassemblyLoadValue = nullableAmount(p.DisassemblyLoadValue)
	}
	return resp
}

// ToListPurchaseResponse converts a slice of purchases to response DTOs.
func ToListPurchaseResponse(purchases []domain.Purchase) []PurchaseResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = ToPurchaseResponse(&purchases[i])
	}
	return responses
}

// FinancialSummaryResponse defines the API shape of a purchase financial
// summary.
type FinancialSummaryResponse struct {
	PurchaseID      string             `json:"purchaseID"`
	CurrencyCode    string             `json:"currencyCode"`
	EXWValue        decimal.Decimal    `json:"exwValue"`
	FOBExpenses     decimal.Decimal    `json:"fobExpenses"`
	DisassemblyLoad decimal.Decimal    `json:"disassemblyLoad"`
	Costs           CostTotalsResponse `json:"costs"`
	GrandTotal      decimal.Decimal    `json:"grandTotal"`
	RateUsed        *decimal.Decimal   `json:"rateUsed,omitempty"`
}

// ToFinancialSummaryResponse converts a domain.FinancialSummary to its API shape.
func ToFinancialSummaryResponse(s *domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		PurchaseID:      s.PurchaseID,
		CurrencyCode:    s.CurrencyCode,
		EXWValue:        s.EXWValue,
		FOBExpenses:     s.FOBExpenses,
		DisassemblyLoad: s.DisassemblyLoad,
		Costs:           ToCostTotalsResponse(s.Costs),
		GrandTotal:      s.GrandTotal,
		RateUsed:        nullableAmount(s.RateUsed),
	}
}
