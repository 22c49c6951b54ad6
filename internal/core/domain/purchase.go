package domain

import "github.com/shopspring/decimal"

// Incoterm is the shipping cost-responsibility term of a purchase.
type Incoterm string

const (
	IncotermEXW Incoterm = "EXW"
	IncotermFOB Incoterm = "FOB"
	IncotermCIF Incoterm = "CIF"
)

// FOBCostPolicy decides whether stored fob_expenses/disassembly values of
// FOB-incoterm purchases count toward financial summaries. The UI disables
// those inputs under FOB but stale values may remain stored, so the choice
// is configurable rather than hardcoded.
type FOBCostPolicy string

const (
	// FOBPolicyInclude counts whatever is stored, regardless of incoterm.
	FOBPolicyInclude FOBCostPolicy = "include"
	// FOBPolicyExclude treats the suppressed fields as 0 under FOB.
	FOBPolicyExclude FOBCostPolicy = "exclude"
)

// Purchase is a used-equipment purchase. FOBExpenses and DisassemblyLoadValue
// are not applicable under the FOB incoterm; the stored values are kept but
// whether they count toward financial summaries is governed by the
// configured FOB cost policy.
type Purchase struct {
	PurchaseID           string              `json:"purchaseID"` // Primary Key (UUID)
	Supplier             string              `json:"supplier"`
	MachineDescription   string              `json:"machineDescription"`
	Incoterm             Incoterm            `json:"incoterm"`
	CurrencyCode         string              `json:"currencyCode"`
	EXWValue             decimal.NullDecimal `json:"exwValue"`
	FOBExpenses          decimal.NullDecimal `json:"fobExpenses"`
	DisassemblyLoadValue decimal.NullDecimal `json:"disassemblyLoadValue"`
	AuditFields
}

// FinancialSummary combines a purchase's own monetary fields with its
// aggregated cost categories. Amounts are expressed in CurrencyCode, which
// is the purchase currency unless a target currency conversion was applied.
type FinancialSummary struct {
	PurchaseID      string              `json:"purchaseID"`
	CurrencyCode    string              `json:"currencyCode"`
	EXWValue        decimal.Decimal     `json:"exwValue"`
	FOBExpenses     decimal.Decimal     `json:"fobExpenses"`
	DisassemblyLoad decimal.Decimal     `json:"disassemblyLoad"`
	Costs           CategoryTotals      `json:"costs"`
	GrandTotal      decimal.Decimal     `json:"grandTotal"`
	RateUsed        decimal.NullDecimal `json:"rateUsed,omitempty"` // set when a conversion was applied
}
