package domain

import "github.com/shopspring/decimal"

// CategoryTotals holds the per-category cost sums for a purchase plus the
// grand total. Categories that received no contribution stay zero. Total
// also carries amounts from category values outside the known set, so legacy
// rows are never dropped from the grand total.
type CategoryTotals struct {
	Inland    decimal.Decimal `json:"inland"`
	GastosPto decimal.Decimal `json:"gastosPto"`
	Flete     decimal.Decimal `json:"flete"`
	Trasld    decimal.Decimal `json:"trasld"`
	Repuestos decimal.Decimal `json:"repuestos"`
	MantEjec  decimal.Decimal `json:"mantEjec"`
	Total     decimal.Decimal `json:"total"`
}

// CostSummaryRow is one labeled line of a purchase cost breakdown.
type CostSummaryRow struct {
	Category CostCategory    `json:"category"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
}

// CostSummary is the display-ready cost breakdown of a purchase.
type CostSummary struct {
	Rows  []CostSummaryRow `json:"rows"`
	Total decimal.Decimal  `json:"total"`
}

// ConsolidationFilter narrows the management record set by equality
// predicates. Nil fields match everything.
type ConsolidationFilter struct {
	SalesState   *SalesState
	PurchaseType *PurchaseType
	Incoterm     *Incoterm
	CurrencyCode *string
}

// PortfolioTotals is the portfolio-wide rollup over the filtered management
// records. ByState and ByType always contain the canonical keys, with zero
// counts when unseen; non-canonical values found in the data get their own
// keys rather than being dropped.
type PortfolioTotals struct {
	TotalMachines  int                  `json:"totalMachines"`
	TotalFOB       decimal.Decimal      `json:"totalFOB"`
	TotalCIF       decimal.Decimal      `json:"totalCIF"`
	TotalCosts     CategoryTotals       `json:"totalCosts"`
	TotalProjected decimal.Decimal      `json:"totalProjected"`
	ByState        map[SalesState]int   `json:"byState"`
	ByType         map[PurchaseType]int `json:"byType"`
}

// NewPortfolioTotals returns a zeroed rollup with all canonical bucket keys
// present. Degraded (store-failure) responses use this same shape.
func NewPortfolioTotals() PortfolioTotals {
	t := PortfolioTotals{
		ByState: make(map[SalesState]int, len(KnownSalesStates)),
		ByType:  make(map[PurchaseType]int, len(KnownPurchaseTypes)),
	}
	for _, s := range KnownSalesStates {
		t.ByState[s] = 0
	}
	for _, pt := range KnownPurchaseTypes {
		t.ByType[pt] = 0
	}
	return t
}

// PortfolioStats extends PortfolioTotals with margin statistics.
// AverageMargin is the mean of (pvp_est - cif_usd) / pvp_est * 100 over
// records where both fields are present and non-zero; all other records are
// excluded from numerator and denominator alike.
type PortfolioStats struct {
	PortfolioTotals
	AverageMargin           decimal.Decimal `json:"averageMargin"`
	MachinesWithProjections int             `json:"machinesWithProjections"`
}

// NewPortfolioStats returns a zeroed stats struct with canonical bucket keys.
func NewPortfolioStats() PortfolioStats {
	return PortfolioStats{PortfolioTotals: NewPortfolioTotals()}
}
