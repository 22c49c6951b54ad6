package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateDateFormat is the calendar-date form rates use at the API boundary.
const RateDateFormat = "2006-01-02"

// CurrencyRate stores the conversion rate between two currencies for a
// specific calendar date. The pair is directional: USD/JPY is not JPY/USD,
// but the inverse pair is derivable as 1/rate when the direct pair is absent.
// At most one rate exists per (pair, date); upserts are keyed on that pair.
type CurrencyRate struct {
	RateID           string          `json:"rateID"` // Primary Key (UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	RateDate         time.Time       `json:"rateDate"` // day granularity, midnight UTC
	Source           string          `json:"source,omitempty"`
	AuditFields
}

// Pair returns the directional pair identifier, e.g. "USD/JPY".
func (r CurrencyRate) Pair() string {
	return r.FromCurrencyCode + "/" + r.ToCurrencyCode
}

// Conversion is the result of converting an amount between two currencies.
type Conversion struct {
	Amount   decimal.Decimal `json:"amount"`   // converted amount, 2 decimal places
	RateUsed decimal.Decimal `json:"rateUsed"` // rate applied (1 for identity pairs)
}
