package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate is the storage model for the currency_rates table.
// rate_date is a DATE column; one row per (from, to, rate_date).
type CurrencyRate struct {
	RateID           string          `json:"rateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	RateDate         time.Time       `json:"rateDate"`
	Source           string          `json:"source"`
	AuditFields
}
