package dto

import (
	"time"

	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertCurrencyRateRequest defines the payload for recording an exchange
// rate. A rate already stored for the same pair and date is overwritten.
type UpsertCurrencyRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,len=3,uppercase"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,len=3,uppercase"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
	RateDate         string          `json:"rateDate" binding:"required,datetime=2006-01-02"`
	Source           string          `json:"source" binding:"omitempty,max=100"`
}

// RateDay parses the boundary calendar date into a midnight-UTC time.
func (r UpsertCurrencyRateRequest) RateDay() (time.Time, error) {
	return time.ParseInLocation(domain.RateDateFormat, r.RateDate, time.UTC)
}

// ListCurrencyRatesRequest defines optional filters for listing rates.
type ListCurrencyRatesRequest struct {
	FromCurrencyCode *string `form:"from" binding:"omitempty,len=3,uppercase"`
	ToCurrencyCode   *string `form:"to" binding:"omitempty,len=3,uppercase"`
	OnOrBefore       *string `form:"onOrBefore" binding:"omitempty,datetime=2006-01-02"`
	Page             int     `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize         int     `form:"pageSize,default=50" binding:"omitempty,min=1,max=200"`
}

// CurrencyRateResponse defines the API shape of a stored rate.
type CurrencyRateResponse struct {
	RateID           string          `json:"rateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Pair             string          `json:"pair"`
	Rate             decimal.Decimal `json:"rate"`
	RateDate         string          `json:"rateDate"`
	Source           string          `json:"source,omitempty"`
}

// ToCurrencyRateResponse converts a domain.CurrencyRate to its API shape.
func ToCurrencyRateResponse(rate *domain.CurrencyRate) CurrencyRateResponse {
	return CurrencyRateResponse{
		RateID:           rate.RateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Pair:             rate.Pair(),
		Rate:             rate.Rate,
		RateDate:         rate.RateDate.Format(domain.RateDateFormat),
		Source:           rate.Source,
	}
}

// ToListCurrencyRateResponse converts a slice of rates to response DTOs.
func ToListCurrencyRateResponse(rates []domain.CurrencyRate) []CurrencyRateResponse {
	responses := make([]CurrencyRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToCurrencyRateResponse(&rates[i])
	}
	return responses
}
