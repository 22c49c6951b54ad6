package dto

import (
	"time"

	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertRequest defines the query parameters of a conversion call.
type ConvertRequest struct {
	Amount           decimal.Decimal `form:"amount" binding:"required"`
	FromCurrencyCode string          `form:"from" binding:"required,len=3,uppercase"`
	ToCurrencyCode   string          `form:"to" binding:"required,len=3,uppercase"`
	Date             string          `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// AsOf parses the optional calendar date; nil means "latest rate".
func (r ConvertRequest) AsOf() (*time.Time, error) {
	if r.Date == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation(domain.RateDateFormat, r.Date, time.UTC)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// ConversionResponse defines the API shape of a conversion result.
type ConversionResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	RateUsed decimal.Decimal `json:"rateUsed"`
}

// ToConversionResponse converts a domain.Conversion to its API shape.
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		Amount:   c.Amount,
		RateUsed: c.RateUsed,
	}
}
