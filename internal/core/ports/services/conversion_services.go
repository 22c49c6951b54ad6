package services

import (
	"context"
	"time"

	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionSvcFacade converts amounts between currencies using resolved
// historical rates. Identity conversions return the amount unchanged with a
// rate of 1; a pair with no direct or inverse rate fails with
// apperrors.ErrConversionUnavailable.
type ConversionSvcFacade interface {
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrencyCode, toCurrencyCode string, asOf *time.Time) (*domain.Conversion, error)
}
