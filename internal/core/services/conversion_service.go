package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fegundez/maqtrack/internal/apperrors"
	"github.com/fegundez/maqtrack/internal/core/domain"
	portssvc "github.com/fegundez/maqtrack/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// amountScale is the number of decimal places of every exposed amount.
// Rounding is half away from zero (round-half-up for the non-negative
// amounts this system handles) and happens once, on the final amount.
const amountScale = 2

// conversionService converts amounts between currencies using the rate
// resolver.
type conversionService struct {
	BaseService
	resolver portssvc.RateResolver
}

// NewConversionService creates a new conversion service.
func NewConversionService(resolver portssvc.RateResolver) portssvc.ConversionSvcFacade {
	return &conversionService{resolver: resolver}
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

// Convert applies the resolved rate to the amount. Identity pairs return
// the amount untouched with a rate of 1, so same-currency conversions never
// drift through rounding.
func (s *conversionService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrencyCode, toCurrencyCode string, asOf *time.Time) (*domain.Conversion, error) {
	if fromCurrencyCode == toCurrencyCode {
		return &domain.Conversion{
			Amount:   amount,
			RateUsed: decimal.NewFromInt(1),
		}, nil
	}

	rate, err := s.resolver.Resolve(ctx, fromCurrencyCode, toCurrencyCode, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no rate for pair %s/%s", apperrors.ErrConversionUnavailable, fromCurrencyCode, toCurrencyCode)
		}
		return nil, fmt.Errorf("failed to convert %s/%s: %w", fromCurrencyCode, toCurrencyCode, err)
	}

	return &domain.Conversion{
		Amount:   amount.Mul(rate.Rate).Round(amountScale),
		RateUsed: rate.Rate,
	}, nil
}
