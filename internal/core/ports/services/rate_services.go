package services

import (
	"context"
	"time"

	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/fegundez/maqtrack/internal/dto"
)

// RateResolver resolves an exchange rate for a currency pair, optionally as
// of a calendar date. Resolution order: exact or nearest-past direct rate,
// then the inverse pair the same way (returned as 1/rate). A nil asOf means
// the most recent rate. Rates are never interpolated and never taken from a
// future date.
type RateResolver interface {
	Resolve(ctx context.Context, fromCurrencyCode, toCurrencyCode string, asOf *time.Time) (*domain.CurrencyRate, error)
}

// RateSvcFacade combines rate resolution with rate reference-data management.
type RateSvcFacade interface {
	RateResolver

	UpsertRate(ctx context.Context, req dto.UpsertCurrencyRateRequest, creatorUserID string) (*domain.CurrencyRate, error)
	ListRates(ctx context.Context, req dto.ListCurrencyRatesRequest) ([]domain.CurrencyRate, int, error)
	DeleteRate(ctx context.Context, rateID string) error
}
