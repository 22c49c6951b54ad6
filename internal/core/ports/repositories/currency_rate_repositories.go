package repositories

import (
	"context"
	"time"

	"github.com/fegundez/maqtrack/internal/core/domain"
)

// CurrencyRateReader defines read operations for historical exchange rates.
// Both lookups are single-direction: the inverse-pair fallback is business
// logic and lives in the rate service, not here.
type CurrencyRateReader interface {
	// FindLatestRate retrieves the most recent rate for the pair.
	FindLatestRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.CurrencyRate, error)

	// FindRateOn retrieves the latest rate for the pair dated at or before
	// asOf (nearest-past match; an exact-date row wins by being nearest).
	FindRateOn(ctx context.Context, fromCurrencyCode, toCurrencyCode string, asOf time.Time) (*domain.CurrencyRate, error)

	// FindRateByID retrieves a rate row by its identifier.
	FindRateByID(ctx context.Context, rateID string) (*domain.CurrencyRate, error)

	// ListRates retrieves rates with optional pair/date filters and paging.
	ListRates(ctx context.Context, fromCurrency, toCurrency *string, onOrBefore *time.Time, page, pageSize int) ([]domain.CurrencyRate, int, error)
}

// CurrencyRateWriter defines write operations for exchange rates
type CurrencyRateWriter interface {
	// SaveRate inserts the rate, or updates it when a row already exists
	// for the same (pair, date).
	SaveRate(ctx context.Context, rate domain.CurrencyRate) error

	// DeleteRate removes a rate row by its identifier.
	DeleteRate(ctx context.Context, rateID string) error
}

// CurrencyRateRepositoryFacade combines all rate-related repository interfaces
type CurrencyRateRepositoryFacade interface {
	CurrencyRateReader
	CurrencyRateWriter
}
