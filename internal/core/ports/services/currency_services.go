package services

import (
	"context"

	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/fegundez/maqtrack/internal/dto"
)

// CurrencySvcFacade defines the currency reference-data operations.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
