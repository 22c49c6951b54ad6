package services

import (
	"context"

	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/fegundez/maqtrack/internal/dto"
)

// PurchaseSvcFacade manages purchases and their financial summaries.
type PurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error)
	UpdatePurchase(ctx context.Context, purchaseID string, req dto.UpdatePurchaseRequest, updaterUserID string) (*domain.Purchase, error)
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, page, pageSize int) ([]domain.Purchase, int, error)

	// FinancialSummary combines the purchase monetary fields with its cost
	// totals, optionally converted to targetCurrency using the latest rate.
	FinancialSummary(ctx context.Context, purchaseID string, targetCurrency *string) (*domain.FinancialSummary, error)
}
