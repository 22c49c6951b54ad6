package repositories

import (
	"context"

	"github.com/fegundez/maqtrack/internal/core/domain"
)

// PurchaseReader defines read operations for purchases
type PurchaseReader interface {
	// FindPurchaseByID retrieves a purchase by its identifier.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases retrieves purchases with paging.
	ListPurchases(ctx context.Context, page, pageSize int) ([]domain.Purchase, int, error)
}

// PurchaseWriter defines write operations for purchases
type PurchaseWriter interface {
	// SavePurchase persists a new purchase or updates an existing one.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
}

// PurchaseRepositoryFacade combines all purchase repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
