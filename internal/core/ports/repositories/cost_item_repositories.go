package repositories

import (
	"context"

	"github.com/fegundez/maqtrack/internal/core/domain"
)

// CostItemReader defines read operations for purchase cost items
type CostItemReader interface {
	// FindCostItemByID retrieves a cost item by its identifier.
	FindCostItemByID(ctx context.Context, costItemID string) (*domain.CostItem, error)

	// ListCostItemsByPurchase retrieves all cost items owned by a purchase.
	ListCostItemsByPurchase(ctx context.Context, purchaseID string) ([]domain.CostItem, error)
}

// CostItemWriter defines write operations for purchase cost items
type CostItemWriter interface {
	// SaveCostItem persists a new cost item.
	SaveCostItem(ctx context.Context, item domain.CostItem) error

	// DeleteCostItem removes a cost item by its identifier.
	DeleteCostItem(ctx context.Context, costItemID string) error
}

// CostItemRepositoryFacade combines all cost item repository interfaces
type CostItemRepositoryFacade interface {
	CostItemReader
	CostItemWriter
}
