package services

import (
	"context"

	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/fegundez/maqtrack/internal/dto"
)

// CostSvcFacade manages purchase cost items and their category aggregation.
//
// Totals propagates store failures; TotalsOrZero is the dashboard-facing
// tier that degrades any store failure to a zero-valued result so that
// aggregate views always render.
type CostSvcFacade interface {
	CreateCostItem(ctx context.Context, req dto.CreateCostItemRequest, creatorUserID string) (*domain.CostItem, error)
	DeleteCostItem(ctx context.Context, costItemID string) error
	ListCostItems(ctx context.Context, purchaseID string) ([]domain.CostItem, error)

	Totals(ctx context.Context, purchaseID string) (domain.CategoryTotals, error)
	TotalsOrZero(ctx context.Context, purchaseID string) domain.CategoryTotals
	Summary(ctx context.Context, purchaseID string) (*domain.CostSummary, error)
}
