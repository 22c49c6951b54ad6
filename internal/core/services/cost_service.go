package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fegundez/maqtrack/internal/apperrors"
	"github.com/fegundez/maqtrack/internal/core/domain"
	portsrepo "github.com/fegundez/maqtrack/internal/core/ports/repositories"
	portssvc "github.com/fegundez/maqtrack/internal/core/ports/services"
	"github.com/fegundez/maqtrack/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// costService manages purchase cost items and aggregates them into the six
// fixed categories.
type costService struct {
	BaseService
	costRepo     portsrepo.CostItemRepositoryFacade
	purchaseRepo portsrepo.PurchaseReader
}

// NewCostService creates a new cost service.
func NewCostService(costRepo portsrepo.CostItemRepositoryFacade, purchaseRepo portsrepo.PurchaseReader) portssvc.CostSvcFacade {
	return &costService{
		costRepo:     costRepo,
		purchaseRepo: purchaseRepo,
	}
}

var _ portssvc.CostSvcFacade = (*costService)(nil)

// CreateCostItem validates and persists a cost entry under a purchase.
// Amounts are stored rounded to 2 decimal places.
func (s *costService) CreateCostItem(ctx context.Context, req dto.CreateCostItemRequest, creatorUserID string) (*domain.CostItem, error) {
	category := domain.CostCategory(req.Category)
	if !category.IsKnown() {
		return nil, fmt.Errorf("%w: unknown cost category '%s'", apperrors.ErrValidation, req.Category)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: cost amount cannot be negative", apperrors.ErrValidation)
	}

	// The owning purchase must exist.
	if _, err := s.purchaseRepo.FindPurchaseByID(ctx, req.PurchaseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: purchase '%s' not found", apperrors.ErrValidation, req.PurchaseID)
		}
		return nil, fmt.Errorf("failed to validate purchase '%s': %w", req.PurchaseID, err)
	}

	now := time.Now()
	item := domain.CostItem{
		CostItemID: uuid.NewString(),
		PurchaseID: req.PurchaseID,
		Category:   category,
		Amount:     req.Amount.Round(amountScale),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.costRepo.SaveCostItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save cost item in service: %w", err)
	}

	s.LogInfo(ctx, "Cost item created",
		slog.String("cost_item_id", item.CostItemID),
		slog.String("purchase_id", item.PurchaseID),
		slog.String("category", string(item.Category)))
	return &item, nil
}

// DeleteCostItem removes a cost item by its identifier.
func (s *costService) DeleteCostItem(ctx context.Context, costItemID string) error {
	if err := s.costRepo.DeleteCostItem(ctx, costItemID); err != nil {
		return fmt.Errorf("failed to delete cost item in service: %w", err)
	}
	s.LogInfo(ctx, "Cost item deleted", slog.String("cost_item_id", costItemID))
	return nil
}

// ListCostItems retrieves all cost items of a purchase.
func (s *costService) ListCostItems(ctx context.Context, purchaseID string) ([]domain.CostItem, error) {
	items, err := s.costRepo.ListCostItemsByPurchase(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost items in service: %w", err)
	}
	if items == nil {
		return []domain.CostItem{}, nil
	}
	return items, nil
}

// Totals sums the purchase's cost items per category. The fold is
// commutative, so row order never affects the result. Amounts under a
// category outside the known set count toward Total only; they are never
// dropped from the grand total.
func (s *costService) Totals(ctx context.Context, purchaseID string) (domain.CategoryTotals, error) {
	items, err := s.costRepo.ListCostItemsByPurchase(ctx, purchaseID)
	if err != nil {
		return domain.CategoryTotals{}, fmt.Errorf("failed to aggregate cost items: %w", err)
	}

	return sumByCategory(items), nil
}

// TotalsOrZero is the dashboard-facing tier of Totals: any store failure
// degrades to all-zero totals so aggregate views always render.
func (s *costService) TotalsOrZero(ctx context.Context, purchaseID string) domain.CategoryTotals {
	totals, err := s.Totals(ctx, purchaseID)
	if err != nil {
		s.LogWarn(ctx, "Cost totals degraded to zero after store failure",
			slog.String("purchase_id", purchaseID),
			slog.String("error", err.Error()))
		return domain.CategoryTotals{}
	}
	return totals
}

// Summary returns the labeled per-category breakdown of a purchase.
func (s *costService) Summary(ctx context.Context, purchaseID string) (*domain.CostSummary, error) {
	totals, err := s.Totals(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.CostSummaryRow, 0, len(domain.KnownCostCategories))
	for _, category := range domain.KnownCostCategories {
		rows = append(rows, domain.CostSummaryRow{
			Category: category,
			Label:    category.Label(),
			Amount:   categoryAmount(totals, category),
		})
	}
	return &domain.CostSummary{Rows: rows, Total: totals.Total}, nil
}

// sumByCategory folds cost items into category buckets plus a grand total.
func sumByCategory(items []domain.CostItem) domain.CategoryTotals {
	var totals domain.CategoryTotals
	for _, item := range items {
		switch item.Category {
		case domain.CostInland:
			totals.Inland = totals.Inland.Add(item.Amount)
		case domain.CostGastosPto:
			totals.GastosPto = totals.GastosPto.Add(item.Amount)
		case domain.CostFlete:
			totals.Flete = totals.Flete.Add(item.Amount)
		case domain.CostTrasld:
			totals.Trasld = totals.Trasld.Add(item.Amount)
		case domain.CostRepuestos:
			totals.Repuestos = totals.Repuestos.Add(item.Amount)
		case domain.CostMantEjec:
			totals.MantEjec = totals.MantEjec.Add(item.Amount)
		}
		totals.Total = totals.Total.Add(item.Amount)
	}
	return totals
}

func categoryAmount(totals domain.CategoryTotals, category domain.CostCategory) decimal.Decimal {
	switch category {
	case domain.CostInland:
		return totals.Inland
	case domain.CostGastosPto:
		return totals.GastosPto
	case domain.CostFlete:
		return totals.Flete
	case domain.CostTrasld:
		return totals.Trasld
	case domain.CostRepuestos:
		return totals.Repuestos
	case domain.CostMantEjec:
		return totals.MantEjec
	}
	return decimal.Zero
}
