package services

import (
	"context"
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

// purchaseService manages purchases and their financial summaries.
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	costService  portssvc.CostSvcFacade
	converter    portssvc.ConversionSvcFacade
	fobPolicy    domain.FOBCostPolicy
}

// PurchaseServiceOption is a functional option for configuring the purchase service
type PurchaseServiceOption func(*purchaseService)

// WithFOBCostPolicy sets how FOB-suppressed fields enter financial summaries.
func WithFOBCostPolicy(policy domain.FOBCostPolicy) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.fobPolicy = policy
	}
}

// WithConverter sets the currency converter used for target-currency summaries.
func WithConverter(converter portssvc.ConversionSvcFacade) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.converter = converter
	}
}

// NewPurchaseService creates a new purchase service with the provided options.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, costService portssvc.CostSvcFacade, options ...PurchaseServiceOption) portssvc.PurchaseSvcFacade {
	svc := &purchaseService{
		purchaseRepo: purchaseRepo,
		costService:  costService,
		fobPolicy:    domain.FOBPolicyInclude,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// CreatePurchase validates and persists a new purchase.
func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error) {
	if err := validateAmounts(req.EXWValue, req.FOBExpenses, req.DisassemblyLoadValue); err != nil {
		return nil, err
	}

	now := time.Now()
	purchase := domain.Purchase{
		PurchaseID:           uuid.NewString(),
		Supplier:             req.Supplier,
		MachineDescription:   req.MachineDescription,
		Incoterm:             domain.Incoterm(req.Incoterm),
		CurrencyCode:         req.CurrencyCode,
		EXWValue:             toNullDecimal(req.EXWValue),
		FOBExpenses:          toNullDecimal(req.FOBExpenses),
		DisassemblyLoadValue: toNullDecimal(req.DisassemblyLoadValue),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create purchase in service: %w", err)
	}

	s.LogInfo(ctx, "Purchase created",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("supplier", purchase.Supplier))
	return &purchase, nil
}

// UpdatePurchase applies the non-nil request fields to an existing purchase.
func (s *purchaseService) UpdatePurchase(ctx context.Context, purchaseID string, req dto.UpdatePurchaseRequest, updaterUserID string) (*domain.Purchase, error) {
	if err := validateAmounts(req.EXWValue, req.FOBExpenses, req.DisassemblyLoadValue); err != nil {
		return nil, err
	}

	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchase for update: %w", err)
	}

	if req.Supplier != nil {
		purchase.Supplier = *req.Supplier
	}
	if req.MachineDescription != nil {
		purchase.MachineDescription = *req.MachineDescription
	}
	if req.Incoterm != nil {
		purchase.Incoterm = domain.Incoterm(*req.Incoterm)
	}
	if req.CurrencyCode != nil {
		purchase.CurrencyCode = *req.CurrencyCode
	}
	if req.EXWValue != nil {
		purchase.EXWValue = toNullDecimal(req.EXWValue)
	}
	if req.FOBExpenses != nil {
		purchase.FOBExpenses = toNullDecimal(req.FOBExpenses)
	}
	if req.DisassemblyLoadValue != nil {
		purchase.DisassemblyLoadValue = toNullDecimal(req.DisassemblyLoadValue)
	}
	purchase.LastUpdatedAt = time.Now()
	purchase.LastUpdatedBy = updaterUserID

	if err := s.purchaseRepo.SavePurchase(ctx, *purchase); err != nil {
		return nil, fmt.Errorf("failed to update purchase in service: %w", err)
	}

	return purchase, nil
}

// GetPurchaseByID retrieves a purchase by its identifier.
func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase in service: %w", err)
	}
	return purchase, nil
}

// ListPurchases retrieves purchases with paging.
func (s *purchaseService) ListPurchases(ctx context.Context, page, pageSize int) ([]domain.Purchase, int, error) {
	purchases, total, err := s.purchaseRepo.ListPurchases(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list purchases in service: %w", err)
	}
	if purchases == nil {
		purchases = []domain.Purchase{}
	}
	return purchases, total, nil
}

// FinancialSummary combines a purchase's monetary fields with its cost
// category totals. Under the exclude FOB policy, the FOB-suppressed fields
// contribute 0 for FOB-incoterm purchases. When targetCurrency differs
// from the purchase currency, every component is converted at the latest
// rate; the cost grand total is recomputed from the converted categories so
// the summary stays internally consistent after rounding.
func (s *purchaseService) FinancialSummary(ctx context.Context, purchaseID string, targetCurrency *string) (*domain.FinancialSummary, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchase for summary: %w", err)
	}

	costs := s.costService.TotalsOrZero(ctx, purchaseID)

	summary := &domain.FinancialSummary{
		PurchaseID:   purchase.PurchaseID,
		CurrencyCode: purchase.CurrencyCode,
		EXWValue:     orZero(purchase.EXWValue),
		Costs:        costs,
	}
	if s.fobPolicy == domain.FOBPolicyExclude && purchase.Incoterm == domain.IncotermFOB {
		summary.FOBExpenses = decimal.Zero
		summary.DisassemblyLoad = decimal.Zero
	} else {
		summary.FOBExpenses = orZero(purchase.FOBExpenses)
		summary.DisassemblyLoad = orZero(purchase.DisassemblyLoadValue)
	}

	if targetCurrency != nil && *targetCurrency != purchase.CurrencyCode {
		if s.converter == nil {
			return nil, fmt.Errorf("%w: no converter configured for target currency summaries", apperrors.ErrConversionUnavailable)
		}
		if err := s.convertSummary(ctx, summary, purchase.CurrencyCode, *targetCurrency); err != nil {
			return nil, err
		}
	}

	summary.GrandTotal = summary.EXWValue.
		Add(summary.FOBExpenses).
		Add(summary.DisassemblyLoad).
		Add(summary.Costs.Total)

	return summary, nil
}

// convertSummary converts each summary component to the target currency at
// the latest rate.
func (s *purchaseService) convertSummary(ctx context.Context, summary *domain.FinancialSummary, fromCurrency, toCurrency string) error {
	rate := decimal.NullDecimal{}
	convert := func(amount decimal.Decimal) (decimal.Decimal, error) {
		conversion, err := s.converter.Convert(ctx, amount, fromCurrency, toCurrency, nil)
		if err != nil {
			return decimal.Zero, err
		}
		rate = decimal.NullDecimal{Decimal: conversion.RateUsed, Valid: true}
		return conversion.Amount, nil
	}

	var err error
	if summary.EXWValue, err = convert(summary.EXWValue); err != nil {
		return err
	}
	if summary.FOBExpenses, err = convert(summary.FOBExpenses); err != nil {
		return err
	}
	if summary.DisassemblyLoad, err = convert(summary.DisassemblyLoad); err != nil {
		return err
	}
	if summary.Costs.Inland, err = convert(summary.Costs.Inland); err != nil {
		return err
	}
	if summary.Costs.GastosPto, err = convert(summary.Costs.GastosPto); err != nil {
		return err
	}
	if summary.Costs.Flete, err = convert(summary.Costs.Flete); err != nil {
		return err
	}
	if summary.Costs.Trasld, err = convert(summary.Costs.Trasld); err != nil {
		return err
	}
	if summary.Costs.Repuestos, err = convert(summary.Costs.Repuestos); err != nil {
		return err
	}
	if summary.Costs.MantEjec, err = convert(summary.Costs.MantEjec); err != nil {
		return err
	}

	summary.Costs.Total = summary.Costs.Inland.
		Add(summary.Costs.GastosPto).
		Add(summary.Costs.Flete).
		Add(summary.Costs.Trasld).
		Add(summary.Costs.Repuestos).
		Add(summary.Costs.MantEjec)
	summary.CurrencyCode = toCurrency
	summary.RateUsed = rate
	return nil
}

func validateAmounts(amounts ...*decimal.Decimal) error {
	for _, amount := range amounts {
		if amount != nil && amount.IsNegative() {
			return fmt.Errorf("%w: monetary values cannot be negative", apperrors.ErrValidation)
		}
	}
	return nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
