package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fegundez/maqtrack/internal/apperrors"
	"github.com/fegundez/maqtrack/internal/core/domain"
	portsrepo "github.com/fegundez/maqtrack/internal/core/ports/repositories"
	portssvc "github.com/fegundez/maqtrack/internal/core/ports/services"
	"github.com/fegundez/maqtrack/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// rateDivisionPrecision is the number of decimal places kept when deriving
// an inverse rate. Rates are stored and used at this precision; amounts are
// only rounded at the end of a conversion.
const rateDivisionPrecision = 6

// rateService provides historical exchange rate resolution and management.
type rateService struct {
	BaseService
	rateRepo        portsrepo.CurrencyRateRepositoryFacade
	currencyService portssvc.CurrencySvcFacade
}

// NewRateService creates a new rate service.
func NewRateService(rateRepo portsrepo.CurrencyRateRepositoryFacade, currencyService portssvc.CurrencySvcFacade) portssvc.RateSvcFacade {
	return &rateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
	}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

// Resolve finds the rate for a currency pair, optionally as of a calendar
// date. The direct pair is preferred; when it has no usable row the inverse
// pair is tried the same way and returned as 1/rate. Lookups never use a
// rate dated after asOf and never interpolate between dates.
func (s *rateService) Resolve(ctx context.Context, fromCurrencyCode, toCurrencyCode string, asOf *time.Time) (*domain.CurrencyRate, error) {
	fromCode := strings.ToUpper(fromCurrencyCode)
	toCode := strings.ToUpper(toCurrencyCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	// Identity pairs convert 1:1 without touching the store.
	if fromCode == toCode {
		day := time.Now().UTC().Truncate(24 * time.Hour)
		if asOf != nil {
			day = asOf.Truncate(24 * time.Hour)
		}
		return &domain.CurrencyRate{
			FromCurrencyCode: fromCode,
			ToCurrencyCode:   toCode,
			Rate:             decimal.NewFromInt(1),
			RateDate:         day,
		}, nil
	}

	directRate, err := s.findRate(ctx, fromCode, toCode, asOf)
	if err == nil {
		return directRate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve rate for %s/%s: %w", fromCode, toCode, err)
	}

	// Direct pair has no usable row; derive from the inverse pair.
	inverseRate, inverseErr := s.findRate(ctx, toCode, fromCode, asOf)
	if inverseErr == nil {
		if inverseRate.Rate.IsZero() {
			return nil, apperrors.NewNotFoundError("no exchange rate found for currency pair " + fromCode + "/" + toCode)
		}
		derived := *inverseRate
		derived.FromCurrencyCode = fromCode
		derived.ToCurrencyCode = toCode
		derived.Rate = decimal.NewFromInt(1).DivRound(inverseRate.Rate, rateDivisionPrecision)
		s.LogDebug(ctx, "Resolved rate from inverse pair",
			slog.String("pair", fromCode+"/"+toCode),
			slog.String("rate", derived.Rate.String()))
		return &derived, nil
	}
	if !errors.Is(inverseErr, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve inverse rate for %s/%s: %w", fromCode, toCode, inverseErr)
	}

	return nil, apperrors.NewNotFoundError("no exchange rate found for currency pair " + fromCode + "/" + toCode)
}

// findRate performs the single-direction lookup: latest rate when asOf is
// nil, otherwise the latest rate dated at or before asOf.
func (s *rateService) findRate(ctx context.Context, fromCode, toCode string, asOf *time.Time) (*domain.CurrencyRate, error) {
	if asOf == nil {
		return s.rateRepo.FindLatestRate(ctx, fromCode, toCode)
	}
	return s.rateRepo.FindRateOn(ctx, fromCode, toCode, asOf.Truncate(24*time.Hour))
}

// UpsertRate records a rate for a pair and date, overwriting any rate
// already stored under the same key.
func (s *rateService) UpsertRate(ctx context.Context, req dto.UpsertCurrencyRateRequest, creatorUserID string) (*domain.CurrencyRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrencyCode == req.ToCurrencyCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	rateDay, err := req.RateDay()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid rate date '%s'", apperrors.ErrValidation, req.RateDate)
	}

	// Check if currencies exist
	if _, errFrom := s.currencyService.GetCurrencyByCode(ctx, req.FromCurrencyCode); errFrom != nil {
		if errors.Is(errFrom, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'from' currency code '%s' not found", apperrors.ErrValidation, req.FromCurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate 'from' currency '%s': %w", req.FromCurrencyCode, errFrom)
	}
	if _, errTo := s.currencyService.GetCurrencyByCode(ctx, req.ToCurrencyCode); errTo != nil {
		if errors.Is(errTo, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'to' currency code '%s' not found", apperrors.ErrValidation, req.ToCurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate 'to' currency '%s': %w", req.ToCurrencyCode, errTo)
	}

	now := time.Now()
	rate := domain.CurrencyRate{
		RateID:           uuid.NewString(),
		FromCurrencyCode: req.FromCurrencyCode,
		ToCurrencyCode:   req.ToCurrencyCode,
		Rate:             req.Rate.Round(rateDivisionPrecision),
		RateDate:         rateDay,
		Source:           req.Source,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to save exchange rate in service: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate saved",
		slog.String("pair", rate.Pair()),
		slog.String("rate", rate.Rate.String()),
		slog.String("rate_date", rate.RateDate.Format(domain.RateDateFormat)))
	return &rate, nil
}

// ListRates retrieves rates matching the optional filters.
func (s *rateService) ListRates(ctx context.Context, req dto.ListCurrencyRatesRequest) ([]domain.CurrencyRate, int, error) {
	var onOrBefore *time.Time
	if req.OnOrBefore != nil {
		day, err := time.ParseInLocation(domain.RateDateFormat, *req.OnOrBefore, time.UTC)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: invalid date '%s'", apperrors.ErrValidation, *req.OnOrBefore)
		}
		onOrBefore = &day
	}

	rates, total, err := s.rateRepo.ListRates(ctx, req.FromCurrencyCode, req.ToCurrencyCode, onOrBefore, req.Page, req.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	return rates, total, nil
}

// DeleteRate removes a rate row by its identifier.
func (s *rateService) DeleteRate(ctx context.Context, rateID string) error {
	if err := s.rateRepo.DeleteRate(ctx, rateID); err != nil {
		return fmt.Errorf("failed to delete exchange rate in service: %w", err)
	}
	s.LogInfo(ctx, "Exchange rate deleted", slog.String("rate_id", rateID))
	return nil
}
