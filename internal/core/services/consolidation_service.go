package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fegundez/maqtrack/internal/core/domain"
	portsrepo "github.com/fegundez/maqtrack/internal/core/ports/repositories"
	portssvc "github.com/fegundez/maqtrack/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// consolidationService computes the portfolio-wide rollup over the
// management records.
type consolidationService struct {
	BaseService
	recordRepo portsrepo.ManagementRecordRepositoryFacade
}

// NewConsolidationService creates a new consolidation service.
func NewConsolidationService(recordRepo portsrepo.ManagementRecordRepositoryFacade) portssvc.ConsolidationSvcFacade {
	return &consolidationService{recordRepo: recordRepo}
}

var _ portssvc.ConsolidationSvcFacade = (*consolidationService)(nil)

// Totals folds the filtered record set into portfolio sums and bucket
// counts. Null monetary fields count as 0; the record itself is never
// skipped. States and types outside the canonical enums get their own
// bucket keys instead of being dropped.
func (s *consolidationService) Totals(ctx context.Context, filter domain.ConsolidationFilter) (domain.PortfolioTotals, error) {
	records, err := s.recordRepo.ListManagementRecords(ctx, filter)
	if err != nil {
		return domain.NewPortfolioTotals(), fmt.Errorf("failed to load management records: %w", err)
	}

	return foldTotals(records), nil
}

// foldTotals accumulates the record set into the rollup structure.
func foldTotals(records []domain.ManagementRecord) domain.PortfolioTotals {
	totals := domain.NewPortfolioTotals()
	for _, record := range records {
		totals.TotalMachines++
		totals.TotalFOB = totals.TotalFOB.Add(orZero(record.PrecioFOB))
		totals.TotalCIF = totals.TotalCIF.Add(orZero(record.CifUSD))
		totals.TotalProjected = totals.TotalProjected.Add(orZero(record.Proyectado))

		totals.TotalCosts.Inland = totals.TotalCosts.Inland.Add(orZero(record.Inland))
		totals.TotalCosts.GastosPto = totals.TotalCosts.GastosPto.Add(orZero(record.GastosPto))
		totals.TotalCosts.Flete = totals.TotalCosts.Flete.Add(orZero(record.Flete))
		totals.TotalCosts.Trasld = totals.TotalCosts.Trasld.Add(orZero(record.Trasld))
		totals.TotalCosts.Repuestos = totals.TotalCosts.Repuestos.Add(orZero(record.Rptos))
		totals.TotalCosts.MantEjec = totals.TotalCosts.MantEjec.Add(orZero(record.MantEjec))

		totals.ByState[record.SalesState]++
		totals.ByType[record.PurchaseType]++
	}
	totals.TotalCosts.Total = totals.TotalCosts.Inland.
		Add(totals.TotalCosts.GastosPto).
		Add(totals.TotalCosts.Flete).
		Add(totals.TotalCosts.Trasld).
		Add(totals.TotalCosts.Repuestos).
		Add(totals.TotalCosts.MantEjec)

	return totals
}

// TotalsOrZero degrades any store failure to a zeroed rollup with all
// canonical bucket keys present, so the consolidated view always renders.
func (s *consolidationService) TotalsOrZero(ctx context.Context, filter domain.ConsolidationFilter) domain.PortfolioTotals {
	totals, err := s.Totals(ctx, filter)
	if err != nil {
		s.LogWarn(ctx, "Consolidated totals degraded to zero after store failure",
			slog.String("error", err.Error()))
		return domain.NewPortfolioTotals()
	}
	return totals
}

// Stats extends Totals with the average sales margin. A record enters the
// margin mean only when pvp_est and cif_usd are both present and non-zero;
// excluded records affect neither numerator nor denominator, and the
// non-zero pvp_est filter doubles as the division guard.
func (s *consolidationService) Stats(ctx context.Context, filter domain.ConsolidationFilter) (domain.PortfolioStats, error) {
	records, err := s.recordRepo.ListManagementRecords(ctx, filter)
	if err != nil {
		return domain.NewPortfolioStats(), fmt.Errorf("failed to load management records: %w", err)
	}

	stats := domain.NewPortfolioStats()
	stats.PortfolioTotals = foldTotals(records)

	hundred := decimal.NewFromInt(100)
	marginSum := decimal.Zero
	marginCount := 0
	for _, record := range records {
		if record.Proyectado.Valid && !record.Proyectado.Decimal.IsZero() {
			stats.MachinesWithProjections++
		}
		if !record.PvpEst.Valid || record.PvpEst.Decimal.IsZero() {
			continue
		}
		if !record.CifUSD.Valid || record.CifUSD.Decimal.IsZero() {
			continue
		}
		margin := record.PvpEst.Decimal.Sub(record.CifUSD.Decimal).
			Div(record.PvpEst.Decimal).
			Mul(hundred)
		marginSum = marginSum.Add(margin)
		marginCount++
	}
	if marginCount > 0 {
		stats.AverageMargin = marginSum.Div(decimal.NewFromInt(int64(marginCount)))
	}

	return stats, nil
}

// StatsOrZero degrades any store failure to a zeroed stats structure with
// all canonical bucket keys present.
func (s *consolidationService) StatsOrZero(ctx context.Context, filter domain.ConsolidationFilter) domain.PortfolioStats {
	stats, err := s.Stats(ctx, filter)
	if err != nil {
		s.LogWarn(ctx, "Consolidated stats degraded to zero after store failure",
			slog.String("error", err.Error()))
		return domain.NewPortfolioStats()
	}
	return stats
}

// orZero treats a null monetary field as 0.
func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
