package services

import (
	"context"

	"github.com/fegundez/maqtrack/internal/core/domain"
)

// ConsolidationSvcFacade computes the portfolio-wide rollup over management
// records.
//
// Totals and Stats propagate store failures; the OrZero variants degrade to
// a structurally valid zero result (all canonical bucket keys present) so
// the consolidated view always renders.
type ConsolidationSvcFacade interface {
	Totals(ctx context.Context, filter domain.ConsolidationFilter) (domain.PortfolioTotals, error)
	TotalsOrZero(ctx context.Context, filter domain.ConsolidationFilter) domain.PortfolioTotals

	Stats(ctx context.Context, filter domain.ConsolidationFilter) (domain.PortfolioStats, error)
	StatsOrZero(ctx context.Context, filter domain.ConsolidationFilter) domain.PortfolioStats
}
