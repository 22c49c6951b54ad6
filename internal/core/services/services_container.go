package services

import (
	portsrepo "github.com/fegundez/maqtrack/internal/core/ports/repositories"
	portssvc "github.com/fegundez/maqtrack/internal/core/ports/services"
	"github.com/fegundez/maqtrack/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency reference data first; rate management validates against it.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Rate = NewRateService(repos.CurrencyRateRepo, container.Currency)
	container.Conversion = NewConversionService(container.Rate)

	container.Cost = NewCostService(repos.CostItemRepo, repos.PurchaseRepo)
	container.Purchase = NewPurchaseService(
		repos.PurchaseRepo,
		container.Cost,
		WithConverter(container.Conversion),
		WithFOBCostPolicy(cfg.FOBCostPolicy),
	)

	container.Consolidation = NewConsolidationService(repos.ManagementRecordRepo)

	return container
}
