package pgsql

import (
	portsrepo "github.com/fegundez/maqtrack/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:         NewPgxCurrencyRepository(pool),
		CurrencyRateRepo:     NewPgxCurrencyRateRepository(pool),
		CostItemRepo:         NewPgxCostItemRepository(pool),
		PurchaseRepo:         NewPgxPurchaseRepository(pool),
		ManagementRecordRepo: NewPgxManagementRecordRepository(pool),
	}
}
