package pgsql

import (
	"context"
	"errors"

	"github.com/fegundez/maqtrack/internal/apperrors"
	"github.com/fegundez/maqtrack/internal/core/domain"
	portsrepo "github.com/fegundez/maqtrack/internal/core/ports/repositories"
	"github.com/fegundez/maqtrack/internal/models"
	"github.com/fegundez/maqtrack/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPurchaseRepository implements the purchase repository using pgxpool.
type PgxPurchaseRepository struct {
	BaseRepository
}

// NewPgxPurchaseRepository creates a new repository for purchase data.
func NewPgxPurchaseRepository(pool *pgxpool.Pool) *PgxPurchaseRepository {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_id, supplier, machine_description, incoterm, currency_code,
		exw_value, fob_expenses, disassembly_load_value,
		created_at, created_by, last_updated_at, last_updated_by`

func scanPurchase(row pgx.Row) (*models.Purchase, error) {
	var m models.Purchase
	err := row.Scan(
		&m.PurchaseID,
		&m.Supplier,
		&m.MachineDescription,
		&m.Incoterm,
		&m.CurrencyCode,
		&m.EXWValue,
		&m.FOBExpenses,
		&m.DisassemblyLoadValue,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SavePurchase persists a new purchase or updates an existing one.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)

	query := `
		INSERT INTO purchases (
			purchase_id, supplier, machine_description, incoterm, currency_code,
			exw_value, fob_expenses, disassembly_load_value,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (purchase_id) DO UPDATE SET
			supplier = EXCLUDED.supplier,
			machine_description = EXCLUDED.machine_description,
			incoterm = EXCLUDED.incoterm,
			currency_code = EXCLUDED.currency_code,
			exw_value = EXCLUDED.exw_value,
			fob_expenses = EXCLUDED.fob_expenses,
			disassembly_load_value = EXCLUDED.disassembly_load_value,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.PurchaseID,
		m.Supplier,
		m.MachineDescription,
		m.Incoterm,
		m.CurrencyCode,
		m.EXWValue,
		m.FOBExpenses,
		m.DisassemblyLoadValue,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)

	if err != nil {
		return apperrors.NewAppError(500, "failed to save purchase "+m.PurchaseID, err)
	}
	return nil
}

// FindPurchaseByID retrieves a purchase by its identifier.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE purchase_id = $1;
	`

	m, err := scanPurchase(r.Pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find purchase by ID "+purchaseID, err)
	}

	domainPurchase := mapping.ToDomainPurchase(*m)
	return &domainPurchase, nil
}

// ListPurchases retrieves purchases with paging, newest first.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, page, pageSize int) ([]domain.Purchase, int, error) {
	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM purchases;`).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count purchases", err)
	}

	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		ORDER BY created_at DESC, purchase_id
		LIMIT $1 OFFSET $2;
	`

	rows, err := r.Pool.Query(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list purchases", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan purchase", err)
		}
		purchases = append(purchases, mapping.ToDomainPurchase(*m))
	}

	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating purchases", err)
	}

	return purchases, total, nil
}
