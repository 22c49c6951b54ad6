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

// PgxCostItemRepository implements the cost item repository using pgxpool.
type PgxCostItemRepository struct {
	BaseRepository
}

// NewPgxCostItemRepository creates a new repository for purchase cost items.
func NewPgxCostItemRepository(pool *pgxpool.Pool) *PgxCostItemRepository {
	return &PgxCostItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CostItemRepositoryFacade = (*PgxCostItemRepository)(nil)

const costItemColumns = `cost_item_id, purchase_id, category, amount,
		created_at, created_by, last_updated_at, last_updated_by`

func scanCostItem(row pgx.Row) (*models.CostItem, error) {
	var m models.CostItem
	err := row.Scan(
		&m.CostItemID,
		&m.PurchaseID,
		&m.Category,
		&m.Amount,
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

// SaveCostItem persists a new cost item.
func (r *PgxCostItemRepository) SaveCostItem(ctx context.Context, item domain.CostItem) error {
	m := mapping.ToModelCostItem(item)

	query := `
		INSERT INTO cost_items (
			cost_item_id, purchase_id, category, amount,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.CostItemID,
		m.PurchaseID,
		m.Category,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)

	if err != nil {
		return apperrors.NewAppError(500, "failed to save cost item for purchase "+m.PurchaseID, err)
	}
	return nil
}

// FindCostItemByID retrieves a cost item by its identifier.
func (r *PgxCostItemRepository) FindCostItemByID(ctx context.Context, costItemID string) (*domain.CostItem, error) {
	query := `
		SELECT ` + costItemColumns + `
		FROM cost_items
		WHERE cost_item_id = $1;
	`

	m, err := scanCostItem(r.Pool.QueryRow(ctx, query, costItemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find cost item by ID "+costItemID, err)
	}

	domainItem := mapping.ToDomainCostItem(*m)
	return &domainItem, nil
}

// ListCostItemsByPurchase retrieves all cost items owned by a purchase,
// oldest first so summaries are stable across reads.
func (r *PgxCostItemRepository) ListCostItemsByPurchase(ctx context.Context, purchaseID string) ([]domain.CostItem, error) {
	query := `
		SELECT ` + costItemColumns + `
		FROM cost_items
		WHERE purchase_id = $1
		ORDER BY created_at, cost_item_id;
	`

	rows, err := r.Pool.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list cost items for purchase "+purchaseID, err)
	}
	defer rows.Close()

	var items []domain.CostItem
	for rows.Next() {
		m, err := scanCostItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cost item", err)
		}
		items = append(items, mapping.ToDomainCostItem(*m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cost items", err)
	}

	return items, nil
}

// DeleteCostItem removes a cost item by its identifier.
func (r *PgxCostItemRepository) DeleteCostItem(ctx context.Context, costItemID string) error {
	query := `DELETE FROM cost_items WHERE cost_item_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, costItemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete cost item "+costItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("cost item not found: " + costItemID)
	}
	return nil
}
