package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/fegundez/maqtrack/internal/apperrors"
	"github.com/fegundez/maqtrack/internal/core/domain"
	portsrepo "github.com/fegundez/maqtrack/internal/core/ports/repositories"
	"github.com/fegundez/maqtrack/internal/models"
	"github.com/fegundez/maqtrack/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxManagementRecordRepository reads the consolidated management view.
// The table is maintained by upstream triggers; this repository never writes.
type PgxManagementRecordRepository struct {
	BaseRepository
}

// NewPgxManagementRecordRepository creates a new read-only repository for
// management records.
func NewPgxManagementRecordRepository(pool *pgxpool.Pool) *PgxManagementRecordRepository {
	return &PgxManagementRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ManagementRecordRepositoryFacade = (*PgxManagementRecordRepository)(nil)

// ListManagementRecords retrieves records matching the filter. Nil filter
// fields match everything.
func (r *PgxManagementRecordRepository) ListManagementRecords(ctx context.Context, filter domain.ConsolidationFilter) ([]domain.ManagementRecord, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.SalesState != nil {
		conditions = append(conditions, fmt.Sprintf("sales_state = $%d", argNum))
		args = append(args, string(*filter.SalesState))
		argNum++
	}
	if filter.PurchaseType != nil {
		conditions = append(conditions, fmt.Sprintf("purchase_type = $%d", argNum))
		args = append(args, string(*filter.PurchaseType))
		argNum++
	}
	if filter.Incoterm != nil {
		conditions = append(conditions, fmt.Sprintf("incoterm = $%d", argNum))
		args = append(args, string(*filter.Incoterm))
		argNum++
	}
	if filter.CurrencyCode != nil {
		conditions = append(conditions, fmt.Sprintf("currency_code = $%d", argNum))
		args = append(args, *filter.CurrencyCode)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT record_id, purchase_id, machine_id, sales_state, purchase_type, incoterm, currency_code,
			precio_fob, cif_usd, cif_local, inland, gastos_pto, flete, trasld, rptos, mant_ejec,
			cost_total_arancel, proyectado, pvp_est,
			created_at, created_by, last_updated_at, last_updated_by
		FROM management_records
		%s
		ORDER BY created_at, record_id;
	`, whereClause)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list management records", err)
	}
	defer rows.Close()

	var records []domain.ManagementRecord
	for rows.Next() {
		var m models.ManagementRecord
		err := rows.Scan(
			&m.RecordID,
			&m.PurchaseID,
			&m.MachineID,
			&m.SalesState,
			&m.PurchaseType,
			&m.Incoterm,
			&m.CurrencyCode,
			&m.PrecioFOB,
			&m.CifUSD,
			&m.CifLocal,
			&m.Inland,
			&m.GastosPto,
			&m.Flete,
			&m.Trasld,
			&m.Rptos,
			&m.MantEjec,
			&m.CostTotalArancel,
			&m.Proyectado,
			&m.PvpEst,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan management record", err)
		}
		records = append(records, mapping.ToDomainManagementRecord(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating management records", err)
	}

	return records, nil
}
