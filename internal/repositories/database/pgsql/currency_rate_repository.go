package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fegundez/maqtrack/internal/apperrors"
	"github.com/fegundez/maqtrack/internal/core/domain"
	portsrepo "github.com/fegundez/maqtrack/internal/core/ports/repositories"
	"github.com/fegundez/maqtrack/internal/models"
	"github.com/fegundez/maqtrack/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCurrencyRateRepository implements the rate repository using pgxpool.
type PgxCurrencyRateRepository struct {
	BaseRepository
}

// NewPgxCurrencyRateRepository creates a new repository for exchange rate data.
func NewPgxCurrencyRateRepository(pool *pgxpool.Pool) *PgxCurrencyRateRepository {
	return &PgxCurrencyRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CurrencyRateRepositoryFacade = (*PgxCurrencyRateRepository)(nil)

const rateColumns = `rate_id, from_currency_code, to_currency_code, rate, rate_date, source,
		created_at, created_by, last_updated_at, last_updated_by`

func scanRate(row pgx.Row) (*models.CurrencyRate, error) {
	var m models.CurrencyRate
	err := row.Scan(
		&m.RateID,
		&m.FromCurrencyCode,
		&m.ToCurrencyCode,
		&m.Rate,
		&m.RateDate,
		&m.Source,
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

// FindLatestRate retrieves the most recent rate for the pair.
func (r *PgxCurrencyRateRepository) FindLatestRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.CurrencyRate, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM currency_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
		ORDER BY rate_date DESC
		LIMIT 1;
	`, rateColumns)

	m, err := scanRate(r.Pool.QueryRow(ctx, query, fromCurrencyCode, toCurrencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find latest rate for %s/%s", fromCurrencyCode, toCurrencyCode), err)
	}

	domainRate := mapping.ToDomainCurrencyRate(*m)
	return &domainRate, nil
}

// FindRateOn retrieves the latest rate for the pair dated at or before asOf.
// An exact-date row wins by being the nearest one.
func (r *PgxCurrencyRateRepository) FindRateOn(ctx context.Context, fromCurrencyCode, toCurrencyCode string, asOf time.Time) (*domain.CurrencyRate, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM currency_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2 AND rate_date <= $3
		ORDER BY rate_date DESC
		LIMIT 1;
	`, rateColumns)

	m, err := scanRate(r.Pool.QueryRow(ctx, query, fromCurrencyCode, toCurrencyCode, asOf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find rate for %s/%s on %s", fromCurrencyCode, toCurrencyCode, asOf.Format(domain.RateDateFormat)), err)
	}

	domainRate := mapping.ToDomainCurrencyRate(*m)
	return &domainRate, nil
}

// FindRateByID retrieves a rate row by its identifier.
func (r *PgxCurrencyRateRepository) FindRateByID(ctx context.Context, rateID string) (*domain.CurrencyRate, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM currency_rates
		WHERE rate_id = $1;
	`, rateColumns)

	m, err := scanRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find rate by ID "+rateID, err)
	}

	domainRate := mapping.ToDomainCurrencyRate(*m)
	return &domainRate, nil
}

// ListRates retrieves rates with optional pair/date filters and paging.
func (r *PgxCurrencyRateRepository) ListRates(ctx context.Context, fromCurrency, toCurrency *string, onOrBefore *time.Time, page, pageSize int) ([]domain.CurrencyRate, int, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if fromCurrency != nil {
		conditions = append(conditions, fmt.Sprintf("from_currency_code = $%d", argNum))
		args = append(args, *fromCurrency)
		argNum++
	}
	if toCurrency != nil {
		conditions = append(conditions, fmt.Sprintf("to_currency_code = $%d", argNum))
		args = append(args, *toCurrency)
		argNum++
	}
	if onOrBefore != nil {
		conditions = append(conditions, fmt.Sprintf("rate_date <= $%d", argNum))
		args = append(args, *onOrBefore)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM currency_rates %s;", whereClause)
	var total int
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count rates", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM currency_rates
		%s
		ORDER BY rate_date DESC, from_currency_code, to_currency_code
		LIMIT $%d OFFSET $%d;
	`, rateColumns, whereClause, argNum, argNum+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list rates", err)
	}
	defer rows.Close()

	var rates []domain.CurrencyRate
	for rows.Next() {
		m, err := scanRate(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan rate", err)
		}
		rates = append(rates, mapping.ToDomainCurrencyRate(*m))
	}

	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating rates", err)
	}

	return rates, total, nil
}

// SaveRate inserts the rate, or updates the existing row for the same
// (pair, date). The pair plus date carries a unique constraint, so the
// upsert is a single statement.
func (r *PgxCurrencyRateRepository) SaveRate(ctx context.Context, rate domain.CurrencyRate) error {
	m := mapping.ToModelCurrencyRate(rate)

	query := `
		INSERT INTO currency_rates (
			rate_id, from_currency_code, to_currency_code, rate, rate_date, source,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (from_currency_code, to_currency_code, rate_date) DO UPDATE SET
			rate = EXCLUDED.rate,
			source = EXCLUDED.source,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.RateID,
		m.FromCurrencyCode,
		m.ToCurrencyCode,
		m.Rate,
		m.RateDate,
		m.Source,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)

	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to save rate %s/%s", m.FromCurrencyCode, m.ToCurrencyCode), err)
	}
	return nil
}

// DeleteRate removes a rate row by its identifier.
func (r *PgxCurrencyRateRepository) DeleteRate(ctx context.Context, rateID string) error {
	query := `DELETE FROM currency_rates WHERE rate_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, rateID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete rate "+rateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("rate not found: " + rateID)
	}
	return nil
}
