package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/retail_ledger/internal/models"
	"github.com/SscSPs/retail_ledger/internal/utils/mapping"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

var summaryColumns = []string{
	"summary_date", "opening_balance", "opening_balance_set_at", "opening_balance_set_by",
	"total_sales", "total_orders", "updated_at",
}

type PgxDailySummaryRepository struct {
	BaseRepository
}

func newPgxDailySummaryRepository(txm *TxManager) portsrepo.DailySummaryRepositoryFacade {
	return &PgxDailySummaryRepository{BaseRepository: BaseRepository{txm: txm}}
}

var _ portsrepo.DailySummaryRepositoryFacade = (*PgxDailySummaryRepository)(nil)

// FindSummaryByDate retrieves the aggregate row of one date.
func (r *PgxDailySummaryRepository) FindSummaryByDate(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	sql, args, err := r.Builder().Select(summaryColumns...).From("daily_summaries").
		Where(squirrel.Eq{"summary_date": domain.TruncateToDate(date)}).ToSql()
	if err != nil {
		return nil, mapPgError(err, "build find daily summary")
	}
	var m models.DailySummary
	if err := pgxscan.Get(ctx, r.Querier(ctx), &m, sql, args...); err != nil {
		return nil, mapPgError(err, "find daily summary "+date.Format(domain.DateLayout))
	}
	s := mapping.ToDomainDailySummary(m)
	return &s, nil
}

// ListSummaries lists rows in [from, to], newest first.
func (r *PgxDailySummaryRepository) ListSummaries(ctx context.Context, from, to time.Time) ([]domain.DailySummary, error) {
	sql, args, err := r.Builder().Select(summaryColumns...).From("daily_summaries").
		Where(squirrel.GtOrEq{"summary_date": domain.TruncateToDate(from)}).
		Where(squirrel.LtOrEq{"summary_date": domain.TruncateToDate(to)}).
		OrderBy("summary_date DESC").ToSql()
	if err != nil {
		return nil, mapPgError(err, "build list daily summaries")
	}
	var rows []models.DailySummary
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, mapPgError(err, "list daily summaries")
	}
	out := make([]domain.DailySummary, len(rows))
	for i, m := range rows {
		out[i] = mapping.ToDomainDailySummary(m)
	}
	return out, nil
}

// ApplySummaryDelta adds signed deltas to the row of date, creating it first when
// missing. A total that would go negative violates the table's CHECK constraints
// and is returned as an internal error rather than clamped.
func (r *PgxDailySummaryRepository) ApplySummaryDelta(ctx context.Context, date time.Time, salesDelta decimal.Decimal, ordersDelta int) error {
	query := `
		INSERT INTO daily_summaries (summary_date, total_sales, total_orders, updated_at)
		VALUES ($1, $2::numeric, $3::integer, NOW())
		ON CONFLICT (summary_date) DO UPDATE SET
			total_sales  = daily_summaries.total_sales + $2::numeric,
			total_orders = daily_summaries.total_orders + $3::integer,
			updated_at   = NOW()
	`
	day := domain.TruncateToDate(date)
	if _, err := r.Querier(ctx).Exec(ctx, query, day, salesDelta, ordersDelta); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return fmt.Errorf("daily summary of %s would go negative (sales %s, orders %+d): %w",
				day.Format(domain.DateLayout), salesDelta.String(), ordersDelta, err)
		}
		return mapPgError(err, "apply daily summary delta")
	}
	return nil
}

// SetOpeningBalance records the counted opening cash of date.
func (r *PgxDailySummaryRepository) SetOpeningBalance(ctx context.Context, date time.Time, amount decimal.Decimal, setBy string, at time.Time) (*domain.DailySummary, error) {
	query := `
		INSERT INTO daily_summaries (summary_date, opening_balance, opening_balance_set_at, opening_balance_set_by, updated_at)
		VALUES ($1, $2, $3, $4, $3)
		ON CONFLICT (summary_date) DO UPDATE SET
			opening_balance        = EXCLUDED.opening_balance,
			opening_balance_set_at = EXCLUDED.opening_balance_set_at,
			opening_balance_set_by = EXCLUDED.opening_balance_set_by,
			updated_at             = EXCLUDED.updated_at
		RETURNING summary_date, opening_balance, opening_balance_set_at, opening_balance_set_by, total_sales, total_orders, updated_at
	`
	var m models.DailySummary
	if err := pgxscan.Get(ctx, r.Querier(ctx), &m, query, domain.TruncateToDate(date), amount, at, setBy); err != nil {
		return nil, mapPgError(err, "set opening balance")
	}
	s := mapping.ToDomainDailySummary(m)
	return &s, nil
}
