package pgsql

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/retail_ledger/internal/models"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"
)

// reportingRepository aggregates posted ledger entries.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(txm *TxManager) portsrepo.BalanceReader {
	return &reportingRepository{BaseRepository: BaseRepository{txm: txm}}
}

var _ portsrepo.BalanceReader = (*reportingRepository)(nil)

func (r *reportingRepository) totals() squirrel.SelectBuilder {
	return r.Builder().
		Select("COALESCE(SUM(e.debit), 0) AS debits", "COALESCE(SUM(e.credit), 0) AS credits").
		From("ledger_entries e").
		Join("journal_batches b ON b.batch_id = e.batch_id").
		Where(squirrel.Eq{"b.is_posted": true})
}

func (r *reportingRepository) sum(ctx context.Context, q squirrel.SelectBuilder, what string) (decimal.Decimal, decimal.Decimal, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return decimal.Zero, decimal.Zero, mapPgError(err, "build "+what)
	}
	var t models.EntryTotals
	if err := pgxscan.Get(ctx, r.Querier(ctx), &t, sql, args...); err != nil {
		return decimal.Zero, decimal.Zero, mapPgError(err, what)
	}
	return t.Debits, t.Credits, nil
}

// SumAllEntries returns ledger-wide debit and credit totals.
func (r *reportingRepository) SumAllEntries(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	return r.sum(ctx, r.totals(), "sum all entries")
}

// SumAccountEntries returns the totals of one account up to asOf when given.
func (r *reportingRepository) SumAccountEntries(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	q := r.totals().Where(squirrel.Eq{"e.account_id": accountID})
	if asOf != nil {
		q = q.Where(squirrel.LtOrEq{"b.transaction_date": *asOf})
	}
	return r.sum(ctx, q, "sum entries of account "+accountID)
}
