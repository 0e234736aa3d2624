package pgsql

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/retail_ledger/internal/apperrors"
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/retail_ledger/internal/models"
	"github.com/SscSPs/retail_ledger/internal/utils/mapping"
	"github.com/SscSPs/retail_ledger/internal/utils/pagination"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

// isReversedColumn derives the reversed flag; batches are never updated after insert.
const isReversedColumn = `EXISTS (SELECT 1 FROM journal_batches rb WHERE rb.reverses_batch_id = b.batch_id) AS is_reversed`

var batchColumns = []string{
	"b.batch_id", "b.batch_number", "b.reference_type", "b.reference_id", "b.reverses_batch_id",
	"b.description", "b.transaction_date", "b.total_debit", "b.total_credit",
	"b.is_balanced", "b.is_posted", isReversedColumn, "b.created_by", "b.created_at",
}

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal batches and their entries.
func newPgxJournalRepository(txm *TxManager) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{txm: txm}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func (r *PgxJournalRepository) selectBatches() squirrel.SelectBuilder {
	return r.Builder().Select(batchColumns...).From("journal_batches b")
}

// FindBatchByID retrieves a batch by its ID.
func (r *PgxJournalRepository) FindBatchByID(ctx context.Context, batchID string) (*domain.JournalBatch, error) {
	sql, args, err := r.selectBatches().Where(squirrel.Eq{"b.batch_id": batchID}).ToSql()
	if err != nil {
		return nil, mapPgError(err, "build find batch")
	}
	var m models.JournalBatch
	if err := pgxscan.Get(ctx, r.Querier(ctx), &m, sql, args...); err != nil {
		return nil, mapPgError(err, "find batch "+batchID)
	}
	b := mapping.ToDomainJournalBatch(m)
	return &b, nil
}

// FindBatchByReference retrieves the oldest batch posted for (refType, referenceID).
func (r *PgxJournalRepository) FindBatchByReference(ctx context.Context, refType domain.ReferenceType, referenceID string) (*domain.JournalBatch, error) {
	sql, args, err := r.selectBatches().
		Where(squirrel.Eq{"b.reference_type": string(refType), "b.reference_id": referenceID}).
		OrderBy("b.created_at").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, mapPgError(err, "build find batch by reference")
	}
	var m models.JournalBatch
	if err := pgxscan.Get(ctx, r.Querier(ctx), &m, sql, args...); err != nil {
		return nil, mapPgError(err, fmt.Sprintf("find %s batch for %s", refType, referenceID))
	}
	b := mapping.ToDomainJournalBatch(m)
	return &b, nil
}

// FindUnreversedBatchesByReference returns the original batches of referenceID
// that no batch reverses yet.
func (r *PgxJournalRepository) FindUnreversedBatchesByReference(ctx context.Context, referenceID string) ([]domain.JournalBatch, error) {
	sql, args, err := r.selectBatches().
		Where(squirrel.Eq{"b.reference_id": referenceID, "b.reverses_batch_id": nil}).
		Where(squirrel.NotEq{"b.reference_type": string(domain.RefReversal)}).
		Where("NOT EXISTS (SELECT 1 FROM journal_batches rb WHERE rb.reverses_batch_id = b.batch_id)").
		OrderBy("b.created_at", "b.batch_id").
		ToSql()
	if err != nil {
		return nil, mapPgError(err, "build find unreversed batches")
	}
	var rows []models.JournalBatch
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, mapPgError(err, "find unreversed batches for "+referenceID)
	}
	return mapping.ToDomainJournalBatches(rows), nil
}

// ListBatches returns a page of batches ordered newest first, plus the next page token.
func (r *PgxJournalRepository) ListBatches(ctx context.Context, filter domain.BatchFilter, limit int, nextToken *string) ([]domain.JournalBatch, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	q := r.selectBatches()
	if filter.ReferenceType != nil {
		q = q.Where(squirrel.Eq{"b.reference_type": string(*filter.ReferenceType)})
	}
	if filter.ReferenceID != nil {
		q = q.Where(squirrel.Eq{"b.reference_id": *filter.ReferenceID})
	}
	if filter.From != nil {
		q = q.Where(squirrel.GtOrEq{"b.transaction_date": *filter.From})
	}
	if filter.To != nil {
		q = q.Where(squirrel.LtOrEq{"b.transaction_date": *filter.To})
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeBatchCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %w", apperrors.ErrValidation, err)
		}
		q = q.Where(squirrel.Expr("(b.transaction_date, b.created_at, b.batch_id) < (?, ?, ?)",
			cursor.TransactionDate, cursor.CreatedAt, cursor.BatchID))
	}
	// one extra row tells us whether another page exists
	q = q.OrderBy("b.transaction_date DESC", "b.created_at DESC", "b.batch_id DESC").Limit(uint64(limit + 1))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, nil, mapPgError(err, "build list batches")
	}
	var rows []models.JournalBatch
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, nil, mapPgError(err, "list batches")
	}

	var next *string
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		token := pagination.EncodeBatchCursor(pagination.BatchCursor{
			TransactionDate: last.TransactionDate,
			CreatedAt:       last.CreatedAt,
			BatchID:         last.BatchID,
		})
		next = &token
	}
	return mapping.ToDomainJournalBatches(rows), next, nil
}

// FindEntriesByBatchID retrieves the entries of a batch in insertion order.
func (r *PgxJournalRepository) FindEntriesByBatchID(ctx context.Context, batchID string) ([]domain.LedgerEntry, error) {
	sql, args, err := r.Builder().
		Select("entry_id", "batch_id", "account_id", "debit", "credit", "narration", "line_no").
		From("ledger_entries").
		Where(squirrel.Eq{"batch_id": batchID}).
		OrderBy("line_no").
		ToSql()
	if err != nil {
		return nil, mapPgError(err, "build find entries")
	}
	var rows []models.LedgerEntry
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, mapPgError(err, "find entries for batch "+batchID)
	}
	return mapping.ToDomainLedgerEntries(rows), nil
}

// NextBatchSequence draws from journal_batch_number_seq, which takes no row
// lock, so postings of the same type on the same day do not serialize.
func (r *PgxJournalRepository) NextBatchSequence(ctx context.Context) (int64, error) {
	var next int64
	if err := r.Querier(ctx).QueryRow(ctx, `SELECT nextval('journal_batch_number_seq')`).Scan(&next); err != nil {
		return 0, mapPgError(err, "allocate batch sequence")
	}
	return next, nil
}

// InsertBatch writes the batch header and its entries in one round trip.
func (r *PgxJournalRepository) InsertBatch(ctx context.Context, batch domain.JournalBatch, entries []domain.LedgerEntry) error {
	mb := mapping.ToModelJournalBatch(batch)

	b := &pgx.Batch{}
	b.Queue(`
		INSERT INTO journal_batches (
			batch_id, batch_number, reference_type, reference_id, reverses_batch_id, description,
			transaction_date, total_debit, total_credit, is_balanced, is_posted, created_by, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		mb.BatchID, mb.BatchNumber, mb.ReferenceType, mb.ReferenceID, mb.ReversesBatchID, mb.Description,
		mb.TransactionDate, mb.TotalDebit, mb.TotalCredit, mb.IsBalanced, mb.IsPosted, mb.CreatedBy, mb.CreatedAt,
	)

	entryQuery := `
		INSERT INTO ledger_entries (entry_id, batch_id, account_id, debit, credit, narration, line_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, e := range entries {
		me := mapping.ToModelLedgerEntry(e, i+1)
		b.Queue(entryQuery, me.EntryID, me.BatchID, me.AccountID, me.Debit, me.Credit, me.Narration, me.LineNo)
	}

	br := r.Querier(ctx).SendBatch(ctx, b)
	if err := br.Close(); err != nil {
		return mapPgError(err, "insert batch "+mb.BatchNumber)
	}
	return nil
}
