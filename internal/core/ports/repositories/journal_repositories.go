package repositories

import (
	"context"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal batches.
type JournalReader interface {
	FindBatchByID(ctx context.Context, batchID string) (*domain.JournalBatch, error)

	// FindBatchByReference returns the batch posted for a (type, referenceID) pair,
	// or apperrors.ErrNotFound.
	FindBatchByReference(ctx context.Context, refType domain.ReferenceType, referenceID string) (*domain.JournalBatch, error)

	// FindUnreversedBatchesByReference returns every non-reversal batch pointing at
	// referenceID that has not been reversed yet, oldest first.
	FindUnreversedBatchesByReference(ctx context.Context, referenceID string) ([]domain.JournalBatch, error)

	// ListBatches returns a page of batches, newest first, and the token of the next page.
	ListBatches(ctx context.Context, filter domain.BatchFilter, limit int, nextToken *string) ([]domain.JournalBatch, *string, error)
}

// LedgerEntryReader defines read operations for ledger entries.
type LedgerEntryReader interface {
	FindEntriesByBatchID(ctx context.Context, batchID string) ([]domain.LedgerEntry, error)
}

// JournalWriter defines write operations for journal batches.
type JournalWriter interface {
	// NextBatchSequence allocates the next batch number suffix. Values are unique
	// and increasing but may have gaps.
	NextBatchSequence(ctx context.Context) (int64, error)

	// InsertBatch writes the header and every entry. Unique violations surface as
	// apperrors.ErrDuplicate, foreign key violations as apperrors.ErrReferentialIntegrity.
	InsertBatch(ctx context.Context, batch domain.JournalBatch, entries []domain.LedgerEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	LedgerEntryReader
	JournalWriter
}
