package services

import (
	"context"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
	"github.com/SscSPs/retail_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// JournalPosterSvc posts validated batches.
type JournalPosterSvc interface {
	// PostJournalBatch validates and persists a batch atomically. A request whose
	// reference already has a batch returns that batch with Skipped set.
	PostJournalBatch(ctx context.Context, req domain.PostBatchRequest) (*domain.PostingResult, error)

	// PostAdjustment resolves account codes from an API request and posts it.
	PostAdjustment(ctx context.Context, req dto.PostJournalBatchRequest, userID string) (*domain.PostingResult, error)
}

// AutoPosterSvc turns business events into batches. Each hook must be called with
// the context of the transaction that writes the business event.
type AutoPosterSvc interface {
	PostInvoice(ctx context.Context, order domain.Order) (*domain.PostingResult, error)
	PostInvoiceCash(ctx context.Context, order domain.Order) (*domain.PostingResult, error)
	PostPayment(ctx context.Context, payment domain.Payment) (*domain.PostingResult, error)
	PostSupplierPayment(ctx context.Context, payment domain.Payment) (*domain.PostingResult, error)
	PostExpensePayment(ctx context.Context, payment domain.Payment) (*domain.PostingResult, error)
	PostPurchase(ctx context.Context, bill domain.PurchaseBill) (*domain.PostingResult, error)
	PostPaymentToggle(ctx context.Context, order domain.Order, amount decimal.Decimal, toPaid bool) (*domain.PostingResult, error)
}

// ReversalSvc writes compensating batches. Posted batches are never edited.
type ReversalSvc interface {
	// ReverseReference reverses every unreversed batch that points at referenceID.
	ReverseReference(ctx context.Context, referenceID string, description string) ([]domain.PostingResult, error)

	// ReverseBatch reverses a single batch with an ADJUSTMENT batch.
	ReverseBatch(ctx context.Context, batchID string, userID string) (*domain.PostingResult, error)
}

// JournalReaderSvc defines read operations on posted batches.
type JournalReaderSvc interface {
	GetBatch(ctx context.Context, batchID string) (*domain.JournalBatch, []domain.LedgerEntry, error)
	ListBatches(ctx context.Context, params dto.ListBatchesParams) (*dto.ListBatchesResponse, error)
}

// LedgerPostingSvcFacade combines all ledger posting interfaces.
type LedgerPostingSvcFacade interface {
	JournalPosterSvc
	AutoPosterSvc
	ReversalSvc
	JournalReaderSvc
}
