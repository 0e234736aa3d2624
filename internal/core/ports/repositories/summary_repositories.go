package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DailySummaryReader defines read operations for the daily aggregate.
type DailySummaryReader interface {
	// FindSummaryByDate returns apperrors.ErrNotFound when no row exists for date.
	FindSummaryByDate(ctx context.Context, date time.Time) (*domain.DailySummary, error)
	// ListSummaries returns rows in [from, to], newest first.
	ListSummaries(ctx context.Context, from, to time.Time) ([]domain.DailySummary, error)
}

// DailySummaryWriter defines write operations for the daily aggregate.
type DailySummaryWriter interface {
	// ApplySummaryDelta creates the row for date when missing and adds the signed deltas.
	ApplySummaryDelta(ctx context.Context, date time.Time, salesDelta decimal.Decimal, ordersDelta int) error
	SetOpeningBalance(ctx context.Context, date time.Time, amount decimal.Decimal, setBy string, at time.Time) (*domain.DailySummary, error)
}

// DailySummaryRepositoryFacade combines all daily summary repository interfaces.
type DailySummaryRepositoryFacade interface {
	DailySummaryReader
	DailySummaryWriter
}
