package services

import (
	"context"
	"time"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSvc reports ledger-wide and per-account balances.
type BalanceSvc interface {
	// HealthCheck sums every posted entry and reports whether debits equal credits.
	HealthCheck(ctx context.Context) (*domain.LedgerHealth, error)
	GetAccountBalance(ctx context.Context, code string, asOf *time.Time) (*domain.AccountBalance, error)
}

// RealtimeSummarySvc computes a day's figures straight from orders and payments.
type RealtimeSummarySvc interface {
	GetRealtimeSummary(ctx context.Context, date time.Time) (*domain.RealtimeSummary, error)
}

// DailyAggregateSvc keeps the per-day aggregate row in step with order writes.
// Every method must run inside the order write's transaction.
type DailyAggregateSvc interface {
	RecordOrderCreated(ctx context.Context, order domain.Order) error
	RecordPaymentStatusChange(ctx context.Context, order domain.Order, oldStatus domain.PaymentStatus, newStatus domain.PaymentStatus) error
	RecordOrderDeleted(ctx context.Context, order domain.Order) error
}

// DailySummarySvc exposes the stored daily aggregate.
type DailySummarySvc interface {
	GetDailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error)
	ListDailySummaries(ctx context.Context, from time.Time, to time.Time) ([]domain.DailySummary, error)
	SetOpeningBalance(ctx context.Context, date time.Time, amount decimal.Decimal, userID string) (*domain.DailySummary, error)
}

// SummarySvcFacade combines all summary interfaces.
type SummarySvcFacade interface {
	RealtimeSummarySvc
	DailyAggregateSvc
	DailySummarySvc
}
