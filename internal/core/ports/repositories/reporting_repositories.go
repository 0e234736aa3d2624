package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceReader aggregates posted ledger entries.
type BalanceReader interface {
	// SumAllEntries returns the debit and credit totals of every posted entry.
	SumAllEntries(ctx context.Context) (debits decimal.Decimal, credits decimal.Decimal, err error)

	// SumAccountEntries returns the totals of one account, optionally up to asOf (inclusive).
	SumAccountEntries(ctx context.Context, accountID string, asOf *time.Time) (debits decimal.Decimal, credits decimal.Decimal, err error)
}
