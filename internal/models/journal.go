package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalBatch is the journal_batches row plus the derived is_reversed column.
type JournalBatch struct {
	BatchID         string          `db:"batch_id"`
	BatchNumber     string          `db:"batch_number"`
	ReferenceType   string          `db:"reference_type"`
	ReferenceID     *string         `db:"reference_id"`
	ReversesBatchID *string         `db:"reverses_batch_id"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	TotalDebit      decimal.Decimal `db:"total_debit"`
	TotalCredit     decimal.Decimal `db:"total_credit"`
	IsBalanced      bool            `db:"is_balanced"`
	IsPosted        bool            `db:"is_posted"`
	IsReversed      bool            `db:"is_reversed"`
	CreatedBy       *string         `db:"created_by"`
	CreatedAt       time.Time       `db:"created_at"`
}

// LedgerEntry is the ledger_entries row.
type LedgerEntry struct {
	EntryID   string          `db:"entry_id"`
	BatchID   string          `db:"batch_id"`
	AccountID string          `db:"account_id"`
	Debit     decimal.Decimal `db:"debit"`
	Credit    decimal.Decimal `db:"credit"`
	Narration string          `db:"narration"`
	LineNo    int             `db:"line_no"`
}

// EntryTotals holds a debit/credit aggregate.
type EntryTotals struct {
	Debits  decimal.Decimal `db:"debits"`
	Credits decimal.Decimal `db:"credits"`
}
