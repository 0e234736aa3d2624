package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceType links a journal batch to the business event that caused it.
type ReferenceType string

const (
	RefInvoice       ReferenceType = "INVOICE"
	RefInvoiceCash   ReferenceType = "INVOICE_CASH"
	RefPayment       ReferenceType = "PAYMENT"
	RefPurchase      ReferenceType = "PURCHASE"
	RefExpense       ReferenceType = "EXPENSE"
	RefAdjustment    ReferenceType = "ADJUSTMENT"
	RefOpening       ReferenceType = "OPENING"
	RefMigration     ReferenceType = "MIGRATION"
	RefReversal      ReferenceType = "REVERSAL"
	RefPaymentToggle ReferenceType = "PAYMENT_TOGGLE"
)

var batchPrefixes = map[ReferenceType]string{
	RefInvoice:       "JV-INV",
	RefInvoiceCash:   "JV-CSH",
	RefPayment:       "JV-PAY",
	RefPurchase:      "JV-PUR",
	RefExpense:       "JV-EXP",
	RefAdjustment:    "JV-ADJ",
	RefOpening:       "JV-OPN",
	RefMigration:     "JV-MIG",
	RefReversal:      "JV-REV",
	RefPaymentToggle: "JV-TGL",
}

// BatchPrefix returns the batch number prefix for a reference type.
func BatchPrefix(t ReferenceType) string {
	if p, ok := batchPrefixes[t]; ok {
		return p
	}
	return "JV"
}

// IsKnown reports whether t is one of the supported reference types.
func (t ReferenceType) IsKnown() bool {
	_, ok := batchPrefixes[t]
	return ok
}

// IsUniquePerReference reports whether at most one batch may exist for a
// (type, referenceID) pair. The same set backs the partial unique index.
func (t ReferenceType) IsUniquePerReference() bool {
	switch t {
	case RefInvoice, RefInvoiceCash, RefPayment, RefPurchase, RefExpense:
		return true
	}
	return false
}

// JournalBatch is the atomic unit of posting. It is immutable once written;
// IsReversed is derived from the existence of a batch that reverses it.
type JournalBatch struct {
	BatchID         string          `json:"batchID"`
	BatchNumber     string          `json:"batchNumber"`
	ReferenceType   ReferenceType   `json:"referenceType"`
	ReferenceID     *string         `json:"referenceID,omitempty"`
	ReversesBatchID *string         `json:"reversesBatchID,omitempty"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	IsBalanced      bool            `json:"isBalanced"`
	IsPosted        bool            `json:"isPosted"`
	IsReversed      bool            `json:"isReversed"`
	CreatedBy       string          `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// LedgerEntry is one leg of a batch. Exactly one of Debit/Credit is normally non-zero.
type LedgerEntry struct {
	EntryID   string          `json:"entryID"`
	BatchID   string          `json:"batchID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Narration string          `json:"narration"`
}

// PostBatchRequest is the input of the posting engine.
type PostBatchRequest struct {
	ReferenceType   ReferenceType
	ReferenceID     *string
	ReversesBatchID *string
	Description     string
	TransactionDate time.Time
	Entries         []LedgerEntry
	CreatedBy       string
}

// PostingResult reports what the engine did with a request.
type PostingResult struct {
	Batch      *JournalBatch `json:"batch,omitempty"`
	Entries    []LedgerEntry `json:"entries,omitempty"`
	Skipped    bool          `json:"skipped"`
	SkipReason string        `json:"skipReason,omitempty"`
}

// Skip reasons reported by the auto-posting hooks.
const (
	SkipAlreadyPosted    = "already_posted"
	SkipZeroAmount       = "zero_amount"
	SkipNotCustomer      = "not_customer_payment"
	SkipPartyMismatch    = "party_type_mismatch"
	SkipMissingParty     = "missing_party"
	SkipNothingToReverse = "no_original_batch"
	SkipNothingCollected = "nothing_collected"
)

// BatchFilter narrows a batch listing.
type BatchFilter struct {
	ReferenceType *ReferenceType
	ReferenceID   *string
	From          *time.Time
	To            *time.Time
}
