package dto

import (
	"time"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntryRequest is one leg of a manually posted batch. Either AccountID or
// AccountCode identifies the account.
type LedgerEntryRequest struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Narration   string          `json:"narration"`
}

// PostJournalBatchRequest is the body of a manual posting. Entry rules are
// checked by the ledger validator, not by binding, so every rule violation
// carries the same classified error as an automatic posting.
type PostJournalBatchRequest struct {
	ReferenceType   string               `json:"referenceType" binding:"omitempty,oneof=ADJUSTMENT OPENING MIGRATION"`
	ReferenceID     *string              `json:"referenceID"`
	Description     string               `json:"description" binding:"required"`
	TransactionDate string               `json:"transactionDate" binding:"omitempty,datetime=2006-01-02"`
	Entries         []LedgerEntryRequest `json:"entries"`
}

// ListBatchesParams defines query parameters for listing batches.
type ListBatchesParams struct {
	Limit         int     `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken     *string `form:"nextToken"`
	ReferenceType string  `form:"referenceType"`
	ReferenceID   string  `form:"referenceID"`
	From          string  `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To            string  `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// LedgerEntryResponse defines the data returned for an entry.
type LedgerEntryResponse struct {
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Narration string          `json:"narration"`
}

// JournalBatchResponse defines the data returned for a batch.
type JournalBatchResponse struct {
	BatchID         string          `json:"batchID"`
	BatchNumber     string          `json:"batchNumber"`
	ReferenceType   string          `json:"referenceType"`
	ReferenceID     *string         `json:"referenceID,omitempty"`
	ReversesBatchID *string         `json:"reversesBatchID,omitempty"`
	Description     string          `json:"description"`
	TransactionDate string          `json:"transactionDate"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	IsBalanced      bool            `json:"isBalanced"`
	IsPosted        bool            `json:"isPosted"`
	IsReversed      bool            `json:"isReversed"`
	CreatedBy       string          `json:"createdBy,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// GetBatchResponse combines a batch and its entries.
type GetBatchResponse struct {
	Batch   JournalBatchResponse  `json:"batch"`
	Entries []LedgerEntryResponse `json:"entries"`
	Skipped bool                  `json:"skipped,omitempty"`
}

// ListBatchesResponse is a page of batches.
type ListBatchesResponse struct {
	Batches   []JournalBatchResponse `json:"batches"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalBatchResponse converts a domain.JournalBatch to its DTO.
func ToJournalBatchResponse(b *domain.JournalBatch) JournalBatchResponse {
	return JournalBatchResponse{
		BatchID:         b.BatchID,
		BatchNumber:     b.BatchNumber,
		ReferenceType:   string(b.ReferenceType),
		ReferenceID:     b.ReferenceID,
		ReversesBatchID: b.ReversesBatchID,
		Description:     b.Description,
		TransactionDate: b.TransactionDate.Format(domain.DateLayout),
		TotalDebit:      b.TotalDebit,
		TotalCredit:     b.TotalCredit,
		IsBalanced:      b.IsBalanced,
		IsPosted:        b.IsPosted,
		IsReversed:      b.IsReversed,
		CreatedBy:       b.CreatedBy,
		CreatedAt:       b.CreatedAt,
	}
}

// ToLedgerEntryResponses converts entries to DTOs.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = LedgerEntryResponse{
			EntryID:   e.EntryID,
			AccountID: e.AccountID,
			Debit:     e.Debit,
			Credit:    e.Credit,
			Narration: e.Narration,
		}
	}
	return out
}

// ToGetBatchResponse converts a posting result to its DTO.
func ToGetBatchResponse(r *domain.PostingResult) GetBatchResponse {
	resp := GetBatchResponse{Skipped: r.Skipped, Entries: ToLedgerEntryResponses(r.Entries)}
	if r.Batch != nil {
		resp.Batch = ToJournalBatchResponse(r.Batch)
	}
	return resp
}

// ToListBatchesResponse converts a page of batches.
func ToListBatchesResponse(batches []domain.JournalBatch, nextToken *string) *ListBatchesResponse {
	out := make([]JournalBatchResponse, len(batches))
	for i := range batches {
		out[i] = ToJournalBatchResponse(&batches[i])
	}
	return &ListBatchesResponse{Batches: out, NextToken: nextToken}
}
