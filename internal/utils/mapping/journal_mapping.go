package mapping

import (
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	"github.com/SscSPs/retail_ledger/internal/models"
)

// ToModelJournalBatch converts a domain JournalBatch to a model JournalBatch
func ToModelJournalBatch(d domain.JournalBatch) models.JournalBatch {
	var createdBy *string
	if d.CreatedBy != "" {
		createdBy = &d.CreatedBy
	}
	return models.JournalBatch{
		BatchID:         d.BatchID,
		BatchNumber:     d.BatchNumber,
		ReferenceType:   string(d.ReferenceType),
		ReferenceID:     d.ReferenceID,
		ReversesBatchID: d.ReversesBatchID,
		Description:     d.Description,
		TransactionDate: d.TransactionDate,
		TotalDebit:      d.TotalDebit,
		TotalCredit:     d.TotalCredit,
		IsBalanced:      d.IsBalanced,
		IsPosted:        d.IsPosted,
		IsReversed:      d.IsReversed,
		CreatedBy:       createdBy,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainJournalBatch converts a model JournalBatch to a domain JournalBatch
func ToDomainJournalBatch(m models.JournalBatch) domain.JournalBatch {
	d := domain.JournalBatch{
		BatchID:         m.BatchID,
		BatchNumber:     m.BatchNumber,
		ReferenceType:   domain.ReferenceType(m.ReferenceType),
		ReferenceID:     m.ReferenceID,
		ReversesBatchID: m.ReversesBatchID,
		Description:     m.Description,
		TransactionDate: m.TransactionDate,
		TotalDebit:      m.TotalDebit,
		TotalCredit:     m.TotalCredit,
		IsBalanced:      m.IsBalanced,
		IsPosted:        m.IsPosted,
		IsReversed:      m.IsReversed,
		CreatedAt:       m.CreatedAt,
	}
	if m.CreatedBy != nil {
		d.CreatedBy = *m.CreatedBy
	}
	return d
}

// ToDomainJournalBatches converts a slice of model JournalBatches
func ToDomainJournalBatches(ms []models.JournalBatch) []domain.JournalBatch {
	out := make([]domain.JournalBatch, len(ms))
	for i, m := range ms {
		out[i] = ToDomainJournalBatch(m)
	}
	return out
}

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry, lineNo int) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:   d.EntryID,
		BatchID:   d.BatchID,
		AccountID: d.AccountID,
		Debit:     d.Debit,
		Credit:    d.Credit,
		Narration: d.Narration,
		LineNo:    lineNo,
	}
}

// ToDomainLedgerEntries converts a slice of model LedgerEntries
func ToDomainLedgerEntries(ms []models.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		out[i] = domain.LedgerEntry{
			EntryID:   m.EntryID,
			BatchID:   m.BatchID,
			AccountID: m.AccountID,
			Debit:     m.Debit,
			Credit:    m.Credit,
			Narration: m.Narration,
		}
	}
	return out
}
