package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/retail_ledger/internal/apperrors"
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_ledger/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger/internal/dto"
	"github.com/SscSPs/retail_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const batchNumberDateLayout = "20060102"

// ledgerPostingService persists balanced batches and turns business events into
// postings. Every hook joins the transaction carried by ctx, so a failed
// posting fails the business write that triggered it.
type ledgerPostingService struct {
	BaseService
	txm         portsrepo.TransactionManager
	journalRepo portsrepo.JournalRepositoryFacade
	accounts    portssvc.AccountRegistrySvc
}

// NewLedgerPostingService creates the posting engine.
func NewLedgerPostingService(
	txm portsrepo.TransactionManager,
	journalRepo portsrepo.JournalRepositoryFacade,
	accounts portssvc.AccountRegistrySvc,
) portssvc.LedgerPostingSvcFacade {
	return &ledgerPostingService{
		txm:         txm,
		journalRepo: journalRepo,
		accounts:    accounts,
	}
}

var _ portssvc.LedgerPostingSvcFacade = (*ledgerPostingService)(nil)

func skipped(reason string) *domain.PostingResult {
	return &domain.PostingResult{Skipped: true, SkipReason: reason}
}

// normalizeEntries rounds every leg to minor units, so the legs that are
// validated are exactly the legs that get stored.
func normalizeEntries(entries []domain.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(entries))
	for i, e := range entries {
		e.Debit = e.Debit.Round(accounting.MinorUnitPlaces)
		e.Credit = e.Credit.Round(accounting.MinorUnitPlaces)
		out[i] = e
	}
	return out
}

// PostJournalBatch validates req and writes the batch with its entries atomically.
func (s *ledgerPostingService) PostJournalBatch(ctx context.Context, req domain.PostBatchRequest) (*domain.PostingResult, error) {
	if !req.ReferenceType.IsKnown() {
		return nil, fmt.Errorf("%w: unknown reference type %q", apperrors.ErrValidation, req.ReferenceType)
	}

	entries := normalizeEntries(req.Entries)
	totals, err := accounting.ValidateBatchEntries(entries)
	if err != nil {
		s.LogWarn(ctx, "Journal batch rejected",
			slog.String("reference_type", string(req.ReferenceType)),
			slog.String("error", err.Error()))
		return nil, err
	}

	refID := ""
	if req.ReferenceID != nil {
		refID = *req.ReferenceID
	}
	idempotent := refID != "" && req.ReferenceType.IsUniquePerReference()
	if idempotent {
		existing, err := s.existingPosting(ctx, req.ReferenceType, refID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			s.LogInfo(ctx, "Batch already posted for reference, skipping",
				slog.String("reference_type", string(req.ReferenceType)),
				slog.String("reference_id", refID),
				slog.String("batch_number", existing.Batch.BatchNumber))
			return existing, nil
		}
	}

	txDate := req.TransactionDate
	if txDate.IsZero() {
		txDate = time.Now().UTC()
	}
	txDate = domain.TruncateToDate(txDate)

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = actorFromCtx(ctx)
	}

	var result *domain.PostingResult
	err = s.txm.RunInSavepoint(ctx, func(txCtx context.Context) error {
		prefix := domain.BatchPrefix(req.ReferenceType)
		seq, err := s.journalRepo.NextBatchSequence(txCtx)
		if err != nil {
			return err
		}

		batch := domain.JournalBatch{
			BatchID:         uuid.NewString(),
			BatchNumber:     fmt.Sprintf("%s-%s-%06d", prefix, txDate.Format(batchNumberDateLayout), seq),
			ReferenceType:   req.ReferenceType,
			ReferenceID:     req.ReferenceID,
			ReversesBatchID: req.ReversesBatchID,
			Description:     req.Description,
			TransactionDate: txDate,
			TotalDebit:      totals.Debit,
			TotalCredit:     totals.Credit,
			IsBalanced:      true,
			IsPosted:        true,
			CreatedBy:       createdBy,
			CreatedAt:       time.Now().UTC(),
		}
		for i := range entries {
			entries[i].EntryID = uuid.NewString()
			entries[i].BatchID = batch.BatchID
		}

		if err := s.journalRepo.InsertBatch(txCtx, batch, entries); err != nil {
			return err
		}
		result = &domain.PostingResult{Batch: &batch, Entries: entries}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate) && idempotent:
			// lost the race on the reference index; the winner is now visible
			existing, findErr := s.existingPosting(ctx, req.ReferenceType, refID)
			if findErr == nil && existing != nil {
				s.LogInfo(ctx, "Concurrent posting won for reference, skipping",
					slog.String("reference_type", string(req.ReferenceType)),
					slog.String("reference_id", refID))
				return existing, nil
			}
		case errors.Is(err, apperrors.ErrDuplicate) && req.ReversesBatchID != nil:
			return nil, fmt.Errorf("%w: batch %s is already reversed", apperrors.ErrConflict, *req.ReversesBatchID)
		}
		s.LogError(ctx, err, "Failed to post journal batch",
			slog.String("reference_type", string(req.ReferenceType)),
			slog.String("reference_id", refID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal batch posted",
		slog.String("batch_id", result.Batch.BatchID),
		slog.String("batch_number", result.Batch.BatchNumber),
		slog.String("total", totals.Debit.StringFixed(accounting.MinorUnitPlaces)))
	return result, nil
}

func (s *ledgerPostingService) existingPosting(ctx context.Context, refType domain.ReferenceType, refID string) (*domain.PostingResult, error) {
	batch, err := s.journalRepo.FindBatchByReference(ctx, refType, refID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	entries, err := s.journalRepo.FindEntriesByBatchID(ctx, batch.BatchID)
	if err != nil {
		return nil, err
	}
	return &domain.PostingResult{Batch: batch, Entries: entries, Skipped: true, SkipReason: domain.SkipAlreadyPosted}, nil
}

// PostAdjustment posts a manually entered batch. Entry rules are checked before
// any account is resolved, so a bad batch fails exactly as an automatic one would.
func (s *ledgerPostingService) PostAdjustment(ctx context.Context, req dto.PostJournalBatchRequest, userID string) (*domain.PostingResult, error) {
	refType := domain.RefAdjustment
	if req.ReferenceType != "" {
		refType = domain.ReferenceType(req.ReferenceType)
	}
	txDate, err := businessDate(req.TransactionDate, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LedgerEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = domain.LedgerEntry{AccountID: e.AccountID, Debit: e.Debit, Credit: e.Credit, Narration: e.Narration}
	}
	if _, err := accounting.ValidateBatchEntries(normalizeEntries(entries)); err != nil {
		s.LogWarn(ctx, "Manual batch rejected", slog.String("error", err.Error()))
		return nil, err
	}

	for i, e := range req.Entries {
		switch {
		case e.AccountID != "":
			if _, err := uuid.Parse(e.AccountID); err != nil {
				return nil, fmt.Errorf("%w: entry %d: accountID %q is not a valid id", apperrors.ErrValidation, i+1, e.AccountID)
			}
		case e.AccountCode != "":
			acc, err := s.accounts.GetAccountByCode(ctx, e.AccountCode)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: entry %d: unknown account code %s", apperrors.ErrReferentialIntegrity, i+1, e.AccountCode)
				}
				return nil, err
			}
			entries[i].AccountID = acc.AccountID
		default:
			return nil, fmt.Errorf("%w: entry %d: accountID or accountCode is required", apperrors.ErrValidation, i+1)
		}
	}

	return s.PostJournalBatch(ctx, domain.PostBatchRequest{
		ReferenceType:   refType,
		ReferenceID:     req.ReferenceID,
		Description:     req.Description,
		TransactionDate: txDate,
		Entries:         entries,
		CreatedBy:       userID,
	})
}

// systemAccount resolves a chart account the postings depend on. A missing
// chart account means the registry was never seeded.
func (s *ledgerPostingService) systemAccount(ctx context.Context, code string) (*domain.Account, error) {
	acc, err := s.accounts.GetAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: system account %s does not exist", apperrors.ErrReferentialIntegrity, code)
		}
		return nil, err
	}
	return acc, nil
}

// postTwoLegs posts DR debitAcc / CR creditAcc for amount.
func (s *ledgerPostingService) postTwoLegs(ctx context.Context, refType domain.ReferenceType, refID string, date time.Time, description string, debitAcc, creditAcc *domain.Account, amount decimal.Decimal) (*domain.PostingResult, error) {
	return s.PostJournalBatch(ctx, domain.PostBatchRequest{
		ReferenceType:   refType,
		ReferenceID:     &refID,
		Description:     description,
		TransactionDate: date,
		Entries: []domain.LedgerEntry{
			{AccountID: debitAcc.AccountID, Debit: amount, Credit: decimal.Zero, Narration: description},
			{AccountID: creditAcc.AccountID, Debit: decimal.Zero, Credit: amount, Narration: description},
		},
	})
}

// PostInvoice posts DR customer receivable / CR sales revenue for the order total.
func (s *ledgerPostingService) PostInvoice(ctx context.Context, order domain.Order) (*domain.PostingResult, error) {
	if !order.Total.IsPositive() {
		s.LogDebug(ctx, "Invoice has no value, skipping", slog.String("order_id", order.OrderID))
		return skipped(domain.SkipZeroAmount), nil
	}
	receivable, err := s.accounts.GetOrCreateCustomerReceivable(ctx, order.CustomerPartyID(), order.CustomerName)
	if err != nil {
		return nil, err
	}
	sales, err := s.systemAccount(ctx, domain.CodeSalesRevenue)
	if err != nil {
		return nil, err
	}
	return s.postTwoLegs(ctx, domain.RefInvoice, order.OrderID, order.OrderDate,
		fmt.Sprintf("Invoice %s - %s", order.OrderNumber, order.CustomerName),
		receivable, sales, order.Total)
}

// PostInvoiceCash posts DR cash / CR customer receivable for what was collected
// when the order was created.
func (s *ledgerPostingService) PostInvoiceCash(ctx context.Context, order domain.Order) (*domain.PostingResult, error) {
	if !order.PaidAmount.IsPositive() {
		return skipped(domain.SkipNothingCollected), nil
	}
	cash, err := s.systemAccount(ctx, domain.CodeCash)
	if err != nil {
		return nil, err
	}
	receivable, err := s.accounts.GetOrCreateCustomerReceivable(ctx, order.CustomerPartyID(), order.CustomerName)
	if err != nil {
		return nil, err
	}
	return s.postTwoLegs(ctx, domain.RefInvoiceCash, order.OrderID, order.OrderDate,
		fmt.Sprintf("Cash collected on invoice %s", order.OrderNumber),
		cash, receivable, order.PaidAmount)
}

// PostPayment posts DR cash / CR customer receivable. Only customer payments go
// through this path.
func (s *ledgerPostingService) PostPayment(ctx context.Context, payment domain.Payment) (*domain.PostingResult, error) {
	if payment.PartyType != domain.PartyCustomer {
		return skipped(domain.SkipNotCustomer), nil
	}
	if !payment.Amount.IsPositive() {
		return skipped(domain.SkipZeroAmount), nil
	}
	if payment.PartyID == nil || *payment.PartyID == "" {
		s.LogWarn(ctx, "Customer payment without party, skipping", slog.String("payment_id", payment.PaymentID))
		return skipped(domain.SkipMissingParty), nil
	}
	cash, err := s.systemAccount(ctx, domain.CodeCash)
	if err != nil {
		return nil, err
	}
	receivable, err := s.accounts.GetOrCreateCustomerReceivable(ctx, *payment.PartyID, payment.PartyName)
	if err != nil {
		return nil, err
	}
	return s.postTwoLegs(ctx, domain.RefPayment, payment.PaymentID, payment.PaymentDate,
		fmt.Sprintf("Payment %s from %s", payment.PaymentNumber, payment.PartyName),
		cash, receivable, payment.Amount)
}

// PostSupplierPayment posts DR supplier payable / CR cash.
func (s *ledgerPostingService) PostSupplierPayment(ctx context.Context, payment domain.Payment) (*domain.PostingResult, error) {
	if payment.PartyType != domain.PartySupplier {
		return skipped(domain.SkipPartyMismatch), nil
	}
	if !payment.Amount.IsPositive() {
		return skipped(domain.SkipZeroAmount), nil
	}
	if payment.PartyID == nil || *payment.PartyID == "" {
		s.LogWarn(ctx, "Supplier payment without party, skipping", slog.String("payment_id", payment.PaymentID))
		return skipped(domain.SkipMissingParty), nil
	}
	payable, err := s.accounts.GetOrCreateSupplierPayable(ctx, *payment.PartyID, payment.PartyName)
	if err != nil {
		return nil, err
	}
	cash, err := s.systemAccount(ctx, domain.CodeCash)
	if err != nil {
		return nil, err
	}
	return s.postTwoLegs(ctx, domain.RefPayment, payment.PaymentID, payment.PaymentDate,
		fmt.Sprintf("Payment %s to %s", payment.PaymentNumber, payment.PartyName),
		payable, cash, payment.Amount)
}

// PostExpensePayment posts DR operating expenses / CR cash.
func (s *ledgerPostingService) PostExpensePayment(ctx context.Context, payment domain.Payment) (*domain.PostingResult, error) {
	if payment.PartyType != domain.PartyExpense {
		return skipped(domain.SkipPartyMismatch), nil
	}
	if !payment.Amount.IsPositive() {
		return skipped(domain.SkipZeroAmount), nil
	}
	expenses, err := s.systemAccount(ctx, domain.CodeOperatingExpenses)
	if err != nil {
		return nil, err
	}
	cash, err := s.systemAccount(ctx, domain.CodeCash)
	if err != nil {
		return nil, err
	}
	return s.postTwoLegs(ctx, domain.RefExpense, payment.PaymentID, payment.PaymentDate,
		fmt.Sprintf("Expense %s - %s", payment.PaymentNumber, payment.PartyName),
		expenses, cash, payment.Amount)
}

// PostPurchase posts DR purchase expenses / CR supplier payable for a bill.
func (s *ledgerPostingService) PostPurchase(ctx context.Context, bill domain.PurchaseBill) (*domain.PostingResult, error) {
	if !bill.Total.IsPositive() {
		return skipped(domain.SkipZeroAmount), nil
	}
	purchases, err := s.systemAccount(ctx, domain.CodePurchaseExpenses)
	if err != nil {
		return nil, err
	}
	payable, err := s.accounts.GetOrCreateSupplierPayable(ctx, bill.SupplierID, bill.SupplierName)
	if err != nil {
		return nil, err
	}
	return s.postTwoLegs(ctx, domain.RefPurchase, bill.BillID, bill.BillDate,
		fmt.Sprintf("Purchase bill %s from %s", bill.BillNumber, bill.SupplierName),
		purchases, payable, bill.Total)
}

// PostPaymentToggle moves amount between cash and the customer receivable when
// an order is marked paid (toPaid) or unpaid by hand.
func (s *ledgerPostingService) PostPaymentToggle(ctx context.Context, order domain.Order, amount decimal.Decimal, toPaid bool) (*domain.PostingResult, error) {
	if !amount.IsPositive() {
		return skipped(domain.SkipZeroAmount), nil
	}
	cash, err := s.systemAccount(ctx, domain.CodeCash)
	if err != nil {
		return nil, err
	}
	receivable, err := s.accounts.GetOrCreateCustomerReceivable(ctx, order.CustomerPartyID(), order.CustomerName)
	if err != nil {
		return nil, err
	}
	if toPaid {
		return s.postTwoLegs(ctx, domain.RefPaymentToggle, order.OrderID, time.Now().UTC(),
			fmt.Sprintf("Order %s marked paid", order.OrderNumber), cash, receivable, amount)
	}
	return s.postTwoLegs(ctx, domain.RefPaymentToggle, order.OrderID, time.Now().UTC(),
		fmt.Sprintf("Order %s marked unpaid", order.OrderNumber), receivable, cash, amount)
}

// ReverseReference writes one REVERSAL batch for every batch of referenceID that
// has not been reversed yet. It is a no-op once everything is reversed.
func (s *ledgerPostingService) ReverseReference(ctx context.Context, referenceID string, description string) ([]domain.PostingResult, error) {
	var results []domain.PostingResult
	err := s.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		originals, err := s.journalRepo.FindUnreversedBatchesByReference(txCtx, referenceID)
		if err != nil {
			return err
		}
		if len(originals) == 0 {
			s.LogInfo(txCtx, "Nothing to reverse for reference", slog.String("reference_id", referenceID))
			results = []domain.PostingResult{*skipped(domain.SkipNothingToReverse)}
			return nil
		}
		for _, original := range originals {
			res, err := s.reverse(txCtx, original, domain.RefReversal, referenceID, description, "")
			if err != nil {
				return err
			}
			results = append(results, *res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ReverseBatch cancels one batch with an ADJUSTMENT batch of swapped legs.
func (s *ledgerPostingService) ReverseBatch(ctx context.Context, batchID string, userID string) (*domain.PostingResult, error) {
	var result *domain.PostingResult
	err := s.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		original, err := s.journalRepo.FindBatchByID(txCtx, batchID)
		if err != nil {
			return err
		}
		if original.IsReversed {
			return fmt.Errorf("%w: batch %s is already reversed", apperrors.ErrConflict, original.BatchNumber)
		}
		if original.ReversesBatchID != nil {
			return fmt.Errorf("%w: batch %s is itself a reversal", apperrors.ErrConflict, original.BatchNumber)
		}
		result, err = s.reverse(txCtx, *original, domain.RefAdjustment, original.BatchID, "", userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ledgerPostingService) reverse(ctx context.Context, original domain.JournalBatch, refType domain.ReferenceType, refID, description, userID string) (*domain.PostingResult, error) {
	entries, err := s.journalRepo.FindEntriesByBatchID(ctx, original.BatchID)
	if err != nil {
		return nil, err
	}
	if description == "" {
		description = "Reversal of " + original.BatchNumber
	} else {
		description = fmt.Sprintf("%s (reverses %s)", description, original.BatchNumber)
	}
	originalID := original.BatchID
	return s.PostJournalBatch(ctx, domain.PostBatchRequest{
		ReferenceType:   refType,
		ReferenceID:     &refID,
		ReversesBatchID: &originalID,
		Description:     description,
		TransactionDate: time.Now().UTC(),
		Entries:         accounting.ReverseEntries(entries),
		CreatedBy:       userID,
	})
}

// GetBatch returns a batch with its entries.
func (s *ledgerPostingService) GetBatch(ctx context.Context, batchID string) (*domain.JournalBatch, []domain.LedgerEntry, error) {
	batch, err := s.journalRepo.FindBatchByID(ctx, batchID)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.journalRepo.FindEntriesByBatchID(ctx, batchID)
	if err != nil {
		return nil, nil, err
	}
	return batch, entries, nil
}

// ListBatches returns a page of batches matching params.
func (s *ledgerPostingService) ListBatches(ctx context.Context, params dto.ListBatchesParams) (*dto.ListBatchesResponse, error) {
	var filter domain.BatchFilter
	if params.ReferenceType != "" {
		rt := domain.ReferenceType(params.ReferenceType)
		if !rt.IsKnown() {
			return nil, fmt.Errorf("%w: unknown reference type %q", apperrors.ErrValidation, params.ReferenceType)
		}
		filter.ReferenceType = &rt
	}
	if params.ReferenceID != "" {
		refID := params.ReferenceID
		filter.ReferenceID = &refID
	}
	if params.From != "" {
		from, err := businessDate(params.From, time.Time{})
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if params.To != "" {
		to, err := businessDate(params.To, time.Time{})
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("%w: to must not be before from", apperrors.ErrValidation)
	}

	batches, next, err := s.journalRepo.ListBatches(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return dto.ToListBatchesResponse(batches, next), nil
}
