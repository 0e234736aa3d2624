package accounting

import (
	"errors"
	"fmt"

	"github.com/SscSPs/retail_ledger/internal/apperrors"
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MinorUnitPlaces is the precision at which debit and credit sums are compared.
const MinorUnitPlaces = 2

// Classified validation errors. Each is also wrapped with apperrors.ErrValidation.
var (
	ErrTooFewEntries   = errors.New("journal batch must have at least 2 entries")
	ErrNegativeAmount  = errors.New("ledger entry amounts cannot be negative")
	ErrNoMonetaryValue = errors.New("journal batch has no monetary value")
	ErrUnbalanced      = errors.New("journal batch does not balance")
)

// BatchTotals are the debit and credit sums of a valid batch, rounded to minor units.
type BatchTotals struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// ValidateBatchEntries checks a candidate batch. Rules are applied in a fixed
// order and the first failing rule is reported:
//  1. at least two entries
//  2. no negative debit or credit
//  3. at least one non-zero leg
//  4. debits equal credits at minor-unit precision
func ValidateBatchEntries(entries []domain.LedgerEntry) (BatchTotals, error) {
	if len(entries) < 2 {
		return BatchTotals{}, fmt.Errorf("%w: %w, got %d", apperrors.ErrValidation, ErrTooFewEntries, len(entries))
	}

	for i, e := range entries {
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return BatchTotals{}, fmt.Errorf("%w: %w (entry %d for account %s)", apperrors.ErrValidation, ErrNegativeAmount, i+1, e.AccountID)
		}
	}

	hasValue := false
	for _, e := range entries {
		if e.Debit.IsPositive() || e.Credit.IsPositive() {
			hasValue = true
			break
		}
	}
	if !hasValue {
		return BatchTotals{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNoMonetaryValue)
	}

	debit, credit := decimal.Zero, decimal.Zero
	for _, e := range entries {
		debit = debit.Add(e.Debit)
		credit = credit.Add(e.Credit)
	}
	debit = debit.Round(MinorUnitPlaces)
	credit = credit.Round(MinorUnitPlaces)
	if !debit.Equal(credit) {
		return BatchTotals{}, fmt.Errorf("%w: %w: debit %s, credit %s, difference %s",
			apperrors.ErrValidation, ErrUnbalanced,
			debit.StringFixed(MinorUnitPlaces), credit.StringFixed(MinorUnitPlaces),
			debit.Sub(credit).Abs().StringFixed(MinorUnitPlaces))
	}

	return BatchTotals{Debit: debit, Credit: credit}, nil
}

// SignedBalance expresses debit and credit totals on the account's normal side:
// debits minus credits for debit-normal accounts, the reverse otherwise.
func SignedBalance(normal domain.NormalBalance, debits, credits decimal.Decimal) decimal.Decimal {
	if normal == domain.DebitNormal {
		return debits.Sub(credits)
	}
	return credits.Sub(debits)
}

// IsWithinTolerance reports whether |a - b| < tolerance.
func IsWithinTolerance(a, b, tolerance decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(tolerance)
}

// ReverseEntries swaps debit and credit of every entry, keeping accounts and
// narration, so that posting the result cancels the original batch.
func ReverseEntries(entries []domain.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(entries))
	for i, e := range entries {
		out[i] = domain.LedgerEntry{
			AccountID: e.AccountID,
			Debit:     e.Credit,
			Credit:    e.Debit,
			Narration: "Reversal: " + e.Narration,
		}
	}
	return out
}
