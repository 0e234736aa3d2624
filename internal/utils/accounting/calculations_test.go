package accounting

import (
	"testing"

	"github.com/SscSPs/retail_ledger/internal/apperrors"
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leg(account string, debit, credit string) domain.LedgerEntry {
	return domain.LedgerEntry{
		AccountID: account,
		Debit:     decimal.RequireFromString(debit),
		Credit:    decimal.RequireFromString(credit),
	}
}

func TestValidateBatchEntries(t *testing.T) {
	tests := []struct {
		name        string
		entries     []domain.LedgerEntry
		wantErr     error
		wantMessage string
	}{
		{
			name:        "empty batch",
			entries:     nil,
			wantErr:     ErrTooFewEntries,
			wantMessage: "at least 2",
		},
		{
			name:        "single entry",
			entries:     []domain.LedgerEntry{leg("cash", "100", "0")},
			wantErr:     ErrTooFewEntries,
			wantMessage: "at least 2",
		},
		{
			name:        "negative amounts",
			entries:     []domain.LedgerEntry{leg("cash", "-100", "0"), leg("sales", "0", "-100")},
			wantErr:     ErrNegativeAmount,
			wantMessage: "negative",
		},
		{
			name:        "all zero",
			entries:     []domain.LedgerEntry{leg("cash", "0", "0"), leg("sales", "0", "0")},
			wantErr:     ErrNoMonetaryValue,
			wantMessage: "no monetary value",
		},
		{
			name:        "unbalanced",
			entries:     []domain.LedgerEntry{leg("cash", "100", "0"), leg("sales", "0", "50")},
			wantErr:     ErrUnbalanced,
			wantMessage: "balance",
		},
		{
			name:        "negative wins over zero-value check",
			entries:     []domain.LedgerEntry{leg("cash", "0", "0"), leg("sales", "-1", "0")},
			wantErr:     ErrNegativeAmount,
			wantMessage: "negative",
		},
		{
			name:        "sub-cent difference still unbalanced after rounding",
			entries:     []domain.LedgerEntry{leg("cash", "10.00", "0"), leg("sales", "0", "10.01")},
			wantErr:     ErrUnbalanced,
			wantMessage: "difference 0.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateBatchEntries(tt.entries)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestValidateBatchEntries_Balanced(t *testing.T) {
	totals, err := ValidateBatchEntries([]domain.LedgerEntry{leg("cash", "1000", "0"), leg("sales", "0", "1000")})
	require.NoError(t, err)
	assert.True(t, totals.Debit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, totals.Credit.Equal(decimal.NewFromInt(1000)))
}

func TestValidateBatchEntries_UnbalancedReportsBothSums(t *testing.T) {
	_, err := ValidateBatchEntries([]domain.LedgerEntry{leg("cash", "100", "0"), leg("sales", "0", "50")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debit 100.00")
	assert.Contains(t, err.Error(), "credit 50.00")
	assert.Contains(t, err.Error(), "difference 50.00")
}

func TestValidateBatchEntries_SubMinorUnitNoiseIsIgnored(t *testing.T) {
	totals, err := ValidateBatchEntries([]domain.LedgerEntry{
		leg("cash", "33.333", "0"),
		leg("cash", "33.333", "0"),
		leg("sales", "0", "66.67"),
	})
	require.NoError(t, err)
	assert.Equal(t, "66.67", totals.Debit.StringFixed(2))
}

func TestSignedBalance(t *testing.T) {
	d := decimal.NewFromInt(300)
	c := decimal.NewFromInt(120)
	assert.True(t, SignedBalance(domain.DebitNormal, d, c).Equal(decimal.NewFromInt(180)))
	assert.True(t, SignedBalance(domain.CreditNormal, d, c).Equal(decimal.NewFromInt(-180)))
}

func TestIsWithinTolerance(t *testing.T) {
	tol := decimal.RequireFromString("0.01")
	assert.True(t, IsWithinTolerance(decimal.RequireFromString("10.004"), decimal.NewFromInt(10), tol))
	assert.False(t, IsWithinTolerance(decimal.RequireFromString("10.01"), decimal.NewFromInt(10), tol))
}

func TestReverseEntries(t *testing.T) {
	orig := []domain.LedgerEntry{
		{AccountID: "cash", Debit: decimal.NewFromInt(40), Credit: decimal.Zero, Narration: "collected"},
		{AccountID: "recv", Debit: decimal.Zero, Credit: decimal.NewFromInt(40), Narration: "settled"},
	}
	rev := ReverseEntries(orig)
	require.Len(t, rev, 2)
	assert.Equal(t, "cash", rev[0].AccountID)
	assert.True(t, rev[0].Credit.Equal(decimal.NewFromInt(40)))
	assert.True(t, rev[0].Debit.IsZero())
	assert.Equal(t, "Reversal: settled", rev[1].Narration)

	_, err := ValidateBatchEntries(rev)
	assert.NoError(t, err)
}
