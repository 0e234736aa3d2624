package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_ledger/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger/internal/utils/accounting"
)

type balanceService struct {
	BaseService
	balanceRepo portsrepo.BalanceReader
	accounts    portssvc.AccountReaderSvc
}

// NewBalanceService creates the balance aggregator.
func NewBalanceService(balanceRepo portsrepo.BalanceReader, accounts portssvc.AccountReaderSvc) portssvc.BalanceSvc {
	return &balanceService{balanceRepo: balanceRepo, accounts: accounts}
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

// HealthCheck sums every posted entry. An unbalanced ledger is reported, not
// treated as a failure of the call.
func (s *balanceService) HealthCheck(ctx context.Context) (*domain.LedgerHealth, error) {
	debits, credits, err := s.balanceRepo.SumAllEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum ledger entries")
		return nil, err
	}

	health := &domain.LedgerHealth{
		TotalDebits:  debits,
		TotalCredits: credits,
		Difference:   debits.Sub(credits),
		IsBalanced:   accounting.IsWithinTolerance(debits, credits, domain.BalanceTolerance),
		CheckedAt:    time.Now().UTC(),
	}
	if !health.IsBalanced {
		s.GetLogger(ctx).Error("Ledger is out of balance",
			slog.String("total_debits", debits.StringFixed(accounting.MinorUnitPlaces)),
			slog.String("total_credits", credits.StringFixed(accounting.MinorUnitPlaces)),
			slog.String("difference", health.Difference.StringFixed(accounting.MinorUnitPlaces)))
	}
	return health, nil
}

// GetAccountBalance returns the account's totals up to asOf (all time when nil).
func (s *balanceService) GetAccountBalance(ctx context.Context, code string, asOf *time.Time) (*domain.AccountBalance, error) {
	acc, err := s.accounts.GetAccountByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	var cutoff *time.Time
	if asOf != nil {
		d := domain.TruncateToDate(*asOf)
		cutoff = &d
	}

	debits, credits, err := s.balanceRepo.SumAccountEntries(ctx, acc.AccountID, cutoff)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum account entries", slog.String("account_code", code))
		return nil, err
	}

	return &domain.AccountBalance{
		Account:     *acc,
		TotalDebit:  debits,
		TotalCredit: credits,
		Balance:     accounting.SignedBalance(acc.NormalBalance, debits, credits),
		AsOf:        cutoff,
	}, nil
}
