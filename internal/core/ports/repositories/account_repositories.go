package repositories

import (
	"context"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	// FindAccountByCode returns apperrors.ErrNotFound when the code is unknown.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// ListAccounts lists accounts ordered by code, optionally restricted to one type.
	ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts.
type AccountWriter interface {
	// UpsertAccount inserts the account or, when the code already exists, returns
	// the stored row untouched. Safe under concurrent first use.
	UpsertAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
