package services

import (
	"context"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
)

// AccountReaderSvc defines read operations on the chart of accounts.
type AccountReaderSvc interface {
	// GetAccountByCode returns apperrors.ErrNotFound for an unknown code.
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error)
}

// PartyAccountSvc resolves per-party sub-accounts, creating them on first use.
type PartyAccountSvc interface {
	GetOrCreateCustomerReceivable(ctx context.Context, customerID string, customerName string) (*domain.Account, error)
	GetOrCreateSupplierPayable(ctx context.Context, supplierID string, supplierName string) (*domain.Account, error)
}

// AccountRegistrySvc combines all account registry interfaces.
type AccountRegistrySvc interface {
	AccountReaderSvc
	PartyAccountSvc
	StaticDataService
}
