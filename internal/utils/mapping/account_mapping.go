package mapping

import (
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	"github.com/SscSPs/retail_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.AccountID,
		Code:          d.Code,
		Name:          d.Name,
		AccountType:   string(d.AccountType),
		NormalBalance: string(d.NormalBalance),
		ParentCode:    d.ParentCode,
		PartyID:       d.PartyID,
		IsSystem:      d.IsSystem,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		Code:          m.Code,
		Name:          m.Name,
		AccountType:   domain.AccountType(m.AccountType),
		NormalBalance: domain.NormalBalance(m.NormalBalance),
		ParentCode:    m.ParentCode,
		PartyID:       m.PartyID,
		IsSystem:      m.IsSystem,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainAccounts converts a slice of model Accounts
func ToDomainAccounts(ms []models.Account) []domain.Account {
	out := make([]domain.Account, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAccount(m)
	}
	return out
}
