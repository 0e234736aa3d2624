package dto

import (
	"time"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	AccountType string `form:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

// AccountBalanceParams defines query parameters for an account balance.
type AccountBalanceParams struct {
	AsOf string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string    `json:"accountID"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	AccountType   string    `json:"accountType"`
	NormalBalance string    `json:"normalBalance"`
	ParentCode    *string   `json:"parentCode,omitempty"`
	PartyID       *string   `json:"partyID,omitempty"`
	IsSystem      bool      `json:"isSystem"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AccountBalanceResponse defines the data returned for an account balance.
type AccountBalanceResponse struct {
	Account     AccountResponse `json:"account"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
	AsOf        *string         `json:"asOf,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     a.AccountID,
		Code:          a.Code,
		Name:          a.Name,
		AccountType:   string(a.AccountType),
		NormalBalance: string(a.NormalBalance),
		ParentCode:    a.ParentCode,
		PartyID:       a.PartyID,
		IsSystem:      a.IsSystem,
		CreatedAt:     a.CreatedAt,
	}
}

// ToListAccountsResponse converts a slice of accounts.
func ToListAccountsResponse(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}

// ToAccountBalanceResponse converts a domain.AccountBalance.
func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	resp := AccountBalanceResponse{
		Account:     ToAccountResponse(&b.Account),
		TotalDebit:  b.TotalDebit,
		TotalCredit: b.TotalCredit,
		Balance:     b.Balance,
	}
	if b.AsOf != nil {
		s := b.AsOf.Format(domain.DateLayout)
		resp.AsOf = &s
	}
	return resp
}
