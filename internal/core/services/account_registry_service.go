package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/retail_ledger/internal/apperrors"
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_ledger/internal/core/ports/services"
	"github.com/google/uuid"
)

// accountRegistryService resolves chart accounts and creates party sub-accounts
// on first use. Creation relies on the unique code column, never on an
// in-process lock, so any number of server instances may race safely.
type accountRegistryService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountRegistryService creates the chart-of-accounts registry.
func NewAccountRegistryService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountRegistrySvc {
	return &accountRegistryService{accountRepo: repo}
}

var _ portssvc.AccountRegistrySvc = (*accountRegistryService)(nil)

// InitializeStaticData upserts the standard chart. Running it again is a no-op.
func (s *accountRegistryService) InitializeStaticData(ctx context.Context) error {
	now := time.Now().UTC()
	for _, entry := range domain.StandardChart {
		acc := domain.Account{
			AccountID:     uuid.NewString(),
			Code:          entry.Code,
			Name:          entry.Name,
			AccountType:   entry.Type,
			NormalBalance: domain.NormalBalanceFor(entry.Type),
			IsSystem:      true,
			IsActive:      true,
			CreatedAt:     now,
		}
		if entry.ParentCode != "" {
			parent := entry.ParentCode
			acc.ParentCode = &parent
		}
		if _, err := s.accountRepo.UpsertAccount(ctx, acc); err != nil {
			s.LogError(ctx, err, "Failed to seed chart account", slog.String("code", entry.Code))
			return fmt.Errorf("seed account %s: %w", entry.Code, err)
		}
	}
	s.LogInfo(ctx, "Chart of accounts ensured", slog.Int("accounts", len(domain.StandardChart)))
	return nil
}

func (s *accountRegistryService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	acc, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("code", code))
		}
		return nil, err
	}
	return acc, nil
}

func (s *accountRegistryService) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, accountType)
}

// GetOrCreateCustomerReceivable returns the receivable sub-account 1300-<customerID>.
func (s *accountRegistryService) GetOrCreateCustomerReceivable(ctx context.Context, customerID string, customerName string) (*domain.Account, error) {
	return s.getOrCreatePartyAccount(ctx, domain.CodeReceivable, domain.Asset, "Receivable", customerID, customerName)
}

// GetOrCreateSupplierPayable returns the payable sub-account 2100-<supplierID>.
func (s *accountRegistryService) GetOrCreateSupplierPayable(ctx context.Context, supplierID string, supplierName string) (*domain.Account, error) {
	return s.getOrCreatePartyAccount(ctx, domain.CodePayable, domain.Liability, "Payable", supplierID, supplierName)
}

func (s *accountRegistryService) getOrCreatePartyAccount(ctx context.Context, parentCode string, accType domain.AccountType, label, partyID, partyName string) (*domain.Account, error) {
	partyID = strings.TrimSpace(partyID)
	if partyID == "" {
		return nil, fmt.Errorf("%w: party id is required for a %s sub-account", apperrors.ErrValidation, strings.ToLower(label))
	}
	if len(partyID) > domain.MaxPartyIDLength {
		return nil, fmt.Errorf("%w: party id %q is longer than %d characters", apperrors.ErrValidation, partyID, domain.MaxPartyIDLength)
	}
	code := domain.SubAccountCode(parentCode, partyID)

	acc, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up party account", slog.String("code", code))
		return nil, err
	}

	name := strings.TrimSpace(partyName)
	if name == "" {
		name = partyID
	}
	parent := parentCode
	party := partyID
	created, err := s.accountRepo.UpsertAccount(ctx, domain.Account{
		AccountID:     uuid.NewString(),
		Code:          code,
		Name:          fmt.Sprintf("%s - %s", label, name),
		AccountType:   accType,
		NormalBalance: domain.NormalBalanceFor(accType),
		ParentCode:    &parent,
		PartyID:       &party,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create party account", slog.String("code", code))
		return nil, err
	}
	s.LogInfo(ctx, "Party account ready", slog.String("code", created.Code), slog.String("account_id", created.AccountID))
	return created, nil
}
