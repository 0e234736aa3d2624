package pgsql

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/retail_ledger/internal/models"
	"github.com/SscSPs/retail_ledger/internal/utils/mapping"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var accountColumns = []string{
	"account_id", "code", "name", "account_type", "normal_balance",
	"parent_code", "party_id", "is_system", "is_active", "created_at",
}

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(txm *TxManager) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{txm: txm}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) findOne(ctx context.Context, where squirrel.Eq, what string) (*domain.Account, error) {
	sql, args, err := r.Builder().Select(accountColumns...).From("accounts").Where(where).ToSql()
	if err != nil {
		return nil, mapPgError(err, "build account query")
	}
	var m models.Account
	if err := pgxscan.Get(ctx, r.Querier(ctx), &m, sql, args...); err != nil {
		return nil, mapPgError(err, what)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountByCode retrieves an account by its code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return r.findOne(ctx, squirrel.Eq{"code": code}, "find account by code "+code)
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return r.findOne(ctx, squirrel.Eq{"account_id": accountID}, "find account by id "+accountID)
}

// ListAccounts lists accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	q := r.Builder().Select(accountColumns...).From("accounts").OrderBy("code")
	if accountType != nil {
		q = q.Where(squirrel.Eq{"account_type": string(*accountType)})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, mapPgError(err, "build list accounts")
	}
	var rows []models.Account
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, mapPgError(err, "list accounts")
	}
	return mapping.ToDomainAccounts(rows), nil
}

// UpsertAccount inserts the account. On a code conflict the no-op update makes
// RETURNING yield the existing row, so concurrent creators all see one account.
func (r *PgxAccountRepository) UpsertAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, code, name, account_type, normal_balance, parent_code, party_id, is_system, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (code) DO UPDATE SET code = EXCLUDED.code
		RETURNING account_id, code, name, account_type, normal_balance, parent_code, party_id, is_system, is_active, created_at
	`
	var stored models.Account
	err := pgxscan.Get(ctx, r.Querier(ctx), &stored, query,
		m.AccountID, m.Code, m.Name, m.AccountType, m.NormalBalance,
		m.ParentCode, m.PartyID, m.IsSystem, m.IsActive, m.CreatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "upsert account "+m.Code)
	}
	acc := mapping.ToDomainAccount(stored)
	return &acc, nil
}
