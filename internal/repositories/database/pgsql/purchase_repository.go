package pgsql

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/retail_ledger/internal/models"
	"github.com/SscSPs/retail_ledger/internal/utils/mapping"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var purchaseColumns = []string{
	"bill_id", "bill_number", "supplier_id", "supplier_name", "bill_date", "total", "is_deleted", "created_at",
}

type PgxPurchaseRepository struct {
	BaseRepository
}

func newPgxPurchaseRepository(txm *TxManager) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{txm: txm}}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

func (r *PgxPurchaseRepository) InsertPurchaseBill(ctx context.Context, bill domain.PurchaseBill) error {
	sql, args, err := r.Builder().Insert("purchase_bills").Columns(purchaseColumns...).Values(
		bill.BillID, bill.BillNumber, bill.SupplierID, bill.SupplierName,
		domain.TruncateToDate(bill.BillDate), bill.Total, bill.IsDeleted, bill.CreatedAt,
	).ToSql()
	if err != nil {
		return mapPgError(err, "build insert purchase bill")
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return mapPgError(err, "insert purchase bill "+bill.BillNumber)
	}
	return nil
}

func (r *PgxPurchaseRepository) FindPurchaseBillByID(ctx context.Context, billID string) (*domain.PurchaseBill, error) {
	sql, args, err := r.Builder().Select(purchaseColumns...).From("purchase_bills").
		Where(squirrel.Eq{"bill_id": billID, "is_deleted": false}).ToSql()
	if err != nil {
		return nil, mapPgError(err, "build find purchase bill")
	}
	var m models.PurchaseBill
	if err := pgxscan.Get(ctx, r.Querier(ctx), &m, sql, args...); err != nil {
		return nil, mapPgError(err, "find purchase bill "+billID)
	}
	b := mapping.ToDomainPurchaseBill(m)
	return &b, nil
}

func (r *PgxPurchaseRepository) SoftDeletePurchaseBill(ctx context.Context, billID string, at time.Time) error {
	sql, args, err := r.Builder().Update("purchase_bills").
		Set("is_deleted", true).
		Set("deleted_at", at).
		Where(squirrel.Eq{"bill_id": billID, "is_deleted": false}).ToSql()
	if err != nil {
		return mapPgError(err, "build delete purchase bill")
	}
	tag, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return mapPgError(err, "delete purchase bill "+billID)
	}
	if tag.RowsAffected() == 0 {
		return notFound("purchase bill " + billID)
	}
	return nil
}
