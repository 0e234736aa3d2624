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

var orderColumns = []string{
	"order_id", "order_number", "customer_id", "customer_name", "order_date", "total",
	"paid_amount", "due_amount", "payment_status", "is_deleted", "created_at", "updated_at",
}

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(txm *TxManager) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository: BaseRepository{txm: txm}}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

func (r *PgxOrderRepository) getOne(ctx context.Context, q squirrel.SelectBuilder, what string) (*domain.Order, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, mapPgError(err, "build "+what)
	}
	var m models.Order
	if err := pgxscan.Get(ctx, r.Querier(ctx), &m, sql, args...); err != nil {
		return nil, mapPgError(err, what)
	}
	o := mapping.ToDomainOrder(m)
	return &o, nil
}

func (r *PgxOrderRepository) list(ctx context.Context, q squirrel.SelectBuilder, what string) ([]domain.Order, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, mapPgError(err, "build "+what)
	}
	var rows []models.Order
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, mapPgError(err, what)
	}
	return mapping.ToDomainOrders(rows), nil
}

// FindOrderByID retrieves a non-deleted order.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	q := r.Builder().Select(orderColumns...).From("orders").
		Where(squirrel.Eq{"order_id": orderID, "is_deleted": false})
	return r.getOne(ctx, q, "find order "+orderID)
}

// FindOrderByIDForUpdate retrieves a non-deleted order and locks its row.
func (r *PgxOrderRepository) FindOrderByIDForUpdate(ctx context.Context, orderID string) (*domain.Order, error) {
	q := r.Builder().Select(orderColumns...).From("orders").
		Where(squirrel.Eq{"order_id": orderID, "is_deleted": false}).
		Suffix("FOR UPDATE")
	return r.getOne(ctx, q, "lock order "+orderID)
}

// ListOrdersByDate lists the non-deleted orders of one business date.
func (r *PgxOrderRepository) ListOrdersByDate(ctx context.Context, date time.Time) ([]domain.Order, error) {
	q := r.Builder().Select(orderColumns...).From("orders").
		Where(squirrel.Eq{"order_date": domain.TruncateToDate(date), "is_deleted": false}).
		OrderBy("created_at", "order_id")
	return r.list(ctx, q, "list orders by date")
}

// ListOpenOrdersByCustomer lists and locks the customer's orders that still have a due amount.
func (r *PgxOrderRepository) ListOpenOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	q := r.Builder().Select(orderColumns...).From("orders").
		Where(squirrel.Eq{"customer_id": customerID, "is_deleted": false}).
		Where(squirrel.Gt{"due_amount": 0}).
		OrderBy("order_date", "created_at", "order_id").
		Suffix("FOR UPDATE")
	return r.list(ctx, q, "list open orders of customer "+customerID)
}

// InsertOrder stores a new order.
func (r *PgxOrderRepository) InsertOrder(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)
	sql, args, err := r.Builder().Insert("orders").Columns(orderColumns...).Values(
		m.OrderID, m.OrderNumber, m.CustomerID, m.CustomerName, m.OrderDate, m.Total,
		m.PaidAmount, m.DueAmount, m.PaymentStatus, m.IsDeleted, m.CreatedAt, m.UpdatedAt,
	).ToSql()
	if err != nil {
		return mapPgError(err, "build insert order")
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return mapPgError(err, "insert order "+m.OrderNumber)
	}
	return nil
}

// UpdateOrderPayment persists the payment fields of an order.
func (r *PgxOrderRepository) UpdateOrderPayment(ctx context.Context, order domain.Order) error {
	sql, args, err := r.Builder().Update("orders").
		Set("paid_amount", order.PaidAmount).
		Set("due_amount", order.DueAmount).
		Set("payment_status", string(order.PaymentStatus)).
		Set("updated_at", order.UpdatedAt).
		Where(squirrel.Eq{"order_id": order.OrderID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return mapPgError(err, "build update order payment")
	}
	tag, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return mapPgError(err, "update order payment "+order.OrderID)
	}
	if tag.RowsAffected() == 0 {
		return notFound("order " + order.OrderID)
	}
	return nil
}

// SoftDeleteOrder flags an order as deleted.
func (r *PgxOrderRepository) SoftDeleteOrder(ctx context.Context, orderID string, at time.Time) error {
	sql, args, err := r.Builder().Update("orders").
		Set("is_deleted", true).
		Set("updated_at", at).
		Where(squirrel.Eq{"order_id": orderID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return mapPgError(err, "build delete order")
	}
	tag, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return mapPgError(err, "delete order "+orderID)
	}
	if tag.RowsAffected() == 0 {
		return notFound("order " + orderID)
	}
	return nil
}
