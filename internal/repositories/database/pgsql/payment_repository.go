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

var paymentColumns = []string{
	"payment_id", "payment_number", "party_type", "party_id", "party_name", "amount",
	"payment_date", "reference_type", "reference_id", "notes", "is_deleted", "created_at",
}

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(txm *TxManager) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{txm: txm}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// FindPaymentByID retrieves a non-deleted payment.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	sql, args, err := r.Builder().Select(paymentColumns...).From("payments").
		Where(squirrel.Eq{"payment_id": paymentID, "is_deleted": false}).ToSql()
	if err != nil {
		return nil, mapPgError(err, "build find payment")
	}
	var m models.Payment
	if err := pgxscan.Get(ctx, r.Querier(ctx), &m, sql, args...); err != nil {
		return nil, mapPgError(err, "find payment "+paymentID)
	}
	p := mapping.ToDomainPayment(m)
	return &p, nil
}

// ListPaymentsByDate lists the non-deleted payments of one business date.
func (r *PgxPaymentRepository) ListPaymentsByDate(ctx context.Context, date time.Time) ([]domain.Payment, error) {
	sql, args, err := r.Builder().Select(paymentColumns...).From("payments").
		Where(squirrel.Eq{"payment_date": domain.TruncateToDate(date), "is_deleted": false}).
		OrderBy("created_at", "payment_id").ToSql()
	if err != nil {
		return nil, mapPgError(err, "build list payments")
	}
	var rows []models.Payment
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, mapPgError(err, "list payments by date")
	}
	return mapping.ToDomainPayments(rows), nil
}

func (r *PgxPaymentRepository) listApplications(ctx context.Context, where squirrel.Sqlizer, what string) ([]domain.PaymentApplication, error) {
	sql, args, err := r.Builder().
		Select("pa.payment_id", "pa.order_id", "pa.amount", "pa.created_at").
		From("payment_applications pa").
		Join("payments p ON p.payment_id = pa.payment_id").
		Where(where).
		Where(squirrel.Eq{"p.is_deleted": false}).
		OrderBy("pa.created_at").ToSql()
	if err != nil {
		return nil, mapPgError(err, "build "+what)
	}
	var rows []models.PaymentApplication
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, mapPgError(err, what)
	}
	return mapping.ToDomainPaymentApplications(rows), nil
}

// ListApplicationsByPayment lists where a payment was applied.
func (r *PgxPaymentRepository) ListApplicationsByPayment(ctx context.Context, paymentID string) ([]domain.PaymentApplication, error) {
	return r.listApplications(ctx, squirrel.Eq{"pa.payment_id": paymentID}, "list applications of payment "+paymentID)
}

// ListApplicationsToOrders lists the applications made to any of orderIDs.
func (r *PgxPaymentRepository) ListApplicationsToOrders(ctx context.Context, orderIDs []string) ([]domain.PaymentApplication, error) {
	if len(orderIDs) == 0 {
		return []domain.PaymentApplication{}, nil
	}
	return r.listApplications(ctx, squirrel.Eq{"pa.order_id": orderIDs}, "list applications to orders")
}

// InsertPayment stores a new payment.
func (r *PgxPaymentRepository) InsertPayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	sql, args, err := r.Builder().Insert("payments").Columns(paymentColumns...).Values(
		m.PaymentID, m.PaymentNumber, m.PartyType, m.PartyID, m.PartyName, m.Amount,
		m.PaymentDate, m.ReferenceType, m.ReferenceID, m.Notes, m.IsDeleted, m.CreatedAt,
	).ToSql()
	if err != nil {
		return mapPgError(err, "build insert payment")
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return mapPgError(err, "insert payment "+m.PaymentNumber)
	}
	return nil
}

// SoftDeletePayment flags a payment as deleted.
func (r *PgxPaymentRepository) SoftDeletePayment(ctx context.Context, paymentID string, at time.Time) error {
	sql, args, err := r.Builder().Update("payments").
		Set("is_deleted", true).
		Set("deleted_at", at).
		Where(squirrel.Eq{"payment_id": paymentID, "is_deleted": false}).ToSql()
	if err != nil {
		return mapPgError(err, "build delete payment")
	}
	tag, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return mapPgError(err, "delete payment "+paymentID)
	}
	if tag.RowsAffected() == 0 {
		return notFound("payment " + paymentID)
	}
	return nil
}

// InsertApplication records an application once per (payment, order).
func (r *PgxPaymentRepository) InsertApplication(ctx context.Context, app domain.PaymentApplication) (bool, error) {
	query := `
		INSERT INTO payment_applications (payment_id, order_id, amount, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (payment_id, order_id) DO NOTHING
	`
	tag, err := r.Querier(ctx).Exec(ctx, query, app.PaymentID, app.OrderID, app.Amount, app.CreatedAt)
	if err != nil {
		return false, mapPgError(err, "insert payment application")
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteApplication removes an application.
func (r *PgxPaymentRepository) DeleteApplication(ctx context.Context, paymentID, orderID string) (bool, error) {
	sql, args, err := r.Builder().Delete("payment_applications").
		Where(squirrel.Eq{"payment_id": paymentID, "order_id": orderID}).ToSql()
	if err != nil {
		return false, mapPgError(err, "build delete application")
	}
	tag, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, mapPgError(err, "delete payment application")
	}
	return tag.RowsAffected() == 1, nil
}
