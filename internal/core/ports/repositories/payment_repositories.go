package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
)

// PaymentReader defines read operations for payments and their applications.
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByDate returns the non-deleted payments dated date.
	ListPaymentsByDate(ctx context.Context, date time.Time) ([]domain.Payment, error)

	ListApplicationsByPayment(ctx context.Context, paymentID string) ([]domain.PaymentApplication, error)

	// ListApplicationsToOrders returns every application whose order is in orderIDs.
	ListApplicationsToOrders(ctx context.Context, orderIDs []string) ([]domain.PaymentApplication, error)
}

// PaymentWriter defines write operations for payments and their applications.
type PaymentWriter interface {
	InsertPayment(ctx context.Context, payment domain.Payment) error
	SoftDeletePayment(ctx context.Context, paymentID string, at time.Time) error

	// InsertApplication records an application and reports whether it was new.
	// A second call for the same (payment, order) is a no-op returning false.
	InsertApplication(ctx context.Context, app domain.PaymentApplication) (bool, error)

	// DeleteApplication removes an application and reports whether one existed.
	DeleteApplication(ctx context.Context, paymentID, orderID string) (bool, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PurchaseRepositoryFacade defines storage for supplier bills.
type PurchaseRepositoryFacade interface {
	InsertPurchaseBill(ctx context.Context, bill domain.PurchaseBill) error
	FindPurchaseBillByID(ctx context.Context, billID string) (*domain.PurchaseBill, error)
	SoftDeletePurchaseBill(ctx context.Context, billID string, at time.Time) error
}
