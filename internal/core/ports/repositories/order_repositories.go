package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
)

// OrderReader defines read operations for orders.
type OrderReader interface {
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// FindOrderByIDForUpdate locks the order row for the rest of the transaction.
	FindOrderByIDForUpdate(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrdersByDate returns the non-deleted orders dated date.
	ListOrdersByDate(ctx context.Context, date time.Time) ([]domain.Order, error)

	// ListOpenOrdersByCustomer returns the customer's unpaid and partial orders,
	// oldest first, locked for update.
	ListOpenOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
}

// OrderWriter defines write operations for orders.
type OrderWriter interface {
	InsertOrder(ctx context.Context, order domain.Order) error
	// UpdateOrderPayment persists paid_amount, due_amount and payment_status.
	UpdateOrderPayment(ctx context.Context, order domain.Order) error
	SoftDeleteOrder(ctx context.Context, orderID string, at time.Time) error
}

// OrderRepositoryFacade combines all order-related repository interfaces.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
