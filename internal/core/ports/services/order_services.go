package services

import (
	"context"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
	"github.com/SscSPs/retail_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// OrderWriterSvc defines order writes that carry ledger consequences.
type OrderWriterSvc interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
	SetPaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

// OrderPaymentSvc applies and withdraws payments. ApplyPaymentToOrder is the only
// path that increases an order's paid amount for a payment, and it is a no-op the
// second time it sees the same (payment, order).
type OrderPaymentSvc interface {
	ApplyPaymentToOrder(ctx context.Context, paymentID string, orderID string, amount decimal.Decimal) (*domain.Order, bool, error)
	WithdrawPaymentFromOrder(ctx context.Context, app domain.PaymentApplication) (*domain.Order, error)
}

// OrderSvcFacade combines all order interfaces.
type OrderSvcFacade interface {
	OrderWriterSvc
	OrderPaymentSvc
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

// PaymentSvcFacade defines payment operations.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)
	GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID string) error
}

// PurchaseSvcFacade defines supplier bill operations.
type PurchaseSvcFacade interface {
	CreatePurchaseBill(ctx context.Context, req dto.CreatePurchaseBillRequest) (*domain.PurchaseBill, error)
	DeletePurchaseBill(ctx context.Context, billID string) error
}
