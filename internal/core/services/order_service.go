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
	"github.com/SscSPs/retail_ledger/internal/dto"
	"github.com/SscSPs/retail_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// orderLedger is the part of the posting engine orders depend on.
type orderLedger interface {
	portssvc.AutoPosterSvc
	portssvc.ReversalSvc
}

// orderService owns the order writes that have ledger consequences. Each write
// runs in one transaction with its postings and its daily aggregate delta.
type orderService struct {
	BaseService
	txm         portsrepo.TransactionManager
	orderRepo   portsrepo.OrderRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	ledger      orderLedger
	aggregate   portssvc.DailyAggregateSvc
}

// NewOrderService creates the order collaborator.
func NewOrderService(
	txm portsrepo.TransactionManager,
	orderRepo portsrepo.OrderRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	ledger portssvc.LedgerPostingSvcFacade,
	aggregate portssvc.DailyAggregateSvc,
) portssvc.OrderSvcFacade {
	return &orderService{
		txm:         txm,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		ledger:      ledger,
		aggregate:   aggregate,
	}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func documentNumber(prefix string, date time.Time) string {
	return fmt.Sprintf("%s-%s-%s", prefix, date.Format(batchNumberDateLayout), strings.ToUpper(uuid.NewString()[:8]))
}

// CreateOrder inserts the order together with its invoice and cash postings.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customerName is required", apperrors.ErrValidation)
	}
	total := req.Total.Round(accounting.MinorUnitPlaces)
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: order total cannot be negative", apperrors.ErrValidation)
	}
	paid := total
	if req.PaidAmount != nil {
		paid = req.PaidAmount.Round(accounting.MinorUnitPlaces)
	}
	if paid.IsNegative() {
		return nil, fmt.Errorf("%w: paid amount cannot be negative", apperrors.ErrValidation)
	}
	if paid.GreaterThan(total) {
		return nil, fmt.Errorf("%w: paid amount %s exceeds order total %s", apperrors.ErrValidation,
			paid.StringFixed(accounting.MinorUnitPlaces), total.StringFixed(accounting.MinorUnitPlaces))
	}
	orderDate, err := businessDate(req.OrderDate, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := domain.Order{
		OrderID:      uuid.NewString(),
		OrderNumber:  req.OrderNumber,
		CustomerID:   req.CustomerID,
		CustomerName: strings.TrimSpace(req.CustomerName),
		OrderDate:    orderDate,
		Total:        total,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if order.OrderNumber == "" {
		order.OrderNumber = documentNumber("ORD", orderDate)
	}
	order.SetPaidAmount(paid)

	err = s.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.orderRepo.InsertOrder(txCtx, order); err != nil {
			return err
		}
		if _, err := s.ledger.PostInvoice(txCtx, order); err != nil {
			return err
		}
		if _, err := s.ledger.PostInvoiceCash(txCtx, order); err != nil {
			return err
		}
		return s.aggregate.RecordOrderCreated(txCtx, order)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create order", slog.String("order_number", order.OrderNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Order created",
		slog.String("order_id", order.OrderID),
		slog.String("order_number", order.OrderNumber),
		slog.String("payment_status", string(order.PaymentStatus)))
	return &order, nil
}

// GetOrder returns a non-deleted order.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orderRepo.FindOrderByID(ctx, orderID)
}

// SetPaymentStatus marks an order fully paid or fully unpaid by hand and posts
// the cash movement that implies. An order settled in part by recorded payments
// cannot be marked unpaid; those payments have to be deleted instead.
func (s *orderService) SetPaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) (*domain.Order, error) {
	if status != domain.StatusPaid && status != domain.StatusUnpaid {
		return nil, fmt.Errorf("%w: status must be paid or unpaid, got %q", apperrors.ErrValidation, status)
	}

	var order *domain.Order
	err := s.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		order, err = s.orderRepo.FindOrderByIDForUpdate(txCtx, orderID)
		if err != nil {
			return err
		}
		if order.PaymentStatus == status {
			return nil
		}
		if !order.Total.IsPositive() {
			return fmt.Errorf("%w: order %s has no value to pay", apperrors.ErrValidation, order.OrderNumber)
		}

		toPaid := status == domain.StatusPaid
		if !toPaid {
			apps, err := s.paymentRepo.ListApplicationsToOrders(txCtx, []string{orderID})
			if err != nil {
				return err
			}
			if len(apps) > 0 {
				return fmt.Errorf("%w: order %s has %d payment(s) applied, delete them instead of marking it unpaid",
					apperrors.ErrConflict, order.OrderNumber, len(apps))
			}
		}

		oldStatus := order.PaymentStatus
		var moved decimal.Decimal
		if toPaid {
			moved = order.DueAmount
			order.SetPaidAmount(order.Total)
		} else {
			moved = order.PaidAmount
			order.SetPaidAmount(decimal.Zero)
		}
		order.UpdatedAt = time.Now().UTC()

		if err := s.orderRepo.UpdateOrderPayment(txCtx, *order); err != nil {
			return err
		}
		if _, err := s.ledger.PostPaymentToggle(txCtx, *order, moved, toPaid); err != nil {
			return err
		}
		return s.aggregate.RecordPaymentStatusChange(txCtx, *order, oldStatus, order.PaymentStatus)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to set payment status", slog.String("order_id", orderID))
		return nil, err
	}
	return order, nil
}

// DeleteOrder soft-deletes an order and reverses every batch posted for it.
func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	err := s.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		order, err := s.orderRepo.FindOrderByIDForUpdate(txCtx, orderID)
		if err != nil {
			return err
		}
		if err := s.orderRepo.SoftDeleteOrder(txCtx, orderID, time.Now().UTC()); err != nil {
			return err
		}
		if _, err := s.ledger.ReverseReference(txCtx, orderID, "Order "+order.OrderNumber+" deleted"); err != nil {
			return err
		}
		return s.aggregate.RecordOrderDeleted(txCtx, *order)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete order", slog.String("order_id", orderID))
		return err
	}
	s.LogInfo(ctx, "Order deleted", slog.String("order_id", orderID))
	return nil
}

// ApplyPaymentToOrder is the only transition that raises an order's paid amount
// for a payment. The application row is keyed by (payment, order); when it
// already exists nothing changes and applied is false.
func (s *orderService) ApplyPaymentToOrder(ctx context.Context, paymentID string, orderID string, amount decimal.Decimal) (*domain.Order, bool, error) {
	amount = amount.Round(accounting.MinorUnitPlaces)
	if !amount.IsPositive() {
		return nil, false, fmt.Errorf("%w: applied amount must be positive", apperrors.ErrValidation)
	}

	var (
		order   *domain.Order
		applied bool
	)
	err := s.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		order, err = s.orderRepo.FindOrderByIDForUpdate(txCtx, orderID)
		if err != nil {
			return err
		}
		if amount.GreaterThan(order.DueAmount) {
			return fmt.Errorf("%w: payment of %s exceeds amount due %s on order %s", apperrors.ErrValidation,
				amount.StringFixed(accounting.MinorUnitPlaces), order.DueAmount.StringFixed(accounting.MinorUnitPlaces), order.OrderNumber)
		}

		applied, err = s.paymentRepo.InsertApplication(txCtx, domain.PaymentApplication{
			PaymentID: paymentID,
			OrderID:   orderID,
			Amount:    amount,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil || !applied {
			return err
		}

		oldStatus := order.PaymentStatus
		order.SetPaidAmount(order.PaidAmount.Add(amount))
		order.UpdatedAt = time.Now().UTC()
		if err := s.orderRepo.UpdateOrderPayment(txCtx, *order); err != nil {
			return err
		}
		return s.aggregate.RecordPaymentStatusChange(txCtx, *order, oldStatus, order.PaymentStatus)
	})
	if err != nil {
		return nil, false, err
	}
	if !applied {
		s.LogInfo(ctx, "Payment already applied to order, skipping",
			slog.String("payment_id", paymentID), slog.String("order_id", orderID))
	}
	return order, applied, nil
}

// WithdrawPaymentFromOrder undoes an application. A deleted order only loses
// the application row.
func (s *orderService) WithdrawPaymentFromOrder(ctx context.Context, app domain.PaymentApplication) (*domain.Order, error) {
	var order *domain.Order
	err := s.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		order, err = s.orderRepo.FindOrderByIDForUpdate(txCtx, app.OrderID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		existed, err := s.paymentRepo.DeleteApplication(txCtx, app.PaymentID, app.OrderID)
		if err != nil || !existed || order == nil {
			return err
		}

		oldStatus := order.PaymentStatus
		paid := order.PaidAmount.Sub(app.Amount)
		if paid.IsNegative() {
			paid = decimal.Zero
		}
		order.SetPaidAmount(paid)
		order.UpdatedAt = time.Now().UTC()
		if err := s.orderRepo.UpdateOrderPayment(txCtx, *order); err != nil {
			return err
		}
		return s.aggregate.RecordPaymentStatusChange(txCtx, *order, oldStatus, order.PaymentStatus)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
