package services

import (
	"context"
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

type paymentService struct {
	BaseService
	txm         portsrepo.TransactionManager
	paymentRepo portsrepo.PaymentRepositoryFacade
	orderRepo   portsrepo.OrderReader
	orders      portssvc.OrderPaymentSvc
	ledger      orderLedger
}

// NewPaymentService creates the payment collaborator.
func NewPaymentService(
	txm portsrepo.TransactionManager,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	orderRepo portsrepo.OrderReader,
	orders portssvc.OrderPaymentSvc,
	ledger portssvc.LedgerPostingSvcFacade,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		txm:         txm,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		orders:      orders,
		ledger:      ledger,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// CreatePayment records a payment, posts it, and for customer payments applies
// it to the referenced order or, without a reference, to the customer's open
// orders oldest first.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	partyType := domain.PartyType(req.PartyType)
	if !partyType.IsValid() {
		return nil, fmt.Errorf("%w: unknown party type %q", apperrors.ErrValidation, req.PartyType)
	}
	amount := req.Amount.Round(accounting.MinorUnitPlaces)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	paymentDate, err := businessDate(req.PaymentDate, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		PaymentNumber: req.PaymentNumber,
		PartyType:     partyType,
		PartyID:       req.PartyID,
		PartyName:     strings.TrimSpace(req.PartyName),
		Amount:        amount,
		PaymentDate:   paymentDate,
		ReferenceType: domain.PaymentReferenceType(req.ReferenceType),
		ReferenceID:   req.ReferenceID,
		Notes:         req.Notes,
		CreatedAt:     time.Now().UTC(),
	}
	if payment.PaymentNumber == "" {
		payment.PaymentNumber = documentNumber("PAY", paymentDate)
	}
	if payment.ReferenceType == domain.PaymentRefOrder && !payment.ReferencesOrder() {
		return nil, fmt.Errorf("%w: referenceID is required when referenceType is order", apperrors.ErrValidation)
	}

	switch partyType {
	case domain.PartyCustomer:
		if err := s.resolveCustomer(ctx, &payment); err != nil {
			return nil, err
		}
	case domain.PartySupplier:
		if payment.PartyID == nil || *payment.PartyID == "" {
			return nil, fmt.Errorf("%w: partyID is required for supplier payments", apperrors.ErrValidation)
		}
	case domain.PartyExpense:
		if payment.PartyName == "" {
			payment.PartyName = "Expense"
		}
	}

	err = s.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.paymentRepo.InsertPayment(txCtx, payment); err != nil {
			return err
		}
		switch payment.PartyType {
		case domain.PartyCustomer:
			if _, err := s.ledger.PostPayment(txCtx, payment); err != nil {
				return err
			}
			return s.applyCustomerPayment(txCtx, payment)
		case domain.PartySupplier:
			_, err := s.ledger.PostSupplierPayment(txCtx, payment)
			return err
		default:
			_, err := s.ledger.PostExpensePayment(txCtx, payment)
			return err
		}
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment",
			slog.String("payment_number", payment.PaymentNumber),
			slog.String("party_type", string(payment.PartyType)))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("party_type", string(payment.PartyType)),
		slog.String("amount", payment.Amount.StringFixed(accounting.MinorUnitPlaces)))
	return &payment, nil
}

// resolveCustomer fills the party of a customer payment. A payment naming an
// order takes the order's customer; anything else without a party is walk-in.
func (s *paymentService) resolveCustomer(ctx context.Context, payment *domain.Payment) error {
	if payment.ReferencesOrder() {
		order, err := s.orderRepo.FindOrderByID(ctx, *payment.ReferenceID)
		if err != nil {
			return err
		}
		partyID := order.CustomerPartyID()
		if payment.PartyID != nil && *payment.PartyID != "" && *payment.PartyID != partyID {
			return fmt.Errorf("%w: payment party %s does not match order customer %s", apperrors.ErrValidation, *payment.PartyID, partyID)
		}
		payment.PartyID = &partyID
		if payment.PartyName == "" {
			payment.PartyName = order.CustomerName
		}
		return nil
	}
	if payment.PartyID == nil || *payment.PartyID == "" {
		walkIn := domain.WalkInCustomerPartyID
		payment.PartyID = &walkIn
	}
	if payment.PartyName == "" {
		payment.PartyName = *payment.PartyID
	}
	return nil
}

func (s *paymentService) applyCustomerPayment(ctx context.Context, payment domain.Payment) error {
	if payment.ReferencesOrder() {
		_, _, err := s.orders.ApplyPaymentToOrder(ctx, payment.PaymentID, *payment.ReferenceID, payment.Amount)
		return err
	}
	if *payment.PartyID == domain.WalkInCustomerPartyID {
		return nil
	}

	open, err := s.orderRepo.ListOpenOrdersByCustomer(ctx, *payment.PartyID)
	if err != nil {
		return err
	}
	remaining := payment.Amount
	for _, o := range open {
		if !remaining.IsPositive() {
			break
		}
		share := decimal.Min(remaining, o.DueAmount)
		if !share.IsPositive() {
			continue
		}
		if _, _, err := s.orders.ApplyPaymentToOrder(ctx, payment.PaymentID, o.OrderID, share); err != nil {
			return err
		}
		remaining = remaining.Sub(share)
	}
	if remaining.IsPositive() {
		s.LogInfo(ctx, "Payment exceeds open orders, remainder kept as customer credit",
			slog.String("payment_id", payment.PaymentID),
			slog.String("remainder", remaining.StringFixed(accounting.MinorUnitPlaces)))
	}
	return nil
}

// GetPayment returns a non-deleted payment.
func (s *paymentService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

// DeletePayment withdraws the payment from every order it was applied to,
// soft-deletes it and reverses its postings.
func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	err := s.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		payment, err := s.paymentRepo.FindPaymentByID(txCtx, paymentID)
		if err != nil {
			return err
		}
		apps, err := s.paymentRepo.ListApplicationsByPayment(txCtx, paymentID)
		if err != nil {
			return err
		}
		for _, app := range apps {
			if _, err := s.orders.WithdrawPaymentFromOrder(txCtx, app); err != nil {
				return err
			}
		}
		if err := s.paymentRepo.SoftDeletePayment(txCtx, paymentID, time.Now().UTC()); err != nil {
			return err
		}
		_, err = s.ledger.ReverseReference(txCtx, paymentID, "Payment "+payment.PaymentNumber+" deleted")
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return err
	}
	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", paymentID))
	return nil
}
