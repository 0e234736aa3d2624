package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/retail_ledger/internal/apperrors"
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_ledger/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type summaryService struct {
	BaseService
	orderRepo   portsrepo.OrderReader
	paymentRepo portsrepo.PaymentReader
	summaryRepo portsrepo.DailySummaryRepositoryFacade
}

// NewSummaryService creates the realtime summary calculator and daily aggregate keeper.
func NewSummaryService(
	orderRepo portsrepo.OrderReader,
	paymentRepo portsrepo.PaymentReader,
	summaryRepo portsrepo.DailySummaryRepositoryFacade,
) portssvc.SummarySvcFacade {
	return &summaryService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		summaryRepo: summaryRepo,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// GetRealtimeSummary reads the orders and payments dated date and aggregates them.
func (s *summaryService) GetRealtimeSummary(ctx context.Context, date time.Time) (*domain.RealtimeSummary, error) {
	day := domain.TruncateToDate(date)

	orders, err := s.orderRepo.ListOrdersByDate(ctx, day)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders for summary", slog.String("date", day.Format(domain.DateLayout)))
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByDate(ctx, day)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for summary", slog.String("date", day.Format(domain.DateLayout)))
		return nil, err
	}

	var apps []domain.PaymentApplication
	if len(orders) > 0 {
		ids := make([]string, len(orders))
		for i, o := range orders {
			ids[i] = o.OrderID
		}
		apps, err = s.paymentRepo.ListApplicationsToOrders(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	opening := decimal.Zero
	row, err := s.summaryRepo.FindSummaryByDate(ctx, day)
	switch {
	case err == nil:
		opening = row.OpeningBalance
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}

	summary := CalculateRealtimeSummary(day, orders, payments, apps, opening)
	return &summary, nil
}

// CalculateRealtimeSummary aggregates one day. orders and payments must already
// be restricted to that day and to non-deleted rows; apps are the payment
// applications whose order is among orders.
//
// A customer payment that names one of the day's orders is already inside that
// order's paid amount and is left out of CustomerReceipts. The same holds for the
// part of an unreferenced payment that was applied to one of the day's orders.
func CalculateRealtimeSummary(
	date time.Time,
	orders []domain.Order,
	payments []domain.Payment,
	apps []domain.PaymentApplication,
	openingBalance decimal.Decimal,
) domain.RealtimeSummary {
	sum := domain.RealtimeSummary{
		Date:             date.Format(domain.DateLayout),
		CashSales:        decimal.Zero,
		CreditSales:      decimal.Zero,
		CustomerReceipts: decimal.Zero,
		SupplierPayments: decimal.Zero,
		Expenses:         decimal.Zero,
		OpeningBalance:   openingBalance,
	}

	sameDayOrders := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		sameDayOrders[o.OrderID] = struct{}{}
		sum.TotalOrders++
		sum.CashSales = sum.CashSales.Add(o.PaidAmount)
		sum.CreditSales = sum.CreditSales.Add(o.DueAmount)
		switch domain.DerivePaymentStatus(o.PaidAmount, o.DueAmount) {
		case domain.StatusPaid:
			sum.PaidOrdersCount++
		case domain.StatusUnpaid:
			sum.UnpaidOrdersCount++
		default:
			sum.PartialOrdersCount++
		}
	}
	sum.TotalBusinessDone = sum.CashSales.Add(sum.CreditSales)

	appliedToSameDay := make(map[string]decimal.Decimal)
	for _, a := range apps {
		if _, ok := sameDayOrders[a.OrderID]; ok {
			appliedToSameDay[a.PaymentID] = appliedToSameDay[a.PaymentID].Add(a.Amount)
		}
	}

	for _, p := range payments {
		switch p.PartyType {
		case domain.PartyCustomer:
			if p.ReferencesOrder() {
				if _, ok := sameDayOrders[*p.ReferenceID]; ok {
					continue
				}
			}
			receipt := p.Amount.Sub(appliedToSameDay[p.PaymentID])
			if !receipt.IsPositive() {
				continue
			}
			sum.CustomerReceiptsCount++
			sum.CustomerReceipts = sum.CustomerReceipts.Add(receipt)
		case domain.PartySupplier:
			sum.SupplierPaymentsCount++
			sum.SupplierPayments = sum.SupplierPayments.Add(p.Amount)
		case domain.PartyExpense:
			sum.ExpensesCount++
			sum.Expenses = sum.Expenses.Add(p.Amount)
		}
	}

	sum.ExpectedCash = openingBalance.
		Add(sum.CashSales).
		Add(sum.CustomerReceipts).
		Sub(sum.SupplierPayments).
		Sub(sum.Expenses)
	return sum
}

// RecordOrderCreated counts the order and, when it is created paid, its total.
func (s *summaryService) RecordOrderCreated(ctx context.Context, order domain.Order) error {
	sales := decimal.Zero
	if order.IsPaid() {
		sales = order.Total
	}
	return s.applyDelta(ctx, order.OrderDate, sales, 1)
}

// RecordPaymentStatusChange moves the order total in or out of the day's sales
// when the status crosses the paid boundary. Other transitions change nothing.
func (s *summaryService) RecordPaymentStatusChange(ctx context.Context, order domain.Order, oldStatus, newStatus domain.PaymentStatus) error {
	wasPaid := oldStatus == domain.StatusPaid
	isPaid := newStatus == domain.StatusPaid
	switch {
	case !wasPaid && isPaid:
		return s.applyDelta(ctx, order.OrderDate, order.Total, 0)
	case wasPaid && !isPaid:
		return s.applyDelta(ctx, order.OrderDate, order.Total.Neg(), 0)
	}
	return nil
}

// RecordOrderDeleted removes the order from the count, and its total from sales
// only if it was paid when deleted.
func (s *summaryService) RecordOrderDeleted(ctx context.Context, order domain.Order) error {
	sales := decimal.Zero
	if order.IsPaid() {
		sales = order.Total.Neg()
	}
	return s.applyDelta(ctx, order.OrderDate, sales, -1)
}

func (s *summaryService) applyDelta(ctx context.Context, date time.Time, sales decimal.Decimal, orders int) error {
	if err := s.summaryRepo.ApplySummaryDelta(ctx, domain.TruncateToDate(date), sales, orders); err != nil {
		s.LogError(ctx, err, "Failed to update daily summary",
			slog.String("date", date.Format(domain.DateLayout)),
			slog.String("sales_delta", sales.StringFixed(accounting.MinorUnitPlaces)),
			slog.Int("orders_delta", orders))
		return err
	}
	return nil
}

// GetDailySummary returns the stored row of date.
func (s *summaryService) GetDailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	return s.summaryRepo.FindSummaryByDate(ctx, domain.TruncateToDate(date))
}

// ListDailySummaries lists stored rows in [from, to].
func (s *summaryService) ListDailySummaries(ctx context.Context, from, to time.Time) ([]domain.DailySummary, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to must not be before from", apperrors.ErrValidation)
	}
	return s.summaryRepo.ListSummaries(ctx, from, to)
}

// SetOpeningBalance records the cash in the drawer at the start of date.
func (s *summaryService) SetOpeningBalance(ctx context.Context, date time.Time, amount decimal.Decimal, userID string) (*domain.DailySummary, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
	}
	if userID == "" {
		userID = actorFromCtx(ctx)
	}
	row, err := s.summaryRepo.SetOpeningBalance(ctx, domain.TruncateToDate(date), amount.Round(accounting.MinorUnitPlaces), userID, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to set opening balance", slog.String("date", date.Format(domain.DateLayout)))
		return nil, err
	}
	s.LogInfo(ctx, "Opening balance set",
		slog.String("date", date.Format(domain.DateLayout)),
		slog.String("amount", row.OpeningBalance.StringFixed(accounting.MinorUnitPlaces)))
	return row, nil
}
