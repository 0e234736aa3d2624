package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/retail_ledger/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func ptrOrNil[T any](args mock.Arguments, i int) *T {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*T)
}

// --- Mock LedgerPostingService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerPostingSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) PostJournalBatch(ctx context.Context, req domain.PostBatchRequest) (*domain.PostingResult, error) {
	args := m.Called(ctx, req)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}
func (m *MockLedgerService) PostAdjustment(ctx context.Context, req dto.PostJournalBatchRequest, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, req, userID)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}
func (m *MockLedgerService) PostInvoice(ctx context.Context, order domain.Order) (*domain.PostingResult, error) {
	args := m.Called(ctx, order)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}
func (m *MockLedgerService) PostInvoiceCash(ctx context.Context, order domain.Order) (*domain.PostingResult, error) {
	args := m.Called(ctx, order)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}
func (m *MockLedgerService) PostPayment(ctx context.Context, payment domain.Payment) (*domain.PostingResult, error) {
	args := m.Called(ctx, payment)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}
func (m *MockLedgerService) PostSupplierPayment(ctx context.Context, payment domain.Payment) (*domain.PostingResult, error) {
	args := m.Called(ctx, payment)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}
func (m *MockLedgerService) PostExpensePayment(ctx context.Context, payment domain.Payment) (*domain.PostingResult, error) {
	args := m.Called(ctx, payment)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}
func (m *MockLedgerService) PostPurchase(ctx context.Context, bill domain.PurchaseBill) (*domain.PostingResult, error) {
	args := m.Called(ctx, bill)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}
func (m *MockLedgerService) PostPaymentToggle(ctx context.Context, order domain.Order, amount decimal.Decimal, toPaid bool) (*domain.PostingResult, error) {
	args := m.Called(ctx, order, amount, toPaid)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}
func (m *MockLedgerService) ReverseReference(ctx context.Context, referenceID string, description string) ([]domain.PostingResult, error) {
	args := m.Called(ctx, referenceID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostingResult), args.Error(1)
}
func (m *MockLedgerService) ReverseBatch(ctx context.Context, batchID string, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, batchID, userID)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}
func (m *MockLedgerService) GetBatch(ctx context.Context, batchID string) (*domain.JournalBatch, []domain.LedgerEntry, error) {
	args := m.Called(ctx, batchID)
	var entries []domain.LedgerEntry
	if args.Get(1) != nil {
		entries = args.Get(1).([]domain.LedgerEntry)
	}
	return ptrOrNil[domain.JournalBatch](args, 0), entries, args.Error(2)
}
func (m *MockLedgerService) ListBatches(ctx context.Context, params dto.ListBatchesParams) (*dto.ListBatchesResponse, error) {
	args := m.Called(ctx, params)
	return ptrOrNil[dto.ListBatchesResponse](args, 0), args.Error(1)
}

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

var _ portssvc.BalanceSvc = (*MockBalanceService)(nil)

func (m *MockBalanceService) HealthCheck(ctx context.Context) (*domain.LedgerHealth, error) {
	args := m.Called(ctx)
	return ptrOrNil[domain.LedgerHealth](args, 0), args.Error(1)
}
func (m *MockBalanceService) GetAccountBalance(ctx context.Context, code string, asOf *time.Time) (*domain.AccountBalance, error) {
	args := m.Called(ctx, code, asOf)
	return ptrOrNil[domain.AccountBalance](args, 0), args.Error(1)
}

// --- Mock AccountReader ---
type MockAccountReader struct {
	mock.Mock
}

var _ portssvc.AccountReaderSvc = (*MockAccountReader)(nil)

func (m *MockAccountReader) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	return ptrOrNil[domain.Account](args, 0), args.Error(1)
}
func (m *MockAccountReader) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock SummaryService ---
type MockSummaryService struct {
	mock.Mock
}

var _ portssvc.SummarySvcFacade = (*MockSummaryService)(nil)

func (m *MockSummaryService) GetRealtimeSummary(ctx context.Context, date time.Time) (*domain.RealtimeSummary, error) {
	args := m.Called(ctx, date)
	return ptrOrNil[domain.RealtimeSummary](args, 0), args.Error(1)
}
func (m *MockSummaryService) RecordOrderCreated(ctx context.Context, order domain.Order) error {
	return m.Called(ctx, order).Error(0)
}
func (m *MockSummaryService) RecordPaymentStatusChange(ctx context.Context, order domain.Order, oldStatus domain.PaymentStatus, newStatus domain.PaymentStatus) error {
	return m.Called(ctx, order, oldStatus, newStatus).Error(0)
}
func (m *MockSummaryService) RecordOrderDeleted(ctx context.Context, order domain.Order) error {
	return m.Called(ctx, order).Error(0)
}
func (m *MockSummaryService) GetDailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	args := m.Called(ctx, date)
	return ptrOrNil[domain.DailySummary](args, 0), args.Error(1)
}
func (m *MockSummaryService) ListDailySummaries(ctx context.Context, from time.Time, to time.Time) ([]domain.DailySummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailySummary), args.Error(1)
}
func (m *MockSummaryService) SetOpeningBalance(ctx context.Context, date time.Time, amount decimal.Decimal, userID string) (*domain.DailySummary, error) {
	args := m.Called(ctx, date, amount, userID)
	return ptrOrNil[domain.DailySummary](args, 0), args.Error(1)
}

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

func (m *MockOrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	return ptrOrNil[domain.Order](args, 0), args.Error(1)
}
func (m *MockOrderService) SetPaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) (*domain.Order, error) {
	args := m.Called(ctx, orderID, status)
	return ptrOrNil[domain.Order](args, 0), args.Error(1)
}
func (m *MockOrderService) DeleteOrder(ctx context.Context, orderID string) error {
	return m.Called(ctx, orderID).Error(0)
}
func (m *MockOrderService) ApplyPaymentToOrder(ctx context.Context, paymentID string, orderID string, amount decimal.Decimal) (*domain.Order, bool, error) {
	args := m.Called(ctx, paymentID, orderID, amount)
	return ptrOrNil[domain.Order](args, 0), args.Bool(1), args.Error(2)
}
func (m *MockOrderService) WithdrawPaymentFromOrder(ctx context.Context, app domain.PaymentApplication) (*domain.Order, error) {
	args := m.Called(ctx, app)
	return ptrOrNil[domain.Order](args, 0), args.Error(1)
}
func (m *MockOrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	return ptrOrNil[domain.Order](args, 0), args.Error(1)
}

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

func (m *MockPaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, req)
	return ptrOrNil[domain.Payment](args, 0), args.Error(1)
}
func (m *MockPaymentService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	return ptrOrNil[domain.Payment](args, 0), args.Error(1)
}
func (m *MockPaymentService) DeletePayment(ctx context.Context, paymentID string) error {
	return m.Called(ctx, paymentID).Error(0)
}

// --- Mock PurchaseService ---
type MockPurchaseService struct {
	mock.Mock
}

var _ portssvc.PurchaseSvcFacade = (*MockPurchaseService)(nil)

func (m *MockPurchaseService) CreatePurchaseBill(ctx context.Context, req dto.CreatePurchaseBillRequest) (*domain.PurchaseBill, error) {
	args := m.Called(ctx, req)
	return ptrOrNil[domain.PurchaseBill](args, 0), args.Error(1)
}
func (m *MockPurchaseService) DeletePurchaseBill(ctx context.Context, billID string) error {
	return m.Called(ctx, billID).Error(0)
}
