package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
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

func sliceOrNil[T any](args mock.Arguments, i int) []T {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]T)
}

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// --- fake TransactionManager ---
// Runs fn inline with the caller's context and counts how often it was entered.
type fakeTxManager struct {
	transactions int
	savepoints   int
}

var _ portsrepo.TransactionManager = (*fakeTxManager)(nil)

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.transactions++
	return fn(ctx)
}

func (f *fakeTxManager) RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	f.savepoints++
	return fn(ctx)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	return ptrOrNil[domain.Account](args, 0), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	return ptrOrNil[domain.Account](args, 0), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, accountType)
	return sliceOrNil[domain.Account](args, 0), args.Error(1)
}

func (m *MockAccountRepository) UpsertAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	return ptrOrNil[domain.Account](args, 0), args.Error(1)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindBatchByID(ctx context.Context, batchID string) (*domain.JournalBatch, error) {
	args := m.Called(ctx, batchID)
	return ptrOrNil[domain.JournalBatch](args, 0), args.Error(1)
}

func (m *MockJournalRepository) FindBatchByReference(ctx context.Context, refType domain.ReferenceType, referenceID string) (*domain.JournalBatch, error) {
	args := m.Called(ctx, refType, referenceID)
	return ptrOrNil[domain.JournalBatch](args, 0), args.Error(1)
}

func (m *MockJournalRepository) FindUnreversedBatchesByReference(ctx context.Context, referenceID string) ([]domain.JournalBatch, error) {
	args := m.Called(ctx, referenceID)
	return sliceOrNil[domain.JournalBatch](args, 0), args.Error(1)
}

func (m *MockJournalRepository) ListBatches(ctx context.Context, filter domain.BatchFilter, limit int, nextToken *string) ([]domain.JournalBatch, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	return sliceOrNil[domain.JournalBatch](args, 0), ptrOrNil[string](args, 1), args.Error(2)
}

func (m *MockJournalRepository) FindEntriesByBatchID(ctx context.Context, batchID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, batchID)
	return sliceOrNil[domain.LedgerEntry](args, 0), args.Error(1)
}

func (m *MockJournalRepository) NextBatchSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) InsertBatch(ctx context.Context, batch domain.JournalBatch, entries []domain.LedgerEntry) error {
	args := m.Called(ctx, batch, entries)
	return args.Error(0)
}

// --- Mock BalanceRepository ---
type MockBalanceRepository struct {
	mock.Mock
}

var _ portsrepo.BalanceReader = (*MockBalanceRepository)(nil)

func (m *MockBalanceRepository) SumAllEntries(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockBalanceRepository) SumAccountEntries(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

var _ portsrepo.OrderRepositoryFacade = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	return ptrOrNil[domain.Order](args, 0), args.Error(1)
}

func (m *MockOrderRepository) FindOrderByIDForUpdate(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	return ptrOrNil[domain.Order](args, 0), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByDate(ctx context.Context, date time.Time) ([]domain.Order, error) {
	args := m.Called(ctx, date)
	return sliceOrNil[domain.Order](args, 0), args.Error(1)
}

func (m *MockOrderRepository) ListOpenOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	return sliceOrNil[domain.Order](args, 0), args.Error(1)
}

func (m *MockOrderRepository) InsertOrder(ctx context.Context, order domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) UpdateOrderPayment(ctx context.Context, order domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) SoftDeleteOrder(ctx context.Context, orderID string, at time.Time) error {
	return m.Called(ctx, orderID, at).Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	return ptrOrNil[domain.Payment](args, 0), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByDate(ctx context.Context, date time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, date)
	return sliceOrNil[domain.Payment](args, 0), args.Error(1)
}

func (m *MockPaymentRepository) ListApplicationsByPayment(ctx context.Context, paymentID string) ([]domain.PaymentApplication, error) {
	args := m.Called(ctx, paymentID)
	return sliceOrNil[domain.PaymentApplication](args, 0), args.Error(1)
}

func (m *MockPaymentRepository) ListApplicationsToOrders(ctx context.Context, orderIDs []string) ([]domain.PaymentApplication, error) {
	args := m.Called(ctx, orderIDs)
	return sliceOrNil[domain.PaymentApplication](args, 0), args.Error(1)
}

func (m *MockPaymentRepository) InsertPayment(ctx context.Context, payment domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) SoftDeletePayment(ctx context.Context, paymentID string, at time.Time) error {
	return m.Called(ctx, paymentID, at).Error(0)
}

func (m *MockPaymentRepository) InsertApplication(ctx context.Context, app domain.PaymentApplication) (bool, error) {
	args := m.Called(ctx, app)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) DeleteApplication(ctx context.Context, paymentID, orderID string) (bool, error) {
	args := m.Called(ctx, paymentID, orderID)
	return args.Bool(0), args.Error(1)
}

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseRepositoryFacade = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) InsertPurchaseBill(ctx context.Context, bill domain.PurchaseBill) error {
	return m.Called(ctx, bill).Error(0)
}

func (m *MockPurchaseRepository) FindPurchaseBillByID(ctx context.Context, billID string) (*domain.PurchaseBill, error) {
	args := m.Called(ctx, billID)
	return ptrOrNil[domain.PurchaseBill](args, 0), args.Error(1)
}

func (m *MockPurchaseRepository) SoftDeletePurchaseBill(ctx context.Context, billID string, at time.Time) error {
	return m.Called(ctx, billID, at).Error(0)
}

// --- Mock DailySummaryRepository ---
type MockSummaryRepository struct {
	mock.Mock
}

var _ portsrepo.DailySummaryRepositoryFacade = (*MockSummaryRepository)(nil)

func (m *MockSummaryRepository) FindSummaryByDate(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	args := m.Called(ctx, date)
	return ptrOrNil[domain.DailySummary](args, 0), args.Error(1)
}

func (m *MockSummaryRepository) ListSummaries(ctx context.Context, from, to time.Time) ([]domain.DailySummary, error) {
	args := m.Called(ctx, from, to)
	return sliceOrNil[domain.DailySummary](args, 0), args.Error(1)
}

func (m *MockSummaryRepository) ApplySummaryDelta(ctx context.Context, date time.Time, salesDelta decimal.Decimal, ordersDelta int) error {
	return m.Called(ctx, date, salesDelta, ordersDelta).Error(0)
}

func (m *MockSummaryRepository) SetOpeningBalance(ctx context.Context, date time.Time, amount decimal.Decimal, setBy string, at time.Time) (*domain.DailySummary, error) {
	args := m.Called(ctx, date, amount, setBy, at)
	return ptrOrNil[domain.DailySummary](args, 0), args.Error(1)
}

// --- Mock AccountRegistry ---
type MockAccountRegistry struct {
	mock.Mock
}

var _ portssvc.AccountRegistrySvc = (*MockAccountRegistry)(nil)

func (m *MockAccountRegistry) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	return ptrOrNil[domain.Account](args, 0), args.Error(1)
}

func (m *MockAccountRegistry) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, accountType)
	return sliceOrNil[domain.Account](args, 0), args.Error(1)
}

func (m *MockAccountRegistry) GetOrCreateCustomerReceivable(ctx context.Context, customerID string, customerName string) (*domain.Account, error) {
	args := m.Called(ctx, customerID, customerName)
	return ptrOrNil[domain.Account](args, 0), args.Error(1)
}

func (m *MockAccountRegistry) GetOrCreateSupplierPayable(ctx context.Context, supplierID string, supplierName string) (*domain.Account, error) {
	args := m.Called(ctx, supplierID, supplierName)
	return ptrOrNil[domain.Account](args, 0), args.Error(1)
}

func (m *MockAccountRegistry) InitializeStaticData(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- Mock LedgerPostingService ---
type MockLedger struct {
	mock.Mock
}

var _ portssvc.LedgerPostingSvcFacade = (*MockLedger)(nil)

func (m *MockLedger) PostJournalBatch(ctx context.Context, req domain.PostBatchRequest) (*domain.PostingResult, error) {
	args := m.Called(ctx, req)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}

func (m *MockLedger) PostAdjustment(ctx context.Context, req dto.PostJournalBatchRequest, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, req, userID)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}

func (m *MockLedger) PostInvoice(ctx context.Context, order domain.Order) (*domain.PostingResult, error) {
	args := m.Called(ctx, order)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}

func (m *MockLedger) PostInvoiceCash(ctx context.Context, order domain.Order) (*domain.PostingResult, error) {
	args := m.Called(ctx, order)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}

func (m *MockLedger) PostPayment(ctx context.Context, payment domain.Payment) (*domain.PostingResult, error) {
	args := m.Called(ctx, payment)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}

func (m *MockLedger) PostSupplierPayment(ctx context.Context, payment domain.Payment) (*domain.PostingResult, error) {
	args := m.Called(ctx, payment)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}

func (m *MockLedger) PostExpensePayment(ctx context.Context, payment domain.Payment) (*domain.PostingResult, error) {
	args := m.Called(ctx, payment)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}

func (m *MockLedger) PostPurchase(ctx context.Context, bill domain.PurchaseBill) (*domain.PostingResult, error) {
	args := m.Called(ctx, bill)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}

func (m *MockLedger) PostPaymentToggle(ctx context.Context, order domain.Order, amount decimal.Decimal, toPaid bool) (*domain.PostingResult, error) {
	args := m.Called(ctx, order, amount, toPaid)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}

func (m *MockLedger) ReverseReference(ctx context.Context, referenceID string, description string) ([]domain.PostingResult, error) {
	args := m.Called(ctx, referenceID, description)
	return sliceOrNil[domain.PostingResult](args, 0), args.Error(1)
}

func (m *MockLedger) ReverseBatch(ctx context.Context, batchID string, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, batchID, userID)
	return ptrOrNil[domain.PostingResult](args, 0), args.Error(1)
}

func (m *MockLedger) GetBatch(ctx context.Context, batchID string) (*domain.JournalBatch, []domain.LedgerEntry, error) {
	args := m.Called(ctx, batchID)
	return ptrOrNil[domain.JournalBatch](args, 0), sliceOrNil[domain.LedgerEntry](args, 1), args.Error(2)
}

func (m *MockLedger) ListBatches(ctx context.Context, params dto.ListBatchesParams) (*dto.ListBatchesResponse, error) {
	args := m.Called(ctx, params)
	return ptrOrNil[dto.ListBatchesResponse](args, 0), args.Error(1)
}

// --- Mock DailyAggregate ---
type MockDailyAggregate struct {
	mock.Mock
}

var _ portssvc.DailyAggregateSvc = (*MockDailyAggregate)(nil)

func (m *MockDailyAggregate) RecordOrderCreated(ctx context.Context, order domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockDailyAggregate) RecordPaymentStatusChange(ctx context.Context, order domain.Order, oldStatus domain.PaymentStatus, newStatus domain.PaymentStatus) error {
	return m.Called(ctx, order, oldStatus, newStatus).Error(0)
}

func (m *MockDailyAggregate) RecordOrderDeleted(ctx context.Context, order domain.Order) error {
	return m.Called(ctx, order).Error(0)
}
