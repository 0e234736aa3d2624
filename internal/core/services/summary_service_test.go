package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/retail_ledger/internal/apperrors"
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/retail_ledger/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var summaryDay = time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

func orderOn(id, total, paid string) domain.Order {
	o := domain.Order{OrderID: id, OrderDate: summaryDay, Total: dec(total)}
	o.SetPaidAmount(dec(paid))
	return o
}

func TestCalculateRealtimeSummary(t *testing.T) {
	orders := []domain.Order{
		orderOn("o1", "1000", "1000"),
		orderOn("o2", "500", "0"),
		orderOn("o3", "800", "300"),
	}
	payments := []domain.Payment{
		// referenced same-day order: already in o3's paid amount
		{PaymentID: "p1", PartyType: domain.PartyCustomer, Amount: dec("300"), ReferenceType: domain.PaymentRefOrder, ReferenceID: strPtr("o3")},
		// settles an older order
		{PaymentID: "p2", PartyType: domain.PartyCustomer, Amount: dec("200"), ReferenceType: domain.PaymentRefOrder, ReferenceID: strPtr("old")},
		// unreferenced, 100 of it applied to o1
		{PaymentID: "p3", PartyType: domain.PartyCustomer, Amount: dec("150")},
		{PaymentID: "p4", PartyType: domain.PartySupplier, Amount: dec("400")},
		{PaymentID: "p5", PartyType: domain.PartyExpense, Amount: dec("50")},
	}
	apps := []domain.PaymentApplication{
		{PaymentID: "p1", OrderID: "o3", Amount: dec("300")},
		{PaymentID: "p3", OrderID: "o1", Amount: dec("100")},
	}

	s := services.CalculateRealtimeSummary(summaryDay, orders, payments, apps, dec("250"))

	assert.Equal(t, "2026-05-10", s.Date)
	assert.Equal(t, 3, s.TotalOrders)
	assert.Equal(t, 1, s.PaidOrdersCount)
	assert.Equal(t, 1, s.UnpaidOrdersCount)
	assert.Equal(t, 1, s.PartialOrdersCount)
	assert.True(t, s.CashSales.Equal(dec("1300")), s.CashSales.String())
	assert.True(t, s.CreditSales.Equal(dec("1000")), s.CreditSales.String())
	assert.True(t, s.TotalBusinessDone.Equal(dec("2300")))
	assert.Equal(t, 2, s.CustomerReceiptsCount)
	assert.True(t, s.CustomerReceipts.Equal(dec("250")), s.CustomerReceipts.String())
	assert.True(t, s.SupplierPayments.Equal(dec("400")))
	assert.True(t, s.Expenses.Equal(dec("50")))
	// 250 + 1300 + 250 - 400 - 50
	assert.True(t, s.ExpectedCash.Equal(dec("1350")), s.ExpectedCash.String())
}

func TestCalculateRealtimeSummary_CashPlusCreditIsTotal(t *testing.T) {
	orders := []domain.Order{orderOn("a", "99.99", "33.33"), orderOn("b", "0.01", "0"), orderOn("c", "10", "10")}
	s := services.CalculateRealtimeSummary(summaryDay, orders, nil, nil, decimal.Zero)

	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total)
	}
	assert.True(t, s.CashSales.Add(s.CreditSales).Equal(total))
	assert.True(t, s.TotalBusinessDone.Equal(total))
}

func TestCalculateRealtimeSummary_EmptyDay(t *testing.T) {
	s := services.CalculateRealtimeSummary(summaryDay, nil, nil, nil, dec("75"))
	assert.Zero(t, s.TotalOrders)
	assert.True(t, s.CashSales.IsZero())
	assert.True(t, s.ExpectedCash.Equal(dec("75")))
}

type SummaryServiceTestSuite struct {
	suite.Suite
	orderRepo   *MockOrderRepository
	paymentRepo *MockPaymentRepository
	summaryRepo *MockSummaryRepository
	service     portssvc.SummarySvcFacade
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.orderRepo = new(MockOrderRepository)
	suite.paymentRepo = new(MockPaymentRepository)
	suite.summaryRepo = new(MockSummaryRepository)
	suite.service = services.NewSummaryService(suite.orderRepo, suite.paymentRepo, suite.summaryRepo)
}

func decimalEq(want string) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec(want)) })
}

func (suite *SummaryServiceTestSuite) TestGetRealtimeSummary_WithoutDailyRow() {
	ctx := context.Background()
	orders := []domain.Order{orderOn("o1", "100", "40")}
	suite.orderRepo.On("ListOrdersByDate", mock.Anything, summaryDay).Return(orders, nil).Once()
	suite.paymentRepo.On("ListPaymentsByDate", mock.Anything, summaryDay).Return([]domain.Payment{}, nil).Once()
	suite.paymentRepo.On("ListApplicationsToOrders", mock.Anything, []string{"o1"}).Return([]domain.PaymentApplication{}, nil).Once()
	suite.summaryRepo.On("FindSummaryByDate", mock.Anything, summaryDay).Return(nil, apperrors.ErrNotFound).Once()

	s, err := suite.service.GetRealtimeSummary(ctx, summaryDay.Add(15*time.Hour))

	suite.Require().NoError(err)
	suite.True(s.OpeningBalance.IsZero())
	suite.True(s.CashSales.Equal(dec("40")))
	suite.True(s.ExpectedCash.Equal(dec("40")))
}

func (suite *SummaryServiceTestSuite) TestGetRealtimeSummary_NoOrdersSkipsApplications() {
	suite.orderRepo.On("ListOrdersByDate", mock.Anything, summaryDay).Return([]domain.Order{}, nil).Once()
	suite.paymentRepo.On("ListPaymentsByDate", mock.Anything, summaryDay).Return([]domain.Payment{}, nil).Once()
	suite.summaryRepo.On("FindSummaryByDate", mock.Anything, summaryDay).Return(&domain.DailySummary{OpeningBalance: dec("20")}, nil).Once()

	s, err := suite.service.GetRealtimeSummary(context.Background(), summaryDay)

	suite.Require().NoError(err)
	suite.True(s.OpeningBalance.Equal(dec("20")))
	suite.paymentRepo.AssertNotCalled(suite.T(), "ListApplicationsToOrders", mock.Anything, mock.Anything)
}

func (suite *SummaryServiceTestSuite) TestRecordOrderCreated() {
	paid := orderOn("o1", "100", "100")
	unpaid := orderOn("o2", "70", "0")
	suite.summaryRepo.On("ApplySummaryDelta", mock.Anything, summaryDay, decimalEq("100"), 1).Return(nil).Once()
	suite.summaryRepo.On("ApplySummaryDelta", mock.Anything, summaryDay, decimalEq("0"), 1).Return(nil).Once()

	suite.Require().NoError(suite.service.RecordOrderCreated(context.Background(), paid))
	suite.Require().NoError(suite.service.RecordOrderCreated(context.Background(), unpaid))
	suite.summaryRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestRecordPaymentStatusChange_OnlyPaidBoundary() {
	order := orderOn("o1", "60", "60")
	suite.summaryRepo.On("ApplySummaryDelta", mock.Anything, summaryDay, decimalEq("60"), 0).Return(nil).Once()
	suite.summaryRepo.On("ApplySummaryDelta", mock.Anything, summaryDay, decimalEq("-60"), 0).Return(nil).Once()

	ctx := context.Background()
	suite.Require().NoError(suite.service.RecordPaymentStatusChange(ctx, order, domain.StatusPartial, domain.StatusPaid))
	suite.Require().NoError(suite.service.RecordPaymentStatusChange(ctx, order, domain.StatusPaid, domain.StatusUnpaid))
	suite.Require().NoError(suite.service.RecordPaymentStatusChange(ctx, order, domain.StatusUnpaid, domain.StatusPartial))

	suite.summaryRepo.AssertNumberOfCalls(suite.T(), "ApplySummaryDelta", 2)
}

func (suite *SummaryServiceTestSuite) TestRecordOrderDeleted() {
	suite.summaryRepo.On("ApplySummaryDelta", mock.Anything, summaryDay, decimalEq("-100"), -1).Return(nil).Once()
	suite.summaryRepo.On("ApplySummaryDelta", mock.Anything, summaryDay, decimalEq("0"), -1).Return(nil).Once()

	suite.Require().NoError(suite.service.RecordOrderDeleted(context.Background(), orderOn("o1", "100", "100")))
	suite.Require().NoError(suite.service.RecordOrderDeleted(context.Background(), orderOn("o2", "100", "30")))
	suite.summaryRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestSetOpeningBalance() {
	row := &domain.DailySummary{Date: summaryDay, OpeningBalance: dec("500")}
	suite.summaryRepo.On("SetOpeningBalance", mock.Anything, summaryDay, decimalEq("500"), "user-1", mock.AnythingOfType("time.Time")).Return(row, nil).Once()

	got, err := suite.service.SetOpeningBalance(context.Background(), summaryDay, dec("500"), "user-1")
	suite.Require().NoError(err)
	suite.Equal(row, got)

	_, err = suite.service.SetOpeningBalance(context.Background(), summaryDay, dec("-1"), "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SummaryServiceTestSuite) TestListDailySummaries_RejectsInvertedRange() {
	_, err := suite.service.ListDailySummaries(context.Background(), summaryDay, summaryDay.AddDate(0, 0, -1))
	suite.ErrorIs(err, apperrors.ErrValidation)
}
