package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/retail_ledger/internal/apperrors"
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	"github.com/SscSPs/retail_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateOrder() {
	order := &domain.Order{OrderID: "o1", OrderNumber: "ORD-20260301-1A2B3C4D", CustomerName: "Asha", Total: decimal.NewFromInt(1000)}
	order.SetPaidAmount(decimal.NewFromInt(400))
	suite.orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(r dto.CreateOrderRequest) bool {
		return r.CustomerName == "Asha" && r.Total.Equal(decimal.NewFromInt(1000)) && r.PaidAmount != nil && r.PaidAmount.Equal(decimal.NewFromInt(400))
	})).Return(order, nil).Once()

	w := suite.do(http.MethodPost, "/orders", `{"customerName": "Asha", "customerID": "C1", "total": 1000, "paidAmount": "400"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var got domain.Order
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(domain.StatusPartial, got.PaymentStatus)
	suite.True(got.DueAmount.Equal(decimal.NewFromInt(600)))
}

func (suite *HandlerTestSuite) TestCreateOrder_RejectedBeforeService() {
	for name, body := range map[string]string{
		"negative total":   `{"customerName": "Asha", "total": -5}`,
		"negative paid":    `{"customerName": "Asha", "total": 5, "paidAmount": -1}`,
		"missing customer": `{"total": 5}`,
		"customer id too long": `{"customerName": "Asha", "customerID": "` + strings.Repeat("c", 65) + `", "total": 5}`,
	} {
		suite.Run(name, func() {
			suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/orders", body).Code)
		})
	}
	suite.orders.AssertNotCalled(suite.T(), "CreateOrder", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateOrder_ServiceValidation() {
	suite.orders.On("CreateOrder", mock.Anything, mock.Anything).
		Return(nil, errors.Join(apperrors.ErrValidation, errors.New("paid amount exceeds total"))).Once()

	w := suite.do(http.MethodPost, "/orders", `{"customerName": "Asha", "total": 5, "paidAmount": 6}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "paid amount exceeds total")
}

func (suite *HandlerTestSuite) TestSetPaymentStatus() {
	order := &domain.Order{OrderID: "o1", Total: decimal.NewFromInt(50)}
	order.SetPaidAmount(decimal.NewFromInt(50))
	suite.orders.On("SetPaymentStatus", mock.Anything, "o1", domain.StatusPaid).Return(order, nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodPatch, "/orders/o1/payment-status", dto.SetPaymentStatusRequest{Status: "paid"}).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPatch, "/orders/o1/payment-status", dto.SetPaymentStatusRequest{Status: "partial"}).Code)
	suite.orders.AssertNumberOfCalls(suite.T(), "SetPaymentStatus", 1)
}

func (suite *HandlerTestSuite) TestSetPaymentStatus_ConflictWithAppliedPayments() {
	suite.orders.On("SetPaymentStatus", mock.Anything, "o2", domain.StatusUnpaid).
		Return(nil, errors.Join(apperrors.ErrConflict, errors.New("order ORD-2 has 1 payment(s) applied"))).Once()

	w := suite.do(http.MethodPatch, "/orders/o2/payment-status", dto.SetPaymentStatusRequest{Status: "unpaid"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorBody(w), "payment(s) applied")
}

func (suite *HandlerTestSuite) TestGetAndDeleteOrder() {
	suite.orders.On("GetOrder", mock.Anything, "gone").Return(nil, apperrors.ErrNotFound).Once()
	suite.orders.On("DeleteOrder", mock.Anything, "o1").Return(nil).Once()

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/orders/gone", nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/orders/o1", nil).Code)
	suite.orders.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreatePayment() {
	refID := "o1"
	suite.payments.On("CreatePayment", mock.Anything, mock.MatchedBy(func(r dto.CreatePaymentRequest) bool {
		return r.PartyType == "customer" && r.Amount.Equal(decimal.NewFromInt(400)) && *r.ReferenceID == refID
	})).Return(&domain.Payment{PaymentID: "p1", PartyType: domain.PartyCustomer, Amount: decimal.NewFromInt(400)}, nil).Once()

	w := suite.do(http.MethodPost, "/payments", dto.CreatePaymentRequest{
		PartyType:     "customer",
		Amount:        decimal.NewFromInt(400),
		ReferenceType: "order",
		ReferenceID:   &refID,
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.payments.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreatePayment_Rejected() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/payments", `{"partyType": "customer", "amount": 0}`).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/payments", `{"partyType": "bank", "amount": 10}`).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/payments",
		`{"partyType": "supplier", "partyID": "`+strings.Repeat("s", 65)+`", "amount": 10}`).Code)
	suite.payments.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreatePayment_InternalErrorIsHidden() {
	suite.payments.On("CreatePayment", mock.Anything, mock.Anything).Return(nil, errors.New("pq: deadlock detected")).Once()

	w := suite.do(http.MethodPost, "/payments", `{"partyType": "expense", "amount": "12.50"}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to record payment", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestDeletePayment() {
	suite.payments.On("DeletePayment", mock.Anything, "p1").Return(nil).Once()
	suite.payments.On("DeletePayment", mock.Anything, "p2").Return(apperrors.ErrNotFound).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/payments/p1", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/payments/p2", nil).Code)
}

func (suite *HandlerTestSuite) TestPurchaseBills() {
	suite.bills.On("CreatePurchaseBill", mock.Anything, mock.MatchedBy(func(r dto.CreatePurchaseBillRequest) bool {
		return r.SupplierID == "S1" && r.Total.Equal(decimal.RequireFromString("1200.50"))
	})).Return(&domain.PurchaseBill{BillID: "bill-1"}, nil).Once()
	suite.bills.On("DeletePurchaseBill", mock.Anything, "bill-1").Return(nil).Once()

	suite.Equal(http.StatusCreated, suite.do(http.MethodPost, "/purchases", `{"supplierID": "S1", "supplierName": "Mills", "total": "1200.50"}`).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/purchases", `{"supplierID": "S1", "supplierName": "Mills"}`).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/purchases/bill-1", nil).Code)
	suite.bills.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRealtimeSummary() {
	day := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	suite.summary.On("GetRealtimeSummary", mock.Anything, day).Return(&domain.RealtimeSummary{
		Date:         "2026-05-10",
		TotalOrders:  3,
		ExpectedCash: decimal.NewFromInt(1350),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/summary/realtime?date=2026-05-10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got domain.RealtimeSummary
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(3, got.TotalOrders)
	suite.True(got.ExpectedCash.Equal(decimal.NewFromInt(1350)))

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/summary/realtime?date=10-05-2026", nil).Code)
}

func (suite *HandlerTestSuite) TestDailySummaries() {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
	suite.summary.On("ListDailySummaries", mock.Anything, from, to).Return([]domain.DailySummary{{Date: from}}, nil).Once()
	suite.summary.On("GetDailySummary", mock.Anything, to).Return(nil, apperrors.ErrNotFound).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/summary/daily?from=2026-05-01&to=2026-05-31", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/summary/daily?from=2026-05-01", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/summary/daily/2026-05-31", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/summary/daily/may-31", nil).Code)
}

func (suite *HandlerTestSuite) TestSetOpeningBalance() {
	day := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	suite.summary.On("SetOpeningBalance", mock.Anything, day, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(500))
	}), testUserID).Return(&domain.DailySummary{Date: day, OpeningBalance: decimal.NewFromInt(500)}, nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodPut, "/summary/daily/2026-05-10/opening-balance", `{"amount": 500}`).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPut, "/summary/daily/2026-05-10/opening-balance", `{"amount": -1}`).Code)
	suite.summary.AssertNumberOfCalls(suite.T(), "SetOpeningBalance", 1)
}
