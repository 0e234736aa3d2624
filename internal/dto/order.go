package dto

import (
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the body for creating an order. PaidAmount defaults
// to Total when omitted, as most counter sales are settled immediately.
type CreateOrderRequest struct {
	OrderNumber  string           `json:"orderNumber" binding:"max=64"`
	CustomerID   *string          `json:"customerID" binding:"omitempty,max=64"`
	CustomerName string           `json:"customerName" binding:"required"`
	OrderDate    string           `json:"orderDate" binding:"omitempty,datetime=2006-01-02"`
	Total        decimal.Decimal  `json:"total" binding:"decimalgte0"`
	PaidAmount   *decimal.Decimal `json:"paidAmount" binding:"omitempty,decimalgte0"`
}

// SetPaymentStatusRequest toggles an order between paid and unpaid.
type SetPaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paid unpaid"`
}

// CreatePaymentRequest defines the body for recording a payment.
type CreatePaymentRequest struct {
	PaymentNumber string          `json:"paymentNumber" binding:"max=64"`
	PartyType     string          `json:"partyType" binding:"required,oneof=customer supplier expense"`
	PartyID       *string         `json:"partyID" binding:"omitempty,max=64"`
	PartyName     string          `json:"partyName"`
	Amount        decimal.Decimal `json:"amount" binding:"decimalgt0"`
	PaymentDate   string          `json:"paymentDate" binding:"omitempty,datetime=2006-01-02"`
	ReferenceType string          `json:"referenceType" binding:"omitempty,oneof=order purchase"`
	ReferenceID   *string         `json:"referenceID" binding:"omitempty,max=64"`
	Notes         string          `json:"notes"`
}

// CreatePurchaseBillRequest defines the body for recording a supplier bill.
type CreatePurchaseBillRequest struct {
	BillNumber   string          `json:"billNumber" binding:"max=64"`
	SupplierID   string          `json:"supplierID" binding:"required,max=64"`
	SupplierName string          `json:"supplierName" binding:"required"`
	BillDate     string          `json:"billDate" binding:"omitempty,datetime=2006-01-02"`
	Total        decimal.Decimal `json:"total" binding:"decimalgt0"`
}
