package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is derived from an order's paid and due amounts.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusUnpaid  PaymentStatus = "unpaid"
	StatusPartial PaymentStatus = "partial"
)

// IsValid reports whether s is a known status.
func (s PaymentStatus) IsValid() bool {
	return s == StatusPaid || s == StatusUnpaid || s == StatusPartial
}

// DerivePaymentStatus applies the status rule: paid when nothing is due and
// something was paid, unpaid when nothing was paid, partial otherwise.
func DerivePaymentStatus(paid, due decimal.Decimal) PaymentStatus {
	switch {
	case due.IsZero() && paid.IsPositive():
		return StatusPaid
	case paid.IsZero():
		return StatusUnpaid
	default:
		return StatusPartial
	}
}

// Order is the sales invoice as the ledger sees it.
type Order struct {
	OrderID       string          `json:"orderID"`
	OrderNumber   string          `json:"orderNumber"`
	CustomerID    *string         `json:"customerID,omitempty"`
	CustomerName  string          `json:"customerName"`
	OrderDate     time.Time       `json:"orderDate"`
	Total         decimal.Decimal `json:"total"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	DueAmount     decimal.Decimal `json:"dueAmount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	IsDeleted     bool            `json:"isDeleted"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// SetPaidAmount updates PaidAmount and re-derives DueAmount and PaymentStatus.
func (o *Order) SetPaidAmount(paid decimal.Decimal) {
	o.PaidAmount = paid
	o.DueAmount = o.Total.Sub(paid)
	o.PaymentStatus = DerivePaymentStatus(o.PaidAmount, o.DueAmount)
}

// CustomerPartyID returns the party id used for the receivable sub-account.
func (o *Order) CustomerPartyID() string {
	if o.CustomerID == nil || *o.CustomerID == "" {
		return WalkInCustomerPartyID
	}
	return *o.CustomerID
}

// IsPaid reports whether the order is currently fully paid.
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == StatusPaid
}
