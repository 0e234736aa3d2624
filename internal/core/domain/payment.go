package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyType classifies who a payment was exchanged with.
type PartyType string

const (
	PartyCustomer PartyType = "customer"
	PartySupplier PartyType = "supplier"
	PartyExpense  PartyType = "expense"
)

// IsValid reports whether p is a known party type.
func (p PartyType) IsValid() bool {
	return p == PartyCustomer || p == PartySupplier || p == PartyExpense
}

// PaymentReferenceType names the business document a payment settles.
type PaymentReferenceType string

const (
	PaymentRefNone     PaymentReferenceType = ""
	PaymentRefOrder    PaymentReferenceType = "order"
	PaymentRefPurchase PaymentReferenceType = "purchase"
)

// Payment is money received from a customer or paid to a supplier or for an expense.
type Payment struct {
	PaymentID     string               `json:"paymentID"`
	PaymentNumber string               `json:"paymentNumber"`
	PartyType     PartyType            `json:"partyType"`
	PartyID       *string              `json:"partyID,omitempty"`
	PartyName     string               `json:"partyName"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentDate   time.Time            `json:"paymentDate"`
	ReferenceType PaymentReferenceType `json:"referenceType,omitempty"`
	ReferenceID   *string              `json:"referenceID,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	IsDeleted     bool                 `json:"isDeleted"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ReferencesOrder reports whether the payment names a specific order.
func (p *Payment) ReferencesOrder() bool {
	return p.ReferenceType == PaymentRefOrder && p.ReferenceID != nil && *p.ReferenceID != ""
}

// PaymentApplication records that part of a payment was applied to an order.
// There is at most one per (payment, order).
type PaymentApplication struct {
	PaymentID string          `json:"paymentID"`
	OrderID   string          `json:"orderID"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

// PurchaseBill is a supplier invoice.
type PurchaseBill struct {
	BillID       string          `json:"billID"`
	BillNumber   string          `json:"billNumber"`
	SupplierID   string          `json:"supplierID"`
	SupplierName string          `json:"supplierName"`
	BillDate     time.Time       `json:"billDate"`
	Total        decimal.Decimal `json:"total"`
	IsDeleted    bool            `json:"isDeleted"`
	CreatedAt    time.Time       `json:"createdAt"`
}
