package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the orders row.
type Order struct {
	OrderID       string          `db:"order_id"`
	OrderNumber   string          `db:"order_number"`
	CustomerID    *string         `db:"customer_id"`
	CustomerName  string          `db:"customer_name"`
	OrderDate     time.Time       `db:"order_date"`
	Total         decimal.Decimal `db:"total"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	DueAmount     decimal.Decimal `db:"due_amount"`
	PaymentStatus string          `db:"payment_status"`
	IsDeleted     bool            `db:"is_deleted"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// Payment is the payments row.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	PaymentNumber string          `db:"payment_number"`
	PartyType     string          `db:"party_type"`
	PartyID       *string         `db:"party_id"`
	PartyName     string          `db:"party_name"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentDate   time.Time       `db:"payment_date"`
	ReferenceType *string         `db:"reference_type"`
	ReferenceID   *string         `db:"reference_id"`
	Notes         *string         `db:"notes"`
	IsDeleted     bool            `db:"is_deleted"`
	CreatedAt     time.Time       `db:"created_at"`
}

// PaymentApplication is the payment_applications row.
type PaymentApplication struct {
	PaymentID string          `db:"payment_id"`
	OrderID   string          `db:"order_id"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

// PurchaseBill is the purchase_bills row.
type PurchaseBill struct {
	BillID       string          `db:"bill_id"`
	BillNumber   string          `db:"bill_number"`
	SupplierID   string          `db:"supplier_id"`
	SupplierName string          `db:"supplier_name"`
	BillDate     time.Time       `db:"bill_date"`
	Total        decimal.Decimal `db:"total"`
	IsDeleted    bool            `db:"is_deleted"`
	CreatedAt    time.Time       `db:"created_at"`
}

// DailySummary is the daily_summaries row.
type DailySummary struct {
	SummaryDate         time.Time       `db:"summary_date"`
	OpeningBalance      decimal.Decimal `db:"opening_balance"`
	OpeningBalanceSetAt *time.Time      `db:"opening_balance_set_at"`
	OpeningBalanceSetBy *string         `db:"opening_balance_set_by"`
	TotalSales          decimal.Decimal `db:"total_sales"`
	TotalOrders         int             `db:"total_orders"`
	UpdatedAt           time.Time       `db:"updated_at"`
}
