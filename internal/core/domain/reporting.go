package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTolerance is the rounding tolerance of the system-wide balance check.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// LedgerHealth is the outcome of the system-wide double-entry check.
type LedgerHealth struct {
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Difference   decimal.Decimal `json:"difference"`
	IsBalanced   bool            `json:"isBalanced"`
	CheckedAt    time.Time       `json:"checkedAt"`
}

// AccountBalance is the position of one account.
type AccountBalance struct {
	Account     Account         `json:"account"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"` // on the account's normal side
	AsOf        *time.Time      `json:"asOf,omitempty"`
}

// DailySummary is the explicitly maintained per-day aggregate. TotalSales only
// counts orders that are currently paid.
type DailySummary struct {
	Date                time.Time       `json:"date"`
	OpeningBalance      decimal.Decimal `json:"openingBalance"`
	OpeningBalanceSetAt *time.Time      `json:"openingBalanceSetAt,omitempty"`
	OpeningBalanceSetBy *string         `json:"openingBalanceSetBy,omitempty"`
	TotalSales          decimal.Decimal `json:"totalSales"`
	TotalOrders         int             `json:"totalOrders"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// RealtimeSummary is computed on demand from the orders and payments of one day.
type RealtimeSummary struct {
	Date                  string          `json:"date"`
	TotalOrders           int             `json:"totalOrders"`
	PaidOrdersCount       int             `json:"paidOrdersCount"`
	UnpaidOrdersCount     int             `json:"unpaidOrdersCount"`
	PartialOrdersCount    int             `json:"partialOrdersCount"`
	CashSales             decimal.Decimal `json:"cashSales"`
	CreditSales           decimal.Decimal `json:"creditSales"`
	TotalBusinessDone     decimal.Decimal `json:"totalBusinessDone"`
	CustomerReceiptsCount int             `json:"customerReceiptsCount"`
	CustomerReceipts      decimal.Decimal `json:"customerReceipts"`
	SupplierPaymentsCount int             `json:"supplierPaymentsCount"`
	SupplierPayments      decimal.Decimal `json:"supplierPayments"`
	ExpensesCount         int             `json:"expensesCount"`
	Expenses              decimal.Decimal `json:"expenses"`
	OpeningBalance        decimal.Decimal `json:"openingBalance"`
	ExpectedCash          decimal.Decimal `json:"expectedCash"`
}
