package domain

import (
	"strings"
	"time"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// NormalBalance is the side on which an account's balance grows.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// NormalBalanceFor returns the conventional normal side for an account type.
func NormalBalanceFor(t AccountType) NormalBalance {
	switch t {
	case Asset, Expense:
		return DebitNormal
	default:
		return CreditNormal
	}
}

// Standard chart of accounts codes.
const (
	CodeAssets            = "1000"
	CodeCash              = "1100"
	CodeBank              = "1200"
	CodeReceivable        = "1300"
	CodeInventory         = "1400"
	CodeLiabilities       = "2000"
	CodePayable           = "2100"
	CodeGSTPayable        = "2200"
	CodeEquity            = "3000"
	CodeCapital           = "3100"
	CodeRetainedEarnings  = "3200"
	CodeIncome            = "4000"
	CodeSalesRevenue      = "4100"
	CodeOtherIncome       = "4200"
	CodeExpenses          = "5000"
	CodeCostOfGoodsSold   = "5100"
	CodeOperatingExpenses = "5200"
	CodePurchaseExpenses  = "5300"
)

// WalkInCustomerPartyID is used for orders that carry no customer.
const WalkInCustomerPartyID = "WALKIN"

const subAccountCodeSplitter = "-"

// MaxPartyIDLength bounds customer and supplier ids so that every sub-account
// code fits the accounts.code column.
const MaxPartyIDLength = 64

// Account is a node of the chart of accounts. Party sub-accounts carry the
// customer or supplier id they were derived from.
type Account struct {
	AccountID     string        `json:"accountID"`
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	AccountType   AccountType   `json:"accountType"`
	NormalBalance NormalBalance `json:"normalBalance"`
	ParentCode    *string       `json:"parentCode,omitempty"`
	PartyID       *string       `json:"partyID,omitempty"`
	IsSystem      bool          `json:"isSystem"`
	IsActive      bool          `json:"isActive"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// ReceivableCode is the deterministic code of a customer's receivable sub-account.
func ReceivableCode(customerID string) string {
	return SubAccountCode(CodeReceivable, customerID)
}

// PayableCode is the deterministic code of a supplier's payable sub-account.
func PayableCode(supplierID string) string {
	return SubAccountCode(CodePayable, supplierID)
}

// SubAccountCode joins a control account code and a party id.
func SubAccountCode(prefix, partyID string) string {
	return prefix + subAccountCodeSplitter + strings.TrimSpace(partyID)
}

// ChartEntry describes one account of the standard chart.
type ChartEntry struct {
	Code       string
	Name       string
	Type       AccountType
	ParentCode string
}

// StandardChart is seeded at start-up. Parents come before children.
var StandardChart = []ChartEntry{
	{CodeAssets, "Assets", Asset, ""},
	{CodeCash, "Cash", Asset, CodeAssets},
	{CodeBank, "Bank", Asset, CodeAssets},
	{CodeReceivable, "Accounts Receivable", Asset, CodeAssets},
	{CodeInventory, "Inventory", Asset, CodeAssets},
	{CodeLiabilities, "Liabilities", Liability, ""},
	{CodePayable, "Accounts Payable", Liability, CodeLiabilities},
	{CodeGSTPayable, "GST Payable", Liability, CodeLiabilities},
	{CodeEquity, "Equity", Equity, ""},
	{CodeCapital, "Capital", Equity, CodeEquity},
	{CodeRetainedEarnings, "Retained Earnings", Equity, CodeEquity},
	{CodeIncome, "Income", Revenue, ""},
	{CodeSalesRevenue, "Sales Revenue", Revenue, CodeIncome},
	{CodeOtherIncome, "Other Income", Revenue, CodeIncome},
	{CodeExpenses, "Expenses", Expense, ""},
	{CodeCostOfGoodsSold, "Cost of Goods Sold", Expense, CodeExpenses},
	{CodeOperatingExpenses, "Operating Expenses", Expense, CodeExpenses},
	{CodePurchaseExpenses, "Purchase Expenses", Expense, CodeExpenses},
}
