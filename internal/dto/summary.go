package dto

import "github.com/shopspring/decimal"

// RealtimeSummaryParams selects the business date of a realtime summary.
type RealtimeSummaryParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ListDailySummariesParams selects a range of stored daily rows.
type ListDailySummariesParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// SetOpeningBalanceRequest sets the cash in the drawer at the start of a day.
type SetOpeningBalanceRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"decimalgte0"`
}
