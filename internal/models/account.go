package models

import "time"

// Account is the accounts table row.
type Account struct {
	AccountID     string    `db:"account_id"`
	Code          string    `db:"code"`
	Name          string    `db:"name"`
	AccountType   string    `db:"account_type"`
	NormalBalance string    `db:"normal_balance"`
	ParentCode    *string   `db:"parent_code"`
	PartyID       *string   `db:"party_id"`
	IsSystem      bool      `db:"is_system"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
}
