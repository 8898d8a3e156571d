package models

import "github.com/shopspring/decimal"

// AccountKind mirrors domain.AccountKind at the persistence layer.
type AccountKind string

// Account represents one balance-bearing ledger row.
// The balance column is a materialized cache of the ledger_entries log.
type Account struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	Kind           AccountKind     `db:"kind"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	Balance        decimal.Decimal `db:"balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
