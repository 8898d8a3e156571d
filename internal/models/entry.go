package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryDirection mirrors domain.EntryDirection at the persistence layer.
type EntryDirection string

// LedgerEntry is one append-only row in the ledger_entries table.
// Rows are never updated or deleted; corrections are reversing entries.
type LedgerEntry struct {
	EntryID        string          `db:"entry_id"`
	TxnNumber      string          `db:"txn_number"`
	AccountID      string          `db:"account_id"`
	Direction      EntryDirection  `db:"direction"`
	Amount         decimal.Decimal `db:"amount"`
	Category       string          `db:"category"`
	Narration      string          `db:"narration"`
	TxnDate        time.Time       `db:"txn_date"`
	ReferenceType  string          `db:"reference_type"`
	ReferenceID    string          `db:"reference_id"`
	VoucherNumber  *string         `db:"voucher_number"`
	RunningBalance decimal.Decimal `db:"running_balance"`
	AdjustmentSign int             `db:"adjustment_sign"`
	CreatedAt      time.Time       `db:"created_at"`
	CreatedBy      string          `db:"created_by"`
}
