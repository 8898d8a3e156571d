package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType mirrors domain.VoucherType at the persistence layer.
type VoucherType string

// Voucher is one append-only row in the vouchers table. The unique
// source_txn_number column enforces consolidation idempotency.
type Voucher struct {
	VoucherID       string          `db:"voucher_id"`
	VoucherNumber   string          `db:"voucher_number"`
	VoucherType     VoucherType     `db:"voucher_type"`
	VoucherDate     time.Time       `db:"voucher_date"`
	Narration       string          `db:"narration"`
	Amount          decimal.Decimal `db:"amount"`
	SourceAccount   string          `db:"source_account"`
	SourceTxnType   string          `db:"source_txn_type"`
	SourceTxnNumber string          `db:"source_txn_number"`
	SourceRefType   string          `db:"source_ref_type"`
	SourceRefID     string          `db:"source_ref_id"`
	RunningBalance  decimal.Decimal `db:"running_balance"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}
