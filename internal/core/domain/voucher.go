package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType is the Main Account side of a mirrored fund movement.
type VoucherType string

const (
	// VoucherDebit decreases the Main Account balance (a sub-account fund-out).
	VoucherDebit VoucherType = "DEBIT"
	// VoucherCredit increases the Main Account balance (a sub-account fund-in).
	VoucherCredit VoucherType = "CREDIT"
)

// Voucher is an immutable Main-Account-only record mirroring one fund
// movement from a sub-account. SourceTxnNumber is unique across all vouchers,
// which is what makes consolidation idempotent under redelivery.
type Voucher struct {
	VoucherID     string          `json:"voucherID"`
	VoucherNumber string          `json:"voucherNumber"`
	Type          VoucherType     `json:"type"`
	Date          time.Time       `json:"date"`
	Narration     string          `json:"narration"`
	Amount        decimal.Decimal `json:"amount"`
	// Traceability back to the originating sub-ledger entry.
	SourceAccount   string    `json:"sourceAccount"`
	SourceTxnType   string    `json:"sourceTxnType"`
	SourceTxnNumber string    `json:"sourceTxnNumber"`
	SourceReference Reference `json:"sourceReference"`
	// RunningBalance is the Main Account balance immediately after this voucher.
	RunningBalance decimal.Decimal `json:"runningBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// SignedAmount returns the voucher's effect on the Main Account balance.
func (v Voucher) SignedAmount() decimal.Decimal {
	if v.Type == VoucherDebit {
		return v.Amount.Neg()
	}
	return v.Amount
}
