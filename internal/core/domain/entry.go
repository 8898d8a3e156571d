package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryDirection classifies what a ledger entry does to its account.
type EntryDirection string

const (
	// DirectionIncome and DirectionExpense are internal to a sub-account's own
	// statements and are not mirrored to the Main Account.
	DirectionIncome  EntryDirection = "INCOME"
	DirectionExpense EntryDirection = "EXPENSE"

	// DirectionFundIn and DirectionFundOut represent cash entering/leaving the
	// organisation's overall position; each yields exactly one Main Account voucher.
	DirectionFundIn  EntryDirection = "FUND_IN"
	DirectionFundOut EntryDirection = "FUND_OUT"

	// DirectionPurchase, DirectionPayment and DirectionAdjustment apply to
	// vendor accounts: purchase raises the amount due, payment lowers it.
	DirectionPurchase   EntryDirection = "PURCHASE"
	DirectionPayment    EntryDirection = "PAYMENT"
	DirectionAdjustment EntryDirection = "ADJUSTMENT"
)

// IsFundMovement reports whether entries in this direction must be mirrored
// as Main Account vouchers.
func (d EntryDirection) IsFundMovement() bool {
	return d == DirectionFundIn || d == DirectionFundOut
}

// Opposite returns the direction a reversing entry must carry.
func (d EntryDirection) Opposite() EntryDirection {
	switch d {
	case DirectionIncome:
		return DirectionExpense
	case DirectionExpense:
		return DirectionIncome
	case DirectionFundIn:
		return DirectionFundOut
	case DirectionFundOut:
		return DirectionFundIn
	case DirectionPurchase:
		return DirectionPayment
	case DirectionPayment:
		return DirectionPurchase
	default:
		return DirectionAdjustment
	}
}

// LedgerEntry is an immutable record in exactly one account's log.
// Amount, direction and date are never mutated after creation; corrections
// are made by posting a reversing entry.
type LedgerEntry struct {
	EntryID   string          `json:"entryID"`
	TxnNumber string          `json:"txnNumber"`
	AccountID string          `json:"accountID"`
	Direction EntryDirection  `json:"direction"`
	Amount    decimal.Decimal `json:"amount"` // always strictly positive
	Category  string          `json:"category"`
	Narration string          `json:"narration"`
	TxnDate   time.Time       `json:"txnDate"` // business date, distinct from CreatedAt
	Reference Reference       `json:"reference"`
	// VoucherNumber links to the Main Account voucher this entry produced.
	// Set if and only if Direction is a fund movement.
	VoucherNumber *string `json:"voucherNumber,omitempty"`
	// RunningBalance is the account balance immediately after this entry,
	// in insertion order.
	RunningBalance decimal.Decimal `json:"runningBalance"`
	// AdjustmentSign is -1 for a decreasing ADJUSTMENT, +1 otherwise.
	AdjustmentSign int       `json:"adjustmentSign"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
}
