package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind identifies which business line an account belongs to.
type AccountKind string

const (
	KindHospital  AccountKind = "HOSPITAL"
	KindMedicine  AccountKind = "MEDICINE"
	KindOptics    AccountKind = "OPTICS"
	KindOperation AccountKind = "OPERATION"
	KindVendor    AccountKind = "VENDOR"
	KindMain      AccountKind = "MAIN"
)

// SubLedgerKinds are the cash-holding business lines. Vendor accounts are
// payable ledgers and the Main account is the consolidated voucher stream;
// neither records its own income/expense.
var SubLedgerKinds = []AccountKind{KindHospital, KindMedicine, KindOptics, KindOperation}

// IsSubLedger reports whether the kind is one of the cash-holding business lines.
func (k AccountKind) IsSubLedger() bool {
	switch k {
	case KindHospital, KindMedicine, KindOptics, KindOperation:
		return true
	}
	return false
}

// Account represents one balance-bearing ledger.
// Invariant: Balance == OpeningBalance + sum of all entries' signed amounts.
// The Balance column is a materialized cache of the entry log; the log is the
// source of truth and the cache is recomputable at any time.
type Account struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Kind           AccountKind     `json:"kind"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
