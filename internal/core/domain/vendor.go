package domain

import (
	"github.com/shopspring/decimal"
)

// VendorBalanceType indicates which way the vendor relationship currently points.
type VendorBalanceType string

const (
	// BalanceDue means the hospital owes the vendor.
	BalanceDue VendorBalanceType = "DUE"
	// BalanceAdvance means the vendor owes the hospital (overpayment/advance).
	BalanceAdvance VendorBalanceType = "ADVANCE"
)

// Vendor is a payable/receivable relationship with an external party, backed
// by its own account of kind VENDOR. The vendor's balance is driven entirely
// by purchase/payment/adjustment entries on that account; a positive balance
// is an amount due, a negative one an advance.
type Vendor struct {
	VendorID         string            `json:"vendorID"`
	VendorNumber     string            `json:"vendorNumber"`
	AccountID        string            `json:"accountID"`
	Name             string            `json:"name"`
	ContactPhone     string            `json:"contactPhone"`
	OpeningBalance   decimal.Decimal   `json:"openingBalance"`
	BalanceType      VendorBalanceType `json:"balanceType"`
	CreditLimit      decimal.Decimal   `json:"creditLimit"`
	PaymentTermsDays int               `json:"paymentTermsDays"`
	IsActive         bool              `json:"isActive"`
	AuditFields
}

// BalanceTypeFor derives the balance-direction flag from a signed balance.
func BalanceTypeFor(balance decimal.Decimal) VendorBalanceType {
	if balance.IsNegative() {
		return BalanceAdvance
	}
	return BalanceDue
}
