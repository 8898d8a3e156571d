package models

import "github.com/shopspring/decimal"

// Vendor is one row in the vendors table. The signed balance lives on the
// vendor's backing account; balance_type is derived and cached here for
// listing queries.
type Vendor struct {
	VendorID         string          `db:"vendor_id"`
	VendorNumber     string          `db:"vendor_number"`
	AccountID        string          `db:"account_id"`
	Name             string          `db:"name"`
	ContactPhone     string          `db:"contact_phone"`
	OpeningBalance   decimal.Decimal `db:"opening_balance"`
	BalanceType      string          `db:"balance_type"`
	CreditLimit      decimal.Decimal `db:"credit_limit"`
	PaymentTermsDays int             `db:"payment_terms_days"`
	IsActive         bool            `db:"is_active"`
	AuditFields
}
