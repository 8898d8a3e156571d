package repositories

import (
	"context"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VendorWithBalance pairs a vendor with the signed balance of its backing
// account (positive = due, negative = advance).
type VendorWithBalance struct {
	Vendor  domain.Vendor
	Balance decimal.Decimal
}

// VendorRepository provides read access to vendors. Creation and balance
// movement happen inside ledger posting transactions.
type VendorRepository interface {
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	FindVendorWithBalance(ctx context.Context, vendorID string) (*VendorWithBalance, error)
	ListVendors(ctx context.Context) ([]VendorWithBalance, error)
}
