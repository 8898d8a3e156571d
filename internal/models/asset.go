package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedAsset is one row in the fixed_assets table. due_amount is kept equal
// to total_cost - paid_amount by the repository inside the same transaction
// that records the payment entries.
type FixedAsset struct {
	AssetID      string          `db:"asset_id"`
	AssetNumber  string          `db:"asset_number"`
	Name         string          `db:"name"`
	TotalCost    decimal.Decimal `db:"total_cost"`
	PaidAmount   decimal.Decimal `db:"paid_amount"`
	DueAmount    decimal.Decimal `db:"due_amount"`
	PurchaseDate time.Time       `db:"purchase_date"`
	VendorID     *string         `db:"vendor_id"`
	FundingKind  AccountKind     `db:"funding_kind"`
	Status       string          `db:"status"`
	AuditFields
}
