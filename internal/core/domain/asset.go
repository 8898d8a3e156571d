package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus is the lifecycle state of a fixed asset.
type AssetStatus string

const (
	AssetActive    AssetStatus = "ACTIVE"
	AssetFullyPaid AssetStatus = "FULLY_PAID"
	AssetInactive  AssetStatus = "INACTIVE"
)

// FixedAsset tracks a capitalised purchase and its payment-to-vendor status.
// DueAmount is always TotalCost - PaidAmount; PaidAmount only increases, via
// payment entries tagged to this asset.
type FixedAsset struct {
	AssetID      string          `json:"assetID"`
	AssetNumber  string          `json:"assetNumber"`
	Name         string          `json:"name"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	DueAmount    decimal.Decimal `json:"dueAmount"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	// VendorID is set when the asset was bought on vendor credit.
	VendorID *string `json:"vendorID,omitempty"`
	// FundingKind names the sub-account that pays for this asset.
	FundingKind AccountKind `json:"fundingKind"`
	Status      AssetStatus `json:"status"`
	AuditFields
}
