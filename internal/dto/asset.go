package dto

import (
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AcquireAssetRequest registers a fixed asset purchase, optionally on
// vendor credit, with an optional down payment from a business line.
type AcquireAssetRequest struct {
	Name        string          `json:"name" binding:"required"`
	TotalCost   decimal.Decimal `json:"totalCost" binding:"required,decimalgt0"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	PayingKind  string          `json:"payingKind"`
	VendorID    string          `json:"vendorID"`
	FundingKind string          `json:"fundingKind" binding:"required"`
	Narration   string          `json:"narration"`
	TxnDate     time.Time       `json:"txnDate" binding:"required"`
}

// AssetPaymentRequest applies an instalment towards an asset's due amount.
type AssetPaymentRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	PayingKind string          `json:"payingKind" binding:"required"`
	Narration  string          `json:"narration"`
	TxnDate    time.Time       `json:"txnDate" binding:"required"`
}

// AssetResponse is the outbound shape of a fixed asset.
type AssetResponse struct {
	AssetID      string          `json:"assetID"`
	AssetNumber  string          `json:"assetNumber"`
	Name         string          `json:"name"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	DueAmount    decimal.Decimal `json:"dueAmount"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	VendorID     *string         `json:"vendorID,omitempty"`
	FundingKind  string          `json:"fundingKind"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToAssetResponse converts a domain asset to its outbound shape.
func ToAssetResponse(a *domain.FixedAsset) AssetResponse {
	return AssetResponse{
		AssetID:      a.AssetID,
		AssetNumber:  a.AssetNumber,
		Name:         a.Name,
		TotalCost:    a.TotalCost,
		PaidAmount:   a.PaidAmount,
		DueAmount:    a.DueAmount,
		PurchaseDate: a.PurchaseDate,
		VendorID:     a.VendorID,
		FundingKind:  string(a.FundingKind),
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
	}
}
