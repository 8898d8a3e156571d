package services

import (
	"context"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/sevacare/hospital_finance_app/internal/dto"
)

// AssetReaderSvc defines read operations for the fixed asset register.
type AssetReaderSvc interface {
	GetAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)
	ListAssets(ctx context.Context) ([]domain.FixedAsset, error)
}

// AcquisitionResult reports the asset and any entries its acquisition posted.
type AcquisitionResult struct {
	Asset         domain.FixedAsset
	PurchaseEntry *domain.LedgerEntry
	PaymentEntry  *domain.LedgerEntry
}

// AssetWriterSvc defines write operations for the fixed asset register.
type AssetWriterSvc interface {
	// AcquireAsset registers an asset. On vendor credit it books a PURCHASE
	// on the vendor ledger referencing the asset; a down payment posts a
	// FUND_OUT from the paying business line, all in one transaction.
	AcquireAsset(ctx context.Context, req dto.AcquireAssetRequest, actorID string) (*AcquisitionResult, error)

	// ApplyPayment reduces the asset's due. Payment above the remaining due
	// is rejected with ErrValidation. Reaching zero due sets FULLY_PAID.
	ApplyPayment(ctx context.Context, assetID string, req dto.AssetPaymentRequest, actorID string) (*domain.FixedAsset, *domain.LedgerEntry, error)
}

// AssetSvcFacade combines the asset service interfaces.
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
