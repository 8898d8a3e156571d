package repositories

import (
	"context"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
)

// AssetRepository provides read access to the fixed asset register.
// Acquisition and payments happen inside ledger posting transactions.
type AssetRepository interface {
	FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)
	ListAssets(ctx context.Context) ([]domain.FixedAsset, error)
}
