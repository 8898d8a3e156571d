package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/sevacare/hospital_finance_app/internal/apperrors"
	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	portsrepo "github.com/sevacare/hospital_finance_app/internal/core/ports/repositories"
	"github.com/sevacare/hospital_finance_app/internal/models"
	"github.com/sevacare/hospital_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const assetColumns = `asset_id, asset_number, name, total_cost, paid_amount, due_amount, purchase_date, vendor_id, funding_kind, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxAssetRepository struct {
	pool *pgxpool.Pool
}

// newPgxAssetRepository creates a new read repository for the asset register.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepository {
	return &PgxAssetRepository{pool: pool}
}

// Ensure PgxAssetRepository implements portsrepo.AssetRepository
var _ portsrepo.AssetRepository = (*PgxAssetRepository)(nil)

// scanAsset scans one fixed_assets row in assetColumns order.
func scanAsset(row pgx.Row) (models.FixedAsset, error) {
	var m models.FixedAsset
	err := row.Scan(
		&m.AssetID,
		&m.AssetNumber,
		&m.Name,
		&m.TotalCost,
		&m.PaidAmount,
		&m.DueAmount,
		&m.PurchaseDate,
		&m.VendorID,
		&m.FundingKind,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindAssetByID retrieves one asset.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets WHERE asset_id = $1;`
	m, err := scanAsset(r.pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}
	asset := mapping.ToDomainFixedAsset(m)
	return &asset, nil
}

// ListAssets retrieves the register ordered by asset number.
func (r *PgxAssetRepository) ListAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets ORDER BY asset_number;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.FixedAsset
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, mapping.ToDomainFixedAsset(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate asset rows: %w", err)
	}
	return assets, nil
}
