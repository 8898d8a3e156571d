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
	"github.com/shopspring/decimal"
)

const vendorColumns = `vendor_id, vendor_number, account_id, name, contact_phone, opening_balance, balance_type, credit_limit, payment_terms_days, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxVendorRepository struct {
	pool *pgxpool.Pool
}

// newPgxVendorRepository creates a new read repository for vendor data.
func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepository {
	return &PgxVendorRepository{pool: pool}
}

// Ensure PgxVendorRepository implements portsrepo.VendorRepository
var _ portsrepo.VendorRepository = (*PgxVendorRepository)(nil)

// scanVendor scans one vendors row in vendorColumns order.
func scanVendor(row pgx.Row) (models.Vendor, error) {
	var m models.Vendor
	err := row.Scan(
		&m.VendorID,
		&m.VendorNumber,
		&m.AccountID,
		&m.Name,
		&m.ContactPhone,
		&m.OpeningBalance,
		&m.BalanceType,
		&m.CreditLimit,
		&m.PaymentTermsDays,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindVendorByID retrieves one vendor.
func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE vendor_id = $1;`
	m, err := scanVendor(r.pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor %s: %w", vendorID, err)
	}
	vendor := mapping.ToDomainVendor(m)
	return &vendor, nil
}

// FindVendorWithBalance retrieves one vendor joined with its backing
// account's cached balance.
func (r *PgxVendorRepository) FindVendorWithBalance(ctx context.Context, vendorID string) (*portsrepo.VendorWithBalance, error) {
	query := `
		SELECT ` + qualifyColumns("v", vendorColumns) + `, a.balance
		FROM vendors v
		JOIN accounts a ON a.account_id = v.account_id
		WHERE v.vendor_id = $1;
	`
	var m models.Vendor
	var balance decimal.Decimal
	err := r.pool.QueryRow(ctx, query, vendorID).Scan(
		&m.VendorID,
		&m.VendorNumber,
		&m.AccountID,
		&m.Name,
		&m.ContactPhone,
		&m.OpeningBalance,
		&m.BalanceType,
		&m.CreditLimit,
		&m.PaymentTermsDays,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&balance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor %s: %w", vendorID, err)
	}

	return &portsrepo.VendorWithBalance{
		Vendor:  mapping.ToDomainVendor(m),
		Balance: balance,
	}, nil
}

// ListVendors retrieves all vendors with their balances, by vendor number.
func (r *PgxVendorRepository) ListVendors(ctx context.Context) ([]portsrepo.VendorWithBalance, error) {
	query := `
		SELECT ` + qualifyColumns("v", vendorColumns) + `, a.balance
		FROM vendors v
		JOIN accounts a ON a.account_id = v.account_id
		ORDER BY v.vendor_number;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	var out []portsrepo.VendorWithBalance
	for rows.Next() {
		var m models.Vendor
		var balance decimal.Decimal
		if err := rows.Scan(
			&m.VendorID,
			&m.VendorNumber,
			&m.AccountID,
			&m.Name,
			&m.ContactPhone,
			&m.OpeningBalance,
			&m.BalanceType,
			&m.CreditLimit,
			&m.PaymentTermsDays,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&balance,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vendor row: %w", err)
		}
		out = append(out, portsrepo.VendorWithBalance{
			Vendor:  mapping.ToDomainVendor(m),
			Balance: balance,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vendor rows: %w", err)
	}
	return out, nil
}
