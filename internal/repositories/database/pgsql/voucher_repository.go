package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/apperrors"
	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	portsrepo "github.com/sevacare/hospital_finance_app/internal/core/ports/repositories"
	"github.com/sevacare/hospital_finance_app/internal/models"
	"github.com/sevacare/hospital_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const voucherColumns = `voucher_id, voucher_number, voucher_type, voucher_date, narration, amount, source_account, source_txn_type, source_txn_number, source_ref_type, source_ref_id, running_balance, created_at, created_by`

type PgxVoucherRepository struct {
	pool *pgxpool.Pool
}

// newPgxVoucherRepository creates a new read repository for the voucher stream.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepository {
	return &PgxVoucherRepository{pool: pool}
}

// Ensure PgxVoucherRepository implements portsrepo.VoucherRepository
var _ portsrepo.VoucherRepository = (*PgxVoucherRepository)(nil)

// scanVoucher scans one vouchers row in voucherColumns order.
func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.VoucherNumber,
		&m.VoucherType,
		&m.VoucherDate,
		&m.Narration,
		&m.Amount,
		&m.SourceAccount,
		&m.SourceTxnType,
		&m.SourceTxnNumber,
		&m.SourceRefType,
		&m.SourceRefID,
		&m.RunningBalance,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

// FindVoucherByNumber retrieves one voucher.
func (r *PgxVoucherRepository) FindVoucherByNumber(ctx context.Context, voucherNumber string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE voucher_number = $1;`
	m, err := scanVoucher(r.pool.QueryRow(ctx, query, voucherNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherNumber, err)
	}
	voucher := mapping.ToDomainVoucher(m)
	return &voucher, nil
}

// FindVoucherBySourceTxn retrieves the voucher mirroring a source transaction.
func (r *PgxVoucherRepository) FindVoucherBySourceTxn(ctx context.Context, sourceTxnNumber string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE source_txn_number = $1;`
	m, err := scanVoucher(r.pool.QueryRow(ctx, query, sourceTxnNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find voucher for txn %s: %w", sourceTxnNumber, err)
	}
	voucher := mapping.ToDomainVoucher(m)
	return &voucher, nil
}

// ListVouchers returns the vouchers dated within [from, to] in posting order
// plus the Main Account balance carried into the range, derived from the
// voucher stream itself.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, from, to time.Time) ([]domain.Voucher, decimal.Decimal, error) {
	var opening decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT (SELECT opening_balance FROM accounts WHERE kind = 'MAIN')
		     + COALESCE(SUM(CASE WHEN voucher_type = 'CREDIT' THEN amount ELSE -amount END), 0)
		FROM vouchers
		WHERE voucher_date < $1;
	`, from).Scan(&opening)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to compute opening balance: %w", err)
	}

	query := `
		SELECT ` + voucherColumns + `
		FROM vouchers
		WHERE voucher_date >= $1 AND voucher_date <= $2
		ORDER BY voucher_date ASC, created_at ASC;
	`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to list vouchers: %w", err)
	}
	defer rows.Close()

	var modelVouchers []models.Voucher
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("failed to scan voucher row: %w", err)
		}
		modelVouchers = append(modelVouchers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to iterate voucher rows: %w", err)
	}

	return mapping.ToDomainVoucherSlice(modelVouchers), opening, nil
}
