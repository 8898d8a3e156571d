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
	"github.com/shopspring/decimal"
)

// ledgerTxRepository implements the posting primitives on one open pgx
// transaction. Instances only exist inside a WithTx call.
type ledgerTxRepository struct {
	tx pgx.Tx
}

var _ portsrepo.LedgerTxRepository = (*ledgerTxRepository)(nil)

// scanAccount scans one accounts row in accountColumns order.
func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.Kind,
		&m.OpeningBalance,
		&m.Balance,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// GetAccountForUpdate loads and row-locks one account.
func (r *ledgerTxRepository) GetAccountForUpdate(ctx context.Context, accountID string) (domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`
	m, err := scanAccount(r.tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, apperrors.ErrNotFound
		}
		return domain.Account{}, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}
	return mapping.ToDomainAccount(m), nil
}

// GetAccountByKindForUpdate loads and row-locks the singleton account of a
// non-vendor kind.
func (r *ledgerTxRepository) GetAccountByKindForUpdate(ctx context.Context, kind domain.AccountKind) (domain.Account, error) {
	if kind == domain.KindVendor {
		return domain.Account{}, fmt.Errorf("%w: vendor accounts are not singletons", apperrors.ErrValidation)
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE kind = $1 FOR UPDATE;`
	m, err := scanAccount(r.tx.QueryRow(ctx, query, string(kind)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, fmt.Errorf("%w: no %s account", apperrors.ErrNotFound, kind)
		}
		return domain.Account{}, fmt.Errorf("failed to lock %s account: %w", kind, err)
	}
	return mapping.ToDomainAccount(m), nil
}

// IsPeriodFinalized reports whether the business date is closed.
func (r *ledgerTxRepository) IsPeriodFinalized(ctx context.Context, date time.Time) (bool, error) {
	var exists bool
	err := r.tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM collection_periods WHERE period_date = $1);`, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check collection period: %w", err)
	}
	return exists, nil
}

// NextSequenceNumber reserves the next identifier in the (prefix, date)
// namespace via an upsert on the counter row. The row stays locked for the
// rest of the transaction, so concurrent postings for the same namespace
// serialize here and committed numbers are gapless per namespace.
func (r *ledgerTxRepository) NextSequenceNumber(ctx context.Context, prefix string, date time.Time) (string, error) {
	dateKey := domain.SequenceDateKey(prefix, date)

	var counter int64
	err := r.tx.QueryRow(ctx, `
		INSERT INTO sequences (prefix, date_key, counter)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefix, date_key)
		DO UPDATE SET counter = sequences.counter + 1
		RETURNING counter;
	`, prefix, dateKey).Scan(&counter)
	if err != nil {
		if isUniqueViolation(err, "") {
			return "", fmt.Errorf("%w: sequence %s/%s: %v", apperrors.ErrDuplicateSequence, prefix, dateKey, err)
		}
		return "", fmt.Errorf("failed to advance sequence %s/%s: %w", prefix, dateKey, err)
	}

	return domain.FormatSequenceNumber(prefix, dateKey, counter), nil
}

// InsertEntry appends one immutable ledger entry.
func (r *ledgerTxRepository) InsertEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (` + ledgerEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.tx.Exec(ctx, query,
		m.EntryID,
		m.TxnNumber,
		m.AccountID,
		m.Direction,
		m.Amount,
		m.Category,
		m.Narration,
		m.TxnDate,
		m.ReferenceType,
		m.ReferenceID,
		m.VoucherNumber,
		m.RunningBalance,
		m.AdjustmentSign,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: entry %s already exists", apperrors.ErrDuplicate, m.TxnNumber)
		}
		return fmt.Errorf("failed to insert entry %s: %w", m.EntryID, err)
	}
	return nil
}

// AddToAccountBalance bumps the cached balance of a locked account.
func (r *ledgerTxRepository) AddToAccountBalance(ctx context.Context, accountID string, delta decimal.Decimal, actorID string, now time.Time) error {
	tag, err := r.tx.Exec(ctx, `
		UPDATE accounts
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`, accountID, delta, now, actorID)
	if err != nil {
		return fmt.Errorf("failed to update balance of account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindVoucherBySourceTxn returns the voucher mirroring the source
// transaction, or nil if none exists yet.
func (r *ledgerTxRepository) FindVoucherBySourceTxn(ctx context.Context, txnNumber string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE source_txn_number = $1;`
	m, err := scanVoucher(r.tx.QueryRow(ctx, query, txnNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find voucher for txn %s: %w", txnNumber, err)
	}
	voucher := mapping.ToDomainVoucher(m)
	return &voucher, nil
}

// InsertVoucher appends one Main Account voucher. The unique constraint on
// source_txn_number turns a concurrent double-mirror into ErrConsolidation
// instead of a duplicate voucher.
func (r *ledgerTxRepository) InsertVoucher(ctx context.Context, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	query := `
		INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.tx.Exec(ctx, query,
		m.VoucherID,
		m.VoucherNumber,
		m.VoucherType,
		m.VoucherDate,
		m.Narration,
		m.Amount,
		m.SourceAccount,
		m.SourceTxnType,
		m.SourceTxnNumber,
		m.SourceRefType,
		m.SourceRefID,
		m.RunningBalance,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "vouchers_source_txn_number_key") {
			return fmt.Errorf("%w: txn %s is already mirrored", apperrors.ErrConsolidation, m.SourceTxnNumber)
		}
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: voucher %s already exists", apperrors.ErrDuplicate, m.VoucherNumber)
		}
		return fmt.Errorf("failed to insert voucher %s: %w", m.VoucherNumber, err)
	}
	return nil
}

// FindEntryByID loads one entry inside the transaction.
func (r *ledgerTxRepository) FindEntryByID(ctx context.Context, entryID string) (domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE entry_id = $1;`
	m, err := scanEntry(r.tx.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.LedgerEntry{}, apperrors.ErrNotFound
		}
		return domain.LedgerEntry{}, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	return mapping.ToDomainLedgerEntry(m), nil
}

// SetEntryVoucherNumber back-fills the voucher link on a repaired entry.
// This is the one permitted update on ledger_entries; amount, direction and
// date stay immutable.
func (r *ledgerTxRepository) SetEntryVoucherNumber(ctx context.Context, entryID string, voucherNumber string) error {
	tag, err := r.tx.Exec(ctx, `UPDATE ledger_entries SET voucher_number = $2 WHERE entry_id = $1;`, entryID, voucherNumber)
	if err != nil {
		return fmt.Errorf("failed to link entry %s to voucher %s: %w", entryID, voucherNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// InsertAccount creates one account row.
func (r *ledgerTxRepository) InsertAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.tx.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Kind,
		m.OpeningBalance,
		m.Balance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to insert account %s: %w", m.AccountID, err)
	}
	return nil
}

// InsertVendor creates one vendor row.
func (r *ledgerTxRepository) InsertVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.tx.Exec(ctx, query,
		m.VendorID,
		m.VendorNumber,
		m.AccountID,
		m.Name,
		m.ContactPhone,
		m.OpeningBalance,
		m.BalanceType,
		m.CreditLimit,
		m.PaymentTermsDays,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: vendor %s already exists", apperrors.ErrDuplicate, m.VendorNumber)
		}
		return fmt.Errorf("failed to insert vendor %s: %w", m.VendorID, err)
	}
	return nil
}

// UpdateVendorBalanceType refreshes the cached balance-direction flag.
func (r *ledgerTxRepository) UpdateVendorBalanceType(ctx context.Context, vendorID string, balanceType domain.VendorBalanceType, actorID string, now time.Time) error {
	tag, err := r.tx.Exec(ctx, `
		UPDATE vendors
		SET balance_type = $2, last_updated_at = $3, last_updated_by = $4
		WHERE vendor_id = $1;
	`, vendorID, string(balanceType), now, actorID)
	if err != nil {
		return fmt.Errorf("failed to update balance type of vendor %s: %w", vendorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// InsertAsset creates one fixed asset row.
func (r *ledgerTxRepository) InsertAsset(ctx context.Context, asset domain.FixedAsset) error {
	m := mapping.ToModelFixedAsset(asset)
	query := `
		INSERT INTO fixed_assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.tx.Exec(ctx, query,
		m.AssetID,
		m.AssetNumber,
		m.Name,
		m.TotalCost,
		m.PaidAmount,
		m.DueAmount,
		m.PurchaseDate,
		m.VendorID,
		m.FundingKind,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: asset %s already exists", apperrors.ErrDuplicate, m.AssetNumber)
		}
		return fmt.Errorf("failed to insert asset %s: %w", m.AssetID, err)
	}
	return nil
}

// GetAssetForUpdate loads and row-locks one asset.
func (r *ledgerTxRepository) GetAssetForUpdate(ctx context.Context, assetID string) (domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets WHERE asset_id = $1 FOR UPDATE;`
	m, err := scanAsset(r.tx.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.FixedAsset{}, apperrors.ErrNotFound
		}
		return domain.FixedAsset{}, fmt.Errorf("failed to lock asset %s: %w", assetID, err)
	}
	return mapping.ToDomainFixedAsset(m), nil
}

// UpdateAssetPayment writes the paid/due rollup and status after a payment.
func (r *ledgerTxRepository) UpdateAssetPayment(ctx context.Context, assetID string, paid, due decimal.Decimal, status domain.AssetStatus, actorID string, now time.Time) error {
	tag, err := r.tx.Exec(ctx, `
		UPDATE fixed_assets
		SET paid_amount = $2, due_amount = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE asset_id = $1;
	`, assetID, paid, due, string(status), now, actorID)
	if err != nil {
		return fmt.Errorf("failed to update payment rollup of asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
