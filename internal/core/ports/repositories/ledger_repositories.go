package repositories

import (
	"context"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerTxRepository exposes the single-transaction primitives the posting
// pipeline is built from. Every method runs inside the pgx transaction owned
// by the enclosing WithTx call; a failure anywhere rolls the whole unit back,
// so a balance is never persisted without its log entry and a fund movement
// never commits without its mirrored voucher.
type LedgerTxRepository interface {
	// GetAccountForUpdate loads and row-locks one account. Concurrent
	// mutations on the same account serialize here.
	GetAccountForUpdate(ctx context.Context, accountID string) (domain.Account, error)
	// GetAccountByKindForUpdate loads and row-locks the singleton account of
	// a non-vendor kind (HOSPITAL, MEDICINE, OPTICS, OPERATION, MAIN).
	GetAccountByKindForUpdate(ctx context.Context, kind domain.AccountKind) (domain.Account, error)
	// IsPeriodFinalized reports whether the business date falls in a
	// finalized daily collection period.
	IsPeriodFinalized(ctx context.Context, date time.Time) (bool, error)
	// NextSequenceNumber reserves the next identifier in the
	// (prefix, date) namespace. The reservation is durable only if the
	// enclosing transaction commits.
	NextSequenceNumber(ctx context.Context, prefix string, date time.Time) (string, error)
	// InsertEntry appends one immutable ledger entry.
	InsertEntry(ctx context.Context, entry domain.LedgerEntry) error
	// AddToAccountBalance bumps the cached balance of a locked account.
	AddToAccountBalance(ctx context.Context, accountID string, delta decimal.Decimal, actorID string, now time.Time) error
	// FindVoucherBySourceTxn returns the voucher mirroring the given source
	// transaction number, or nil if none exists yet.
	FindVoucherBySourceTxn(ctx context.Context, txnNumber string) (*domain.Voucher, error)
	// InsertVoucher appends one Main Account voucher.
	InsertVoucher(ctx context.Context, voucher domain.Voucher) error
	// FindEntryByID loads one entry inside the transaction.
	FindEntryByID(ctx context.Context, entryID string) (domain.LedgerEntry, error)
	// SetEntryVoucherNumber back-fills the voucher link on a fund movement
	// repaired by the reconciliation sweep.
	SetEntryVoucherNumber(ctx context.Context, entryID string, voucherNumber string) error

	// Vendor and fixed-asset rows participate in the same atomic units as
	// the entries that move their balances.
	InsertAccount(ctx context.Context, account domain.Account) error
	InsertVendor(ctx context.Context, vendor domain.Vendor) error
	UpdateVendorBalanceType(ctx context.Context, vendorID string, balanceType domain.VendorBalanceType, actorID string, now time.Time) error
	InsertAsset(ctx context.Context, asset domain.FixedAsset) error
	GetAssetForUpdate(ctx context.Context, assetID string) (domain.FixedAsset, error)
	UpdateAssetPayment(ctx context.Context, assetID string, paid, due decimal.Decimal, status domain.AssetStatus, actorID string, now time.Time) error
}

// LedgerRepository provides the read-side of the entry log.
type LedgerRepository interface {
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)
	FindEntryByTxnNumber(ctx context.Context, txnNumber string) (*domain.LedgerEntry, error)
	// ListEntriesByAccount returns a page of entries, newest first, with a
	// cursor token for the next page.
	ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
	// BalanceAsOf folds the entry log: opening balance plus all signed
	// amounts with txn_date on or before asOf. Never reads the cache.
	BalanceAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error)
	// FindUnmirroredFundMovements returns committed fund movements that have
	// no Main Account voucher. Used by the reconciliation sweep.
	FindUnmirroredFundMovements(ctx context.Context, limit int) ([]domain.LedgerEntry, error)
}

// LedgerRepositoryWithTx adds the atomic-unit entry point.
type LedgerRepositoryWithTx interface {
	LedgerRepository
	// WithTx runs fn inside one database transaction, committing on nil and
	// rolling back on error.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTxRepository) error) error
}
