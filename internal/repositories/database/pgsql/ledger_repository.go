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
	"github.com/sevacare/hospital_finance_app/internal/utils/accounting"
	"github.com/sevacare/hospital_finance_app/internal/utils/mapping"
	"github.com/sevacare/hospital_finance_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const ledgerEntryColumns = `entry_id, txn_number, account_id, direction, amount, category, narration, txn_date, reference_type, reference_id, voucher_number, running_balance, adjustment_sign, created_at, created_by`

const accountColumns = `account_id, name, kind, opening_balance, balance, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the entry log.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryWithTx
var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// WithTx runs fn inside one database transaction, committing on nil and
// rolling back on error.
func (r *PgxLedgerRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTxRepository) error) error {
	dbTx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, dbTx)

	if err := fn(ctx, &ledgerTxRepository{tx: dbTx}); err != nil {
		return err
	}
	return r.Commit(ctx, dbTx)
}

// scanEntry scans one ledger_entries row in ledgerEntryColumns order.
func scanEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.TxnNumber,
		&m.AccountID,
		&m.Direction,
		&m.Amount,
		&m.Category,
		&m.Narration,
		&m.TxnDate,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.VoucherNumber,
		&m.RunningBalance,
		&m.AdjustmentSign,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

// FindEntryByID retrieves one entry by its ID.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE entry_id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// FindEntryByTxnNumber retrieves one entry by its transaction number.
func (r *PgxLedgerRepository) FindEntryByTxnNumber(ctx context.Context, txnNumber string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE txn_number = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, txnNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", txnNumber, err)
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// ListEntriesByAccount returns one page of an account's entries ordered by
// (txn_date, created_at) descending, with a cursor token for the next page.
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := []interface{}{accountID}
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE account_id = $1`

	if nextToken != nil {
		txnDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND (txn_date, created_at) < ($2, $3)`
		args = append(args, txnDate, createdAt)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY txn_date DESC, created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list entries for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var modelEntries []models.LedgerEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate entry rows: %w", err)
	}

	var token *string
	if len(modelEntries) > limit {
		modelEntries = modelEntries[:limit]
		last := modelEntries[len(modelEntries)-1]
		t := pagination.EncodeToken(last.TxnDate, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainLedgerEntrySlice(modelEntries), token, nil
}

// BalanceAsOf folds the entry log: opening balance plus every signed amount
// with txn_date on or before asOf. The cached balance column is never read.
func (r *PgxLedgerRepository) BalanceAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	var opening decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT opening_balance FROM accounts WHERE account_id = $1;`, accountID).Scan(&opening)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to load opening balance for %s: %w", accountID, err)
	}

	query := `SELECT direction, amount, adjustment_sign FROM ledger_entries WHERE account_id = $1 AND txn_date <= $2;`
	rows, err := r.Pool.Query(ctx, query, accountID, asOf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load entries for %s: %w", accountID, err)
	}
	defer rows.Close()

	balance := opening
	for rows.Next() {
		var direction models.EntryDirection
		var amount decimal.Decimal
		var adjustmentSign int
		if err := rows.Scan(&direction, &amount, &adjustmentSign); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan entry row: %w", err)
		}
		signed, err := accounting.SignedAmount(domain.LedgerEntry{
			Direction:      domain.EntryDirection(direction),
			Amount:         amount,
			AdjustmentSign: adjustmentSign,
		})
		if err != nil {
			return decimal.Zero, err
		}
		balance = balance.Add(signed)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("failed to iterate entry rows: %w", err)
	}
	return balance, nil
}

// FindUnmirroredFundMovements returns committed fund movements that have no
// voucher, oldest first so the sweep repairs in posting order.
func (r *PgxLedgerRepository) FindUnmirroredFundMovements(ctx context.Context, limit int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerEntryColumns + `
		FROM ledger_entries e
		WHERE e.direction IN ('FUND_IN', 'FUND_OUT')
		  AND NOT EXISTS (SELECT 1 FROM vouchers v WHERE v.source_txn_number = e.txn_number)
		ORDER BY e.txn_date ASC, e.created_at ASC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find unmirrored fund movements: %w", err)
	}
	defer rows.Close()

	var modelEntries []models.LedgerEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entry rows: %w", err)
	}
	return mapping.ToDomainLedgerEntrySlice(modelEntries), nil
}
