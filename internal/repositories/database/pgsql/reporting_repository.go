package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	portsrepo "github.com/sevacare/hospital_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// signedAmountSQL is the SQL twin of accounting.SignedAmount, tolerant of
// NULL rows produced by LEFT JOINs.
const signedAmountSQL = `CASE
	WHEN e.entry_id IS NULL THEN 0
	WHEN e.direction IN ('INCOME', 'FUND_IN', 'PURCHASE') THEN e.amount
	WHEN e.direction = 'ADJUSTMENT' THEN e.amount * e.adjustment_sign
	ELSE -e.amount
END`

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// inSnapshot runs fn inside one repeatable-read read-only transaction, so a
// report built from several queries sees a single moment of the books.
func (r *reportingRepository) inSnapshot(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer r.Rollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// GetBalanceSheetData derives the raw as-of-date balance sheet material from
// the entry log in one snapshot. Cached balances are never consulted.
func (r *reportingRepository) GetBalanceSheetData(ctx context.Context, asOf time.Time) (*portsrepo.BalanceSheetData, error) {
	data := &portsrepo.BalanceSheetData{}

	err := r.inSnapshot(ctx, func(tx pgx.Tx) error {
		// Business line balances, folded from the log.
		rows, err := tx.Query(ctx, `
			SELECT a.name, a.opening_balance + COALESCE(SUM(`+signedAmountSQL+`), 0) AS balance
			FROM accounts a
			LEFT JOIN ledger_entries e ON e.account_id = a.account_id AND e.txn_date <= $1
			WHERE a.kind IN ('HOSPITAL', 'MEDICINE', 'OPTICS', 'OPERATION')
			GROUP BY a.account_id, a.name, a.opening_balance
			ORDER BY a.kind;
		`, asOf)
		if err != nil {
			return fmt.Errorf("failed to query business line balances: %w", err)
		}
		data.SubAccountBalances, err = collectNamedAmounts(rows)
		if err != nil {
			return err
		}

		// Vendor balances, split into dues (liability) and advances (asset).
		rows, err = tx.Query(ctx, `
			SELECT v.name, a.opening_balance + COALESCE(SUM(`+signedAmountSQL+`), 0) AS balance
			FROM vendors v
			JOIN accounts a ON a.account_id = v.account_id
			LEFT JOIN ledger_entries e ON e.account_id = a.account_id AND e.txn_date <= $1
			GROUP BY v.vendor_number, v.name, a.opening_balance
			ORDER BY v.vendor_number;
		`, asOf)
		if err != nil {
			return fmt.Errorf("failed to query vendor balances: %w", err)
		}
		vendorBalances, err := collectNamedAmounts(rows)
		if err != nil {
			return err
		}
		for _, row := range vendorBalances {
			switch {
			case row.Amount.IsPositive():
				data.VendorDues = append(data.VendorDues, row)
			case row.Amount.IsNegative():
				data.VendorAdvances = append(data.VendorAdvances, domain.NamedAmount{Name: row.Name, Amount: row.Amount.Neg()})
			}
		}

		// Fixed assets at gross cost.
		rows, err = tx.Query(ctx, `
			SELECT name, total_cost
			FROM fixed_assets
			WHERE purchase_date <= $1 AND status <> 'INACTIVE'
			ORDER BY asset_number;
		`, asOf)
		if err != nil {
			return fmt.Errorf("failed to query fixed assets: %w", err)
		}
		data.FixedAssets, err = collectNamedAmounts(rows)
		if err != nil {
			return err
		}

		// Retained earnings: income minus expense on the business lines,
		// plus their adjustments, minus expensed (non-capitalised) vendor
		// purchases, with vendor adjustments counted against earnings so
		// the identity survives balance corrections.
		err = tx.QueryRow(ctx, `
			SELECT COALESCE(SUM(CASE
				WHEN a.kind IN ('HOSPITAL', 'MEDICINE', 'OPTICS', 'OPERATION') AND e.direction = 'INCOME' THEN e.amount
				WHEN a.kind IN ('HOSPITAL', 'MEDICINE', 'OPTICS', 'OPERATION') AND e.direction = 'EXPENSE' THEN -e.amount
				WHEN a.kind IN ('HOSPITAL', 'MEDICINE', 'OPTICS', 'OPERATION') AND e.direction = 'ADJUSTMENT' THEN e.amount * e.adjustment_sign
				WHEN a.kind = 'VENDOR' AND e.direction = 'PURCHASE' AND e.reference_type <> 'FIXED_ASSET' THEN -e.amount
				WHEN a.kind = 'VENDOR' AND e.direction = 'ADJUSTMENT' THEN -e.amount * e.adjustment_sign
				ELSE 0
			END), 0)
			FROM ledger_entries e
			JOIN accounts a ON a.account_id = e.account_id
			WHERE e.txn_date <= $1;
		`, asOf).Scan(&data.RetainedEarnings)
		if err != nil {
			return fmt.Errorf("failed to compute retained earnings: %w", err)
		}

		// Owner fund movements: fund flows on the business lines that are
		// not vendor settlements or asset payments. Transfers between lines
		// net to zero here.
		err = tx.QueryRow(ctx, `
			SELECT COALESCE(SUM(CASE WHEN e.direction = 'FUND_IN' THEN e.amount ELSE -e.amount END), 0)
			FROM ledger_entries e
			JOIN accounts a ON a.account_id = e.account_id
			WHERE e.txn_date <= $1
			  AND a.kind IN ('HOSPITAL', 'MEDICINE', 'OPTICS', 'OPERATION')
			  AND e.direction IN ('FUND_IN', 'FUND_OUT')
			  AND e.reference_type NOT IN ('VENDOR', 'FIXED_ASSET');
		`, asOf).Scan(&data.NetOwnerFunds)
		if err != nil {
			return fmt.Errorf("failed to compute owner fund movements: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// collectNamedAmounts drains a two-column (name, amount) result set.
func collectNamedAmounts(rows pgx.Rows) ([]domain.NamedAmount, error) {
	defer rows.Close()
	var out []domain.NamedAmount
	for rows.Next() {
		var row domain.NamedAmount
		if err := rows.Scan(&row.Name, &row.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}
	return out, nil
}

// GetGroupedEntries aggregates entries with the given directions by
// (account, direction): count and sum over [from, to], plus life-to-date
// cumulative figures through to. Rows come back in first-posted order.
func (r *reportingRepository) GetGroupedEntries(ctx context.Context, from, to time.Time, directions []domain.EntryDirection) ([]domain.GroupedRow, error) {
	directionStrings := make([]string, len(directions))
	for i, d := range directions {
		directionStrings[i] = string(d)
	}

	query := `
		SELECT
			a.name,
			e.direction,
			COUNT(*) FILTER (WHERE e.txn_date >= $1),
			COALESCE(SUM(e.amount) FILTER (WHERE e.txn_date >= $1), 0),
			COUNT(*),
			COALESCE(SUM(e.amount), 0)
		FROM ledger_entries e
		JOIN accounts a ON a.account_id = e.account_id
		WHERE e.txn_date <= $2 AND e.direction = ANY($3)
		GROUP BY a.account_id, a.name, e.direction
		ORDER BY MIN(e.created_at);
	`
	rows, err := r.Pool.Query(ctx, query, from, to, directionStrings)
	if err != nil {
		return nil, fmt.Errorf("failed to query grouped entries: %w", err)
	}
	defer rows.Close()

	var out []domain.GroupedRow
	for rows.Next() {
		var row domain.GroupedRow
		var direction string
		if err := rows.Scan(&row.AccountName, &direction, &row.PeriodCount, &row.PeriodAmount, &row.CumulativeCount, &row.CumulativeTotal); err != nil {
			return nil, fmt.Errorf("failed to scan grouped row: %w", err)
		}
		row.Direction = domain.EntryDirection(direction)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate grouped rows: %w", err)
	}
	return out, nil
}

// GetBankReportData returns the Main Account balance carried into the month
// and the per-day voucher totals within it. Days without vouchers are
// omitted.
func (r *reportingRepository) GetBankReportData(ctx context.Context, year int, month time.Month) (decimal.Decimal, []domain.BankReportDay, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var opening decimal.Decimal
	var days []domain.BankReportDay

	err := r.inSnapshot(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			SELECT (SELECT opening_balance FROM accounts WHERE kind = 'MAIN')
			     + COALESCE(SUM(CASE WHEN voucher_type = 'CREDIT' THEN amount ELSE -amount END), 0)
			FROM vouchers
			WHERE voucher_date < $1;
		`, monthStart).Scan(&opening)
		if err != nil {
			return fmt.Errorf("failed to compute month opening balance: %w", err)
		}

		rows, err := tx.Query(ctx, `
			SELECT
				voucher_date,
				COALESCE(SUM(amount) FILTER (WHERE voucher_type = 'CREDIT'), 0),
				COALESCE(SUM(amount) FILTER (WHERE voucher_type = 'DEBIT'), 0)
			FROM vouchers
			WHERE voucher_date >= $1 AND voucher_date < $2
			GROUP BY voucher_date
			ORDER BY voucher_date;
		`, monthStart, nextMonth)
		if err != nil {
			return fmt.Errorf("failed to query daily voucher totals: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var day domain.BankReportDay
			if err := rows.Scan(&day.Date, &day.CreditTotal, &day.DebitTotal); err != nil {
				return fmt.Errorf("failed to scan bank report day: %w", err)
			}
			days = append(days, day)
		}
		return rows.Err()
	})
	if err != nil {
		return decimal.Zero, nil, err
	}
	return opening, days, nil
}

// GetDriftedAccounts compares every cached balance against its entry-log
// fold and returns the disagreeing rows. The Main Account is checked against
// the voucher stream, which is its log.
func (r *reportingRepository) GetDriftedAccounts(ctx context.Context) ([]domain.AccountDrift, error) {
	var drifted []domain.AccountDrift

	err := r.inSnapshot(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT a.account_id, a.name, a.balance, a.opening_balance + COALESCE(SUM(`+signedAmountSQL+`), 0) AS derived
			FROM accounts a
			LEFT JOIN ledger_entries e ON e.account_id = a.account_id
			WHERE a.kind <> 'MAIN'
			GROUP BY a.account_id, a.name, a.balance, a.opening_balance
			HAVING a.balance <> a.opening_balance + COALESCE(SUM(`+signedAmountSQL+`), 0)
			ORDER BY a.name;
		`)
		if err != nil {
			return fmt.Errorf("failed to query drifted accounts: %w", err)
		}
		drifted, err = collectDrift(rows)
		if err != nil {
			return err
		}

		mainRows, err := tx.Query(ctx, `
			SELECT a.account_id, a.name, a.balance,
			       a.opening_balance + COALESCE(SUM(CASE
			           WHEN v.voucher_id IS NULL THEN 0
			           WHEN v.voucher_type = 'CREDIT' THEN v.amount
			           ELSE -v.amount
			       END), 0) AS derived
			FROM accounts a
			LEFT JOIN vouchers v ON TRUE
			WHERE a.kind = 'MAIN'
			GROUP BY a.account_id, a.name, a.balance, a.opening_balance
			HAVING a.balance <> a.opening_balance + COALESCE(SUM(CASE
			           WHEN v.voucher_id IS NULL THEN 0
			           WHEN v.voucher_type = 'CREDIT' THEN v.amount
			           ELSE -v.amount
			       END), 0);
		`)
		if err != nil {
			return fmt.Errorf("failed to query main account drift: %w", err)
		}
		mainDrift, err := collectDrift(mainRows)
		if err != nil {
			return err
		}
		drifted = append(drifted, mainDrift...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return drifted, nil
}

// collectDrift drains an account drift result set.
func collectDrift(rows pgx.Rows) ([]domain.AccountDrift, error) {
	defer rows.Close()
	var out []domain.AccountDrift
	for rows.Next() {
		var row domain.AccountDrift
		if err := rows.Scan(&row.AccountID, &row.AccountName, &row.CachedBalance, &row.DerivedBalance); err != nil {
			return nil, fmt.Errorf("failed to scan drift row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate drift rows: %w", err)
	}
	return out, nil
}

// CountUnmirroredFundMovements counts fund movements with no voucher.
func (r *reportingRepository) CountUnmirroredFundMovements(ctx context.Context) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM ledger_entries e
		WHERE e.direction IN ('FUND_IN', 'FUND_OUT')
		  AND NOT EXISTS (SELECT 1 FROM vouchers v WHERE v.source_txn_number = e.txn_number);
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unmirrored fund movements: %w", err)
	}
	return count, nil
}
