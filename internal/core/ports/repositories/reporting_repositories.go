package repositories

import (
	"context"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSheetData is the raw as-of-date material the reporting service
// assembles a balance sheet from. All figures are derived from the entry log
// within one snapshot, never from cached balances.
type BalanceSheetData struct {
	// SubAccountBalances lists each business line with its log-derived
	// balance as of the date.
	SubAccountBalances []domain.NamedAmount
	// VendorDues lists vendors with positive (we-owe) balances.
	VendorDues []domain.NamedAmount
	// VendorAdvances lists vendors with negative balances, as positive
	// amounts (they are current assets).
	VendorAdvances []domain.NamedAmount
	// FixedAssets lists assets purchased on or before the date, at gross cost.
	FixedAssets []domain.NamedAmount
	// RetainedEarnings is cumulative income minus expense minus expensed
	// (non-capitalised) vendor purchases through the date.
	RetainedEarnings decimal.Decimal
	// NetOwnerFunds is the net of fund movements not tied to a vendor
	// payment or asset purchase (capital injections and draws).
	NetOwnerFunds decimal.Decimal
}

// ReportingRepository serves the read-only statement queries. Every method
// reads a single consistent snapshot (one repeatable-read transaction per
// call), so assets and liabilities in the same report are never drawn from
// different moments.
type ReportingRepository interface {
	GetBalanceSheetData(ctx context.Context, asOf time.Time) (*BalanceSheetData, error)
	// GetGroupedEntries aggregates entries with the given directions by
	// (account, direction): period count/sum over [from, to] and cumulative
	// count/sum through to. Row order is first-occurrence insertion order.
	GetGroupedEntries(ctx context.Context, from, to time.Time, directions []domain.EntryDirection) ([]domain.GroupedRow, error)
	// GetBankReportData returns the Main Account's per-day voucher totals for
	// the month plus the balance carried into it.
	GetBankReportData(ctx context.Context, year int, month time.Month) (decimal.Decimal, []domain.BankReportDay, error)
	// GetDriftedAccounts compares every cached balance against the entry-log
	// fold and returns the rows that disagree.
	GetDriftedAccounts(ctx context.Context) ([]domain.AccountDrift, error)
	// CountUnmirroredFundMovements counts fund movements with no voucher.
	CountUnmirroredFundMovements(ctx context.Context) (int, error)
}
