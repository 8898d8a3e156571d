package services

import (
	"context"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
)

// ReportingSvc defines the statement and report queries. All figures are
// derived from the entry log in one snapshot per call.
type ReportingSvc interface {
	// BalanceSheet assembles the as-of-date statement of financial position.
	// An unbalanced sheet is returned with Difference set, never hidden.
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)

	// IncomeExpenditure groups INCOME and EXPENSE entries by account and
	// direction over [from, to], with life-to-date cumulative columns.
	IncomeExpenditure(ctx context.Context, from, to time.Time) (*domain.GroupedReport, error)

	// ReceiptPayment is the cash-movement counterpart covering fund
	// movements as well as income and expense.
	ReceiptPayment(ctx context.Context, from, to time.Time) (*domain.GroupedReport, error)

	// BankReport breaks the Main Account down per day for a calendar month.
	BankReport(ctx context.Context, year int, month time.Month) (*domain.BankReport, error)

	// VoucherReport lists vouchers for a date range with running balances,
	// totals and the grand total in words.
	VoucherReport(ctx context.Context, from, to time.Time) (*domain.VoucherReport, error)
}

// ReconciliationSvc checks the books against themselves.
type ReconciliationSvc interface {
	// Check verifies Assets = Liabilities + Capital at the as-of date,
	// compares every cached balance against its entry-log fold, and counts
	// unmirrored fund movements. Findings are reported, never auto-fixed.
	Check(ctx context.Context, asOf time.Time) (*domain.ReconciliationResult, error)
}
