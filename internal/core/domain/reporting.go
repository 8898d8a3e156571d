package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NamedAmount is one line of a balance sheet section.
type NamedAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// BalanceSheetReport is the as-of-date statement of financial position.
// A non-zero Difference is a data-integrity signal, surfaced rather than
// hidden; the report still renders.
type BalanceSheetReport struct {
	AsOf             time.Time       `json:"asOf"`
	CurrentAssets    []NamedAmount   `json:"currentAssets"`
	FixedAssets      []NamedAmount   `json:"fixedAssets"`
	Liabilities      []NamedAmount   `json:"liabilities"`
	Capital          []NamedAmount   `json:"capital"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalCapital     decimal.Decimal `json:"totalCapital"`
	Difference       decimal.Decimal `json:"difference"` // assets - (liabilities + capital)
	IsBalanced       bool            `json:"isBalanced"`
}

// GroupedRow aggregates entries sharing (account, direction) over a period,
// with separate life-to-date cumulative figures through the period end.
type GroupedRow struct {
	AccountName     string          `json:"accountName"`
	Direction       EntryDirection  `json:"direction"`
	PeriodCount     int64           `json:"periodCount"`
	PeriodAmount    decimal.Decimal `json:"periodAmount"`
	CumulativeCount int64           `json:"cumulativeCount"`
	CumulativeTotal decimal.Decimal `json:"cumulativeTotal"`
}

// GroupedReport is the shared shape of the Income & Expenditure and
// Receipt & Payment statements. Row order is insertion order of first
// occurrence, stable across repeated calls with the same data.
type GroupedReport struct {
	DateFrom        time.Time       `json:"dateFrom"`
	DateTo          time.Time       `json:"dateTo"`
	Rows            []GroupedRow    `json:"rows"`
	PeriodTotal     decimal.Decimal `json:"periodTotal"`     // signed net over the period
	CumulativeTotal decimal.Decimal `json:"cumulativeTotal"` // signed net, life to date
}

// BankReportDay is one day of the Main Account movement for a month.
type BankReportDay struct {
	Date           time.Time       `json:"date"`
	CreditTotal    decimal.Decimal `json:"creditTotal"`
	DebitTotal     decimal.Decimal `json:"debitTotal"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// BankReport is the per-day Main Account breakdown for a calendar month.
type BankReport struct {
	Year           int             `json:"year"`
	Month          time.Month      `json:"month"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Days           []BankReportDay `json:"days"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// VoucherReportRow is one voucher with its serial number within the report.
type VoucherReportRow struct {
	Serial         int             `json:"serial"`
	Voucher        Voucher         `json:"voucher"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// VoucherReport is the flat voucher list for a date range with totals and an
// amount-in-words rendering of the grand total.
type VoucherReport struct {
	DateFrom          time.Time          `json:"dateFrom"`
	DateTo            time.Time          `json:"dateTo"`
	Rows              []VoucherReportRow `json:"rows"`
	TotalCredit       decimal.Decimal    `json:"totalCredit"`
	TotalDebit        decimal.Decimal    `json:"totalDebit"`
	GrandTotal        decimal.Decimal    `json:"grandTotal"`
	GrandTotalInWords string             `json:"grandTotalInWords"`
}

// AccountDrift is a cached balance that disagrees with the entry log.
type AccountDrift struct {
	AccountID      string          `json:"accountID"`
	AccountName    string          `json:"accountName"`
	CachedBalance  decimal.Decimal `json:"cachedBalance"`
	DerivedBalance decimal.Decimal `json:"derivedBalance"`
}

// ReconciliationResult reports whether Assets = Liabilities + Capital held at
// the as-of date, plus any cached balances that drifted from the log.
// A mismatch is surfaced to the operator, never auto-corrected.
type ReconciliationResult struct {
	AsOf             time.Time       `json:"asOf"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalCapital     decimal.Decimal `json:"totalCapital"`
	Difference       decimal.Decimal `json:"difference"`
	Balanced         bool            `json:"balanced"`
	DriftedAccounts  []AccountDrift  `json:"driftedAccounts"`
	UnmirroredCount  int             `json:"unmirroredCount"` // fund movements with no voucher
}
