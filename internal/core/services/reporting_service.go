package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/apperrors"
	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	portsrepo "github.com/sevacare/hospital_finance_app/internal/core/ports/repositories"
	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/sevacare/hospital_finance_app/internal/middleware"
	"github.com/sevacare/hospital_finance_app/internal/utils/accounting"
	"github.com/sevacare/hospital_finance_app/internal/utils/numwords"
	"github.com/shopspring/decimal"
)

// reportingService assembles the statements. Everything is derived from the
// entry log inside one snapshot per report; cached balances are never read.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	voucherRepo   portsrepo.VoucherRepository
	// initialCapital is the owner's capital contributed before the system
	// went live, from configuration. It anchors the Capital section.
	initialCapital decimal.Decimal
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, voucherRepo portsrepo.VoucherRepository, initialCapital decimal.Decimal) portssvc.ReportingSvc {
	return &reportingService{
		reportingRepo:  reportingRepo,
		voucherRepo:    voucherRepo,
		initialCapital: initialCapital,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// assembleBalanceSheet turns the raw snapshot data into the statement. Also
// used by the reconciliation check so the identity is verified with the
// exact arithmetic the published report uses.
func assembleBalanceSheet(data *portsrepo.BalanceSheetData, initialCapital decimal.Decimal, asOf time.Time) *domain.BalanceSheetReport {
	report := &domain.BalanceSheetReport{AsOf: asOf}

	report.CurrentAssets = append(report.CurrentAssets, data.SubAccountBalances...)
	for _, adv := range data.VendorAdvances {
		report.CurrentAssets = append(report.CurrentAssets, domain.NamedAmount{
			Name:   fmt.Sprintf("Advance to %s", adv.Name),
			Amount: adv.Amount,
		})
	}
	report.FixedAssets = data.FixedAssets

	for _, due := range data.VendorDues {
		report.Liabilities = append(report.Liabilities, domain.NamedAmount{
			Name:   fmt.Sprintf("Payable to %s", due.Name),
			Amount: due.Amount,
		})
	}

	report.Capital = []domain.NamedAmount{
		{Name: "Initial Capital", Amount: initialCapital},
		{Name: "Retained Earnings", Amount: data.RetainedEarnings},
		{Name: "Owner Fund Movements", Amount: data.NetOwnerFunds},
	}

	sum := func(rows []domain.NamedAmount) decimal.Decimal {
		total := decimal.Zero
		for _, row := range rows {
			total = total.Add(row.Amount)
		}
		return total
	}

	report.TotalAssets = sum(report.CurrentAssets).Add(sum(report.FixedAssets))
	report.TotalLiabilities = sum(report.Liabilities)
	report.TotalCapital = sum(report.Capital)
	report.Difference = report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalCapital))
	report.IsBalanced = report.Difference.IsZero()

	return report
}

// BalanceSheet assembles the as-of-date statement of financial position.
// An unbalanced sheet is returned with Difference set rather than hidden.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	data, err := s.reportingRepo.GetBalanceSheetData(ctx, businessDate(asOf))
	if err != nil {
		return nil, fmt.Errorf("failed to load balance sheet data: %w", err)
	}

	report := assembleBalanceSheet(data, s.initialCapital, businessDate(asOf))
	if !report.IsBalanced {
		logger.Warn("Balance sheet does not balance", slog.String("as_of", report.AsOf.Format("2006-01-02")), slog.String("difference", report.Difference.String()))
	}
	return report, nil
}

// groupedReport builds the shared grouped statement shape for a direction set.
func (s *reportingService) groupedReport(ctx context.Context, from, to time.Time, directions []domain.EntryDirection) (*domain.GroupedReport, error) {
	from, to = businessDate(from), businessDate(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: date range end precedes its start", apperrors.ErrValidation)
	}

	rows, err := s.reportingRepo.GetGroupedEntries(ctx, from, to, directions)
	if err != nil {
		return nil, fmt.Errorf("failed to load grouped entries: %w", err)
	}

	report := &domain.GroupedReport{
		DateFrom: from,
		DateTo:   to,
		Rows:     rows,
	}
	for _, row := range rows {
		signedPeriod, err := accounting.SignedAmount(domain.LedgerEntry{Direction: row.Direction, Amount: row.PeriodAmount, AdjustmentSign: 1})
		if err != nil {
			return nil, err
		}
		signedCumulative, err := accounting.SignedAmount(domain.LedgerEntry{Direction: row.Direction, Amount: row.CumulativeTotal, AdjustmentSign: 1})
		if err != nil {
			return nil, err
		}
		report.PeriodTotal = report.PeriodTotal.Add(signedPeriod)
		report.CumulativeTotal = report.CumulativeTotal.Add(signedCumulative)
	}
	return report, nil
}

// IncomeExpenditure groups INCOME and EXPENSE per account over the period.
func (s *reportingService) IncomeExpenditure(ctx context.Context, from, to time.Time) (*domain.GroupedReport, error) {
	return s.groupedReport(ctx, from, to, []domain.EntryDirection{domain.DirectionIncome, domain.DirectionExpense})
}

// ReceiptPayment is the cash-movement statement: income and expense plus
// the fund movements between lines and out of the organisation.
func (s *reportingService) ReceiptPayment(ctx context.Context, from, to time.Time) (*domain.GroupedReport, error) {
	return s.groupedReport(ctx, from, to, []domain.EntryDirection{
		domain.DirectionIncome, domain.DirectionExpense,
		domain.DirectionFundIn, domain.DirectionFundOut,
	})
}

// BankReport breaks the Main Account down per day for a calendar month.
// Days without vouchers are omitted; the running balance carries across them.
func (s *reportingService) BankReport(ctx context.Context, year int, month time.Month) (*domain.BankReport, error) {
	if year < 1 || month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: invalid year/month", apperrors.ErrValidation)
	}

	opening, days, err := s.reportingRepo.GetBankReportData(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load bank report data: %w", err)
	}

	report := &domain.BankReport{
		Year:           year,
		Month:          month,
		OpeningBalance: opening,
		Days:           days,
	}
	running := opening
	for i := range report.Days {
		running = running.Add(report.Days[i].CreditTotal).Sub(report.Days[i].DebitTotal)
		report.Days[i].RunningBalance = running
	}
	report.ClosingBalance = running
	return report, nil
}

// VoucherReport lists vouchers for a date range with per-row running
// balances, side totals, and the grand total rendered in words for the
// printed statement.
func (s *reportingService) VoucherReport(ctx context.Context, from, to time.Time) (*domain.VoucherReport, error) {
	from, to = businessDate(from), businessDate(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: date range end precedes its start", apperrors.ErrValidation)
	}

	vouchers, openingBalance, err := s.voucherRepo.ListVouchers(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}

	report := &domain.VoucherReport{
		DateFrom: from,
		DateTo:   to,
		Rows:     make([]domain.VoucherReportRow, 0, len(vouchers)),
	}

	running := openingBalance
	for i, voucher := range vouchers {
		running = running.Add(voucher.SignedAmount())
		report.Rows = append(report.Rows, domain.VoucherReportRow{
			Serial:         i + 1,
			Voucher:        voucher,
			RunningBalance: running,
		})
		if voucher.Type == domain.VoucherCredit {
			report.TotalCredit = report.TotalCredit.Add(voucher.Amount)
		} else {
			report.TotalDebit = report.TotalDebit.Add(voucher.Amount)
		}
	}

	report.GrandTotal = report.TotalCredit.Sub(report.TotalDebit)
	report.GrandTotalInWords = numwords.AmountInWords(report.GrandTotal)
	return report, nil
}
