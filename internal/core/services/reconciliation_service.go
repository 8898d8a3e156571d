package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	portsrepo "github.com/sevacare/hospital_finance_app/internal/core/ports/repositories"
	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/sevacare/hospital_finance_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// reconciliationService verifies the books against themselves. It reuses the
// balance sheet arithmetic, so "the check passes" and "the published report
// balances" can never disagree.
type reconciliationService struct {
	reportingRepo  portsrepo.ReportingRepository
	initialCapital decimal.Decimal
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(reportingRepo portsrepo.ReportingRepository, initialCapital decimal.Decimal) portssvc.ReconciliationSvc {
	return &reconciliationService{
		reportingRepo:  reportingRepo,
		initialCapital: initialCapital,
	}
}

var _ portssvc.ReconciliationSvc = (*reconciliationService)(nil)

// Check verifies Assets = Liabilities + Capital at the as-of date, compares
// every cached balance against its entry-log fold, and counts fund movements
// missing their voucher. Findings are reported to the operator, never
// auto-corrected.
func (s *reconciliationService) Check(ctx context.Context, asOf time.Time) (*domain.ReconciliationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asOf = businessDate(asOf)
	data, err := s.reportingRepo.GetBalanceSheetData(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to load balance sheet data: %w", err)
	}
	sheet := assembleBalanceSheet(data, s.initialCapital, asOf)

	drifted, err := s.reportingRepo.GetDriftedAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check cached balances: %w", err)
	}
	unmirrored, err := s.reportingRepo.CountUnmirroredFundMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unmirrored fund movements: %w", err)
	}

	result := &domain.ReconciliationResult{
		AsOf:             asOf,
		TotalAssets:      sheet.TotalAssets,
		TotalLiabilities: sheet.TotalLiabilities,
		TotalCapital:     sheet.TotalCapital,
		Difference:       sheet.Difference,
		Balanced:         sheet.IsBalanced,
		DriftedAccounts:  drifted,
		UnmirroredCount:  unmirrored,
	}

	if !result.Balanced {
		logger.Warn("Accounting identity violated", slog.String("as_of", asOf.Format("2006-01-02")), slog.String("difference", result.Difference.String()))
	}
	for _, drift := range drifted {
		logger.Warn("Cached balance drifted from entry log", slog.String("account_id", drift.AccountID), slog.String("cached", drift.CachedBalance.String()), slog.String("derived", drift.DerivedBalance.String()))
	}
	if unmirrored > 0 {
		logger.Warn("Fund movements missing main account vouchers", slog.Int("count", unmirrored))
	}

	return result, nil
}
