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
)

// periodService manages daily collection period locks.
type periodService struct {
	periodRepo portsrepo.PeriodRepository
}

// NewPeriodService creates a new PeriodService.
func NewPeriodService(periodRepo portsrepo.PeriodRepository) portssvc.PeriodSvc {
	return &periodService{periodRepo: periodRepo}
}

var _ portssvc.PeriodSvc = (*periodService)(nil)

// Finalize closes a business date. Postings dated on it are rejected from
// then on; corrections go in as adjustments dated in an open period.
func (s *periodService) Finalize(ctx context.Context, date time.Time, actorID string) (*domain.CollectionPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	period := domain.CollectionPeriod{
		PeriodDate:  businessDate(date),
		FinalizedAt: time.Now().UTC(),
		FinalizedBy: actorID,
	}
	if err := s.periodRepo.FinalizePeriod(ctx, period); err != nil {
		logger.Error("Failed to finalize collection period", slog.String("period_date", period.PeriodDate.Format("2006-01-02")), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to finalize period: %w", err)
	}

	logger.Info("Collection period finalized", slog.String("period_date", period.PeriodDate.Format("2006-01-02")), slog.String("finalized_by", actorID))
	return &period, nil
}

// IsFinalized reports whether a business date is closed.
func (s *periodService) IsFinalized(ctx context.Context, date time.Time) (bool, error) {
	return s.periodRepo.IsFinalized(ctx, businessDate(date))
}

// ListFinalized returns all closed dates.
func (s *periodService) ListFinalized(ctx context.Context) ([]domain.CollectionPeriod, error) {
	return s.periodRepo.ListFinalized(ctx)
}
