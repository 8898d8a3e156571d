package repositories

import (
	"context"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
)

// PeriodRepository persists finalized daily collection periods.
type PeriodRepository interface {
	// FinalizePeriod marks a business date as closed. Finalizing an already
	// finalized date returns apperrors.ErrDuplicate.
	FinalizePeriod(ctx context.Context, period domain.CollectionPeriod) error
	IsFinalized(ctx context.Context, date time.Time) (bool, error)
	ListFinalized(ctx context.Context) ([]domain.CollectionPeriod, error)
}
