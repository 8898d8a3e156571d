package services

import (
	"context"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
)

// PeriodSvc manages daily collection period locks.
type PeriodSvc interface {
	// Finalize closes a business date. Subsequent postings dated on it are
	// rejected with ErrPeriodLocked.
	Finalize(ctx context.Context, date time.Time, actorID string) (*domain.CollectionPeriod, error)

	// IsFinalized reports whether a business date is closed.
	IsFinalized(ctx context.Context, date time.Time) (bool, error)

	// ListFinalized returns all closed dates.
	ListFinalized(ctx context.Context) ([]domain.CollectionPeriod, error)
}
