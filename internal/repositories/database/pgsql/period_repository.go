package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/apperrors"
	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	portsrepo "github.com/sevacare/hospital_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPeriodRepository struct {
	pool *pgxpool.Pool
}

// newPgxPeriodRepository creates a new repository for collection periods.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepository {
	return &PgxPeriodRepository{pool: pool}
}

// Ensure PgxPeriodRepository implements portsrepo.PeriodRepository
var _ portsrepo.PeriodRepository = (*PgxPeriodRepository)(nil)

// FinalizePeriod marks a business date as closed.
func (r *PgxPeriodRepository) FinalizePeriod(ctx context.Context, period domain.CollectionPeriod) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO collection_periods (period_date, finalized_at, finalized_by)
		VALUES ($1, $2, $3);
	`, period.PeriodDate, period.FinalizedAt, period.FinalizedBy)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: period %s is already finalized", apperrors.ErrDuplicate, period.PeriodDate.Format("2006-01-02"))
		}
		return fmt.Errorf("failed to finalize period %s: %w", period.PeriodDate.Format("2006-01-02"), err)
	}
	return nil
}

// IsFinalized reports whether a business date is closed.
func (r *PgxPeriodRepository) IsFinalized(ctx context.Context, date time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM collection_periods WHERE period_date = $1);`, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check collection period: %w", err)
	}
	return exists, nil
}

// ListFinalized returns all closed dates, newest first.
func (r *PgxPeriodRepository) ListFinalized(ctx context.Context) ([]domain.CollectionPeriod, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT period_date, finalized_at, finalized_by
		FROM collection_periods
		ORDER BY period_date DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list finalized periods: %w", err)
	}
	defer rows.Close()

	var periods []domain.CollectionPeriod
	for rows.Next() {
		var p domain.CollectionPeriod
		if err := rows.Scan(&p.PeriodDate, &p.FinalizedAt, &p.FinalizedBy); err != nil {
			return nil, fmt.Errorf("failed to scan period row: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate period rows: %w", err)
	}
	return periods, nil
}
