package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	"github.com/urmilakunj/society_backend/internal/core/domain"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	"github.com/urmilakunj/society_backend/internal/models"
	"github.com/urmilakunj/society_backend/internal/utils/mapping"
)

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for dues periods.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

// SavePeriod inserts a new dues period. A period id collision surfaces
// as ErrDuplicate, never as a silent overwrite.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.Period) error {
	modelPeriod := mapping.ToModelPeriod(period)

	query := `
		INSERT INTO dues (period_id, amount, due_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelPeriod.PeriodID,
		modelPeriod.Amount,
		modelPeriod.DueDate,
		modelPeriod.CreatedAt,
		modelPeriod.CreatedBy,
		modelPeriod.LastUpdatedAt,
		modelPeriod.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save period %s: %w", modelPeriod.PeriodID, err)
	}
	return nil
}

// FindPeriodByID retrieves a period by its "YYYY-MM" id.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	query := `
		SELECT period_id, amount, due_date, created_at, created_by, last_updated_at, last_updated_by
		FROM dues
		WHERE period_id = $1;
	`
	var modelPeriod models.Period
	err := r.Pool.QueryRow(ctx, query, periodID).Scan(
		&modelPeriod.PeriodID,
		&modelPeriod.Amount,
		&modelPeriod.DueDate,
		&modelPeriod.CreatedAt,
		&modelPeriod.CreatedBy,
		&modelPeriod.LastUpdatedAt,
		&modelPeriod.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}

	domainPeriod := mapping.ToDomainPeriod(modelPeriod)
	return &domainPeriod, nil
}

// ListPeriods retrieves all periods, newest first.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	query := `
		SELECT period_id, amount, due_date, created_at, created_by, last_updated_at, last_updated_by
		FROM dues
		ORDER BY period_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query periods: %w", err)
	}
	defer rows.Close()

	modelPeriods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Period, error) {
		var period models.Period
		err := row.Scan(
			&period.PeriodID,
			&period.Amount,
			&period.DueDate,
			&period.CreatedAt,
			&period.CreatedBy,
			&period.LastUpdatedAt,
			&period.LastUpdatedBy,
		)
		return period, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan periods: %w", err)
	}

	return mapping.ToDomainPeriodSlice(modelPeriods), nil
}
