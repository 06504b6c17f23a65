package repositories

import (
	"context"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// PeriodReader defines read operations for dues periods
type PeriodReader interface {
	// FindPeriodByID retrieves a specific period by its "YYYY-MM" id.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)

	// ListPeriods retrieves all periods, newest first.
	ListPeriods(ctx context.Context) ([]domain.Period, error)
}

// PeriodWriter defines write operations for dues periods
type PeriodWriter interface {
	// SavePeriod persists a new period.
	SavePeriod(ctx context.Context, period domain.Period) error
}

// PeriodRepositoryFacade combines all period-related repository interfaces
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
