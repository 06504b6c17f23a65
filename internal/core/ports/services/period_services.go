package services

import (
	"context"

	"github.com/urmilakunj/society_backend/internal/core/domain"
	"github.com/urmilakunj/society_backend/internal/dto"
)

// PeriodReaderSvc defines read operations for dues periods
type PeriodReaderSvc interface {
	// GetPeriodByID retrieves a specific period.
	GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)

	// ListPeriods retrieves all periods, newest first.
	ListPeriods(ctx context.Context) ([]domain.Period, error)
}

// PeriodWriterSvc defines write operations for dues periods
type PeriodWriterSvc interface {
	// CreatePeriod opens a new dues period and publishes its dues notice.
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID string) (*domain.Period, error)
}

// PeriodSvcFacade combines all period-related service interfaces
type PeriodSvcFacade interface {
	PeriodReaderSvc
	PeriodWriterSvc
}
