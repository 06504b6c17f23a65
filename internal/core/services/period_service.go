package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	"github.com/urmilakunj/society_backend/internal/core/domain"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/dto"
)

type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepositoryFacade
	noticeSvc  portssvc.NoticeWriterSvc
}

// NewPeriodService creates the dues period service.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade, noticeSvc portssvc.NoticeWriterSvc) portssvc.PeriodSvcFacade {
	return &periodService{
		periodRepo: periodRepo,
		noticeSvc:  noticeSvc,
	}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// CreatePeriod opens a new dues period and publishes its dues notice.
// Opening the same month twice is rejected; overwriting an existing
// period would silently reset its payment roster.
func (s *periodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID string) (*domain.Period, error) {
	if _, err := time.Parse("2006-01", req.PeriodID); err != nil {
		return nil, fmt.Errorf("%w: period id must be YYYY-MM", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	period := domain.Period{
		PeriodID: req.PeriodID,
		Amount:   req.Amount,
		DueDate:  req.DueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		return nil, err
	}

	// The dues notice rides along with period creation. A failure here
	// leaves the period in place; the committee can post one manually.
	if _, err := s.noticeSvc.PublishDuesNotice(ctx, period, creatorUserID); err != nil {
		s.LogError(ctx, err, "failed to publish dues notice for new period",
			slog.String("period_id", period.PeriodID))
	}

	s.LogInfo(ctx, "dues period created", slog.String("period_id", period.PeriodID))
	return &period, nil
}

// GetPeriodByID retrieves a specific period.
func (s *periodService) GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	return period, nil
}

// ListPeriods retrieves all periods, newest first.
func (s *periodService) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	periods, err := s.periodRepo.ListPeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	if periods == nil {
		return []domain.Period{}, nil
	}
	return periods, nil
}
