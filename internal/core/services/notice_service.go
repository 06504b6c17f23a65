package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/urmilakunj/society_backend/internal/core/domain"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/dto"
)

type noticeService struct {
	BaseService
	noticeRepo portsrepo.NoticeRepositoryFacade
}

// NewNoticeService creates the notice board service.
func NewNoticeService(noticeRepo portsrepo.NoticeRepositoryFacade) portssvc.NoticeSvcFacade {
	return &noticeService{noticeRepo: noticeRepo}
}

var _ portssvc.NoticeSvcFacade = (*noticeService)(nil)

// CreateNotice publishes a general notice.
func (s *noticeService) CreateNotice(ctx context.Context, req dto.CreateNoticeRequest, creatorUserID string) (*domain.Notice, error) {
	notice := domain.Notice{
		NoticeID:  uuid.NewString(),
		Title:     req.Title,
		Body:      req.Body,
		Audience:  req.Audience,
		Type:      domain.NoticeTypeGeneral,
		Pinned:    req.Pinned,
		ValidTill: req.ValidTill,
		CreatedAt: time.Now(),
		CreatedBy: creatorUserID,
	}

	if err := s.noticeRepo.SaveNotice(ctx, notice); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "notice published", slog.String("notice_id", notice.NoticeID))
	return &notice, nil
}

// PublishDuesNotice publishes the structured dues announcement for a
// freshly opened period.
func (s *noticeService) PublishDuesNotice(ctx context.Context, period domain.Period, creatorUserID string) (*domain.Notice, error) {
	amount := period.Amount
	notice := domain.Notice{
		NoticeID: uuid.NewString(),
		Title:    fmt.Sprintf("Maintenance due for %s", period.PeriodID),
		Body: fmt.Sprintf("Maintenance of ₹%s for %s is due by %s.",
			period.Amount.StringFixed(0), period.PeriodID, period.DueDate),
		Type:      domain.NoticeTypeDues,
		PeriodID:  period.PeriodID,
		Amount:    &amount,
		DueDate:   period.DueDate,
		CreatedAt: time.Now(),
		CreatedBy: creatorUserID,
	}

	if err := s.noticeRepo.SaveNotice(ctx, notice); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "dues notice published",
		slog.String("notice_id", notice.NoticeID), slog.String("period_id", period.PeriodID))
	return &notice, nil
}

// DeleteNotice removes a notice.
func (s *noticeService) DeleteNotice(ctx context.Context, noticeID string) error {
	if err := s.noticeRepo.DeleteNotice(ctx, noticeID); err != nil {
		return err
	}
	s.LogInfo(ctx, "notice deleted", slog.String("notice_id", noticeID))
	return nil
}

// ListNotices retrieves notices newest first, pinned ones leading.
func (s *noticeService) ListNotices(ctx context.Context) ([]domain.Notice, error) {
	notices, err := s.noticeRepo.ListNotices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	if notices == nil {
		return []domain.Notice{}, nil
	}
	return notices, nil
}
