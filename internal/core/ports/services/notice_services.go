package services

import (
	"context"

	"github.com/urmilakunj/society_backend/internal/core/domain"
	"github.com/urmilakunj/society_backend/internal/dto"
)

// NoticeReaderSvc defines read operations for notices
type NoticeReaderSvc interface {
	// ListNotices retrieves notices newest first, pinned ones leading.
	ListNotices(ctx context.Context) ([]domain.Notice, error)
}

// NoticeWriterSvc defines write operations for notices
type NoticeWriterSvc interface {
	// CreateNotice publishes a general notice.
	CreateNotice(ctx context.Context, req dto.CreateNoticeRequest, creatorUserID string) (*domain.Notice, error)

	// PublishDuesNotice publishes the structured dues notice for a
	// freshly opened period.
	PublishDuesNotice(ctx context.Context, period domain.Period, creatorUserID string) (*domain.Notice, error)

	// DeleteNotice removes a notice.
	DeleteNotice(ctx context.Context, noticeID string) error
}

// NoticeSvcFacade combines all notice-related service interfaces
type NoticeSvcFacade interface {
	NoticeReaderSvc
	NoticeWriterSvc
}
