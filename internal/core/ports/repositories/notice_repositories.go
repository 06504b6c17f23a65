package repositories

import (
	"context"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// NoticeReader defines read operations for notices
type NoticeReader interface {
	// FindNoticeByID retrieves a specific notice.
	FindNoticeByID(ctx context.Context, noticeID string) (*domain.Notice, error)

	// ListNotices retrieves notices newest first.
	ListNotices(ctx context.Context) ([]domain.Notice, error)
}

// NoticeWriter defines write operations for notices
type NoticeWriter interface {
	// SaveNotice persists a new notice.
	SaveNotice(ctx context.Context, notice domain.Notice) error

	// DeleteNotice removes a notice.
	DeleteNotice(ctx context.Context, noticeID string) error
}

// NoticeRepositoryFacade combines all notice-related repository interfaces
type NoticeRepositoryFacade interface {
	NoticeReader
	NoticeWriter
}
