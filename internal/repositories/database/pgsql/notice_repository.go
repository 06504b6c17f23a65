package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	"github.com/urmilakunj/society_backend/internal/core/domain"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	"github.com/urmilakunj/society_backend/internal/models"
	"github.com/urmilakunj/society_backend/internal/utils/mapping"
)

type PgxNoticeRepository struct {
	BaseRepository
}

// newPgxNoticeRepository creates a new repository for notices.
func newPgxNoticeRepository(pool *pgxpool.Pool) portsrepo.NoticeRepositoryFacade {
	return &PgxNoticeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.NoticeRepositoryFacade = (*PgxNoticeRepository)(nil)

const noticeColumns = `notice_id, title, body, audience, notice_type, period_id, amount, due_date, pinned, valid_till, created_at, created_by`

// SaveNotice persists a new notice.
func (r *PgxNoticeRepository) SaveNotice(ctx context.Context, notice domain.Notice) error {
	modelNotice := mapping.ToModelNotice(notice)

	query := `
		INSERT INTO notices (notice_id, title, body, audience, notice_type, period_id, amount, due_date, pinned, valid_till, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelNotice.NoticeID,
		modelNotice.Title,
		modelNotice.Body,
		modelNotice.Audience,
		modelNotice.Type,
		modelNotice.PeriodID,
		modelNotice.Amount,
		modelNotice.DueDate,
		modelNotice.Pinned,
		modelNotice.ValidTill,
		modelNotice.CreatedAt,
		modelNotice.CreatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save notice %s: %w", modelNotice.NoticeID, err)
	}
	return nil
}

// DeleteNotice removes a notice.
func (r *PgxNoticeRepository) DeleteNotice(ctx context.Context, noticeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM notices WHERE notice_id = $1;`, noticeID)
	if err != nil {
		return fmt.Errorf("failed to delete notice %s: %w", noticeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindNoticeByID retrieves a specific notice.
func (r *PgxNoticeRepository) FindNoticeByID(ctx context.Context, noticeID string) (*domain.Notice, error) {
	query := `SELECT ` + noticeColumns + ` FROM notices WHERE notice_id = $1;`

	var modelNotice models.Notice
	err := r.Pool.QueryRow(ctx, query, noticeID).Scan(
		&modelNotice.NoticeID,
		&modelNotice.Title,
		&modelNotice.Body,
		&modelNotice.Audience,
		&modelNotice.Type,
		&modelNotice.PeriodID,
		&modelNotice.Amount,
		&modelNotice.DueDate,
		&modelNotice.Pinned,
		&modelNotice.ValidTill,
		&modelNotice.CreatedAt,
		&modelNotice.CreatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notice %s: %w", noticeID, err)
	}

	domainNotice := mapping.ToDomainNotice(modelNotice)
	return &domainNotice, nil
}

// ListNotices retrieves notices newest first, pinned ones leading.
func (r *PgxNoticeRepository) ListNotices(ctx context.Context) ([]domain.Notice, error) {
	query := `SELECT ` + noticeColumns + ` FROM notices ORDER BY pinned DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query notices: %w", err)
	}
	defer rows.Close()

	modelNotices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Notice, error) {
		var notice models.Notice
		err := row.Scan(
			&notice.NoticeID,
			&notice.Title,
			&notice.Body,
			&notice.Audience,
			&notice.Type,
			&notice.PeriodID,
			&notice.Amount,
			&notice.DueDate,
			&notice.Pinned,
			&notice.ValidTill,
			&notice.CreatedAt,
			&notice.CreatedBy,
		)
		return notice, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan notices: %w", err)
	}

	return mapping.ToDomainNoticeSlice(modelNotices), nil
}
