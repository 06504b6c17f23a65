package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	"github.com/urmilakunj/society_backend/internal/core/domain"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	"github.com/urmilakunj/society_backend/internal/models"
	"github.com/urmilakunj/society_backend/internal/utils/mapping"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for users.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, name, email, flat_no, phone, role, password_hash, requires_password_change, refresh_token_hash, refresh_token_expiry, deleted_at, created_at, created_by, last_updated_at, last_updated_by`

// SaveUser persists a new user. Unique collisions on flat or email
// surface as ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)

	query := `
		INSERT INTO users (user_id, name, email, flat_no, phone, role, password_hash, requires_password_change, refresh_token_hash, refresh_token_expiry, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Name,
		modelUser.Email,
		modelUser.FlatNo,
		modelUser.Phone,
		modelUser.Role,
		modelUser.PasswordHash,
		modelUser.RequiresPasswordChange,
		modelUser.RefreshTokenHash,
		modelUser.RefreshTokenExpiry,
		modelUser.CreatedAt,
		modelUser.CreatedBy,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user %s: %w", modelUser.UserID, err)
	}
	return nil
}

// UpdateUser replaces a user's editable profile fields.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)

	query := `
		UPDATE users SET
			name = $2,
			email = $3,
			phone = $4,
			last_updated_at = $5,
			last_updated_by = $6
		WHERE user_id = $1 AND deleted_at IS NULL;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Name,
		modelUser.Email,
		modelUser.Phone,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", modelUser.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkUserDeleted soft deletes a user.
func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE users SET
			deleted_at = $2,
			last_updated_at = $2,
			last_updated_by = $3
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark user %s deleted: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRefreshToken stores the hash and expiry of a user's refresh token.
func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiry *time.Time) error {
	query := `
		UPDATE users SET
			refresh_token_hash = $2,
			refresh_token_expiry = $3
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, tokenHash, expiry)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces a user's password hash.
func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, requiresChange bool) error {
	query := `
		UPDATE users SET
			password_hash = $2,
			requires_password_change = $3,
			last_updated_at = now(),
			last_updated_by = $1
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, passwordHash, requiresChange)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) findUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var modelUser models.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelUser.UserID,
		&modelUser.Name,
		&modelUser.Email,
		&modelUser.FlatNo,
		&modelUser.Phone,
		&modelUser.Role,
		&modelUser.PasswordHash,
		&modelUser.RequiresPasswordChange,
		&modelUser.RefreshTokenHash,
		&modelUser.RefreshTokenExpiry,
		&modelUser.DeletedAt,
		&modelUser.CreatedAt,
		&modelUser.CreatedBy,
		&modelUser.LastUpdatedAt,
		&modelUser.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

// FindUserByID retrieves a user by id.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	return r.findUser(ctx, query, userID)
}

// FindUserByFlatNo retrieves the resident registered for a flat.
func (r *PgxUserRepository) FindUserByFlatNo(ctx context.Context, flatNo string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE flat_no = $1 AND deleted_at IS NULL;`
	return r.findUser(ctx, query, flatNo)
}

// FindUserByEmail retrieves a user by email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL;`
	return r.findUser(ctx, query, email)
}

// ListUsers retrieves all non-deleted users.
func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY flat_no NULLS LAST, name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	modelUsers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.User, error) {
		var user models.User
		err := row.Scan(
			&user.UserID,
			&user.Name,
			&user.Email,
			&user.FlatNo,
			&user.Phone,
			&user.Role,
			&user.PasswordHash,
			&user.RequiresPasswordChange,
			&user.RefreshTokenHash,
			&user.RefreshTokenExpiry,
			&user.DeletedAt,
			&user.CreatedAt,
			&user.CreatedBy,
			&user.LastUpdatedAt,
			&user.LastUpdatedBy,
		)
		return user, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}

	return mapping.ToDomainUserSlice(modelUsers), nil
}

// CountResidentFlats counts distinct flats with a registered resident.
func (r *PgxUserRepository) CountResidentFlats(ctx context.Context) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(DISTINCT flat_no) FROM users WHERE role = 'resident' AND flat_no IS NOT NULL AND deleted_at IS NULL;`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count resident flats: %w", err)
	}
	return count, nil
}
