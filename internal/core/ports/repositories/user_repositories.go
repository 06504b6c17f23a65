package repositories

import (
	"context"
	"time"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// UserReader defines read operations for users
type UserReader interface {
	// FindUserByID retrieves a user by id.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByFlatNo retrieves the resident registered for a flat.
	FindUserByFlatNo(ctx context.Context, flatNo string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves all non-deleted users.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CountResidentFlats counts distinct flats with a registered resident.
	CountResidentFlats(ctx context.Context) (int, error)
}

// UserWriter defines write operations for users
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser replaces a user's editable fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error

	// UpdateRefreshToken stores the hash and expiry of a user's refresh
	// token. Passing nils clears it.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiry *time.Time) error

	// UpdatePassword replaces a user's password hash.
	UpdatePassword(ctx context.Context, userID string, passwordHash string, requiresChange bool) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
