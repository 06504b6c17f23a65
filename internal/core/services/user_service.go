package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	"github.com/urmilakunj/society_backend/internal/core/domain"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/dto"
	"github.com/urmilakunj/society_backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the member management service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new member. Residents must name a flat; admins
// must have an email for Google sign-in.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if role == domain.RoleResident && req.FlatNo == "" {
		return nil, fmt.Errorf("%w: residents require a flat number", apperrors.ErrValidation)
	}
	if role == domain.RoleAdmin && req.Email == "" {
		return nil, fmt.Errorf("%w: admins require an email", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:   uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		FlatNo:   req.FlatNo,
		Phone:    req.Phone,
		Role:     role,
		Password: hash,
		// First login forces a password rotation; registration is done
		// by the committee with a shared initial secret.
		RequiresPasswordChange: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "user created",
		slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

// UpdateUser updates a user's profile fields. Members may edit their own
// profile; admins may edit anyone's.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "user updated", slog.String("user_id", userID))
	return user, nil
}

// ChangePassword verifies the current password and stores a new one.
func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.Password) {
		return apperrors.ErrUnauthorized
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash, false); err != nil {
		return err
	}

	s.LogInfo(ctx, "password changed", slog.String("user_id", userID))
	return nil
}

// DeleteUser marks a user as deleted (soft delete).
func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), requestingUserID); err != nil {
		return err
	}
	s.LogInfo(ctx, "user deleted",
		slog.String("user_id", userID), slog.String("deleted_by", requestingUserID))
	return nil
}

// UpdateRefreshToken updates the refresh token details for a user.
func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, &refreshTokenHash, &refreshTokenExpiryTime)
}

// ClearRefreshToken clears the refresh token for a user.
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, nil, nil)
}

// AuthenticateResident authenticates a resident by flat number and password.
func (s *userService) AuthenticateResident(ctx context.Context, flatNo, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByFlatNo(ctx, flatNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// AuthenticateAdmin authenticates an admin by email and password.
func (s *userService) AuthenticateAdmin(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByFlatNo retrieves the resident registered for a flat.
func (s *userService) GetUserByFlatNo(ctx context.Context, flatNo string) (*domain.User, error) {
	return s.userRepo.FindUserByFlatNo(ctx, flatNo)
}

// GetUserByEmail retrieves a user by email address.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

// ListUsers retrieves all users.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// CountResidentFlats counts flats with a registered resident.
func (s *userService) CountResidentFlats(ctx context.Context) (int, error) {
	return s.userRepo.CountResidentFlats(ctx)
}
