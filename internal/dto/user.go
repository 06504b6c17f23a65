package dto

import (
	"time"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a member.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
	FlatNo   string `json:"flatNo,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role" binding:"required,oneof=resident admin"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest defines the editable profile fields. Nil fields are
// left untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
}

// ChangePasswordRequest defines a password change by the user themselves.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID                 string    `json:"userID"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email,omitempty"`
	FlatNo                 string    `json:"flatNo,omitempty"`
	Phone                  string    `json:"phone,omitempty"`
	Role                   string    `json:"role"`
	RequiresPasswordChange bool      `json:"requiresPasswordChange"`
	CreatedAt              time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:                 u.UserID,
		Name:                   u.Name,
		Email:                  u.Email,
		FlatNo:                 u.FlatNo,
		Phone:                  u.Phone,
		Role:                   string(u.Role),
		RequiresPasswordChange: u.RequiresPasswordChange,
		CreatedAt:              u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to a slice of UserResponse DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return res
}
