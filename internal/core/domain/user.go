package domain

import "time"

// UserRole separates residents from committee admins.
type UserRole string

const (
	RoleResident UserRole = "resident"
	RoleAdmin    UserRole = "admin"
)

// User represents a registered member of the society. Residents are keyed
// to a flat; admins may exist without one.
type User struct {
	UserID                 string     `json:"userID"`
	Name                   string     `json:"name"`
	Email                  string     `json:"email,omitempty"`
	FlatNo                 string     `json:"flatNo,omitempty"`
	Phone                  string     `json:"phone,omitempty"`
	Role                   UserRole   `json:"role"`
	Password               string     `json:"-"` // bcrypt hash
	RequiresPasswordChange bool       `json:"requiresPasswordChange"`
	RefreshTokenHash       *string    `json:"-"`
	RefreshTokenExpiry     *time.Time `json:"-"`
	DeletedAt              *time.Time `json:"deletedAt,omitempty"`
	AuditFields
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
