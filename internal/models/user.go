package models

import "time"

// User represents a row of the users table.
type User struct {
	UserID                 string     `db:"user_id"`
	Name                   string     `db:"name"`
	Email                  *string    `db:"email"`
	FlatNo                 *string    `db:"flat_no"`
	Phone                  *string    `db:"phone"`
	Role                   string     `db:"role"`
	PasswordHash           string     `db:"password_hash"`
	RequiresPasswordChange bool       `db:"requires_password_change"`
	RefreshTokenHash       *string    `db:"refresh_token_hash"`
	RefreshTokenExpiry     *time.Time `db:"refresh_token_expiry"`
	DeletedAt              *time.Time `db:"deleted_at"`
	AuditFields
}
