package mapping

import (
	"github.com/urmilakunj/society_backend/internal/core/domain"
	"github.com/urmilakunj/society_backend/internal/models"
)

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:                 d.UserID,
		Name:                   d.Name,
		Email:                  strOrNil(d.Email),
		FlatNo:                 strOrNil(d.FlatNo),
		Phone:                  strOrNil(d.Phone),
		Role:                   string(d.Role),
		PasswordHash:           d.Password,
		RequiresPasswordChange: d.RequiresPasswordChange,
		RefreshTokenHash:       d.RefreshTokenHash,
		RefreshTokenExpiry:     d.RefreshTokenExpiry,
		DeletedAt:              d.DeletedAt,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:                 m.UserID,
		Name:                   m.Name,
		Email:                  derefOrEmpty(m.Email),
		FlatNo:                 derefOrEmpty(m.FlatNo),
		Phone:                  derefOrEmpty(m.Phone),
		Role:                   domain.UserRole(m.Role),
		Password:               m.PasswordHash,
		RequiresPasswordChange: m.RequiresPasswordChange,
		RefreshTokenHash:       m.RefreshTokenHash,
		RefreshTokenExpiry:     m.RefreshTokenExpiry,
		DeletedAt:              m.DeletedAt,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserSlice converts a slice of model Users to domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
