package dto

import (
	"encoding/json"
	"time"

	"gymfit_backend/internal/models"
)

// UserDTO - the sanitized account projection. Never carries the password hash
// or any live token value.
type UserDTO struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Role            models.UserRole `json:"role"`
	IsActive        bool            `json:"is_active"`
	IsEmailVerified bool            `json:"is_email_verified"`
	Phone           string          `json:"phone,omitempty"`
	Avatar          string          `json:"avatar,omitempty"`
	Specializations []string        `json:"specializations,omitempty"`
	Certifications  []string        `json:"certifications,omitempty"`
	Experience      int             `json:"experience,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	LastLogin       *time.Time      `json:"last_login,omitempty"`
}

// NewUserDTO builds the sanitized projection of a user record.
func NewUserDTO(user *models.User) *UserDTO {
	dto := &UserDTO{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Role:            user.Role,
		IsActive:        user.IsActive,
		IsEmailVerified: user.IsEmailVerified,
		Phone:           user.Phone,
		Avatar:          user.Avatar,
		Experience:      user.Experience,
		CreatedAt:       user.CreatedAt,
		LastLogin:       user.LastLogin,
	}

	if len(user.Specializations) > 0 {
		_ = json.Unmarshal(user.Specializations, &dto.Specializations)
	}
	if len(user.Certifications) > 0 {
		_ = json.Unmarshal(user.Certifications, &dto.Certifications)
	}

	return dto
}
