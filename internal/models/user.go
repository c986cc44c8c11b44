package models

import (
	"time"

	"gorm.io/datatypes"
)

// User - the durable account record. Recovery tokens (verification, reset)
// live directly on the row: at most one live token per purpose, a reissue
// overwrites the previous value.
type User struct {
	BaseModel
	Email           string   `gorm:"uniqueIndex;not null"`
	PasswordHash    string   `gorm:"not null"`
	FirstName       string   `gorm:"not null"`
	LastName        string   `gorm:"not null"`
	Role            UserRole `gorm:"type:varchar(20);not null;default:'client'"`
	IsActive        bool     `gorm:"default:true"`
	IsEmailVerified bool     `gorm:"default:false"`

	Phone           string
	Avatar          string
	Specializations datatypes.JSON
	Certifications  datatypes.JSON
	Experience      int

	LastLogin *time.Time

	VerificationToken string
	ResetToken        string
	ResetTokenExp     *time.Time
}
