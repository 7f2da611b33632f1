package entities

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account holder in the system.
type User struct {
	ID             uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name           string    `json:"name" db:"name" gorm:"not null"`
	Email          string    `json:"email" db:"email" gorm:"unique;not null"`
	PasswordHash   string    `json:"-" db:"password_hash" gorm:"not null"`
	ProfilePicture string    `json:"profile_picture" db:"profile_picture"`
	CreatedAt      time.Time `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`
}
