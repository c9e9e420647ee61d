package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered reporter. The bcrypt hash is the only credential
// material ever stored; the plaintext password never reaches the database
// or the logs.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
