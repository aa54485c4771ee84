package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`                // Primary key
	Username     string    `json:"username" db:"username"`         // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`           // Hashed password, never serialized
	Disabled     bool      `json:"disabled" db:"disabled"`         // Whether the account is disabled
	Role         string    `json:"role" db:"role"`                 // "admin" or "user"
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
