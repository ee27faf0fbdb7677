package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AccountDB represents a credentials row in the accounts table
type AccountDB struct {
	AccountID    uuid.UUID `json:"id" db:"id"`                 // Primary key, shared with the user profile
	Email        string    `json:"email" db:"email"`           // Unique sign-in email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// ErrEmailTaken is returned by the store when an account with the same email exists.
var ErrEmailTaken = errors.New("email already registered")
