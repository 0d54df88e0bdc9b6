// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
// Column names follow the legacy schema (uemail/upassword).
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the display name bound into issued tokens.
	Username string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"column:uemail;uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"column:upassword;size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
