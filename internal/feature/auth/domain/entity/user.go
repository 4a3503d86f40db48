// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It holds the profile fields collected at signup and the stored credential digest.
type User struct {
	// ID is the unique identifier for the user, assigned by the store.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name.
	Name string `gorm:"size:100;not null"`

	// Email is the user's email address used as the login key.
	// It must be unique across all users and is stored case-sensitively.
	Email string `gorm:"uniqueIndex;size:100;not null"`

	// PasswordHash is the fixed-length hex digest of the user's password.
	// This never stores plaintext passwords.
	PasswordHash string `gorm:"size:64;not null"`

	// Phone is the user's contact number.
	Phone string `gorm:"size:20;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
