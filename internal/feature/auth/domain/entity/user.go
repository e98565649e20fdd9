// Package entity defines the domain entities for the auth feature.
package entity

import "vehicle_backend/internal/platform/persistence"

// User represents an account that can authenticate against the API.
// It carries the shared audit and soft-delete fields, so removed
// accounts stay in storage but can no longer log in.
type User struct {
	persistence.AuditFields
	persistence.SoftDeleteFields

	// Username is the login name. It must be unique across all users,
	// deleted ones included.
	Username string `gorm:"uniqueIndex;size:255;not null" json:"username"`

	// PasswordHash is the bcrypt hash of the password.
	// Plaintext passwords are never stored.
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// IsAdmin marks accounts that see unmasked audit actors.
	IsAdmin bool `gorm:"not null;default:false" json:"isAdmin"`
}
