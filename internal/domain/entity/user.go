// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is an account able to authenticate against the directory.
// It is created on registration and only ever mutated by a password reset.
type User struct {
	ID           string    `json:"id"`        // Opaque identifier assigned by the store.
	Username     string    `json:"username"`  // Display name chosen at registration.
	Email        string    `json:"email"`     // Unique login identifier, compared exactly as stored.
	PasswordHash string    `json:"-"`         // bcrypt hash, never serialised.
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updatedAt"` // Timestamp of the last modification.
}
