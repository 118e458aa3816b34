// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/entity"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserEmailTaken is returned when a write collides with the unique email index.
	ErrUserEmailTaken = errors.New("user email already taken")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their store-assigned ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their exact email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in its ID and timestamps.
	// Returns ErrUserEmailTaken when the email is already registered.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the hash of the user owning email in a single write.
	// Returns ErrUserNotFound when no user matches.
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
}
