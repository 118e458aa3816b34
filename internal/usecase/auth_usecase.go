// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/entity"
)

// PasswordResetMessage is returned after a successful password reset.
const PasswordResetMessage = "Password successfully updated"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput identifies the account by email and carries the new password.
type ResetPasswordInput struct {
	Email       string
	NewPassword string
}

// --- Output DTOs ---

// TokenOutput carries a freshly issued access token.
type TokenOutput struct {
	Token string `json:"token"`
}

// MessageOutput carries a human-readable confirmation.
type MessageOutput struct {
	Message string `json:"message"`
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) (*MessageOutput, error)
	// GetUser returns nil, nil when no user has the given ID.
	GetUser(ctx context.Context, id string) (*entity.User, error)
}
