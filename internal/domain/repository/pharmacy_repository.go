package repository

import (
	"context"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/entity"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/errors"
)

// Domain-specific errors for pharmacy persistence.
var (
	// ErrPharmacyNotFound is returned when no pharmacy matches the given ID.
	ErrPharmacyNotFound = errors.New("pharmacy not found")
	// ErrPharmacyEmailTaken is returned when a write collides with the unique email index.
	ErrPharmacyEmailTaken = errors.New("pharmacy email already taken")
)

// PharmacyQuery describes a single declarative search over pharmacies.
type PharmacyQuery struct {
	// Near, when set, annotates every result with its distance in meters and orders by it.
	Near *entity.Coordinate
	// MaxDistance bounds results around Near in meters. Zero means unbounded.
	MaxDistance float64
	// OnGuardOnly restricts results to pharmacies with IsOnGard set.
	OnGuardOnly bool
	// Text is matched case-insensitively as a substring of any of TextFields.
	Text       string
	TextFields []entity.PharmacyField
}

// PharmacyRepository defines the persistence operations for pharmacies.
type PharmacyRepository interface {
	// Create persists a new pharmacy and fills in its ID and timestamps.
	// Returns ErrPharmacyEmailTaken when the email is already used.
	Create(ctx context.Context, pharmacy *entity.Pharmacy) error

	// FindAll returns every pharmacy in store order.
	FindAll(ctx context.Context) ([]*entity.Pharmacy, error)

	// FindByID returns ErrPharmacyNotFound for unknown or malformed IDs.
	FindByID(ctx context.Context, id string) (*entity.Pharmacy, error)

	// Update applies the patch in a single conditional write and returns the stored result.
	// Returns ErrPharmacyNotFound or ErrPharmacyEmailTaken.
	Update(ctx context.Context, id string, patch *entity.PharmacyPatch) (*entity.Pharmacy, error)

	// Delete removes the pharmacy. Returns ErrPharmacyNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error

	// Aggregate runs a text and/or geo query in one round trip.
	Aggregate(ctx context.Context, query *PharmacyQuery) ([]*entity.PharmacyMatch, error)
}
