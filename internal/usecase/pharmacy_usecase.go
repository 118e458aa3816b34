package usecase

import (
	"context"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/entity"
)

// CreatePharmacyInput represents the input for creating a pharmacy
type CreatePharmacyInput struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	City            string  `json:"city"`
	DetailedAddress string  `json:"detailedAddress"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	IsOnDuty        bool    `json:"isOnDuty"`
	IsOnGard        bool    `json:"isOnGard"`
	Description     string  `json:"description,omitempty"`
	Image           string  `json:"image,omitempty"`
	ImageMobile     string  `json:"imageMobile,omitempty"`
}

// UpdatePharmacyInput represents a partial update; nil fields are left untouched
type UpdatePharmacyInput struct {
	Name            *string  `json:"name,omitempty"`
	Email           *string  `json:"email,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	City            *string  `json:"city,omitempty"`
	DetailedAddress *string  `json:"detailedAddress,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	IsOnDuty        *bool    `json:"isOnDuty,omitempty"`
	IsOnGard        *bool    `json:"isOnGard,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Image           *string  `json:"image,omitempty"`
	ImageMobile     *string  `json:"imageMobile,omitempty"`
}

// GuardSearchInput is the reference point for a guard pharmacy lookup
type GuardSearchInput struct {
	Latitude  float64
	Longitude float64
}

// SearchInput holds optional search criteria. Latitude and Longitude must be given together.
type SearchInput struct {
	Query     string
	Latitude  *float64
	Longitude *float64
}

// PharmacyUsecase defines the interface for pharmacy directory use cases.
// Lookups by ID return nil without error when the pharmacy does not exist.
type PharmacyUsecase interface {
	Create(ctx context.Context, input *CreatePharmacyInput) (*entity.Pharmacy, error)
	List(ctx context.Context) ([]*entity.Pharmacy, error)
	GetByID(ctx context.Context, id string) (*entity.Pharmacy, error)
	Update(ctx context.Context, id string, input *UpdatePharmacyInput) (*entity.Pharmacy, error)
	Delete(ctx context.Context, id string) (bool, error)
	SetOnDuty(ctx context.Context, id string) (*entity.Pharmacy, error)
	FindGuardPharmacies(ctx context.Context, input *GuardSearchInput) ([]*entity.PharmacyMatch, error)
	Search(ctx context.Context, input *SearchInput) ([]*entity.PharmacyMatch, error)
	GenerateQRCode(ctx context.Context, id string) ([]byte, error)
}
