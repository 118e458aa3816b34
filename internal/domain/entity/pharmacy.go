// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Pharmacy is a listed pharmacy with its contact data, position and duty flags.
type Pharmacy struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"` // Unique across all pharmacies.
	Phone           string    `json:"phone"`
	City            string    `json:"city"`
	DetailedAddress string    `json:"detailedAddress"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	IsOnDuty        bool      `json:"isOnDuty"`
	IsOnGard        bool      `json:"isOnGard"`
	Description     string    `json:"description,omitempty"`
	Image           string    `json:"image,omitempty"`
	ImageMobile     string    `json:"imageMobile,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Coordinate returns the pharmacy position.
func (p *Pharmacy) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// PharmacyPatch carries a partial update. Nil fields are left untouched.
type PharmacyPatch struct {
	Name            *string
	Email           *string
	Phone           *string
	City            *string
	DetailedAddress *string
	Latitude        *float64
	Longitude       *float64
	IsOnDuty        *bool
	IsOnGard        *bool
	Description     *string
	Image           *string
	ImageMobile     *string
}

// IsEmpty reports whether the patch changes nothing.
func (p *PharmacyPatch) IsEmpty() bool {
	return p == nil ||
		p.Name == nil && p.Email == nil && p.Phone == nil && p.City == nil &&
			p.DetailedAddress == nil && p.Latitude == nil && p.Longitude == nil &&
			p.IsOnDuty == nil && p.IsOnGard == nil && p.Description == nil &&
			p.Image == nil && p.ImageMobile == nil
}

// Apply merges the patch into the pharmacy in place.
func (p *PharmacyPatch) Apply(target *Pharmacy) {
	if p == nil || target == nil {
		return
	}
	if p.Name != nil {
		target.Name = *p.Name
	}
	if p.Email != nil {
		target.Email = *p.Email
	}
	if p.Phone != nil {
		target.Phone = *p.Phone
	}
	if p.City != nil {
		target.City = *p.City
	}
	if p.DetailedAddress != nil {
		target.DetailedAddress = *p.DetailedAddress
	}
	if p.Latitude != nil {
		target.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		target.Longitude = *p.Longitude
	}
	if p.IsOnDuty != nil {
		target.IsOnDuty = *p.IsOnDuty
	}
	if p.IsOnGard != nil {
		target.IsOnGard = *p.IsOnGard
	}
	if p.Description != nil {
		target.Description = *p.Description
	}
	if p.Image != nil {
		target.Image = *p.Image
	}
	if p.ImageMobile != nil {
		target.ImageMobile = *p.ImageMobile
	}
}

// PharmacyMatch is a pharmacy returned by a search, optionally annotated
// with its distance in meters from the query point.
type PharmacyMatch struct {
	*Pharmacy
	Distance *float64 `json:"distance,omitempty"`
}

// PharmacyField names a pharmacy attribute that free-text search may match.
type PharmacyField string

const (
	PharmacyFieldName            PharmacyField = "name"
	PharmacyFieldCity            PharmacyField = "city"
	PharmacyFieldDetailedAddress PharmacyField = "detailedAddress"
	PharmacyFieldPhone           PharmacyField = "phone"
	PharmacyFieldEmail           PharmacyField = "email"
	PharmacyFieldDescription     PharmacyField = "description"
)

// ParsePharmacyField validates a configured search field name.
func ParsePharmacyField(s string) (PharmacyField, bool) {
	switch f := PharmacyField(s); f {
	case PharmacyFieldName, PharmacyFieldCity, PharmacyFieldDetailedAddress,
		PharmacyFieldPhone, PharmacyFieldEmail, PharmacyFieldDescription:
		return f, true
	default:
		return "", false
	}
}
