package model

import (
	"time"

	"github.com/google/uuid"
)

// PharmacyModel is the GORM-specific struct for the 'pharmacies' table.
// Distances are computed with PostGIS from the latitude/longitude columns.
type PharmacyModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex:idx_pharmacies_email;not null"`
	Phone           string    `gorm:"type:varchar(50);not null"`
	City            string    `gorm:"type:varchar(100);not null"`
	DetailedAddress string    `gorm:"type:text;not null"`
	Latitude        float64   `gorm:"type:double precision;not null;index:idx_pharmacies_on_location"`
	Longitude       float64   `gorm:"type:double precision;not null;index:idx_pharmacies_on_location"`
	IsOnDuty        bool      `gorm:"not null;default:false"`
	IsOnGard        bool      `gorm:"not null;default:false;index"`
	Description     string    `gorm:"type:text"`
	Image           string    `gorm:"type:text"`
	ImageMobile     string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PharmacyModel) TableName() string {
	return "pharmacies"
}
