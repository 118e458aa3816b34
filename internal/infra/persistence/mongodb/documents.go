package mongodb

import (
	"time"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userDocument mirrors a document in the 'users' collection.
type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// geoPoint is a GeoJSON point, coordinates ordered [longitude, latitude].
type geoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

func newGeoPoint(c entity.Coordinate) geoPoint {
	p := c.Point()

	return geoPoint{Type: "Point", Coordinates: []float64{p.Lon(), p.Lat()}}
}

// pharmacyDocument mirrors a document in the 'pharmacies' collection.
// Location duplicates latitude/longitude for the 2dsphere index.
type pharmacyDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Email           string             `bson:"email"`
	Phone           string             `bson:"phone"`
	City            string             `bson:"city"`
	DetailedAddress string             `bson:"detailedAddress"`
	Latitude        float64            `bson:"latitude"`
	Longitude       float64            `bson:"longitude"`
	Location        geoPoint           `bson:"location"`
	IsOnDuty        bool               `bson:"isOnDuty"`
	IsOnGard        bool               `bson:"isOnGard"`
	Description     string             `bson:"description,omitempty"`
	Image           string             `bson:"image,omitempty"`
	ImageMobile     string             `bson:"imageMobile,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`

	// Distance is only present in $geoNear results.
	Distance *float64 `bson:"distance,omitempty"`
}

// --- Mapper Functions ---

func toUserDomain(doc *userDocument) *entity.User {
	if doc == nil {
		return nil
	}

	return &entity.User{
		ID:           doc.ID.Hex(),
		Username:     doc.Username,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *userDocument {
	if user == nil {
		return nil
	}

	doc := &userDocument{
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(user.ID); err == nil {
		doc.ID = oid
	}

	return doc
}

func toPharmacyDomain(doc *pharmacyDocument) *entity.Pharmacy {
	if doc == nil {
		return nil
	}

	return &entity.Pharmacy{
		ID:              doc.ID.Hex(),
		Name:            doc.Name,
		Email:           doc.Email,
		Phone:           doc.Phone,
		City:            doc.City,
		DetailedAddress: doc.DetailedAddress,
		Latitude:        doc.Latitude,
		Longitude:       doc.Longitude,
		IsOnDuty:        doc.IsOnDuty,
		IsOnGard:        doc.IsOnGard,
		Description:     doc.Description,
		Image:           doc.Image,
		ImageMobile:     doc.ImageMobile,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}

func fromPharmacyDomain(pharmacy *entity.Pharmacy) *pharmacyDocument {
	if pharmacy == nil {
		return nil
	}

	doc := &pharmacyDocument{
		Name:            pharmacy.Name,
		Email:           pharmacy.Email,
		Phone:           pharmacy.Phone,
		City:            pharmacy.City,
		DetailedAddress: pharmacy.DetailedAddress,
		Latitude:        pharmacy.Latitude,
		Longitude:       pharmacy.Longitude,
		Location:        newGeoPoint(pharmacy.Coordinate()),
		IsOnDuty:        pharmacy.IsOnDuty,
		IsOnGard:        pharmacy.IsOnGard,
		Description:     pharmacy.Description,
		Image:           pharmacy.Image,
		ImageMobile:     pharmacy.ImageMobile,
		CreatedAt:       pharmacy.CreatedAt,
		UpdatedAt:       pharmacy.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(pharmacy.ID); err == nil {
		doc.ID = oid
	}

	return doc
}

func toPharmacyMatch(doc *pharmacyDocument) *entity.PharmacyMatch {
	return &entity.PharmacyMatch{
		Pharmacy: toPharmacyDomain(doc),
		Distance: doc.Distance,
	}
}
