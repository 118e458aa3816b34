package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{name: "origin", coord: Coordinate{}, want: true},
		{name: "casablanca", coord: Coordinate{Latitude: 33.5731, Longitude: -7.5898}, want: true},
		{name: "poles and antimeridian", coord: Coordinate{Latitude: -90, Longitude: 180}, want: true},
		{name: "latitude too high", coord: Coordinate{Latitude: 90.1, Longitude: 0}, want: false},
		{name: "longitude too low", coord: Coordinate{Latitude: 0, Longitude: -180.5}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coord.Valid())
		})
	}
}

func TestCoordinate_DistanceTo(t *testing.T) {
	rabat := Coordinate{Latitude: 34.0209, Longitude: -6.8416}
	casablanca := Coordinate{Latitude: 33.5731, Longitude: -7.5898}

	assert.Zero(t, rabat.DistanceTo(rabat))
	// Rabat to Casablanca is roughly 85 km in a straight line.
	assert.InDelta(t, 85000, rabat.DistanceTo(casablanca), 3000)
	assert.InDelta(t, rabat.DistanceTo(casablanca), casablanca.DistanceTo(rabat), 1e-6)
}

func TestCoordinate_BoundAround(t *testing.T) {
	center := Coordinate{Latitude: 33.5731, Longitude: -7.5898}
	bound := center.BoundAround(1000)

	assert.True(t, bound.Contains(center.Point()))
	assert.Less(t, bound.Min.Lat(), center.Latitude)
	assert.Greater(t, bound.Max.Lat(), center.Latitude)
	assert.Less(t, bound.Min.Lon(), center.Longitude)
	assert.Greater(t, bound.Max.Lon(), center.Longitude)
}

func TestPharmacyPatch_Apply(t *testing.T) {
	name := "Pharmacie Atlas"
	lat := 34.0
	onGard := true
	p := &Pharmacy{Name: "Old", City: "Rabat", Latitude: 33.0, IsOnGard: false}

	patch := &PharmacyPatch{Name: &name, Latitude: &lat, IsOnGard: &onGard}
	assert.False(t, patch.IsEmpty())

	patch.Apply(p)

	assert.Equal(t, "Pharmacie Atlas", p.Name)
	assert.Equal(t, "Rabat", p.City)
	assert.Equal(t, 34.0, p.Latitude)
	assert.True(t, p.IsOnGard)
}

func TestPharmacyPatch_IsEmpty(t *testing.T) {
	var nilPatch *PharmacyPatch
	assert.True(t, nilPatch.IsEmpty())
	assert.True(t, (&PharmacyPatch{}).IsEmpty())
}

func TestParsePharmacyField(t *testing.T) {
	f, ok := ParsePharmacyField("detailedAddress")
	assert.True(t, ok)
	assert.Equal(t, PharmacyFieldDetailedAddress, f)

	_, ok = ParsePharmacyField("password")
	assert.False(t, ok)
}
