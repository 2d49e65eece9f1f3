package entity

import (
	"time"
)

// BikeCategory is the closed set of rental categories.
type BikeCategory string

const (
	BikeCategoryCity     BikeCategory = "city"
	BikeCategoryMountain BikeCategory = "mountain"
	BikeCategoryRoad     BikeCategory = "road"
	BikeCategoryElectric BikeCategory = "electric"
	BikeCategoryScooter  BikeCategory = "scooter"
)

// ValidBikeCategory reports whether s names a known category.
func ValidBikeCategory(s string) bool {
	switch BikeCategory(s) {
	case BikeCategoryCity, BikeCategoryMountain, BikeCategoryRoad, BikeCategoryElectric, BikeCategoryScooter:
		return true
	}
	return false
}

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude],
// the order MongoDB expects for a 2dsphere index.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Bike is a rental unit listed on the marketplace.
// Availability flips to false when a booking reserves the bike and back
// to true when the booking reaches a terminal state.
type Bike struct {
	ID           string       `bson:"_id,omitempty" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Category     BikeCategory `bson:"category" json:"category"`
	PricePerHour float64      `bson:"price_per_hour" json:"price_per_hour"`
	PricePerDay  float64      `bson:"price_per_day" json:"price_per_day"`
	Location     GeoPoint     `bson:"location" json:"location"`
	Availability bool         `bson:"availability" json:"availability"`
	PhotoURL     *string      `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	CreatedBy    string       `bson:"created_by" json:"created_by"`
	CreatedAt    time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `bson:"updated_at" json:"updated_at"`
}
