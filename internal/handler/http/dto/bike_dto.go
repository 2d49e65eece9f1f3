package dto

import (
	"time"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// CreateBikeRequest defines the multipart form for listing a new bike.
// The photo file is read from the form separately.
type CreateBikeRequest struct {
	Name         string  `form:"name" binding:"required,min=2,max=100"`
	Category     string  `form:"category" binding:"required,bikecategory"`
	PricePerHour float64 `form:"price_per_hour" binding:"required,gt=0"`
	PricePerDay  float64 `form:"price_per_day" binding:"required,gt=0"`
	Lng          float64 `form:"lng" binding:"min=-180,max=180"`
	Lat          float64 `form:"lat" binding:"min=-90,max=90"`
}

// UpdateBikeRequest defines the bike update payload. Nil fields are left
// untouched. Availability is absent on purpose: it is owned by the booking
// workflow.
type UpdateBikeRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category" binding:"omitempty,bikecategory"`
	PricePerHour *float64 `json:"price_per_hour" binding:"omitempty,gt=0"`
	PricePerDay  *float64 `json:"price_per_day" binding:"omitempty,gt=0"`
	Lng          *float64 `json:"lng" binding:"omitempty,min=-180,max=180"`
	Lat          *float64 `json:"lat" binding:"omitempty,min=-90,max=90"`
}

// BikeResponse defines the standard JSON response for a single bike.
type BikeResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	PricePerHour float64         `json:"price_per_hour"`
	PricePerDay  float64         `json:"price_per_day"`
	Location     entity.GeoPoint `json:"location"`
	Availability bool            `json:"availability"`
	PhotoURL     *string         `json:"photo_url,omitempty"`
	CreatedBy    string          `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BikeListResponse defines the structure for a paginated list of bikes.
type BikeListResponse struct {
	Bikes []BikeResponse `json:"bikes"`
	Page  int64          `json:"page"`
	Limit int64          `json:"limit"`
}

func ToBikeResponse(bike *entity.Bike) BikeResponse {
	return BikeResponse{
		ID:           bike.ID,
		Name:         bike.Name,
		Category:     string(bike.Category),
		PricePerHour: bike.PricePerHour,
		PricePerDay:  bike.PricePerDay,
		Location:     bike.Location,
		Availability: bike.Availability,
		PhotoURL:     bike.PhotoURL,
		CreatedBy:    bike.CreatedBy,
		CreatedAt:    bike.CreatedAt,
		UpdatedAt:    bike.UpdatedAt,
	}
}

func ToBikeResponses(bikes []*entity.Bike) []BikeResponse {
	out := make([]BikeResponse, 0, len(bikes))
	for _, b := range bikes {
		out = append(out, ToBikeResponse(b))
	}
	return out
}
