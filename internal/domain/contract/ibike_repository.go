package contract

import (
	"context"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// BikeFilterOptions holds database-agnostic parameters for listing bikes.
type BikeFilterOptions struct {
	Category        *string
	OnlyAvailable   bool
	MaxPricePerHour *float64
	Page            int64
	Limit           int64
	SortBy          string // "created_at", "price_per_hour", "price_per_day"
	SortOrder       string // "asc" or "desc"
}

type IBikeRepository interface {
	CreateBike(ctx context.Context, bike *entity.Bike) error
	GetBikeByID(ctx context.Context, id string) (*entity.Bike, error)
	GetBikes(ctx context.Context, opts *BikeFilterOptions) ([]*entity.Bike, error)
	// SearchNear returns bikes ordered by distance from the given point,
	// within radiusMeters. Requires a 2dsphere index on the location field.
	SearchNear(ctx context.Context, lng, lat, radiusMeters float64, onlyAvailable bool) ([]*entity.Bike, error)
	UpdateBike(ctx context.Context, id string, updates map[string]interface{}) (*entity.Bike, error)
	DeleteBike(ctx context.Context, id string) error
	// ReserveBike atomically flips availability true -> false.
	// Returns ErrBikeUnavailable-shaped failure when the bike is already taken.
	ReserveBike(ctx context.Context, id string) error
	// ReleaseBike flips availability back to true.
	ReleaseBike(ctx context.Context, id string) error
}
