package usecasecontract

import (
	"context"
	"mime/multipart"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// CreateBikeInput carries the fields needed to list a new bike.
type CreateBikeInput struct {
	Name         string
	Category     string
	PricePerHour float64
	PricePerDay  float64
	Lng          float64
	Lat          float64
	Photo        *multipart.FileHeader // optional
}

// IBikeUseCase defines bike inventory operations.
type IBikeUseCase interface {
	CreateBike(ctx context.Context, actor *entity.User, in CreateBikeInput) (*entity.Bike, error)
	GetBikeByID(ctx context.Context, id string) (*entity.Bike, error)
	GetBikes(ctx context.Context, opts *contract.BikeFilterOptions) ([]*entity.Bike, error)
	SearchNear(ctx context.Context, lng, lat, radiusMeters float64) ([]*entity.Bike, error)
	UpdateBike(ctx context.Context, actor *entity.User, id string, updates map[string]interface{}) (*entity.Bike, error)
	DeleteBike(ctx context.Context, actor *entity.User, id string) error
}
