package usecasecontract

import (
	"context"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// CachedBikesPage is a cached list of bikes keyed by the filter that produced it.
type CachedBikesPage struct {
	Bikes []*entity.Bike `json:"bikes"`
}

// IBikeCache caches bike details and listing pages.
type IBikeCache interface {
	GetBikeByID(ctx context.Context, id string) (*entity.Bike, bool, error)
	SetBikeByID(ctx context.Context, id string, bike *entity.Bike) error
	InvalidateBikeByID(ctx context.Context, id string) error
	GetBikesPage(ctx context.Context, key string) (*CachedBikesPage, bool, error)
	SetBikesPage(ctx context.Context, key string, page *CachedBikesPage) error
	InvalidateBikeLists(ctx context.Context) error
}
