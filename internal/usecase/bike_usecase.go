package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/domain/entity"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

// BikeUsecase implements bike inventory operations with an optional
// read-through cache in front of the repository.
type BikeUsecase struct {
	bikeRepo contract.IBikeRepository
	storage  contract.IFileStorage
	logger   usecasecontract.IAppLogger
	uuidGen  contract.IUUIDGenerator
	cache    usecasecontract.IBikeCache
}

func NewBikeUsecase(
	bikeRepo contract.IBikeRepository,
	storage contract.IFileStorage,
	logger usecasecontract.IAppLogger,
	uuidGen contract.IUUIDGenerator,
) *BikeUsecase {
	return &BikeUsecase{
		bikeRepo: bikeRepo,
		storage:  storage,
		logger:   logger,
		uuidGen:  uuidGen,
	}
}

var _ usecasecontract.IBikeUseCase = (*BikeUsecase)(nil)

// SetBikeCache attaches an optional Redis-backed cache.
func (uc *BikeUsecase) SetBikeCache(cache usecasecontract.IBikeCache) {
	uc.cache = cache
}

// CreateBike lists a new bike. Admin/owner only.
func (uc *BikeUsecase) CreateBike(ctx context.Context, actor *entity.User, in usecasecontract.CreateBikeInput) (*entity.Bike, error) {
	if !actor.Role.CanManageInventory() {
		return nil, ErrForbidden
	}
	if !entity.ValidBikeCategory(in.Category) {
		return nil, fmt.Errorf("unknown bike category %q", in.Category)
	}
	if in.PricePerHour <= 0 || in.PricePerDay <= 0 {
		return nil, errors.New("prices must be positive")
	}

	bike := &entity.Bike{
		ID:           uc.uuidGen.NewUUID(),
		Name:         in.Name,
		Category:     entity.BikeCategory(in.Category),
		PricePerHour: in.PricePerHour,
		PricePerDay:  in.PricePerDay,
		Location:     entity.NewGeoPoint(in.Lng, in.Lat),
		Availability: true,
		CreatedBy:    actor.ID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if in.Photo != nil {
		url, err := uc.storage.UploadImage(ctx, in.Photo, "bikes")
		if err != nil {
			uc.logger.Errorf("failed to upload bike photo: %v", err)
			return nil, errors.New("failed to upload bike photo")
		}
		bike.PhotoURL = &url
	}

	if err := uc.bikeRepo.CreateBike(ctx, bike); err != nil {
		uc.logger.Errorf("failed to create bike: %v", err)
		return nil, errors.New("failed to create bike")
	}

	uc.invalidateLists(ctx)
	return bike, nil
}

// GetBikeByID returns a single bike, served from cache when possible.
func (uc *BikeUsecase) GetBikeByID(ctx context.Context, id string) (*entity.Bike, error) {
	if uc.cache != nil {
		if bike, ok, err := uc.cache.GetBikeByID(ctx, id); err == nil && ok {
			return bike, nil
		}
	}

	bike, err := uc.bikeRepo.GetBikeByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrBikeNotFound) {
			return nil, ErrBikeNotFound
		}
		uc.logger.Errorf("failed to load bike %s: %v", id, err)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetBikeByID(ctx, id, bike); err != nil {
			uc.logger.Warnf("failed to cache bike %s: %v", id, err)
		}
	}
	return bike, nil
}

// GetBikes lists bikes matching the filter, with page-level caching.
func (uc *BikeUsecase) GetBikes(ctx context.Context, opts *contract.BikeFilterOptions) ([]*entity.Bike, error) {
	if opts == nil {
		opts = &contract.BikeFilterOptions{}
	}

	key := bikesPageKey(opts)
	if uc.cache != nil {
		if page, ok, err := uc.cache.GetBikesPage(ctx, key); err == nil && ok {
			return page.Bikes, nil
		}
	}

	bikes, err := uc.bikeRepo.GetBikes(ctx, opts)
	if err != nil {
		uc.logger.Errorf("failed to list bikes: %v", err)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetBikesPage(ctx, key, &usecasecontract.CachedBikesPage{Bikes: bikes}); err != nil {
			uc.logger.Warnf("failed to cache bikes page: %v", err)
		}
	}
	return bikes, nil
}

func bikesPageKey(opts *contract.BikeFilterOptions) string {
	category := ""
	if opts.Category != nil {
		category = *opts.Category
	}
	maxPrice := ""
	if opts.MaxPricePerHour != nil {
		maxPrice = strconv.FormatFloat(*opts.MaxPricePerHour, 'f', -1, 64)
	}
	return fmt.Sprintf("bikes:list:cat=%s:avail=%t:maxhr=%s:page=%d:limit=%d:sort=%s:%s",
		category, opts.OnlyAvailable, maxPrice, opts.Page, opts.Limit, opts.SortBy, opts.SortOrder)
}

// SearchNear returns available bikes ordered by distance from the point.
func (uc *BikeUsecase) SearchNear(ctx context.Context, lng, lat, radiusMeters float64) ([]*entity.Bike, error) {
	if radiusMeters <= 0 {
		radiusMeters = 5000
	}
	bikes, err := uc.bikeRepo.SearchNear(ctx, lng, lat, radiusMeters, true)
	if err != nil {
		uc.logger.Errorf("failed geospatial bike search: %v", err)
		return nil, err
	}
	return bikes, nil
}

// UpdateBike edits bike fields. Admin/owner only. The availability flag is
// owned by the booking workflow and cannot be set here.
func (uc *BikeUsecase) UpdateBike(ctx context.Context, actor *entity.User, id string, updates map[string]interface{}) (*entity.Bike, error) {
	if !actor.Role.CanManageInventory() {
		return nil, ErrForbidden
	}
	delete(updates, "availability")
	if cat, ok := updates["category"].(string); ok && !entity.ValidBikeCategory(cat) {
		return nil, fmt.Errorf("unknown bike category %q", cat)
	}

	// A coordinate pair becomes a GeoJSON point so the 2dsphere index stays
	// usable.
	lng, hasLng := updates["lng"].(float64)
	lat, hasLat := updates["lat"].(float64)
	delete(updates, "lng")
	delete(updates, "lat")
	if hasLng && hasLat {
		updates["location"] = entity.NewGeoPoint(lng, lat)
	}

	bike, err := uc.bikeRepo.UpdateBike(ctx, id, updates)
	if err != nil {
		if errors.Is(err, ErrBikeNotFound) {
			return nil, ErrBikeNotFound
		}
		uc.logger.Errorf("failed to update bike %s: %v", id, err)
		return nil, errors.New("failed to update bike")
	}

	uc.invalidateBike(ctx, id)
	return bike, nil
}

// DeleteBike removes a bike from the inventory. Admin/owner only.
func (uc *BikeUsecase) DeleteBike(ctx context.Context, actor *entity.User, id string) error {
	if !actor.Role.CanManageInventory() {
		return ErrForbidden
	}
	if err := uc.bikeRepo.DeleteBike(ctx, id); err != nil {
		if errors.Is(err, ErrBikeNotFound) {
			return ErrBikeNotFound
		}
		uc.logger.Errorf("failed to delete bike %s: %v", id, err)
		return errors.New("failed to delete bike")
	}
	uc.invalidateBike(ctx, id)
	return nil
}

func (uc *BikeUsecase) invalidateBike(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateBikeByID(ctx, id); err != nil {
		uc.logger.Warnf("failed to invalidate cached bike %s: %v", id, err)
	}
	uc.invalidateLists(ctx)
}

func (uc *BikeUsecase) invalidateLists(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateBikeLists(ctx); err != nil {
		uc.logger.Warnf("failed to invalidate cached bike lists: %v", err)
	}
}
