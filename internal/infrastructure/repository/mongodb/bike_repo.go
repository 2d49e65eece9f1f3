package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/domain/entity"
	"github.com/bikya/bikya-backend/internal/usecase"
)

// BikeRepository is the MongoDB implementation of IBikeRepository.
type BikeRepository struct {
	collection *mongo.Collection
}

var _ contract.IBikeRepository = (*BikeRepository)(nil)

// NewBikeRepository creates the repository and ensures the 2dsphere index
// geospatial search depends on.
func NewBikeRepository(ctx context.Context, db *mongo.Database) (*BikeRepository, error) {
	collection := db.Collection("bikes")
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create location index: %w", err)
	}
	return &BikeRepository{collection: collection}, nil
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *entity.Bike) error {
	now := time.Now()
	bike.CreatedAt = now
	bike.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, bike)
	if err != nil {
		return fmt.Errorf("failed to create bike: %w", err)
	}
	return nil
}

func (r *BikeRepository) GetBikeByID(ctx context.Context, id string) (*entity.Bike, error) {
	var bike entity.Bike
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&bike)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrBikeNotFound
		}
		return nil, fmt.Errorf("failed to retrieve bike: %w", err)
	}
	return &bike, nil
}

// buildBikeFilterAndSort translates filter options into a BSON filter and
// sort document.
func buildBikeFilterAndSort(opts *contract.BikeFilterOptions) (bson.M, bson.D) {
	filter := bson.M{}
	if opts.Category != nil && *opts.Category != "" {
		filter["category"] = *opts.Category
	}
	if opts.OnlyAvailable {
		filter["availability"] = true
	}
	if opts.MaxPricePerHour != nil {
		filter["price_per_hour"] = bson.M{"$lte": *opts.MaxPricePerHour}
	}

	sortOrder := -1
	if opts.SortOrder == "asc" {
		sortOrder = 1
	}
	sortKey := opts.SortBy
	switch sortKey {
	case "price_per_hour", "price_per_day":
	default:
		sortKey = "created_at"
	}
	return filter, bson.D{{Key: sortKey, Value: sortOrder}}
}

func (r *BikeRepository) GetBikes(ctx context.Context, opts *contract.BikeFilterOptions) ([]*entity.Bike, error) {
	filter, sort := buildBikeFilterAndSort(opts)

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 20
	}

	findOpts := options.Find().
		SetSort(sort).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bikes: %w", err)
	}
	defer cursor.Close(ctx)

	var bikes []*entity.Bike
	if err := cursor.All(ctx, &bikes); err != nil {
		return nil, fmt.Errorf("failed to decode bikes: %w", err)
	}
	if bikes == nil {
		bikes = []*entity.Bike{}
	}
	return bikes, nil
}

// SearchNear returns bikes ordered by distance from the given point. $near
// sorts by distance on its own, so no explicit sort stage is added.
func (r *BikeRepository) SearchNear(ctx context.Context, lng, lat, radiusMeters float64, onlyAvailable bool) ([]*entity.Bike, error) {
	filter := bson.M{
		"location": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{lng, lat},
				},
				"$maxDistance": radiusMeters,
			},
		},
	}
	if onlyAvailable {
		filter["availability"] = true
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search bikes near point: %w", err)
	}
	defer cursor.Close(ctx)

	var bikes []*entity.Bike
	if err := cursor.All(ctx, &bikes); err != nil {
		return nil, fmt.Errorf("failed to decode bikes: %w", err)
	}
	if bikes == nil {
		bikes = []*entity.Bike{}
	}
	return bikes, nil
}

func (r *BikeRepository) UpdateBike(ctx context.Context, id string, updates map[string]interface{}) (*entity.Bike, error) {
	updates["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	update := bson.M{"$set": updates}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update bike: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, usecase.ErrBikeNotFound
	}

	var bike entity.Bike
	if err := r.collection.FindOne(ctx, filter).Decode(&bike); err != nil {
		return nil, fmt.Errorf("failed to reload updated bike: %w", err)
	}
	return &bike, nil
}

func (r *BikeRepository) DeleteBike(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete bike: %w", err)
	}
	if result.DeletedCount == 0 {
		return usecase.ErrBikeNotFound
	}
	return nil
}

// ReserveBike flips availability true -> false in a single conditional
// update. When two bookings race for the same bike, exactly one update
// matches; the loser sees ErrBikeUnavailable.
func (r *BikeRepository) ReserveBike(ctx context.Context, id string) error {
	filter := bson.M{"_id": id, "availability": true}
	update := bson.M{"$set": bson.M{"availability": false, "updated_at": time.Now()}}

	err := r.collection.FindOneAndUpdate(ctx, filter, update).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Distinguish a missing bike from one that is already taken.
			count, countErr := r.collection.CountDocuments(ctx, bson.M{"_id": id})
			if countErr == nil && count == 0 {
				return usecase.ErrBikeNotFound
			}
			return usecase.ErrBikeUnavailable
		}
		return fmt.Errorf("failed to reserve bike: %w", err)
	}
	return nil
}

// ReleaseBike makes the bike available again after a booking ends or a
// reservation is rolled back.
func (r *BikeRepository) ReleaseBike(ctx context.Context, id string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"availability": true, "updated_at": time.Now()}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release bike: %w", err)
	}
	if result.MatchedCount == 0 {
		return usecase.ErrBikeNotFound
	}
	return nil
}
