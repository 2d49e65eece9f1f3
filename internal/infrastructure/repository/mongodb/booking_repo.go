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

// BookingRepository is the MongoDB implementation of IBookingRepository.
type BookingRepository struct {
	collection *mongo.Collection
}

var _ contract.IBookingRepository = (*BookingRepository)(nil)

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{collection: db.Collection("bookings")}
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) findOne(ctx context.Context, filter bson.M) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}

func (r *BookingRepository) GetBookingByID(ctx context.Context, id string) (*entity.Booking, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetBookingByOrderID locates the booking a gateway order was created for.
// Order ids are unique per booking, set once by the payment flow.
func (r *BookingRepository) GetBookingByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	return r.findOne(ctx, bson.M{"order_id": orderID})
}

func buildBookingFilterAndSort(opts *contract.BookingFilterOptions) (bson.M, bson.D) {
	filter := bson.M{}
	if opts.UserID != nil && *opts.UserID != "" {
		filter["user_id"] = *opts.UserID
	}
	if opts.BikeID != nil && *opts.BikeID != "" {
		filter["bike_id"] = *opts.BikeID
	}
	if opts.Status != nil && *opts.Status != "" {
		filter["status"] = *opts.Status
	}

	sortOrder := -1
	if opts.SortOrder == "asc" {
		sortOrder = 1
	}
	return filter, bson.D{{Key: "created_at", Value: sortOrder}}
}

func (r *BookingRepository) GetBookings(ctx context.Context, opts *contract.BookingFilterOptions) ([]*entity.Booking, error) {
	filter, sort := buildBookingFilterAndSort(opts)

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
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*entity.Booking{}
	}
	return bookings, nil
}

// UpdateStatus sets the booking status and, when provided, the cancel reason.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus, cancelReason *string) error {
	set := bson.M{"status": string(status), "updated_at": time.Now()}
	if cancelReason != nil {
		set["cancel_reason"] = *cancelReason
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if result.MatchedCount == 0 {
		return usecase.ErrBookingNotFound
	}
	return nil
}

// MarkActive moves a pending booking to active and records the verified
// gateway payment id. The status guard in the filter keeps a replayed
// verification from touching a booking that already moved on.
func (r *BookingRepository) MarkActive(ctx context.Context, id string, paymentID string) error {
	filter := bson.M{"_id": id, "status": string(entity.BookingStatusPending)}
	update := bson.M{"$set": bson.M{
		"status":     string(entity.BookingStatusActive),
		"payment_id": paymentID,
		"updated_at": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to activate booking: %w", err)
	}
	if result.MatchedCount == 0 {
		return usecase.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) SetOrderID(ctx context.Context, id string, orderID string) error {
	update := bson.M{"$set": bson.M{"order_id": orderID, "updated_at": time.Now()}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set order id: %w", err)
	}
	if result.MatchedCount == 0 {
		return usecase.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) SetReview(ctx context.Context, id string, review *entity.BookingReview) error {
	update := bson.M{"$set": bson.M{"review": review, "updated_at": time.Now()}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set booking review: %w", err)
	}
	if result.MatchedCount == 0 {
		return usecase.ErrBookingNotFound
	}
	return nil
}
