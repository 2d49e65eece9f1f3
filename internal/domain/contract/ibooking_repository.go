package contract

import (
	"context"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// BookingFilterOptions holds parameters for listing bookings.
type BookingFilterOptions struct {
	UserID    *string
	BikeID    *string
	Status    *string
	Page      int64
	Limit     int64
	SortOrder string // "asc" or "desc" by creation time
}

type IBookingRepository interface {
	CreateBooking(ctx context.Context, booking *entity.Booking) error
	GetBookingByID(ctx context.Context, id string) (*entity.Booking, error)
	// GetBookingByOrderID locates a booking by its payment-gateway order id.
	GetBookingByOrderID(ctx context.Context, orderID string) (*entity.Booking, error)
	GetBookings(ctx context.Context, opts *BookingFilterOptions) ([]*entity.Booking, error)
	// UpdateStatus sets the booking status and, when provided, the cancel reason.
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus, cancelReason *string) error
	// MarkActive transitions a booking to active and records the gateway payment id.
	MarkActive(ctx context.Context, id string, paymentID string) error
	// SetOrderID attaches a gateway order id to a booking.
	SetOrderID(ctx context.Context, id string, orderID string) error
	SetReview(ctx context.Context, id string, review *entity.BookingReview) error
}
