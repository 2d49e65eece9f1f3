package usecasecontract

import (
	"context"
	"time"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// CreateBookingInput carries the fields needed to open a booking.
type CreateBookingInput struct {
	BikeID          string
	DurationHours   int
	StartTime       time.Time
	PickupLocation  string
	DropoffLocation string
}

// IBookingUseCase defines the booking lifecycle operations.
type IBookingUseCase interface {
	// CreateBooking reserves the bike, opens a gateway order and persists a
	// pending booking. The acting user must hold an approved identity document.
	CreateBooking(ctx context.Context, actor *entity.User, in CreateBookingInput) (*entity.Booking, *entity.PaymentOrder, error)
	GetBookingByID(ctx context.Context, actor *entity.User, id string) (*entity.Booking, error)
	GetBookings(ctx context.Context, actor *entity.User, opts *contract.BookingFilterOptions) ([]*entity.Booking, error)
	// ChangeStatus moves a booking along the allowed-transitions table.
	// A terminal target releases the bike. Admin/owner only.
	ChangeStatus(ctx context.Context, actor *entity.User, bookingID string, target entity.BookingStatus, cancelReason *string) (*entity.Booking, error)
	// AddReview attaches a rating to a completed booking owned by the actor.
	AddReview(ctx context.Context, actor *entity.User, bookingID string, rating int, comment string) (*entity.Booking, error)
}
