package dto

import (
	"time"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// CreateBookingRequest defines the payload for opening a booking.
type CreateBookingRequest struct {
	BikeID          string    `json:"bike_id" binding:"required"`
	DurationHours   int       `json:"duration_hours" binding:"required,gt=0"`
	StartTime       time.Time `json:"start_time"`
	PickupLocation  string    `json:"pickup_location" binding:"required"`
	DropoffLocation string    `json:"dropoff_location" binding:"required"`
}

// ChangeBookingStatusRequest defines the payload for a status change.
// Reason is required when cancelling.
type ChangeBookingStatusRequest struct {
	Status string  `json:"status" binding:"required,bookingstatus"`
	Reason *string `json:"reason"`
}

// AddReviewRequest defines the payload for reviewing a completed booking.
type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=500"`
}

// BookingReviewResponse is the rating attached to a booking.
type BookingReviewResponse struct {
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingResponse defines the standard JSON response for a booking.
type BookingResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	BikeID          string                 `json:"bike_id"`
	StartTime       time.Time              `json:"start_time"`
	DurationHours   int                    `json:"duration_hours"`
	PickupLocation  string                 `json:"pickup_location"`
	DropoffLocation string                 `json:"dropoff_location"`
	TotalAmount     float64                `json:"total_amount"`
	Status          string                 `json:"status"`
	CancelReason    *string                `json:"cancel_reason,omitempty"`
	OrderID         *string                `json:"order_id,omitempty"`
	PaymentID       *string                `json:"payment_id,omitempty"`
	Review          *BookingReviewResponse `json:"review,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// CreateBookingResponse pairs the pending booking with the gateway order
// the client must pay.
type CreateBookingResponse struct {
	Booking BookingResponse      `json:"booking"`
	Order   PaymentOrderResponse `json:"order"`
}

func ToBookingResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              booking.ID,
		UserID:          booking.UserID,
		BikeID:          booking.BikeID,
		StartTime:       booking.StartTime,
		DurationHours:   booking.DurationHours,
		PickupLocation:  booking.PickupLocation,
		DropoffLocation: booking.DropoffLocation,
		TotalAmount:     booking.TotalAmount,
		Status:          string(booking.Status),
		CancelReason:    booking.CancelReason,
		OrderID:         booking.OrderID,
		PaymentID:       booking.PaymentID,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
	if booking.Review != nil {
		resp.Review = &BookingReviewResponse{
			Rating:    booking.Review.Rating,
			Comment:   booking.Review.Comment,
			CreatedAt: booking.Review.CreatedAt,
		}
	}
	return resp
}

func ToBookingResponses(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingResponse(b))
	}
	return out
}
