package entity

import (
	"math"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s names a known status.
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusActive, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status ends the booking lifecycle.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// allowedTransitions is the guard table for booking status changes.
// pending -> active happens only through payment verification; the
// status endpoint may only move a booking toward a terminal state.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending: {BookingStatusActive, BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusActive:  {BookingStatusCompleted, BookingStatusCancelled},
}

// CanTransitionTo reports whether a booking in status s may move to target.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range allowedTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// BookingReview is a rider's rating of a completed booking.
type BookingReview struct {
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Booking links a user and a bike for a rental window.
// OrderID and PaymentID are the payment gateway's identifiers; PaymentID
// is set only after a verified payment moves the booking to active.
type Booking struct {
	ID              string         `bson:"_id,omitempty" json:"id"`
	UserID          string         `bson:"user_id" json:"user_id"`
	BikeID          string         `bson:"bike_id" json:"bike_id"`
	StartTime       time.Time      `bson:"start_time" json:"start_time"`
	DurationHours   int            `bson:"duration_hours" json:"duration_hours"`
	PickupLocation  string         `bson:"pickup_location" json:"pickup_location"`
	DropoffLocation string         `bson:"dropoff_location" json:"dropoff_location"`
	TotalAmount     float64        `bson:"total_amount" json:"total_amount"`
	Status          BookingStatus  `bson:"status" json:"status"`
	CancelReason    *string        `bson:"cancel_reason,omitempty" json:"cancel_reason,omitempty"`
	OrderID         *string        `bson:"order_id,omitempty" json:"order_id,omitempty"`
	PaymentID       *string        `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	Review          *BookingReview `bson:"review,omitempty" json:"review,omitempty"`
	CreatedAt       time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `bson:"updated_at" json:"updated_at"`
}

// RentalPrice computes the total amount for a rental duration in hours.
// Up to 24 hours the hourly rate applies; beyond that the bike is billed
// per started day at the daily rate.
func RentalPrice(pricePerHour, pricePerDay float64, durationHours int) float64 {
	if durationHours <= 24 {
		return pricePerHour * float64(durationHours)
	}
	days := math.Ceil(float64(durationHours) / 24)
	return pricePerDay * days
}
