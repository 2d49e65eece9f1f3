package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRentalPrice(t *testing.T) {
	// Hourly rate up to a full day.
	assert.Equal(t, 10.0, RentalPrice(10, 120, 1))
	assert.Equal(t, 20.0, RentalPrice(10, 120, 2))
	assert.Equal(t, 240.0, RentalPrice(10, 120, 24))

	// Beyond 24 hours every started day is billed at the daily rate.
	assert.Equal(t, 240.0, RentalPrice(10, 120, 25))
	assert.Equal(t, 240.0, RentalPrice(10, 120, 48))
	assert.Equal(t, 360.0, RentalPrice(10, 120, 49))
}

func TestBookingStatusTransitions(t *testing.T) {
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusActive))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusCancelled))
	assert.True(t, BookingStatusActive.CanTransitionTo(BookingStatusCompleted))
	assert.True(t, BookingStatusActive.CanTransitionTo(BookingStatusCancelled))

	// Terminal states are final.
	assert.False(t, BookingStatusCompleted.CanTransitionTo(BookingStatusActive))
	assert.False(t, BookingStatusCompleted.CanTransitionTo(BookingStatusCancelled))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusActive))

	// No transition re-enters pending.
	assert.False(t, BookingStatusActive.CanTransitionTo(BookingStatusPending))
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusActive.Terminal())
	assert.True(t, BookingStatusCompleted.Terminal())
	assert.True(t, BookingStatusCancelled.Terminal())
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, ValidBookingStatus("pending"))
	assert.True(t, ValidBookingStatus("completed"))
	assert.False(t, ValidBookingStatus("archived"))
	assert.False(t, ValidBookingStatus(""))
}
