package entity

import (
	"time"
)

// PaymentOrder is an order opened with the payment gateway for a booking.
// Amount is in minor currency units (paise).
type PaymentOrder struct {
	OrderID   string    `json:"order_id"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Receipt   string    `json:"receipt"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
