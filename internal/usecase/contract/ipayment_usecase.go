package usecasecontract

import (
	"context"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// VerifyPaymentInput carries the gateway callback fields.
type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

// IPaymentUseCase defines payment-order and verification operations.
type IPaymentUseCase interface {
	// CreateOrder (re)creates a gateway order for a pending booking.
	// Idempotent per booking: an existing open order is returned as-is.
	CreateOrder(ctx context.Context, actor *entity.User, bookingID string) (*entity.PaymentOrder, error)
	// VerifyPayment recomputes the callback signature and, on match, moves
	// the booking to active and records the payment id. A mismatch leaves
	// the booking untouched.
	VerifyPayment(ctx context.Context, in VerifyPaymentInput) (*entity.Booking, error)
	// GetPayment fetches the gateway's record of a payment.
	GetPayment(ctx context.Context, paymentID string) (map[string]interface{}, error)
}
