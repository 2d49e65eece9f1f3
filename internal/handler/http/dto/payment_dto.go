package dto

import (
	"time"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// CreateOrderRequest names the booking a gateway order should be opened for.
type CreateOrderRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

// VerifyPaymentRequest carries the gateway checkout callback fields.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

// PaymentOrderResponse defines the JSON response for a gateway order.
type PaymentOrderResponse struct {
	OrderID   string    `json:"order_id"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Receipt   string    `json:"receipt"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func ToPaymentOrderResponse(order *entity.PaymentOrder) PaymentOrderResponse {
	return PaymentOrderResponse{
		OrderID:   order.OrderID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Receipt:   order.Receipt,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}
}
