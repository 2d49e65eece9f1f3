package payment

import (
	"context"
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// RazorpayGateway implements contract.IPaymentGateway over the Razorpay SDK.
type RazorpayGateway struct {
	client *razorpay.Client
}

var _ contract.IPaymentGateway = (*RazorpayGateway)(nil)

// NewRazorpayGateway creates a gateway client from API credentials.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder opens a gateway order. amount is in minor currency units.
// The SDK call carries no context; ctx is checked up front so a cancelled
// request does not open an order.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (*entity.PaymentOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}

	order := &entity.PaymentOrder{
		OrderID:  stringField(body, "id"),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   stringField(body, "status"),
	}
	if created, ok := body["created_at"].(float64); ok {
		order.CreatedAt = time.Unix(int64(created), 0)
	}
	if order.OrderID == "" {
		return nil, fmt.Errorf("razorpay order response missing id")
	}
	return order, nil
}

// FetchPayment returns the gateway's record of a payment.
func (g *RazorpayGateway) FetchPayment(ctx context.Context, paymentID string) (map[string]interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := g.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay payment fetch failed: %w", err)
	}
	return body, nil
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
