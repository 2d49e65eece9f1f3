package mocks

import (
	"context"
	"time"

	"github.com/bikya/bikya-backend/internal/domain/entity"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

// MockPaymentUsecase is a mock implementation of the payment usecase interface
type MockPaymentUsecase struct {
	CreateOrderErr   error
	VerifyPaymentErr error
	GetPaymentErr    error

	MockOrder   entity.PaymentOrder
	MockBooking entity.Booking
}

var _ usecasecontract.IPaymentUseCase = (*MockPaymentUsecase)(nil)

func NewMockPaymentUsecase() *MockPaymentUsecase {
	return &MockPaymentUsecase{
		MockOrder: entity.PaymentOrder{
			OrderID:   "order_mock123",
			Amount:    2000,
			Currency:  "INR",
			Receipt:   "mock-booking-id",
			Status:    "created",
			CreatedAt: time.Now(),
		},
		MockBooking: entity.Booking{
			ID:     "mock-booking-id",
			UserID: "mock-user-id",
			BikeID: "mock-bike-id",
			Status: entity.BookingStatusActive,
		},
	}
}

func (m *MockPaymentUsecase) CreateOrder(ctx context.Context, actor *entity.User, bookingID string) (*entity.PaymentOrder, error) {
	if m.CreateOrderErr != nil {
		return nil, m.CreateOrderErr
	}
	return &m.MockOrder, nil
}

func (m *MockPaymentUsecase) VerifyPayment(ctx context.Context, in usecasecontract.VerifyPaymentInput) (*entity.Booking, error) {
	if m.VerifyPaymentErr != nil {
		return nil, m.VerifyPaymentErr
	}
	return &m.MockBooking, nil
}

func (m *MockPaymentUsecase) GetPayment(ctx context.Context, paymentID string) (map[string]interface{}, error) {
	if m.GetPaymentErr != nil {
		return nil, m.GetPaymentErr
	}
	return map[string]interface{}{
		"id":     paymentID,
		"status": "captured",
	}, nil
}
