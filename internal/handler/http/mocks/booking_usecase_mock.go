package mocks

import (
	"context"
	"time"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/domain/entity"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

// MockBookingUsecase is a mock implementation of the booking usecase interface
type MockBookingUsecase struct {
	CreateBookingErr error
	GetBookingErr    error
	GetBookingsErr   error
	ChangeStatusErr  error
	AddReviewErr     error

	MockBooking entity.Booking
	MockOrder   entity.PaymentOrder
}

var _ usecasecontract.IBookingUseCase = (*MockBookingUsecase)(nil)

func NewMockBookingUsecase() *MockBookingUsecase {
	return &MockBookingUsecase{
		MockBooking: entity.Booking{
			ID:              "mock-booking-id",
			UserID:          "mock-user-id",
			BikeID:          "mock-bike-id",
			DurationHours:   2,
			PickupLocation:  "downtown",
			DropoffLocation: "harbor",
			TotalAmount:     20,
			Status:          entity.BookingStatusPending,
			CreatedAt:       time.Now(),
		},
		MockOrder: entity.PaymentOrder{
			OrderID:  "order_mock123",
			Amount:   2000,
			Currency: "INR",
			Receipt:  "mock-booking-id",
			Status:   "created",
		},
	}
}

func (m *MockBookingUsecase) CreateBooking(ctx context.Context, actor *entity.User, in usecasecontract.CreateBookingInput) (*entity.Booking, *entity.PaymentOrder, error) {
	if m.CreateBookingErr != nil {
		return nil, nil, m.CreateBookingErr
	}
	return &m.MockBooking, &m.MockOrder, nil
}

func (m *MockBookingUsecase) GetBookingByID(ctx context.Context, actor *entity.User, id string) (*entity.Booking, error) {
	if m.GetBookingErr != nil {
		return nil, m.GetBookingErr
	}
	return &m.MockBooking, nil
}

func (m *MockBookingUsecase) GetBookings(ctx context.Context, actor *entity.User, opts *contract.BookingFilterOptions) ([]*entity.Booking, error) {
	if m.GetBookingsErr != nil {
		return nil, m.GetBookingsErr
	}
	return []*entity.Booking{&m.MockBooking}, nil
}

func (m *MockBookingUsecase) ChangeStatus(ctx context.Context, actor *entity.User, bookingID string, target entity.BookingStatus, cancelReason *string) (*entity.Booking, error) {
	if m.ChangeStatusErr != nil {
		return nil, m.ChangeStatusErr
	}
	booking := m.MockBooking
	booking.Status = target
	booking.CancelReason = cancelReason
	return &booking, nil
}

func (m *MockBookingUsecase) AddReview(ctx context.Context, actor *entity.User, bookingID string, rating int, comment string) (*entity.Booking, error) {
	if m.AddReviewErr != nil {
		return nil, m.AddReviewErr
	}
	booking := m.MockBooking
	booking.Review = &entity.BookingReview{Rating: rating, Comment: comment, CreatedAt: time.Now()}
	return &booking, nil
}
