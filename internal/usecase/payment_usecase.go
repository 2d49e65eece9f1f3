package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/domain/entity"
	"github.com/bikya/bikya-backend/internal/infrastructure/metrics"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

// PaymentUsecase handles gateway order creation and callback verification.
type PaymentUsecase struct {
	bookingRepo contract.IBookingRepository
	gateway     contract.IPaymentGateway
	logger      usecasecontract.IAppLogger
	config      usecasecontract.IConfigProvider
}

func NewPaymentUsecase(
	bookingRepo contract.IBookingRepository,
	gateway contract.IPaymentGateway,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
) *PaymentUsecase {
	return &PaymentUsecase{
		bookingRepo: bookingRepo,
		gateway:     gateway,
		logger:      logger,
		config:      cfg,
	}
}

var _ usecasecontract.IPaymentUseCase = (*PaymentUsecase)(nil)

// CreateOrder (re)creates a gateway order for a pending booking. If the
// booking already references an order, that order id is returned instead
// of opening a second one.
func (uc *PaymentUsecase) CreateOrder(ctx context.Context, actor *entity.User, bookingID string) (*entity.PaymentOrder, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Errorf("failed to load booking %s: %v", bookingID, err)
		return nil, err
	}
	if booking.UserID != actor.ID && !actor.Role.CanManageInventory() {
		return nil, ErrForbidden
	}
	if booking.Status != entity.BookingStatusPending {
		return nil, errors.New("booking is not awaiting payment")
	}

	if booking.OrderID != nil && *booking.OrderID != "" {
		return &entity.PaymentOrder{
			OrderID:  *booking.OrderID,
			Amount:   toMinorUnits(booking.TotalAmount),
			Currency: uc.config.GetPaymentCurrency(),
			Receipt:  booking.ID,
			Status:   "created",
		}, nil
	}

	order, err := uc.gateway.CreateOrder(ctx, toMinorUnits(booking.TotalAmount), uc.config.GetPaymentCurrency(), booking.ID, map[string]interface{}{
		"booking_id": booking.ID,
	})
	if err != nil {
		uc.logger.Errorf("failed to create payment order for booking %s: %v", bookingID, err)
		return nil, err
	}
	if err := uc.bookingRepo.SetOrderID(ctx, booking.ID, order.OrderID); err != nil {
		uc.logger.Errorf("failed to attach order %s to booking %s: %v", order.OrderID, bookingID, err)
		return nil, err
	}
	return order, nil
}

// VerifyPayment recomputes the gateway signature over "order_id|payment_id"
// and, on a constant-time match, moves the booking to active and records
// the payment id. A mismatch changes nothing.
func (uc *PaymentUsecase) VerifyPayment(ctx context.Context, in usecasecontract.VerifyPaymentInput) (*entity.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByOrderID(ctx, in.OrderID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Errorf("failed to locate booking for order %s: %v", in.OrderID, err)
		return nil, err
	}

	if !validSignature(in.OrderID, in.PaymentID, in.Signature, uc.config.GetPaymentKeySecret()) {
		metrics.PaymentSignatureFailures.Inc()
		uc.logger.Warnf("payment signature mismatch for order %s", in.OrderID)
		return nil, ErrSignatureMismatch
	}

	if !booking.Status.CanTransitionTo(entity.BookingStatusActive) {
		return nil, ErrInvalidTransition
	}

	if err := uc.bookingRepo.MarkActive(ctx, booking.ID, in.PaymentID); err != nil {
		uc.logger.Errorf("failed to activate booking %s: %v", booking.ID, err)
		return nil, errors.New("failed to activate booking")
	}

	metrics.PaymentsVerified.Inc()
	booking.Status = entity.BookingStatusActive
	booking.PaymentID = &in.PaymentID
	return booking, nil
}

// GetPayment fetches the gateway's record of a payment.
func (uc *PaymentUsecase) GetPayment(ctx context.Context, paymentID string) (map[string]interface{}, error) {
	payment, err := uc.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		uc.logger.Errorf("failed to fetch payment %s from gateway: %v", paymentID, err)
		return nil, err
	}
	return payment, nil
}

// validSignature recomputes HMAC-SHA256(secret, orderID+"|"+paymentID) and
// compares it to the supplied hex signature in constant time.
func validSignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
