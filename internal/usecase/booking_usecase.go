package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/domain/entity"
	"github.com/bikya/bikya-backend/internal/infrastructure/metrics"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

// BookingUsecase implements the booking lifecycle: reserve a bike, open a
// payment order, persist the pending booking and move it through the
// allowed status transitions.
type BookingUsecase struct {
	bookingRepo contract.IBookingRepository
	bikeRepo    contract.IBikeRepository
	docRepo     contract.IDocumentRepository
	gateway     contract.IPaymentGateway
	mailService contract.IEmailService
	logger      usecasecontract.IAppLogger
	config      usecasecontract.IConfigProvider
	uuidGen     contract.IUUIDGenerator
}

func NewBookingUsecase(
	bookingRepo contract.IBookingRepository,
	bikeRepo contract.IBikeRepository,
	docRepo contract.IDocumentRepository,
	gateway contract.IPaymentGateway,
	mailService contract.IEmailService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	uuidGen contract.IUUIDGenerator,
) *BookingUsecase {
	return &BookingUsecase{
		bookingRepo: bookingRepo,
		bikeRepo:    bikeRepo,
		docRepo:     docRepo,
		gateway:     gateway,
		mailService: mailService,
		logger:      logger,
		config:      cfg,
		uuidGen:     uuidGen,
	}
}

var _ usecasecontract.IBookingUseCase = (*BookingUsecase)(nil)

// CreateBooking reserves the bike, opens a gateway order for the computed
// amount and persists a pending booking referencing the order.
//
// The reserve is the linearization point: the conditional availability
// update either wins the bike or fails with ErrBikeUnavailable, so two
// concurrent requests cannot both book it. Failures after a successful
// reserve release the bike again.
func (uc *BookingUsecase) CreateBooking(ctx context.Context, actor *entity.User, in usecasecontract.CreateBookingInput) (*entity.Booking, *entity.PaymentOrder, error) {
	if in.DurationHours <= 0 {
		return nil, nil, errors.New("duration must be at least one hour")
	}

	approved, err := uc.docRepo.HasApprovedDocument(ctx, actor.ID)
	if err != nil {
		uc.logger.Errorf("failed to check identity documents for user %s: %v", actor.ID, err)
		return nil, nil, err
	}
	if !approved {
		return nil, nil, ErrIdentityNotVerified
	}

	bike, err := uc.bikeRepo.GetBikeByID(ctx, in.BikeID)
	if err != nil {
		if errors.Is(err, ErrBikeNotFound) {
			return nil, nil, ErrBikeNotFound
		}
		uc.logger.Errorf("failed to load bike %s: %v", in.BikeID, err)
		return nil, nil, err
	}

	totalAmount := entity.RentalPrice(bike.PricePerHour, bike.PricePerDay, in.DurationHours)

	if err := uc.bikeRepo.ReserveBike(ctx, bike.ID); err != nil {
		if errors.Is(err, ErrBikeUnavailable) {
			return nil, nil, ErrBikeUnavailable
		}
		uc.logger.Errorf("failed to reserve bike %s: %v", bike.ID, err)
		return nil, nil, err
	}

	bookingID := uc.uuidGen.NewUUID()
	order, err := uc.gateway.CreateOrder(ctx, toMinorUnits(totalAmount), uc.config.GetPaymentCurrency(), bookingID, map[string]interface{}{
		"booking_id": bookingID,
		"bike_id":    bike.ID,
	})
	if err != nil {
		uc.release(ctx, bike.ID)
		uc.logger.Errorf("failed to create payment order for booking %s: %v", bookingID, err)
		return nil, nil, fmt.Errorf("payment order creation failed: %w", err)
	}

	booking := &entity.Booking{
		ID:              bookingID,
		UserID:          actor.ID,
		BikeID:          bike.ID,
		StartTime:       in.StartTime,
		DurationHours:   in.DurationHours,
		PickupLocation:  in.PickupLocation,
		DropoffLocation: in.DropoffLocation,
		TotalAmount:     totalAmount,
		Status:          entity.BookingStatusPending,
		OrderID:         &order.OrderID,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		uc.release(ctx, bike.ID)
		uc.logger.Errorf("failed to persist booking %s: %v", bookingID, err)
		return nil, nil, errors.New("failed to create booking")
	}

	metrics.BookingsCreated.Inc()
	uc.notifyBookingCreated(ctx, actor, booking, order)
	return booking, order, nil
}

// notifyBookingCreated sends a best-effort confirmation email with the
// pending booking and the order that pays for it.
func (uc *BookingUsecase) notifyBookingCreated(ctx context.Context, actor *entity.User, booking *entity.Booking, order *entity.PaymentOrder) {
	subject := "Booking received"
	body := fmt.Sprintf("Hi %s,\n\nYour bike is reserved for %d hour(s), total %.2f %s.\nComplete the payment for order %s to activate booking %s.",
		actor.Username, booking.DurationHours, booking.TotalAmount, order.Currency, order.OrderID, booking.ID)
	if err := uc.mailService.SendEmail(ctx, actor.Email, subject, body); err != nil {
		uc.logger.Warnf("failed to send booking confirmation to %s: %v", actor.Email, err)
	}
}

// toMinorUnits converts a rupee amount to paise for the gateway.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (uc *BookingUsecase) release(ctx context.Context, bikeID string) {
	if err := uc.bikeRepo.ReleaseBike(ctx, bikeID); err != nil {
		uc.logger.Errorf("failed to release bike %s after booking failure: %v", bikeID, err)
	}
}

// GetBookingByID returns a booking visible to the actor: the booking's own
// user, or any admin/owner.
func (uc *BookingUsecase) GetBookingByID(ctx context.Context, actor *entity.User, id string) (*entity.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Errorf("failed to load booking %s: %v", id, err)
		return nil, err
	}
	if booking.UserID != actor.ID && !actor.Role.CanManageInventory() {
		return nil, ErrForbidden
	}
	return booking, nil
}

// GetBookings lists bookings. Regular users only see their own.
func (uc *BookingUsecase) GetBookings(ctx context.Context, actor *entity.User, opts *contract.BookingFilterOptions) ([]*entity.Booking, error) {
	if opts == nil {
		opts = &contract.BookingFilterOptions{}
	}
	if !actor.Role.CanManageInventory() {
		opts.UserID = &actor.ID
	}
	bookings, err := uc.bookingRepo.GetBookings(ctx, opts)
	if err != nil {
		uc.logger.Errorf("failed to list bookings: %v", err)
		return nil, err
	}
	return bookings, nil
}

// ChangeStatus moves a booking along the allowed-transitions table. The
// active status is reachable only through payment verification, never here.
// A terminal target releases the bike.
func (uc *BookingUsecase) ChangeStatus(ctx context.Context, actor *entity.User, bookingID string, target entity.BookingStatus, cancelReason *string) (*entity.Booking, error) {
	if !actor.Role.CanManageInventory() {
		return nil, ErrForbidden
	}
	if !entity.ValidBookingStatus(string(target)) || target == entity.BookingStatusPending {
		return nil, ErrInvalidTransition
	}
	if target == entity.BookingStatusActive {
		// Activation is the payment verifier's job.
		return nil, ErrInvalidTransition
	}

	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Errorf("failed to load booking %s: %v", bookingID, err)
		return nil, err
	}

	if !booking.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	if err := uc.bookingRepo.UpdateStatus(ctx, bookingID, target, cancelReason); err != nil {
		uc.logger.Errorf("failed to update booking %s status to %s: %v", bookingID, target, err)
		return nil, errors.New("failed to update booking status")
	}

	if target.Terminal() {
		if err := uc.bikeRepo.ReleaseBike(ctx, booking.BikeID); err != nil {
			uc.logger.Errorf("failed to release bike %s for booking %s: %v", booking.BikeID, bookingID, err)
		}
	}

	booking.Status = target
	booking.CancelReason = cancelReason
	return booking, nil
}

// AddReview attaches a rating to a completed booking owned by the actor.
func (uc *BookingUsecase) AddReview(ctx context.Context, actor *entity.User, bookingID string, rating int, comment string) (*entity.Booking, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Errorf("failed to load booking %s: %v", bookingID, err)
		return nil, err
	}
	if booking.UserID != actor.ID {
		return nil, ErrNotBookingOwner
	}
	if booking.Status != entity.BookingStatusCompleted {
		return nil, ErrBookingNotCompleted
	}

	review := &entity.BookingReview{
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := uc.bookingRepo.SetReview(ctx, bookingID, review); err != nil {
		uc.logger.Errorf("failed to store review for booking %s: %v", bookingID, err)
		return nil, errors.New("failed to store review")
	}

	booking.Review = review
	return booking, nil
}
