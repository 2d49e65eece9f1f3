package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bikya/bikya-backend/internal/domain/entity"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

func newBookingUsecaseForTest(bookingRepo *fakeBookingRepo, bikeRepo *fakeBikeRepo, docRepo *fakeDocumentRepo, gateway *fakeGateway) *BookingUsecase {
	return newBookingUsecaseWithMail(bookingRepo, bikeRepo, docRepo, gateway, &fakeMailService{})
}

func newBookingUsecaseWithMail(bookingRepo *fakeBookingRepo, bikeRepo *fakeBikeRepo, docRepo *fakeDocumentRepo, gateway *fakeGateway, mail *fakeMailService) *BookingUsecase {
	return NewBookingUsecase(
		bookingRepo,
		bikeRepo,
		docRepo,
		gateway,
		mail,
		stubLogger{},
		stubConfig{paymentSecret: "test-secret"},
		stubUUID{next: "booking-1"},
	)
}

func verifiedRider() *entity.User {
	return &entity.User{
		ID:              "rider-1",
		Username:        "rider",
		Email:           "rider@example.com",
		Role:            entity.UserRoleUser,
		IDProofApproved: true,
	}
}

func availableBike() *entity.Bike {
	return &entity.Bike{
		ID:           "bike-1",
		PricePerHour: 10,
		PricePerDay:  120,
		Availability: true,
	}
}

func TestCreateBooking_HourlyPricing(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	bikeRepo := newFakeBikeRepo(availableBike())
	docRepo := newFakeDocumentRepo()
	docRepo.ApprovedFor["rider-1"] = true
	gateway := &fakeGateway{}
	uc := newBookingUsecaseForTest(bookingRepo, bikeRepo, docRepo, gateway)

	booking, order, err := uc.CreateBooking(context.Background(), verifiedRider(), usecasecontract.CreateBookingInput{
		BikeID:          "bike-1",
		DurationHours:   2,
		StartTime:       time.Now().Add(time.Hour),
		PickupLocation:  "downtown",
		DropoffLocation: "harbor",
	})

	assert.NoError(t, err)
	assert.Equal(t, 20.0, booking.TotalAmount)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, int64(2000), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, order.OrderID, *booking.OrderID)
	assert.False(t, bikeRepo.Bikes["bike-1"].Availability)
}

func TestCreateBooking_DailyPricingBeyondDay(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	bikeRepo := newFakeBikeRepo(availableBike())
	docRepo := newFakeDocumentRepo()
	docRepo.ApprovedFor["rider-1"] = true
	gateway := &fakeGateway{}
	uc := newBookingUsecaseForTest(bookingRepo, bikeRepo, docRepo, gateway)

	// 30 hours is billed as two started days at the daily rate.
	booking, order, err := uc.CreateBooking(context.Background(), verifiedRider(), usecasecontract.CreateBookingInput{
		BikeID:          "bike-1",
		DurationHours:   30,
		PickupLocation:  "downtown",
		DropoffLocation: "harbor",
	})

	assert.NoError(t, err)
	assert.Equal(t, 240.0, booking.TotalAmount)
	assert.Equal(t, int64(24000), order.Amount)
}

func TestCreateBooking_IdentityGate(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	bikeRepo := newFakeBikeRepo(availableBike())
	docRepo := newFakeDocumentRepo()
	uc := newBookingUsecaseForTest(bookingRepo, bikeRepo, docRepo, &fakeGateway{})

	_, _, err := uc.CreateBooking(context.Background(), verifiedRider(), usecasecontract.CreateBookingInput{
		BikeID:        "bike-1",
		DurationHours: 2,
	})

	assert.ErrorIs(t, err, ErrIdentityNotVerified)
	assert.True(t, bikeRepo.Bikes["bike-1"].Availability)
}

func TestCreateBooking_BikeAlreadyTaken(t *testing.T) {
	bike := availableBike()
	bike.Availability = false
	bookingRepo := newFakeBookingRepo()
	bikeRepo := newFakeBikeRepo(bike)
	docRepo := newFakeDocumentRepo()
	docRepo.ApprovedFor["rider-1"] = true
	uc := newBookingUsecaseForTest(bookingRepo, bikeRepo, docRepo, &fakeGateway{})

	_, _, err := uc.CreateBooking(context.Background(), verifiedRider(), usecasecontract.CreateBookingInput{
		BikeID:        "bike-1",
		DurationHours: 2,
	})

	assert.ErrorIs(t, err, ErrBikeUnavailable)
}

func TestCreateBooking_ReleasesBikeWhenGatewayFails(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	bikeRepo := newFakeBikeRepo(availableBike())
	docRepo := newFakeDocumentRepo()
	docRepo.ApprovedFor["rider-1"] = true
	gateway := &fakeGateway{CreateErr: errBoom}
	uc := newBookingUsecaseForTest(bookingRepo, bikeRepo, docRepo, gateway)

	_, _, err := uc.CreateBooking(context.Background(), verifiedRider(), usecasecontract.CreateBookingInput{
		BikeID:        "bike-1",
		DurationHours: 2,
	})

	assert.Error(t, err)
	assert.Equal(t, []string{"bike-1"}, bikeRepo.Released)
	assert.True(t, bikeRepo.Bikes["bike-1"].Availability)
	assert.Empty(t, bookingRepo.Bookings)
}

func TestCreateBooking_ReleasesBikeWhenPersistFails(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	bookingRepo.CreateErr = errBoom
	bikeRepo := newFakeBikeRepo(availableBike())
	docRepo := newFakeDocumentRepo()
	docRepo.ApprovedFor["rider-1"] = true
	uc := newBookingUsecaseForTest(bookingRepo, bikeRepo, docRepo, &fakeGateway{})

	_, _, err := uc.CreateBooking(context.Background(), verifiedRider(), usecasecontract.CreateBookingInput{
		BikeID:        "bike-1",
		DurationHours: 2,
	})

	assert.Error(t, err)
	assert.Equal(t, []string{"bike-1"}, bikeRepo.Released)
}

func TestCreateBooking_SendsConfirmationEmail(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	bikeRepo := newFakeBikeRepo(availableBike())
	docRepo := newFakeDocumentRepo()
	docRepo.ApprovedFor["rider-1"] = true
	mail := &fakeMailService{}
	uc := newBookingUsecaseWithMail(bookingRepo, bikeRepo, docRepo, &fakeGateway{}, mail)

	_, _, err := uc.CreateBooking(context.Background(), verifiedRider(), usecasecontract.CreateBookingInput{
		BikeID:        "bike-1",
		DurationHours: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"rider@example.com"}, mail.Sent)
}

func TestCreateBooking_MailFailureDoesNotFailBooking(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	bikeRepo := newFakeBikeRepo(availableBike())
	docRepo := newFakeDocumentRepo()
	docRepo.ApprovedFor["rider-1"] = true
	mail := &fakeMailService{SendErr: errBoom}
	uc := newBookingUsecaseWithMail(bookingRepo, bikeRepo, docRepo, &fakeGateway{}, mail)

	booking, _, err := uc.CreateBooking(context.Background(), verifiedRider(), usecasecontract.CreateBookingInput{
		BikeID:        "bike-1",
		DurationHours: 2,
	})

	assert.NoError(t, err)
	assert.Contains(t, bookingRepo.Bookings, booking.ID)
}

func TestCreateBooking_RejectsZeroDuration(t *testing.T) {
	uc := newBookingUsecaseForTest(newFakeBookingRepo(), newFakeBikeRepo(), newFakeDocumentRepo(), &fakeGateway{})

	_, _, err := uc.CreateBooking(context.Background(), verifiedRider(), usecasecontract.CreateBookingInput{
		BikeID:        "bike-1",
		DurationHours: 0,
	})

	assert.Error(t, err)
}

func TestGetBookingByID_HidesOtherUsersBookings(t *testing.T) {
	booking := &entity.Booking{ID: "b-1", UserID: "rider-1", Status: entity.BookingStatusPending}
	bookingRepo := newFakeBookingRepo(booking)
	uc := newBookingUsecaseForTest(bookingRepo, newFakeBikeRepo(), newFakeDocumentRepo(), &fakeGateway{})

	stranger := &entity.User{ID: "rider-2", Role: entity.UserRoleUser}
	_, err := uc.GetBookingByID(context.Background(), stranger, "b-1")
	assert.ErrorIs(t, err, ErrForbidden)

	admin := &entity.User{ID: "admin-1", Role: entity.UserRoleAdmin}
	got, err := uc.GetBookingByID(context.Background(), admin, "b-1")
	assert.NoError(t, err)
	assert.Equal(t, "b-1", got.ID)
}

func TestChangeStatus_RequiresManagerRole(t *testing.T) {
	uc := newBookingUsecaseForTest(newFakeBookingRepo(), newFakeBikeRepo(), newFakeDocumentRepo(), &fakeGateway{})

	_, err := uc.ChangeStatus(context.Background(), verifiedRider(), "b-1", entity.BookingStatusCancelled, nil)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestChangeStatus_ActiveTargetRejected(t *testing.T) {
	booking := &entity.Booking{ID: "b-1", UserID: "rider-1", BikeID: "bike-1", Status: entity.BookingStatusPending}
	bookingRepo := newFakeBookingRepo(booking)
	uc := newBookingUsecaseForTest(bookingRepo, newFakeBikeRepo(), newFakeDocumentRepo(), &fakeGateway{})

	admin := &entity.User{ID: "admin-1", Role: entity.UserRoleAdmin}
	_, err := uc.ChangeStatus(context.Background(), admin, "b-1", entity.BookingStatusActive, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestChangeStatus_CompletedBookingIsFinal(t *testing.T) {
	booking := &entity.Booking{ID: "b-1", UserID: "rider-1", BikeID: "bike-1", Status: entity.BookingStatusCompleted}
	bookingRepo := newFakeBookingRepo(booking)
	uc := newBookingUsecaseForTest(bookingRepo, newFakeBikeRepo(), newFakeDocumentRepo(), &fakeGateway{})

	admin := &entity.User{ID: "admin-1", Role: entity.UserRoleAdmin}
	_, err := uc.ChangeStatus(context.Background(), admin, "b-1", entity.BookingStatusCancelled, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestChangeStatus_TerminalReleasesBike(t *testing.T) {
	bike := availableBike()
	bike.Availability = false
	booking := &entity.Booking{ID: "b-1", UserID: "rider-1", BikeID: "bike-1", Status: entity.BookingStatusActive}
	bookingRepo := newFakeBookingRepo(booking)
	bikeRepo := newFakeBikeRepo(bike)
	uc := newBookingUsecaseForTest(bookingRepo, bikeRepo, newFakeDocumentRepo(), &fakeGateway{})

	admin := &entity.User{ID: "admin-1", Role: entity.UserRoleAdmin}
	reason := "rider no-show"
	updated, err := uc.ChangeStatus(context.Background(), admin, "b-1", entity.BookingStatusCancelled, &reason)

	assert.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, updated.Status)
	assert.Equal(t, &reason, updated.CancelReason)
	assert.Equal(t, []string{"bike-1"}, bikeRepo.Released)
	assert.True(t, bikeRepo.Bikes["bike-1"].Availability)
}

func TestAddReview_Success(t *testing.T) {
	booking := &entity.Booking{ID: "b-1", UserID: "rider-1", Status: entity.BookingStatusCompleted}
	bookingRepo := newFakeBookingRepo(booking)
	uc := newBookingUsecaseForTest(bookingRepo, newFakeBikeRepo(), newFakeDocumentRepo(), &fakeGateway{})

	updated, err := uc.AddReview(context.Background(), verifiedRider(), "b-1", 5, "smooth ride")

	assert.NoError(t, err)
	assert.Equal(t, 5, updated.Review.Rating)
	assert.Equal(t, "smooth ride", updated.Review.Comment)
	assert.Len(t, bookingRepo.Reviews, 1)
}

func TestAddReview_RatingBounds(t *testing.T) {
	uc := newBookingUsecaseForTest(newFakeBookingRepo(), newFakeBikeRepo(), newFakeDocumentRepo(), &fakeGateway{})

	_, err := uc.AddReview(context.Background(), verifiedRider(), "b-1", 0, "")
	assert.Error(t, err)
	_, err = uc.AddReview(context.Background(), verifiedRider(), "b-1", 6, "")
	assert.Error(t, err)
}

func TestAddReview_OnlyBookingOwner(t *testing.T) {
	booking := &entity.Booking{ID: "b-1", UserID: "rider-1", Status: entity.BookingStatusCompleted}
	uc := newBookingUsecaseForTest(newFakeBookingRepo(booking), newFakeBikeRepo(), newFakeDocumentRepo(), &fakeGateway{})

	stranger := &entity.User{ID: "rider-2", Role: entity.UserRoleUser}
	_, err := uc.AddReview(context.Background(), stranger, "b-1", 4, "")
	assert.ErrorIs(t, err, ErrNotBookingOwner)
}

func TestAddReview_OnlyCompletedBookings(t *testing.T) {
	booking := &entity.Booking{ID: "b-1", UserID: "rider-1", Status: entity.BookingStatusActive}
	uc := newBookingUsecaseForTest(newFakeBookingRepo(booking), newFakeBikeRepo(), newFakeDocumentRepo(), &fakeGateway{})

	_, err := uc.AddReview(context.Background(), verifiedRider(), "b-1", 4, "")
	assert.ErrorIs(t, err, ErrBookingNotCompleted)
}

func TestGetBookings_RegularUserSeesOnlyOwn(t *testing.T) {
	mine := &entity.Booking{ID: "b-1", UserID: "rider-1"}
	other := &entity.Booking{ID: "b-2", UserID: "rider-2"}
	bookingRepo := newFakeBookingRepo(mine, other)
	uc := newBookingUsecaseForTest(bookingRepo, newFakeBikeRepo(), newFakeDocumentRepo(), &fakeGateway{})

	bookings, err := uc.GetBookings(context.Background(), verifiedRider(), nil)

	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, "b-1", bookings[0].ID)
}
