package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/domain/entity"
	"github.com/bikya/bikya-backend/internal/handler/http/dto"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

type BookingHandler struct {
	bookingUsecase usecasecontract.IBookingUseCase
}

func NewBookingHandler(bookingUsecase usecasecontract.IBookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUsecase: bookingUsecase}
}

// CreateBooking opens a pending booking and returns the gateway order the
// client must pay to activate it.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	booking, order, err := h.bookingUsecase.CreateBooking(c.Request.Context(), actor, usecasecontract.CreateBookingInput{
		BikeID:          req.BikeID,
		DurationHours:   req.DurationHours,
		StartTime:       req.StartTime,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
	})
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.CreateBookingResponse{
		Booking: dto.ToBookingResponse(booking),
		Order:   dto.ToPaymentOrderResponse(order),
	})
}

// GetBooking retrieves a booking visible to the actor.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	booking, err := h.bookingUsecase.GetBookingByID(c.Request.Context(), actor, c.Param("bookingID"))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToBookingResponse(booking))
}

// GetBookings lists bookings. Regular users see their own; admin/owner may
// filter across users.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	opts := &contract.BookingFilterOptions{
		Page:      parseInt64Query(c, "page", 1),
		Limit:     parseInt64Query(c, "limit", 20),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}
	if userID := c.Query("user_id"); userID != "" {
		opts.UserID = &userID
	}
	if bikeID := c.Query("bike_id"); bikeID != "" {
		opts.BikeID = &bikeID
	}
	if status := c.Query("status"); status != "" {
		if !entity.ValidBookingStatus(status) {
			ErrorHandler(c, http.StatusBadRequest, "unknown booking status")
			return
		}
		opts.Status = &status
	}

	bookings, err := h.bookingUsecase.GetBookings(c.Request.Context(), actor, opts)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{
		"bookings": dto.ToBookingResponses(bookings),
		"page":     opts.Page,
		"limit":    opts.Limit,
	})
}

// ChangeStatus moves a booking to completed or cancelled. Admin/owner only.
func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	var req dto.ChangeBookingStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	booking, err := h.bookingUsecase.ChangeStatus(c.Request.Context(), actor, c.Param("bookingID"), entity.BookingStatus(req.Status), req.Reason)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToBookingResponse(booking))
}

// AddReview attaches a rating to a completed booking owned by the actor.
func (h *BookingHandler) AddReview(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	var req dto.AddReviewRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	booking, err := h.bookingUsecase.AddReview(c.Request.Context(), actor, c.Param("bookingID"), req.Rating, req.Comment)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToBookingResponse(booking))
}
