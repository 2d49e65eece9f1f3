package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/bikya/bikya-backend/internal/domain/entity"
	handler "github.com/bikya/bikya-backend/internal/handler/http"
	"github.com/bikya/bikya-backend/internal/handler/http/dto"
	"github.com/bikya/bikya-backend/internal/handler/http/mocks"
	"github.com/bikya/bikya-backend/internal/usecase"
)

func setupBookingRouter(h *handler.BookingHandler, user *entity.User) *gin.Engine {
	r := gin.New()
	r.POST("/bookings", withUser(user), h.CreateBooking)
	r.GET("/bookings/:bookingID", withUser(user), h.GetBooking)
	r.PUT("/bookings/:bookingID/status", withUser(user), h.ChangeStatus)
	r.POST("/bookings/:bookingID/review", withUser(user), h.AddReview)
	return r
}

func TestCreateBooking(t *testing.T) {
	mockUsecase := mocks.NewMockBookingUsecase()
	h := handler.NewBookingHandler(mockUsecase)
	rider := &entity.User{ID: "mock-user-id", Role: entity.UserRoleUser, IDProofApproved: true}
	r := setupBookingRouter(h, rider)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		BikeID:          "mock-bike-id",
		DurationHours:   2,
		PickupLocation:  "downtown",
		DropoffLocation: "harbor",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/bookings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "order_mock123")
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestCreateBooking_BikeUnavailable(t *testing.T) {
	mockUsecase := mocks.NewMockBookingUsecase()
	mockUsecase.CreateBookingErr = usecase.ErrBikeUnavailable
	h := handler.NewBookingHandler(mockUsecase)
	rider := &entity.User{ID: "mock-user-id", Role: entity.UserRoleUser, IDProofApproved: true}
	r := setupBookingRouter(h, rider)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		BikeID:          "mock-bike-id",
		DurationHours:   2,
		PickupLocation:  "downtown",
		DropoffLocation: "harbor",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/bookings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "bike is not available")
}

func TestCreateBooking_IdentityNotVerified(t *testing.T) {
	mockUsecase := mocks.NewMockBookingUsecase()
	mockUsecase.CreateBookingErr = usecase.ErrIdentityNotVerified
	h := handler.NewBookingHandler(mockUsecase)
	rider := &entity.User{ID: "mock-user-id", Role: entity.UserRoleUser}
	r := setupBookingRouter(h, rider)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		BikeID:          "mock-bike-id",
		DurationHours:   2,
		PickupLocation:  "downtown",
		DropoffLocation: "harbor",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/bookings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	mockUsecase := mocks.NewMockBookingUsecase()
	h := handler.NewBookingHandler(mockUsecase)
	rider := &entity.User{ID: "mock-user-id", Role: entity.UserRoleUser}
	r := setupBookingRouter(h, rider)

	body, _ := json.Marshal(dto.CreateBookingRequest{BikeID: "mock-bike-id"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/bookings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangeStatus_InvalidTransition(t *testing.T) {
	mockUsecase := mocks.NewMockBookingUsecase()
	mockUsecase.ChangeStatusErr = usecase.ErrInvalidTransition
	h := handler.NewBookingHandler(mockUsecase)
	admin := &entity.User{ID: "admin-id", Role: entity.UserRoleAdmin}
	r := setupBookingRouter(h, admin)

	body, _ := json.Marshal(dto.ChangeBookingStatusRequest{Status: "completed"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/bookings/mock-booking-id/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestChangeStatus_Cancelled(t *testing.T) {
	mockUsecase := mocks.NewMockBookingUsecase()
	h := handler.NewBookingHandler(mockUsecase)
	admin := &entity.User{ID: "admin-id", Role: entity.UserRoleAdmin}
	r := setupBookingRouter(h, admin)

	reason := "rider no-show"
	body, _ := json.Marshal(dto.ChangeBookingStatusRequest{Status: "cancelled", Reason: &reason})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/bookings/mock-booking-id/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"cancelled"`)
	assert.Contains(t, w.Body.String(), "rider no-show")
}

func TestAddReview(t *testing.T) {
	mockUsecase := mocks.NewMockBookingUsecase()
	h := handler.NewBookingHandler(mockUsecase)
	rider := &entity.User{ID: "mock-user-id", Role: entity.UserRoleUser}
	r := setupBookingRouter(h, rider)

	body, _ := json.Marshal(dto.AddReviewRequest{Rating: 5, Comment: "smooth ride"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/bookings/mock-booking-id/review", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rating":5`)
}

func TestAddReview_NotCompleted(t *testing.T) {
	mockUsecase := mocks.NewMockBookingUsecase()
	mockUsecase.AddReviewErr = usecase.ErrBookingNotCompleted
	h := handler.NewBookingHandler(mockUsecase)
	rider := &entity.User{ID: "mock-user-id", Role: entity.UserRoleUser}
	r := setupBookingRouter(h, rider)

	body, _ := json.Marshal(dto.AddReviewRequest{Rating: 4})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/bookings/mock-booking-id/review", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
