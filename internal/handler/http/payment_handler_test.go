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

func setupPaymentRouter(h *handler.PaymentHandler, user *entity.User) *gin.Engine {
	r := gin.New()
	r.POST("/payments/orders", withUser(user), h.CreateOrder)
	r.POST("/payments/verify", h.VerifyPayment)
	r.GET("/payments/:paymentID", withUser(user), h.GetPayment)
	return r
}

func TestCreateOrder(t *testing.T) {
	mockUsecase := mocks.NewMockPaymentUsecase()
	h := handler.NewPaymentHandler(mockUsecase)
	rider := &entity.User{ID: "mock-user-id", Role: entity.UserRoleUser}
	r := setupPaymentRouter(h, rider)

	body, _ := json.Marshal(dto.CreateOrderRequest{BookingID: "mock-booking-id"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/payments/orders", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "order_mock123")
}

func TestVerifyPayment(t *testing.T) {
	mockUsecase := mocks.NewMockPaymentUsecase()
	h := handler.NewPaymentHandler(mockUsecase)
	r := setupPaymentRouter(h, &entity.User{ID: "mock-user-id"})

	body, _ := json.Marshal(dto.VerifyPaymentRequest{
		OrderID:   "order_mock123",
		PaymentID: "pay_mock456",
		Signature: "deadbeef",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/payments/verify", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"active"`)
}

func TestVerifyPayment_BadSignature(t *testing.T) {
	mockUsecase := mocks.NewMockPaymentUsecase()
	mockUsecase.VerifyPaymentErr = usecase.ErrSignatureMismatch
	h := handler.NewPaymentHandler(mockUsecase)
	r := setupPaymentRouter(h, &entity.User{ID: "mock-user-id"})

	body, _ := json.Marshal(dto.VerifyPaymentRequest{
		OrderID:   "order_mock123",
		PaymentID: "pay_mock456",
		Signature: "tampered",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/payments/verify", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "signature")
}

func TestVerifyPayment_MissingFields(t *testing.T) {
	mockUsecase := mocks.NewMockPaymentUsecase()
	h := handler.NewPaymentHandler(mockUsecase)
	r := setupPaymentRouter(h, &entity.User{ID: "mock-user-id"})

	body, _ := json.Marshal(dto.VerifyPaymentRequest{OrderID: "order_mock123"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/payments/verify", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPayment(t *testing.T) {
	mockUsecase := mocks.NewMockPaymentUsecase()
	h := handler.NewPaymentHandler(mockUsecase)
	admin := &entity.User{ID: "admin-id", Role: entity.UserRoleAdmin}
	r := setupPaymentRouter(h, admin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/payments/pay_mock456", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "captured")
}
