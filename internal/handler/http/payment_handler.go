package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bikya/bikya-backend/internal/handler/http/dto"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

type PaymentHandler struct {
	paymentUsecase usecasecontract.IPaymentUseCase
}

func NewPaymentHandler(paymentUsecase usecasecontract.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// CreateOrder (re)creates a gateway order for a pending booking. Idempotent:
// an existing open order is returned as-is.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	order, err := h.paymentUsecase.CreateOrder(c.Request.Context(), actor, req.BookingID)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToPaymentOrderResponse(order))
}

// VerifyPayment checks the checkout callback signature and activates the
// booking on a match.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	booking, err := h.paymentUsecase.VerifyPayment(c.Request.Context(), usecasecontract.VerifyPaymentInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToBookingResponse(booking))
}

// GetPayment fetches the gateway's record of a payment. Admin/owner only,
// enforced by route middleware.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentUsecase.GetPayment(c.Request.Context(), c.Param("paymentID"))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, payment)
}
