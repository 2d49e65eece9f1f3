package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bikya/bikya-backend/internal/domain/entity"
	"github.com/bikya/bikya-backend/internal/handler/http/dto"
	"github.com/bikya/bikya-backend/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// HandleUsecaseError maps known operational errors to HTTP statuses.
// Unlisted errors become a 500 with the message suppressed.
func HandleUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrBikeNotFound),
		errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrDocumentNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrForbidden),
		errors.Is(err, usecase.ErrIdentityNotVerified),
		errors.Is(err, usecase.ErrNotBookingOwner):
		ErrorHandler(c, http.StatusForbidden, err.Error())
	case errors.Is(err, usecase.ErrBikeUnavailable),
		errors.Is(err, usecase.ErrInvalidTransition),
		errors.Is(err, usecase.ErrOwnerRoleTaken),
		errors.Is(err, usecase.ErrDocumentReviewed),
		errors.Is(err, usecase.ErrBookingNotCompleted):
		ErrorHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, usecase.ErrSignatureMismatch),
		errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrRejectionReasonRequired),
		errors.Is(err, usecase.ErrApprovalReasonForbidden):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, "internal server error")
	}
}

// CurrentUser pulls the authenticated user set by the auth middleware.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return nil, false
	}
	user, ok := v.(*entity.User)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return nil, false
	}
	return user, true
}
