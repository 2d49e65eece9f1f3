package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

// AppValidator implements the usecase validator contract.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a validator for usecase-level checks.
func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePasswordStrength checks if the password meets the strength requirements.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !containsClass(password, unicode.IsUpper) {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !containsClass(password, unicode.IsLower) {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !containsClass(password, unicode.IsNumber) {
		return fmt.Errorf("password must contain at least one number")
	}
	if !strings.ContainsAny(password, "!@#$%^&*()_+-=[]{};:'\\|,.<>/?") {
		return fmt.Errorf("password must contain at least one special character")
	}
	return nil
}

func containsClass(s string, class func(rune) bool) bool {
	for _, r := range s {
		if class(r) {
			return true
		}
	}
	return false
}

// RegisterCustomValidators registers custom validation functions with the
// Gin binding engine. Used by request DTO tags.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("bikecategory", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "city", "mountain", "road", "electric", "scooter":
			return true
		}
		return false
	})
	v.RegisterValidation("documenttype", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "national_id", "passport", "driving_license":
			return true
		}
		return false
	})
	v.RegisterValidation("documentside", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "front" || s == "back"
	})
	v.RegisterValidation("bookingstatus", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "active", "completed", "cancelled":
			return true
		}
		return false
	})
}
