package usecasecontract

import "time"

// IConfigProvider exposes configuration values to usecases.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetSendActivationEmail() bool
	GetRefreshTokenExpiry() time.Duration
	GetPasswordResetTokenExpiry() time.Duration
	// GetPaymentKeySecret is the gateway key secret used both for order
	// creation and for recomputing callback signatures.
	GetPaymentKeySecret() string
	GetPaymentCurrency() string
}
