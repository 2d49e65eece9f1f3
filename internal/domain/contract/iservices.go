package contract

import (
	"context"
	"mime/multipart"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// IHasher hashes passwords (bcrypt) and long-lived tokens (sha256).
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	HashString(s string) string
	CheckHash(s, hash string) bool
}

// IUUIDGenerator issues identifiers for new records.
type IUUIDGenerator interface {
	NewUUID() string
}

// IRandomGenerator issues opaque random tokens.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}

// IEmailService delivers plain-text notification emails.
type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// IFileStorage stores uploaded images and returns a public URL.
type IFileStorage interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
	DeleteImage(ctx context.Context, url string) error
}

// IPaymentGateway wraps the payment provider's order and payment APIs.
type IPaymentGateway interface {
	// CreateOrder opens a gateway order. amount is in minor currency units.
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (*entity.PaymentOrder, error)
	// FetchPayment returns the gateway's record of a payment.
	FetchPayment(ctx context.Context, paymentID string) (map[string]interface{}, error)
}
