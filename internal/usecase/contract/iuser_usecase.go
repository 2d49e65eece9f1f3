package usecasecontract

import (
	"context"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, username, email, password, firstName, lastName string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, verifier, resetToken, newPassword string) error
	Logout(ctx context.Context, refreshToken string) error
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error)
	LoginWithOAuth(ctx context.Context, firstName, lastName, email string) (string, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	// AssignRole changes a user's role. Only an owner may call it, and the
	// owner role can be held by at most one user at a time.
	AssignRole(ctx context.Context, actor *entity.User, targetUserID string, role entity.UserRole) (*entity.User, error)
}
