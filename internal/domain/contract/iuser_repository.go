package contract

import (
	"context"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUserByRole retrieves one user holding the given role, if any.
	GetUserByRole(ctx context.Context, role entity.UserRole) (*entity.User, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// UpdateUserPassword updates a user's password by ID with the provided hash.
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	// SetIDProofApproved flips the approved-identity-document gate for a user.
	SetIDProofApproved(ctx context.Context, id string, approved bool) error
	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
}
