package entity

import (
	"time"
)

// User represents a registered user of the marketplace
type User struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Username        string    `bson:"username" json:"username"`
	Email           string    `bson:"email" json:"email"`
	Phone           *string   `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash    string    `bson:"password_hash" json:"-"`
	Role            UserRole  `bson:"role" json:"role"`
	IDProofApproved bool      `bson:"id_proof_approved" json:"id_proof_approved"`
	IsActive        bool      `bson:"is_active" json:"is_active"`
	IsVerified      bool      `bson:"is_verified" json:"is_verified"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
	FirstName       *string   `bson:"firstname,omitempty" json:"firstname,omitempty"`
	LastName        *string   `bson:"lastname,omitempty" json:"lastname,omitempty"`
	AvatarURL       *string   `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
}

// UserRole is the closed set of roles in the system.
// Exactly one user may hold UserRoleOwner at a time.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
	UserRoleOwner UserRole = "owner"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case UserRoleUser, UserRoleAdmin, UserRoleOwner:
		return true
	}
	return false
}

// CanManageInventory reports whether the role may create or edit bikes.
func (r UserRole) CanManageInventory() bool {
	return r == UserRoleAdmin || r == UserRoleOwner
}

// CanReviewDocuments reports whether the role may approve or reject identity documents.
func (r UserRole) CanReviewDocuments() bool {
	return r == UserRoleOwner
}
