package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bikya/bikya-backend/internal/domain/entity"
)

func newUserUsecaseForRoleTests(userRepo *fakeUserRepo) *UserUsecase {
	return NewUserUsecase(
		userRepo,
		nil, // token repo: not touched by role assignment
		nil, // hasher
		nil, // jwt service
		&fakeMailService{},
		stubLogger{},
		stubConfig{},
		nil, // validator
		stubUUID{next: "user-1"},
		nil, // random generator
	)
}

func platformOwner() *entity.User {
	return &entity.User{ID: "owner-1", Role: entity.UserRoleOwner}
}

func TestAssignRole_PromotesToAdmin(t *testing.T) {
	userRepo := newFakeUserRepo(
		platformOwner(),
		&entity.User{ID: "target-1", Role: entity.UserRoleUser},
	)
	uc := newUserUsecaseForRoleTests(userRepo)

	updated, err := uc.AssignRole(context.Background(), platformOwner(), "target-1", entity.UserRoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, entity.UserRoleAdmin, updated.Role)
	assert.Equal(t, entity.UserRoleAdmin, userRepo.Users["target-1"].Role)
}

func TestAssignRole_OnlyOwnerMayAssign(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "target-1", Role: entity.UserRoleUser})
	uc := newUserUsecaseForRoleTests(userRepo)

	admin := &entity.User{ID: "admin-1", Role: entity.UserRoleAdmin}
	_, err := uc.AssignRole(context.Background(), admin, "target-1", entity.UserRoleAdmin)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAssignRole_UnknownRole(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "target-1", Role: entity.UserRoleUser})
	uc := newUserUsecaseForRoleTests(userRepo)

	_, err := uc.AssignRole(context.Background(), platformOwner(), "target-1", entity.UserRole("superuser"))

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAssignRole_SingleOwnerInvariant(t *testing.T) {
	userRepo := newFakeUserRepo(
		platformOwner(),
		&entity.User{ID: "target-1", Role: entity.UserRoleUser},
	)
	uc := newUserUsecaseForRoleTests(userRepo)

	_, err := uc.AssignRole(context.Background(), platformOwner(), "target-1", entity.UserRoleOwner)

	assert.ErrorIs(t, err, ErrOwnerRoleTaken)
	assert.Equal(t, entity.UserRoleUser, userRepo.Users["target-1"].Role)
}

func TestAssignRole_OwnerReassignToSelf(t *testing.T) {
	userRepo := newFakeUserRepo(platformOwner())
	uc := newUserUsecaseForRoleTests(userRepo)

	updated, err := uc.AssignRole(context.Background(), platformOwner(), "owner-1", entity.UserRoleOwner)

	assert.NoError(t, err)
	assert.Equal(t, entity.UserRoleOwner, updated.Role)
}

func TestAssignRole_TargetNotFound(t *testing.T) {
	userRepo := newFakeUserRepo(platformOwner())
	uc := newUserUsecaseForRoleTests(userRepo)

	_, err := uc.AssignRole(context.Background(), platformOwner(), "ghost", entity.UserRoleAdmin)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func newUserUsecaseForRefreshTests(userRepo *fakeUserRepo, tokenRepo *fakeTokenRepo, jwtService *fakeJWTService) *UserUsecase {
	return NewUserUsecase(
		userRepo,
		tokenRepo,
		&fakeHasher{},
		jwtService,
		&fakeMailService{},
		stubLogger{},
		stubConfig{},
		nil, // validator
		stubUUID{next: "user-1"},
		nil, // random generator
	)
}

func storedRefreshToken(userID string) *entity.Token {
	return &entity.Token{
		ID:        "token-1",
		UserID:    userID,
		TokenType: entity.TokenTypeRefresh,
		TokenHash: "hashed:old-refresh",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestRefreshToken_RotatedPairCarriesStoredRole(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "admin-1", Role: entity.UserRoleAdmin})
	tokenRepo := newFakeTokenRepo(storedRefreshToken("admin-1"))
	// Refresh-token claims carry no role, as minted by the token manager.
	jwtService := &fakeJWTService{Claims: &entity.Claims{UserID: "admin-1"}}
	uc := newUserUsecaseForRefreshTests(userRepo, tokenRepo, jwtService)

	access, refresh, err := uc.RefreshToken(context.Background(), "old-refresh")

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, []entity.UserRole{entity.UserRoleAdmin}, jwtService.AccessRoles)
	assert.Equal(t, []entity.UserRole{entity.UserRoleAdmin}, jwtService.RefreshRoles)
	assert.Equal(t, []string{"token-1"}, tokenRepo.Updated)
}

func TestRefreshToken_DeletedUserRejected(t *testing.T) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo(storedRefreshToken("ghost"))
	jwtService := &fakeJWTService{Claims: &entity.Claims{UserID: "ghost"}}
	uc := newUserUsecaseForRefreshTests(userRepo, tokenRepo, jwtService)

	_, _, err := uc.RefreshToken(context.Background(), "old-refresh")

	assert.Error(t, err)
	assert.Empty(t, jwtService.AccessRoles)
}

func TestRefreshToken_RevokedTokenRejected(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "rider-1", Role: entity.UserRoleUser})
	token := storedRefreshToken("rider-1")
	token.Revoke = true
	tokenRepo := newFakeTokenRepo(token)
	jwtService := &fakeJWTService{Claims: &entity.Claims{UserID: "rider-1"}}
	uc := newUserUsecaseForRefreshTests(userRepo, tokenRepo, jwtService)

	_, _, err := uc.RefreshToken(context.Background(), "old-refresh")

	assert.Error(t, err)
}
