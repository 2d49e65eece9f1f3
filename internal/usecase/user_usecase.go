package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/domain/entity"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
	"golang.org/x/crypto/bcrypt"
)

// UserUsecase implements usecasecontract.IUserUseCase.
type UserUsecase struct {
	userRepo        contract.IUserRepository
	tokenRepo       contract.ITokenRepository
	hasher          contract.IHasher
	jwtService      JWTService
	mailService     contract.IEmailService
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	tokenRepo contract.ITokenRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	mailService contract.IEmailService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	randomGenerator contract.IRandomGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		hasher:          hasher,
		jwtService:      jwtService,
		mailService:     mailService,
		logger:          logger,
		config:          cfg,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomGenerator,
	}
}

var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user signup.
func (uc *UserUsecase) Register(ctx context.Context, username, email, password, firstName, lastName string) (*entity.User, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, fmt.Errorf("weak password: %w", err)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user with email %s already exists", email)
	}

	existing, err = uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user with username %s already exists", username)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password")
	}

	var pFirstName, pLastName *string
	if firstName != "" {
		pFirstName = &firstName
	}
	if lastName != "" {
		pLastName = &lastName
	}

	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.DefaultRole(),
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		FirstName:    pFirstName,
		LastName:     pLastName,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, fmt.Errorf("failed to register user")
	}

	return user, nil
}

// Login handles user login and token generation.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	var user *entity.User
	var err error

	if uc.validator.ValidateEmail(email) == nil {
		user, err = uc.userRepo.GetUserByEmail(ctx, email)
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, email)
	}
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", "", errors.New("invalid credentials")
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", "", err
	}

	if !user.IsActive {
		return nil, "", "", errors.New("account is deactivated")
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", errors.New("invalid credentials")
	}

	accessToken, refreshToken, err := uc.issueTokenPair(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refreshToken, nil
}

// issueTokenPair generates an access/refresh pair and stores the refresh hash.
func (uc *UserUsecase) issueTokenPair(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return "", "", errors.New("failed to generate token")
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return "", "", errors.New("failed to generate token")
	}

	tokenEntity := &entity.Token{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    user.ID,
		TokenType: entity.TokenTypeRefresh,
		TokenHash: uc.hasher.HashString(refreshToken),
		ExpiresAt: time.Now().Add(uc.config.GetRefreshTokenExpiry()),
		CreatedAt: time.Now(),
	}
	if err := uc.tokenRepo.CreateToken(ctx, tokenEntity); err != nil {
		uc.logger.Errorf("failed to store refresh token for user %s: %v", user.ID, err)
		return "", "", errors.New("failed to store token")
	}

	return accessToken, refreshToken, nil
}

// Authenticate resolves an access token to its user.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, err
	}
	return user, nil
}

// RefreshToken rotates an access/refresh pair using a valid refresh token.
func (uc *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", fmt.Errorf("invalid refresh token: %w", err)
	}

	storedToken, err := uc.tokenRepo.GetTokenByUserID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return "", "", errors.New("refresh token not found or invalidated, please log in again")
		}
		uc.logger.Errorf("failed to retrieve stored refresh token: %v", err)
		return "", "", err
	}

	if storedToken.Revoke {
		return "", "", errors.New("refresh token has been revoked, please log in again")
	}

	if !uc.hasher.CheckHash(refreshToken, storedToken.TokenHash) {
		uc.logger.Warnf("refresh token mismatch for user %s", claims.UserID)
		_ = uc.tokenRepo.RevokeToken(ctx, storedToken.ID)
		return "", "", errors.New("invalid refresh token")
	}

	if storedToken.ExpiresAt.Before(time.Now()) {
		_ = uc.tokenRepo.RevokeToken(ctx, storedToken.ID)
		return "", "", errors.New("refresh token expired, please log in again")
	}

	// Refresh tokens carry no role claim, so the rotated pair takes the
	// role from the stored user record.
	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", "", errors.New("user no longer exists, please log in again")
		}
		uc.logger.Errorf("failed to load user %s during token refresh: %v", claims.UserID, err)
		return "", "", err
	}

	newAccessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate new access token during refresh: %v", err)
		return "", "", errors.New("failed to generate new access token")
	}
	newRefreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate new refresh token during refresh: %v", err)
		return "", "", errors.New("failed to generate new refresh token")
	}

	err = uc.tokenRepo.UpdateToken(ctx, storedToken.ID, uc.hasher.HashString(newRefreshToken), time.Now().Add(uc.config.GetRefreshTokenExpiry()))
	if err != nil {
		uc.logger.Errorf("failed to update refresh token in db: %v", err)
		return "", "", errors.New("failed to update token")
	}

	return newAccessToken, newRefreshToken, nil
}

// ForgotPassword starts the password reset flow.
func (uc *UserUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("email not found: %w", err)
	}

	resetToken, err := uc.randomGenerator.GenerateRandomToken(32)
	if err != nil {
		return fmt.Errorf("failed to create password reset token: %w", err)
	}
	hashedResetToken, err := bcrypt.GenerateFromPassword([]byte(resetToken), 7)
	if err != nil {
		return fmt.Errorf("failed to hash reset token: %w", err)
	}
	verifier, err := uc.randomGenerator.GenerateRandomToken(16)
	if err != nil {
		return fmt.Errorf("failed to generate verifier: %w", err)
	}

	tokenEntity := &entity.Token{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    user.ID,
		TokenType: entity.TokenTypePasswordReset,
		TokenHash: string(hashedResetToken),
		Verifier:  verifier,
		ExpiresAt: time.Now().Add(uc.config.GetPasswordResetTokenExpiry()),
		CreatedAt: time.Now(),
	}
	if err := uc.tokenRepo.CreateToken(ctx, tokenEntity); err != nil {
		uc.logger.Errorf("failed to store password reset token for user %s: %v", user.ID, err)
		return errors.New("failed to initiate password reset")
	}

	resetLink := fmt.Sprintf("%s/reset-password?verifier=%s&token=%s", uc.config.GetAppBaseURL(), verifier, resetToken)
	body := fmt.Sprintf("Hi %s,\n\nYou requested a password reset for your Bikya account. Use the link below to choose a new password:\n%s\n\nIf you did not request this, you can ignore this email.", user.Username, resetLink)

	if err := uc.mailService.SendEmail(ctx, user.Email, "Password Reset Request", body); err != nil {
		uc.logger.Errorf("failed to send password reset email to %s: %v", user.Email, err)
		return errors.New("failed to send password reset email")
	}
	return nil
}

// ResetPassword completes the password reset flow.
func (uc *UserUsecase) ResetPassword(ctx context.Context, verifier, resetToken, newPassword string) error {
	token, err := uc.tokenRepo.GetTokenByVerifier(ctx, verifier)
	if err != nil {
		return fmt.Errorf("invalid verifier: %w", err)
	}
	if time.Now().After(token.ExpiresAt) {
		return errors.New("reset token expired")
	}
	if token.Revoke {
		return errors.New("reset token revoked")
	}
	if err = bcrypt.CompareHashAndPassword([]byte(token.TokenHash), []byte(resetToken)); err != nil {
		return fmt.Errorf("reset token does not match: %w", err)
	}

	hashedPassword, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err = uc.userRepo.UpdateUserPassword(ctx, token.UserID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", token.UserID, err)
	}
	if err = uc.tokenRepo.RevokeToken(ctx, token.ID); err != nil {
		return errors.New("failed to revoke reset token")
	}
	return nil
}

// Logout revokes the stored refresh token.
func (uc *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		uc.logger.Warnf("failed to parse refresh token on logout, assuming it's already invalid: %v", err)
		return nil
	}

	storedToken, err := uc.tokenRepo.GetTokenByUserID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil
		}
		uc.logger.Errorf("failed to retrieve stored refresh token for user %s: %v", claims.UserID, err)
		return err
	}

	if err := uc.tokenRepo.RevokeToken(ctx, storedToken.ID); err != nil {
		uc.logger.Errorf("failed to revoke refresh token for user %s: %v", claims.UserID, err)
		return errors.New("failed to revoke token")
	}
	return nil
}

// AssignRole changes a user's role. Only an owner may assign roles, and
// the owner role may be held by at most one user at a time.
func (uc *UserUsecase) AssignRole(ctx context.Context, actor *entity.User, targetUserID string, role entity.UserRole) (*entity.User, error) {
	if actor.Role != entity.UserRoleOwner {
		return nil, ErrForbidden
	}
	if !entity.ValidRole(string(role)) {
		return nil, ErrInvalidRole
	}

	user, err := uc.userRepo.GetUserByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Errorf("failed to retrieve user for role assignment: %v", err)
		return nil, err
	}

	if role == entity.UserRoleOwner {
		holder, err := uc.userRepo.GetUserByRole(ctx, entity.UserRoleOwner)
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			uc.logger.Errorf("failed to look up current owner: %v", err)
			return nil, err
		}
		if holder != nil && holder.ID != user.ID {
			return nil, ErrOwnerRoleTaken
		}
	}

	user.Role = role
	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to assign role %s to user %s: %v", role, targetUserID, err)
		return nil, errors.New("failed to assign role")
	}
	return updated, nil
}

// UpdateProfile allows a registered user to update their profile details.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Errorf("failed to retrieve user for profile update: %v", err)
		return nil, err
	}

	if val, ok := updates["username"]; ok {
		if username, isString := val.(string); isString {
			existing, err := uc.userRepo.GetUserByUsername(ctx, username)
			if err != nil && !errors.Is(err, ErrUserNotFound) {
				uc.logger.Errorf("failed to check for existing username during update: %v", err)
				return nil, err
			}
			if existing != nil && existing.ID != userID {
				return nil, fmt.Errorf("username %s already taken", username)
			}
		}
	}

	for k, v := range updates {
		switch k {
		case "username":
			if username, ok := v.(string); ok {
				user.Username = username
			}
		case "first_name":
			if firstName, ok := v.(string); ok {
				user.FirstName = &firstName
			}
		case "last_name":
			if lastName, ok := v.(string); ok {
				user.LastName = &lastName
			}
		case "phone":
			if phone, ok := v.(string); ok {
				user.Phone = &phone
			}
		case "avatar_url":
			if avatarURL, ok := v.(string); ok {
				user.AvatarURL = &avatarURL
			}
		}
	}
	user.UpdatedAt = time.Now()

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update profile for user %s: %v", userID, err)
		return nil, errors.New("failed to update profile")
	}
	return updated, nil
}

// LoginWithOAuth signs in (or signs up) a user authenticated by an OAuth provider.
func (uc *UserUsecase) LoginWithOAuth(ctx context.Context, firstName, lastName, email string) (string, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return "", "", err
	}

	if user == nil {
		var pFirstName, pLastName *string
		if firstName != "" {
			pFirstName = &firstName
		}
		if lastName != "" {
			pLastName = &lastName
		}

		newUser := &entity.User{
			ID:         uc.uuidGenerator.NewUUID(),
			Username:   email,
			Email:      email,
			Role:       entity.DefaultRole(),
			IsVerified: true,
			IsActive:   true,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
			FirstName:  pFirstName,
			LastName:   pLastName,
		}
		if err := uc.userRepo.CreateUser(ctx, newUser); err != nil {
			uc.logger.Errorf("failed to create user from OAuth: %v", err)
			return "", "", fmt.Errorf("failed to register user")
		}
		user = newUser
	}

	return uc.issueTokenPair(ctx, user)
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Errorf("failed to retrieve user by ID: %v", err)
		return nil, err
	}
	return user, nil
}
