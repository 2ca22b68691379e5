package services

import (
	"context"
	"time"

	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/dto"
)

// UserSvcFacade manages user profiles and local credentials.
type UserSvcFacade interface {
	// CreateUser creates a new user profile.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.UserProfile, error)

	// GetUserByID retrieves a user profile.
	GetUserByID(ctx context.Context, userID string) (*domain.UserProfile, error)

	// GetUserByEmail retrieves a user profile by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error)

	// ListUsers retrieves a page of user profiles.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.UserProfile, error)

	// UpdateUser updates mutable profile fields.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.UserProfile, error)

	// DeleteUser soft-deletes a user profile.
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error

	// AuthenticateUser verifies email/password credentials.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.UserProfile, error)

	// FindOrCreateFromGoogle resolves the user for a validated Google identity,
	// creating the profile on first sign-in.
	FindOrCreateFromGoogle(ctx context.Context, email, firstName, lastName string) (*domain.UserProfile, error)

	// SetRefreshToken stores the hash and expiry of the user's refresh token.
	SetRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiry time.Time) error

	// ClearRefreshToken removes the user's stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// TokenSvcFacade issues and validates the application's own tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user.
	GenerateAccessToken(ctx context.Context, user *domain.UserProfile) (string, time.Time, error)

	// GenerateRefreshToken creates an opaque refresh token and its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.UserProfile) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a presented refresh token against the
	// stored hash and returns the user on success.
	ValidateAndParseRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.UserProfile, error)
}

// GoogleOAuthSvcFacade exchanges a Google authorization code for a verified
// identity. Only the profile fields the core needs cross this boundary.
type GoogleOAuthSvcFacade interface {
	ExchangeCodeForIdentity(ctx context.Context, code string) (*dto.GoogleIdentity, error)
}
