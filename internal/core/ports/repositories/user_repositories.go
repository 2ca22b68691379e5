package repositories

import (
	"context"
	"time"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// UserReader defines read operations for user profile data.
type UserReader interface {
	// FindUserByID retrieves a user profile by its ID.
	FindUserByID(ctx context.Context, userID string) (*domain.UserProfile, error)

	// FindUserByEmail retrieves a user profile by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error)

	// FindUsers retrieves a page of user profiles.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.UserProfile, error)
}

// UserWriter defines write operations for user profile data.
type UserWriter interface {
	// SaveUser persists a user profile (insert or update on conflict).
	SaveUser(ctx context.Context, user domain.UserProfile) error

	// UpdateUser updates mutable profile fields.
	UpdateUser(ctx context.Context, user domain.UserProfile) error

	// MarkUserDeleted soft-deletes a user profile.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error

	// UpdateRefreshToken stores the hash and expiry of a user's refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes a user's stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
