package models

import (
	"database/sql"
	"time"
)

// UserProfile represents a row of the user_profiles table.
type UserProfile struct {
	UserID       string `db:"user_id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Email        string `db:"email"`
	PhoneNumber  string `db:"phone_number"`
	PasswordHash string `db:"password_hash"`
	AuthProvider string `db:"auth_provider"`
	IsOnboarded  bool   `db:"is_onboarded"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}

// BankMembership represents a row of the bank_memberships join table.
type BankMembership struct {
	UserID   string    `db:"user_id"`
	BankID   string    `db:"bank_id"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}
