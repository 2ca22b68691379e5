package repositories

import (
	"context"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// VerificationReader defines read operations for verification data.
type VerificationReader interface {
	// FindVerificationByID retrieves a specific verification.
	FindVerificationByID(ctx context.Context, verificationID string) (*domain.Verification, error)

	// FindVerificationsByLoanApplicationID retrieves all verifications for an application.
	FindVerificationsByLoanApplicationID(ctx context.Context, loanApplicationID string) ([]domain.Verification, error)

	// HasFailedVerification reports whether any verification for the application has
	// result = false. When the application has no verification rows at all it
	// returns true: the completion check treats "nothing verified" as failed.
	HasFailedVerification(ctx context.Context, loanApplicationID string) (bool, error)
}

// VerificationWriter defines write operations for verification data.
type VerificationWriter interface {
	// SaveVerification persists a new verification.
	SaveVerification(ctx context.Context, verification domain.Verification) error

	// UpdateVerification updates the result / remarks of a verification.
	UpdateVerification(ctx context.Context, verification domain.Verification) error
}

// VerificationRepositoryFacade combines verification repository interfaces.
type VerificationRepositoryFacade interface {
	VerificationReader
	VerificationWriter
}
