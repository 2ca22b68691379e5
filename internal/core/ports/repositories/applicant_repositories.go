package repositories

import (
	"context"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// ApplicantReader defines read operations for applicant data.
type ApplicantReader interface {
	// FindApplicantByID retrieves a specific applicant by ID.
	FindApplicantByID(ctx context.Context, applicantID string) (*domain.Applicant, error)

	// FindApplicantByUserID retrieves the applicant profile belonging to a user
	// within a bank.
	FindApplicantByUserID(ctx context.Context, userID, bankID string) (*domain.Applicant, error)

	// ListApplicantsByBank retrieves a page of a bank's applicants.
	ListApplicantsByBank(ctx context.Context, bankID string, limit int, offset int) ([]domain.Applicant, error)
}

// ApplicantWriter defines write operations for applicant data.
type ApplicantWriter interface {
	// SaveApplicant persists a new applicant.
	SaveApplicant(ctx context.Context, applicant domain.Applicant) error

	// UpdateApplicant updates mutable applicant fields.
	UpdateApplicant(ctx context.Context, applicant domain.Applicant) error
}

// ApplicantRepositoryFacade combines applicant repository interfaces.
type ApplicantRepositoryFacade interface {
	ApplicantReader
	ApplicantWriter
}
