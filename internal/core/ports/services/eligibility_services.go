package services

import (
	"context"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// EligibilitySvcFacade derives an applicant's eligible loan amount from their
// latest income and obligation records. The calculation is best-effort: missing
// records resolve to zero figures rather than an error.
type EligibilitySvcFacade interface {
	CalculateEligibility(ctx context.Context, actor *domain.AuthUser, applicantID string) (*domain.Eligibility, error)
}
