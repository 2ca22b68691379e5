package repositories

import (
	"context"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// IncomeReader defines read operations for income data.
type IncomeReader interface {
	// FindLatestIncomeByApplicantID retrieves the newest non-deleted income record
	// for an applicant, or apperrors.ErrNotFound when none exists.
	FindLatestIncomeByApplicantID(ctx context.Context, applicantID string) (*domain.Income, error)

	// FindIncomesByApplicantID retrieves all non-deleted income records, newest first.
	FindIncomesByApplicantID(ctx context.Context, applicantID string) ([]domain.Income, error)
}

// IncomeWriter defines write operations for income data.
type IncomeWriter interface {
	// SaveIncome persists a new income record.
	SaveIncome(ctx context.Context, income domain.Income) error

	// MarkIncomeDeleted soft-deletes an income record.
	MarkIncomeDeleted(ctx context.Context, incomeID string, deletedBy string) error
}

// ObligationReader defines read operations for loan obligation data.
type ObligationReader interface {
	// FindLatestObligationByApplicantID retrieves the newest non-deleted obligation
	// record for an applicant, or apperrors.ErrNotFound when none exists.
	FindLatestObligationByApplicantID(ctx context.Context, applicantID string) (*domain.LoanObligation, error)
}

// ObligationWriter defines write operations for loan obligation data.
type ObligationWriter interface {
	// SaveObligation persists a new obligation record with its detail rows.
	SaveObligation(ctx context.Context, obligation domain.LoanObligation) error

	// MarkObligationDeleted soft-deletes an obligation record.
	MarkObligationDeleted(ctx context.Context, loanObligationID string, deletedBy string) error
}

// IncomeRepositoryFacade combines income and obligation repository interfaces.
type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeWriter
	ObligationReader
	ObligationWriter
}
