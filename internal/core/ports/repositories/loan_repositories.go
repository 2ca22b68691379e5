package repositories

import (
	"context"
	"time"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// LoanApplicationReader defines read operations for loan application data
type LoanApplicationReader interface {
	// FindLoanApplicationByID retrieves a specific loan application by its unique identifier.
	FindLoanApplicationByID(ctx context.Context, loanApplicationID string) (*domain.LoanApplication, error)

	// ListLoanApplicationsByBank retrieves a paginated list of a bank's loan applications
	// using token-based pagination, optionally filtered by status.
	ListLoanApplicationsByBank(ctx context.Context, bankID string, status *domain.LoanStatus, limit int, nextToken *string) ([]domain.LoanApplication, *string, error)

	// ListLoanApplicationsByApplicant retrieves all applications submitted by an applicant.
	ListLoanApplicationsByApplicant(ctx context.Context, applicantID string) ([]domain.LoanApplication, error)
}

// LoanApplicationWriter defines write operations for loan application data
type LoanApplicationWriter interface {
	// SaveWithTimeline persists a new loan application together with its creation
	// timeline event in one database transaction.
	SaveWithTimeline(ctx context.Context, app domain.LoanApplication, event domain.TimelineEvent) error

	// UpdateLoanApplication updates mutable fields of a draft application.
	UpdateLoanApplication(ctx context.Context, app domain.LoanApplication) error

	// UpdateStatusWithTimeline persists a status change together with its timeline
	// event in a single database transaction, so the mutation and the audit entry
	// cannot diverge. Assignment fields are updated when non-nil.
	UpdateStatusWithTimeline(ctx context.Context, loanApplicationID string, status domain.LoanStatus, assignedLoanOfficerID, assignedInspectorID *string, updatedBy string, updatedAt time.Time, event domain.TimelineEvent) error
}

// GuarantorRepository defines operations for guarantor rows attached to applications.
type GuarantorRepository interface {
	// SaveGuarantor persists a guarantor for a loan application.
	SaveGuarantor(ctx context.Context, guarantor domain.Guarantor) error

	// FindGuarantorsByLoanApplicationID retrieves every guarantor for an application.
	FindGuarantorsByLoanApplicationID(ctx context.Context, loanApplicationID string) ([]domain.Guarantor, error)
}

// LoanApplicationRepositoryFacade combines all loan application repository interfaces
type LoanApplicationRepositoryFacade interface {
	LoanApplicationReader
	LoanApplicationWriter
	GuarantorRepository
}

// LoanApplicationRepositoryWithTx extends the facade with transaction capabilities
type LoanApplicationRepositoryWithTx interface {
	LoanApplicationRepositoryFacade
	TransactionManager
}
