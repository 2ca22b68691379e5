package services

import (
	"context"

	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/dto"
)

// VerificationSvcFacade manages inspector field checks on loan applications.
type VerificationSvcFacade interface {
	// CreateVerification attaches a new PENDING verification to an application.
	CreateVerification(ctx context.Context, actor *domain.AuthUser, req dto.CreateVerificationRequest) (*domain.Verification, error)

	// RecordResult marks a verification COMPLETED with its pass/fail result and
	// logs a timeline event.
	RecordResult(ctx context.Context, actor *domain.AuthUser, verificationID string, result bool, remarks string) (*domain.Verification, error)

	// ListByApplication retrieves all verifications for an application.
	ListByApplication(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) ([]domain.Verification, error)
}

// IncomeSvcFacade manages income and obligation records for applicants.
type IncomeSvcFacade interface {
	// SaveIncome records a new income declaration.
	SaveIncome(ctx context.Context, actor *domain.AuthUser, req dto.CreateIncomeRequest) (*domain.Income, error)

	// ListIncomes retrieves an applicant's non-deleted income records.
	ListIncomes(ctx context.Context, actor *domain.AuthUser, applicantID string) ([]domain.Income, error)

	// DeleteIncome soft-deletes an income record.
	DeleteIncome(ctx context.Context, actor *domain.AuthUser, incomeID string) error

	// SaveObligation records a new loan obligation declaration.
	SaveObligation(ctx context.Context, actor *domain.AuthUser, req dto.CreateObligationRequest) (*domain.LoanObligation, error)
}

// DocumentSvcFacade manages stored-blob metadata. The blob itself is handled by
// an external object store via presigned URLs.
type DocumentSvcFacade interface {
	// AttachDocument records metadata for an uploaded blob and logs the upload.
	AttachDocument(ctx context.Context, actor *domain.AuthUser, req dto.AttachDocumentRequest) (*domain.Document, error)

	// ListDocuments retrieves document records attached to an entity.
	ListDocuments(ctx context.Context, actor *domain.AuthUser, entityType domain.EntityType, entityID string) ([]domain.Document, error)

	// ReviewDocument marks a document VERIFIED or REJECTED.
	ReviewDocument(ctx context.Context, actor *domain.AuthUser, documentID string, approved bool) (*domain.Document, error)
}
