package services

import (
	"context"

	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/dto"
)

// LoanSvcFacade is the only mutation path for loan applications. Every status
// change goes through UpdateStatusWithLog or one of the named operations built
// on top of it.
type LoanSvcFacade interface {
	// CreateApplication creates a new application in DRAFT.
	CreateApplication(ctx context.Context, actor *domain.AuthUser, req dto.CreateLoanApplicationRequest) (*domain.LoanApplication, error)

	// GetApplication retrieves a single application with its guarantors.
	GetApplication(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error)

	// ListApplications retrieves a page of the actor's bank's applications.
	ListApplications(ctx context.Context, actor *domain.AuthUser, params dto.ListLoanApplicationsParams) (*dto.ListLoanApplicationsResponse, error)

	// UpdateDraft updates amount and loan type while the application is still DRAFT.
	UpdateDraft(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, req dto.UpdateLoanApplicationRequest) (*domain.LoanApplication, error)

	// SubmitApplication moves DRAFT -> PENDING_LOAN_OFFICER_ASSIGNMENT.
	SubmitApplication(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error)

	// AssignLoanOfficer moves to PENDING_LOAN_OFFICER_REVIEW and records the officer.
	AssignLoanOfficer(ctx context.Context, actor *domain.AuthUser, loanApplicationID, loanOfficerID string) (*domain.LoanApplication, error)

	// ReviewByLoanOfficer moves to PENDING_INSPECTOR_ASSIGNMENT (pass) or REJECTED.
	ReviewByLoanOfficer(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, pass bool, remarks string) (*domain.LoanApplication, error)

	// AssignInspector moves to PENDING_VERIFICATION and records the inspector.
	AssignInspector(ctx context.Context, actor *domain.AuthUser, loanApplicationID, inspectorID string) (*domain.LoanApplication, error)

	// StartVerification moves PENDING_VERIFICATION -> VERIFICATION_IN_PROGRESS.
	StartVerification(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error)

	// CompleteVerification branches on verification results to
	// VERIFICATION_COMPLETED or VERIFICATION_FAILED. Zero verification records
	// counts as failed.
	CompleteVerification(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error)

	// MoveToReview moves a completed or failed verification into UNDER_REVIEW.
	MoveToReview(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error)

	// Approve gives the final APPROVED disposition.
	Approve(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, remarks string) (*domain.LoanApplication, error)

	// Reject gives the final REJECTED disposition.
	Reject(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, remarks string) (*domain.LoanApplication, error)

	// Withdraw moves any non-terminal application to REJECTED_BY_APPLICANT.
	Withdraw(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, remarks string) (*domain.LoanApplication, error)

	// UpdateStatusWithLog validates the transition, persists the new status and
	// appends the timeline event as one logical unit.
	UpdateStatusWithLog(ctx context.Context, loanApplicationID string, newStatus domain.LoanStatus, actor *domain.AuthUser, eventType domain.TimelineEventType, remarks string) (*domain.LoanApplication, error)

	// AddGuarantor attaches a guarantor to a draft application.
	AddGuarantor(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, req dto.CreateGuarantorRequest) (*domain.Guarantor, error)

	// ListGuarantors retrieves the guarantors of an application.
	ListGuarantors(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) ([]domain.Guarantor, error)
}
