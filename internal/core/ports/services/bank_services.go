package services

import (
	"context"

	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/dto"
)

// BankSvcFacade manages tenants and memberships.
type BankSvcFacade interface {
	// CreateBank creates a new bank tenant.
	CreateBank(ctx context.Context, actor *domain.AuthUser, req dto.CreateBankRequest) (*domain.Bank, error)

	// GetBankByID retrieves a bank.
	GetBankByID(ctx context.Context, bankID string) (*domain.Bank, error)

	// ListBanks retrieves a page of banks.
	ListBanks(ctx context.Context, actor *domain.AuthUser, limit, offset int) ([]domain.Bank, error)

	// AddUserToBank adds a user to a bank with a role.
	AddUserToBank(ctx context.Context, actor *domain.AuthUser, targetUserID, bankID string, role domain.UserRole) error
}

// ApplicantSvcFacade manages applicant profiles within a bank.
type ApplicantSvcFacade interface {
	// CreateApplicant creates an applicant profile for a user in the actor's bank.
	CreateApplicant(ctx context.Context, actor *domain.AuthUser, req dto.CreateApplicantRequest) (*domain.Applicant, error)

	// GetApplicant retrieves an applicant.
	GetApplicant(ctx context.Context, actor *domain.AuthUser, applicantID string) (*domain.Applicant, error)

	// ListApplicants retrieves a page of the actor's bank's applicants.
	ListApplicants(ctx context.Context, actor *domain.AuthUser, limit, offset int) ([]domain.Applicant, error)

	// UpdateApplicant updates mutable applicant fields.
	UpdateApplicant(ctx context.Context, actor *domain.AuthUser, applicantID string, req dto.UpdateApplicantRequest) (*domain.Applicant, error)
}
