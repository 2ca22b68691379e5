package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/dto"
)

// ApplicantService manages applicant profiles within a bank.
type ApplicantService struct {
	applicantRepo portsrepo.ApplicantRepositoryFacade
	abilitySvc    portssvc.AbilitySvcFacade
}

// NewApplicantService creates a new ApplicantService.
func NewApplicantService(ar portsrepo.ApplicantRepositoryFacade, as portssvc.AbilitySvcFacade) *ApplicantService {
	return &ApplicantService{
		applicantRepo: ar,
		abilitySvc:    as,
	}
}

var _ portssvc.ApplicantSvcFacade = (*ApplicantService)(nil)

// loadScoped fetches the applicant and enforces tenant scope. Applicants may
// only load their own profile; cross-tenant reads surface as not found.
func (s *ApplicantService) loadScoped(ctx context.Context, actor *domain.AuthUser, applicantID string) (*domain.Applicant, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	applicant, err := s.applicantRepo.FindApplicantByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if actor.CurrentRole != domain.RoleSaasAdmin && applicant.BankID != actor.BankID {
		return nil, apperrors.ErrNotFound
	}
	if actor.CurrentRole == domain.RoleApplicant && applicant.UserID != actor.UserID {
		return nil, apperrors.ErrNotFound
	}
	return applicant, nil
}

func (s *ApplicantService) CreateApplicant(ctx context.Context, actor *domain.AuthUser, req dto.CreateApplicantRequest) (*domain.Applicant, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionCreate, domain.SubjectApplicant) {
		return nil, apperrors.ErrForbidden
	}
	if actor.BankID == "" {
		return nil, fmt.Errorf("%w: bank scope required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	applicant := domain.Applicant{
		ApplicantID:  uuid.NewString(),
		UserID:       req.UserID,
		BankID:       actor.BankID,
		DateOfBirth:  req.DateOfBirth,
		AddressLine:  req.AddressLine,
		AddressCity:  req.AddressCity,
		AddressState: req.AddressState,
		AddressZip:   req.AddressZip,
		PhotoKey:     req.PhotoKey,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.applicantRepo.SaveApplicant(ctx, applicant); err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (s *ApplicantService) GetApplicant(ctx context.Context, actor *domain.AuthUser, applicantID string) (*domain.Applicant, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionView, domain.SubjectApplicant) {
		return nil, apperrors.ErrForbidden
	}
	return s.loadScoped(ctx, actor, applicantID)
}

func (s *ApplicantService) ListApplicants(ctx context.Context, actor *domain.AuthUser, limit, offset int) ([]domain.Applicant, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionView, domain.SubjectApplicant) {
		return nil, apperrors.ErrForbidden
	}
	if actor.BankID == "" {
		return nil, fmt.Errorf("%w: bank scope required", apperrors.ErrValidation)
	}
	return s.applicantRepo.ListApplicantsByBank(ctx, actor.BankID, limit, offset)
}

func (s *ApplicantService) UpdateApplicant(ctx context.Context, actor *domain.AuthUser, applicantID string, req dto.UpdateApplicantRequest) (*domain.Applicant, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionUpdate, domain.SubjectApplicant) {
		return nil, apperrors.ErrForbidden
	}
	applicant, err := s.loadScoped(ctx, actor, applicantID)
	if err != nil {
		return nil, err
	}

	if req.AddressLine != nil {
		applicant.AddressLine = *req.AddressLine
	}
	if req.AddressCity != nil {
		applicant.AddressCity = *req.AddressCity
	}
	if req.AddressState != nil {
		applicant.AddressState = *req.AddressState
	}
	if req.AddressZip != nil {
		applicant.AddressZip = *req.AddressZip
	}
	if req.PhotoKey != nil {
		applicant.PhotoKey = *req.PhotoKey
	}
	applicant.LastUpdatedAt = time.Now().UTC()
	applicant.LastUpdatedBy = actor.UserID

	if err := s.applicantRepo.UpdateApplicant(ctx, *applicant); err != nil {
		return nil, err
	}
	return applicant, nil
}
