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

// IncomeService manages income and obligation declarations for applicants.
type IncomeService struct {
	incomeRepo    portsrepo.IncomeRepositoryFacade
	applicantRepo portsrepo.ApplicantReader
	abilitySvc    portssvc.AbilitySvcFacade
}

// NewIncomeService creates a new IncomeService.
func NewIncomeService(ir portsrepo.IncomeRepositoryFacade, ar portsrepo.ApplicantReader, as portssvc.AbilitySvcFacade) *IncomeService {
	return &IncomeService{
		incomeRepo:    ir,
		applicantRepo: ar,
		abilitySvc:    as,
	}
}

var _ portssvc.IncomeSvcFacade = (*IncomeService)(nil)

// requireApplicantScoped checks the applicant exists and belongs to the actor's bank.
func (s *IncomeService) requireApplicantScoped(ctx context.Context, actor *domain.AuthUser, applicantID string) error {
	if actor == nil {
		return apperrors.ErrUnauthorized
	}
	applicant, err := s.applicantRepo.FindApplicantByID(ctx, applicantID)
	if err != nil {
		return err
	}
	if actor.CurrentRole != domain.RoleSaasAdmin && applicant.BankID != actor.BankID {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *IncomeService) SaveIncome(ctx context.Context, actor *domain.AuthUser, req dto.CreateIncomeRequest) (*domain.Income, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionCreate, domain.SubjectIncome) {
		return nil, apperrors.ErrForbidden
	}
	if err := s.requireApplicantScoped(ctx, actor, req.ApplicantID); err != nil {
		return nil, err
	}
	if !validIncomeType(domain.IncomeType(req.Type)) {
		return nil, fmt.Errorf("%w: unknown income type %q", apperrors.ErrValidation, req.Type)
	}
	if req.GrossIncome.IsNegative() {
		return nil, fmt.Errorf("%w: gross income must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	income := domain.Income{
		IncomeID:           uuid.NewString(),
		ApplicantID:        req.ApplicantID,
		Type:               domain.IncomeType(req.Type),
		GrossIncome:        req.GrossIncome,
		Rent:               req.Rent,
		Depreciation:       req.Depreciation,
		IncomeFromBusiness: req.IncomeFromBusiness,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		return nil, err
	}
	return &income, nil
}

func (s *IncomeService) ListIncomes(ctx context.Context, actor *domain.AuthUser, applicantID string) ([]domain.Income, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionView, domain.SubjectIncome) {
		return nil, apperrors.ErrForbidden
	}
	if err := s.requireApplicantScoped(ctx, actor, applicantID); err != nil {
		return nil, err
	}
	return s.incomeRepo.FindIncomesByApplicantID(ctx, applicantID)
}

func (s *IncomeService) DeleteIncome(ctx context.Context, actor *domain.AuthUser, incomeID string) error {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionDelete, domain.SubjectIncome) {
		return apperrors.ErrForbidden
	}
	return s.incomeRepo.MarkIncomeDeleted(ctx, incomeID, actor.UserID)
}

// SaveObligation records an applicant's existing loan commitments together with
// their per-lender detail rows.
func (s *IncomeService) SaveObligation(ctx context.Context, actor *domain.AuthUser, req dto.CreateObligationRequest) (*domain.LoanObligation, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionCreate, domain.SubjectLoanObligation) {
		return nil, apperrors.ErrForbidden
	}
	if err := s.requireApplicantScoped(ctx, actor, req.ApplicantID); err != nil {
		return nil, err
	}
	if req.TotalEmi.IsNegative() {
		return nil, fmt.Errorf("%w: total EMI must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	obligation := domain.LoanObligation{
		LoanObligationID: uuid.NewString(),
		ApplicantID:      req.ApplicantID,
		TotalEmi:         req.TotalEmi,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	for _, d := range req.Details {
		obligation.Details = append(obligation.Details, domain.ObligationDetail{
			ObligationDetailID: uuid.NewString(),
			LoanObligationID:   obligation.LoanObligationID,
			LenderName:         d.LenderName,
			LoanAmount:         d.LoanAmount,
			EmiAmount:          d.EmiAmount,
			OutstandingAmount:  d.OutstandingAmount,
		})
	}

	if err := s.incomeRepo.SaveObligation(ctx, obligation); err != nil {
		return nil, err
	}
	return &obligation, nil
}

func validIncomeType(t domain.IncomeType) bool {
	switch t {
	case domain.IncomeTypeSalaried, domain.IncomeTypeBusiness,
		domain.IncomeTypeAgriculture, domain.IncomeTypeSelfEmployed:
		return true
	}
	return false
}
