package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
)

// EligibilityService derives an applicant's eligible loan amount from their
// latest income and obligation records.
type EligibilityService struct {
	incomeRepo       portsrepo.IncomeReader
	obligationRepo   portsrepo.ObligationReader
	applicantRepo    portsrepo.ApplicantReader
	abilitySvc       portssvc.AbilitySvcFacade
	timesOfNetIncome int64
}

// NewEligibilityService creates a new EligibilityService. timesOfNetIncome is
// the policy multiplier applied to net income.
func NewEligibilityService(ir portsrepo.IncomeReader, or portsrepo.ObligationReader, ar portsrepo.ApplicantReader, as portssvc.AbilitySvcFacade, timesOfNetIncome int64) portssvc.EligibilitySvcFacade {
	if timesOfNetIncome <= 0 {
		timesOfNetIncome = 2
	}
	return &EligibilityService{
		incomeRepo:       ir,
		obligationRepo:   or,
		applicantRepo:    ar,
		abilitySvc:       as,
		timesOfNetIncome: timesOfNetIncome,
	}
}

var _ portssvc.EligibilitySvcFacade = (*EligibilityService)(nil)

// CalculateEligibility computes eligibleLoanAmount = (grossIncome - totalEmi) *
// timesOfNetIncome. Missing income or obligation records contribute zero; the
// calculation itself never fails for an existing applicant.
func (s *EligibilityService) CalculateEligibility(ctx context.Context, actor *domain.AuthUser, applicantID string) (*domain.Eligibility, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionView, domain.SubjectIncome) {
		return nil, apperrors.ErrForbidden
	}

	applicant, err := s.applicantRepo.FindApplicantByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if actor.CurrentRole != domain.RoleSaasAdmin && applicant.BankID != actor.BankID {
		return nil, apperrors.ErrNotFound
	}

	grossIncome := decimal.Zero
	income, err := s.incomeRepo.FindLatestIncomeByApplicantID(ctx, applicantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load income: %w", err)
		}
	} else {
		grossIncome = income.GrossIncome
	}

	totalEmi := decimal.Zero
	obligation, err := s.obligationRepo.FindLatestObligationByApplicantID(ctx, applicantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load obligations: %w", err)
		}
	} else {
		totalEmi = obligation.TotalEmi
	}

	netIncome := grossIncome.Sub(totalEmi)
	eligibleAmount := netIncome.Mul(decimal.NewFromInt(s.timesOfNetIncome))

	return &domain.Eligibility{
		ApplicantID:        applicantID,
		GrossIncome:        grossIncome,
		TotalEmi:           totalEmi,
		NetIncome:          netIncome,
		EligibleLoanAmount: eligibleAmount,
		TimesOfNetIncome:   s.timesOfNetIncome,
	}, nil
}
