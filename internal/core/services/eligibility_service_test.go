package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/core/services"
)

// --- Mock income reader ---
type MockIncomeReader struct {
	mock.Mock
}

func (m *MockIncomeReader) FindLatestIncomeByApplicantID(ctx context.Context, applicantID string) (*domain.Income, error) {
	args := m.Called(ctx, applicantID)
	var income *domain.Income
	if args.Get(0) != nil {
		income = args.Get(0).(*domain.Income)
	}
	return income, args.Error(1)
}

func (m *MockIncomeReader) FindIncomesByApplicantID(ctx context.Context, applicantID string) ([]domain.Income, error) {
	args := m.Called(ctx, applicantID)
	var incomes []domain.Income
	if args.Get(0) != nil {
		incomes = args.Get(0).([]domain.Income)
	}
	return incomes, args.Error(1)
}

// --- Mock obligation reader ---
type MockObligationReader struct {
	mock.Mock
}

func (m *MockObligationReader) FindLatestObligationByApplicantID(ctx context.Context, applicantID string) (*domain.LoanObligation, error) {
	args := m.Called(ctx, applicantID)
	var obligation *domain.LoanObligation
	if args.Get(0) != nil {
		obligation = args.Get(0).(*domain.LoanObligation)
	}
	return obligation, args.Error(1)
}

func newEligibilityFixture(timesOfNetIncome int64) (*MockIncomeReader, *MockObligationReader, *MockApplicantReader, portssvc.EligibilitySvcFacade) {
	incomeRepo := new(MockIncomeReader)
	obligationRepo := new(MockObligationReader)
	applicantRepo := new(MockApplicantReader)
	abilitySvc := services.NewAbilityService(new(MockUserReader), new(MockMembershipManager))
	svc := services.NewEligibilityService(incomeRepo, obligationRepo, applicantRepo, abilitySvc, timesOfNetIncome)
	return incomeRepo, obligationRepo, applicantRepo, svc
}

func TestCalculateEligibility_NetIncomeTimesMultiplier(t *testing.T) {
	incomeRepo, obligationRepo, applicantRepo, svc := newEligibilityFixture(2)
	ctx := context.Background()
	actor := authUserWithRole(domain.RoleLoanOfficer)

	applicantRepo.On("FindApplicantByID", ctx, "applicant-1").Return(&domain.Applicant{
		ApplicantID: "applicant-1",
		BankID:      "bank-1",
	}, nil)
	incomeRepo.On("FindLatestIncomeByApplicantID", ctx, "applicant-1").Return(&domain.Income{
		ApplicantID: "applicant-1",
		GrossIncome: decimal.NewFromInt(50000),
	}, nil)
	obligationRepo.On("FindLatestObligationByApplicantID", ctx, "applicant-1").Return(&domain.LoanObligation{
		ApplicantID: "applicant-1",
		TotalEmi:    decimal.NewFromInt(10000),
	}, nil)

	eligibility, err := svc.CalculateEligibility(ctx, actor, "applicant-1")

	require.NoError(t, err)
	assert.True(t, eligibility.NetIncome.Equal(decimal.NewFromInt(40000)), "net income %s", eligibility.NetIncome)
	assert.True(t, eligibility.EligibleLoanAmount.Equal(decimal.NewFromInt(80000)), "eligible amount %s", eligibility.EligibleLoanAmount)
	assert.Equal(t, int64(2), eligibility.TimesOfNetIncome)
}

func TestCalculateEligibility_MissingRecordsYieldZeros(t *testing.T) {
	incomeRepo, obligationRepo, applicantRepo, svc := newEligibilityFixture(2)
	ctx := context.Background()
	actor := authUserWithRole(domain.RoleLoanOfficer)

	applicantRepo.On("FindApplicantByID", ctx, "applicant-1").Return(&domain.Applicant{
		ApplicantID: "applicant-1",
		BankID:      "bank-1",
	}, nil)
	incomeRepo.On("FindLatestIncomeByApplicantID", ctx, "applicant-1").Return(nil, apperrors.ErrNotFound)
	obligationRepo.On("FindLatestObligationByApplicantID", ctx, "applicant-1").Return(nil, apperrors.ErrNotFound)

	eligibility, err := svc.CalculateEligibility(ctx, actor, "applicant-1")

	require.NoError(t, err)
	assert.True(t, eligibility.GrossIncome.IsZero())
	assert.True(t, eligibility.TotalEmi.IsZero())
	assert.True(t, eligibility.EligibleLoanAmount.IsZero())
}

func TestCalculateEligibility_ObligationWithoutIncomeGoesNegative(t *testing.T) {
	incomeRepo, obligationRepo, applicantRepo, svc := newEligibilityFixture(3)
	ctx := context.Background()
	actor := authUserWithRole(domain.RoleClerk)

	applicantRepo.On("FindApplicantByID", ctx, "applicant-1").Return(&domain.Applicant{
		ApplicantID: "applicant-1",
		BankID:      "bank-1",
	}, nil)
	incomeRepo.On("FindLatestIncomeByApplicantID", ctx, "applicant-1").Return(nil, apperrors.ErrNotFound)
	obligationRepo.On("FindLatestObligationByApplicantID", ctx, "applicant-1").Return(&domain.LoanObligation{
		ApplicantID: "applicant-1",
		TotalEmi:    decimal.NewFromInt(5000),
	}, nil)

	eligibility, err := svc.CalculateEligibility(ctx, actor, "applicant-1")

	require.NoError(t, err)
	assert.True(t, eligibility.EligibleLoanAmount.Equal(decimal.NewFromInt(-15000)), "eligible amount %s", eligibility.EligibleLoanAmount)
}

func TestCalculateEligibility_ApplicantRoleForbidden(t *testing.T) {
	_, _, applicantRepo, svc := newEligibilityFixture(2)
	ctx := context.Background()
	actor := authUserWithRole(domain.RoleApplicant)

	eligibility, err := svc.CalculateEligibility(ctx, actor, "applicant-1")

	assert.Nil(t, eligibility)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	applicantRepo.AssertNotCalled(t, "FindApplicantByID", mock.Anything, mock.Anything)
}

func TestCalculateEligibility_CrossTenantLooksLikeNotFound(t *testing.T) {
	_, _, applicantRepo, svc := newEligibilityFixture(2)
	ctx := context.Background()
	actor := authUserWithRole(domain.RoleLoanOfficer)

	applicantRepo.On("FindApplicantByID", ctx, "applicant-1").Return(&domain.Applicant{
		ApplicantID: "applicant-1",
		BankID:      "bank-2",
	}, nil)

	eligibility, err := svc.CalculateEligibility(ctx, actor, "applicant-1")

	assert.Nil(t, eligibility)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
