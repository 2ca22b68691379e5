package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/core/services"
	"github.com/nikitph/los-backend/internal/dto"
)

// --- Mock loan application repository ---
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) FindLoanApplicationByID(ctx context.Context, loanApplicationID string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, loanApplicationID)
	var app *domain.LoanApplication
	if args.Get(0) != nil {
		app = args.Get(0).(*domain.LoanApplication)
	}
	return app, args.Error(1)
}

func (m *MockLoanRepository) ListLoanApplicationsByBank(ctx context.Context, bankID string, status *domain.LoanStatus, limit int, nextToken *string) ([]domain.LoanApplication, *string, error) {
	args := m.Called(ctx, bankID, status, limit, nextToken)
	var apps []domain.LoanApplication
	if args.Get(0) != nil {
		apps = args.Get(0).([]domain.LoanApplication)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return apps, token, args.Error(2)
}

func (m *MockLoanRepository) ListLoanApplicationsByApplicant(ctx context.Context, applicantID string) ([]domain.LoanApplication, error) {
	args := m.Called(ctx, applicantID)
	var apps []domain.LoanApplication
	if args.Get(0) != nil {
		apps = args.Get(0).([]domain.LoanApplication)
	}
	return apps, args.Error(1)
}

func (m *MockLoanRepository) SaveWithTimeline(ctx context.Context, app domain.LoanApplication, event domain.TimelineEvent) error {
	args := m.Called(ctx, app, event)
	return args.Error(0)
}

func (m *MockLoanRepository) UpdateLoanApplication(ctx context.Context, app domain.LoanApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockLoanRepository) UpdateStatusWithTimeline(ctx context.Context, loanApplicationID string, status domain.LoanStatus, assignedLoanOfficerID, assignedInspectorID *string, updatedBy string, updatedAt time.Time, event domain.TimelineEvent) error {
	args := m.Called(ctx, loanApplicationID, status, assignedLoanOfficerID, assignedInspectorID, updatedBy, updatedAt, event)
	return args.Error(0)
}

func (m *MockLoanRepository) SaveGuarantor(ctx context.Context, guarantor domain.Guarantor) error {
	args := m.Called(ctx, guarantor)
	return args.Error(0)
}

func (m *MockLoanRepository) FindGuarantorsByLoanApplicationID(ctx context.Context, loanApplicationID string) ([]domain.Guarantor, error) {
	args := m.Called(ctx, loanApplicationID)
	var guarantors []domain.Guarantor
	if args.Get(0) != nil {
		guarantors = args.Get(0).([]domain.Guarantor)
	}
	return guarantors, args.Error(1)
}

func (m *MockLoanRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

func (m *MockLoanRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLoanRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock applicant reader ---
type MockApplicantReader struct {
	mock.Mock
}

func (m *MockApplicantReader) FindApplicantByID(ctx context.Context, applicantID string) (*domain.Applicant, error) {
	args := m.Called(ctx, applicantID)
	var applicant *domain.Applicant
	if args.Get(0) != nil {
		applicant = args.Get(0).(*domain.Applicant)
	}
	return applicant, args.Error(1)
}

func (m *MockApplicantReader) FindApplicantByUserID(ctx context.Context, userID, bankID string) (*domain.Applicant, error) {
	args := m.Called(ctx, userID, bankID)
	var applicant *domain.Applicant
	if args.Get(0) != nil {
		applicant = args.Get(0).(*domain.Applicant)
	}
	return applicant, args.Error(1)
}

func (m *MockApplicantReader) ListApplicantsByBank(ctx context.Context, bankID string, limit, offset int) ([]domain.Applicant, error) {
	args := m.Called(ctx, bankID, limit, offset)
	var applicants []domain.Applicant
	if args.Get(0) != nil {
		applicants = args.Get(0).([]domain.Applicant)
	}
	return applicants, args.Error(1)
}

// --- Mock verification reader ---
type MockVerificationReader struct {
	mock.Mock
}

func (m *MockVerificationReader) FindVerificationByID(ctx context.Context, verificationID string) (*domain.Verification, error) {
	args := m.Called(ctx, verificationID)
	var v *domain.Verification
	if args.Get(0) != nil {
		v = args.Get(0).(*domain.Verification)
	}
	return v, args.Error(1)
}

func (m *MockVerificationReader) FindVerificationsByLoanApplicationID(ctx context.Context, loanApplicationID string) ([]domain.Verification, error) {
	args := m.Called(ctx, loanApplicationID)
	var vs []domain.Verification
	if args.Get(0) != nil {
		vs = args.Get(0).([]domain.Verification)
	}
	return vs, args.Error(1)
}

func (m *MockVerificationReader) HasFailedVerification(ctx context.Context, loanApplicationID string) (bool, error) {
	args := m.Called(ctx, loanApplicationID)
	return args.Bool(0), args.Error(1)
}

type LoanServiceTestSuite struct {
	suite.Suite
	loanRepo         *MockLoanRepository
	applicantRepo    *MockApplicantReader
	verificationRepo *MockVerificationReader
	bankRepo         *MockMembershipManager
	service          portssvc.LoanSvcFacade
	ctx              context.Context
}

func (s *LoanServiceTestSuite) SetupTest() {
	s.loanRepo = new(MockLoanRepository)
	s.applicantRepo = new(MockApplicantReader)
	s.verificationRepo = new(MockVerificationReader)
	s.bankRepo = new(MockMembershipManager)
	abilitySvc := services.NewAbilityService(new(MockUserReader), s.bankRepo)
	s.service = services.NewLoanService(s.loanRepo, s.applicantRepo, s.verificationRepo, s.bankRepo, abilitySvc)
	s.ctx = context.Background()
}

func (s *LoanServiceTestSuite) draftApp() *domain.LoanApplication {
	return &domain.LoanApplication{
		LoanApplicationID: uuid.NewString(),
		ApplicantID:       "applicant-1",
		BankID:            "bank-1",
		LoanType:          domain.LoanTypePersonal,
		AmountRequested:   decimal.NewFromInt(250000),
		Status:            domain.LoanStatusDraft,
	}
}

func (s *LoanServiceTestSuite) TestCreateApplication_Success() {
	actor := authUserWithRole(domain.RoleApplicant)
	s.applicantRepo.On("FindApplicantByID", s.ctx, "applicant-1").Return(&domain.Applicant{
		ApplicantID: "applicant-1",
		BankID:      "bank-1",
	}, nil)
	s.loanRepo.On("SaveWithTimeline", s.ctx, mock.MatchedBy(func(app domain.LoanApplication) bool {
		return app.Status == domain.LoanStatusDraft && app.BankID == "bank-1"
	}), mock.MatchedBy(func(event domain.TimelineEvent) bool {
		return event.EventType == domain.EventApplicationCreated &&
			event.EntityType == domain.EntityTypeLoanApplication
	})).Return(nil)

	app, err := s.service.CreateApplication(s.ctx, actor, dto.CreateLoanApplicationRequest{
		ApplicantID:     "applicant-1",
		LoanType:        string(domain.LoanTypePersonal),
		AmountRequested: decimal.NewFromInt(250000),
	})

	s.Require().NoError(err)
	s.Equal(domain.LoanStatusDraft, app.Status)
	s.loanRepo.AssertExpectations(s.T())
}

func (s *LoanServiceTestSuite) TestCreateApplication_CrossBankApplicant() {
	actor := authUserWithRole(domain.RoleApplicant)
	s.applicantRepo.On("FindApplicantByID", s.ctx, "applicant-9").Return(&domain.Applicant{
		ApplicantID: "applicant-9",
		BankID:      "bank-2",
	}, nil)

	app, err := s.service.CreateApplication(s.ctx, actor, dto.CreateLoanApplicationRequest{
		ApplicantID:     "applicant-9",
		LoanType:        string(domain.LoanTypeVehicle),
		AmountRequested: decimal.NewFromInt(90000),
	})

	s.Nil(app)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.loanRepo.AssertNotCalled(s.T(), "SaveWithTimeline", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestCreateApplication_FieldErrorsCollected() {
	actor := authUserWithRole(domain.RoleApplicant)

	app, err := s.service.CreateApplication(s.ctx, actor, dto.CreateLoanApplicationRequest{
		ApplicantID:     "applicant-1",
		LoanType:        "PAYDAY",
		AmountRequested: decimal.NewFromInt(-500),
	})

	s.Nil(app)
	s.ErrorIs(err, apperrors.ErrValidation)
	var ve *apperrors.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Contains(ve.Fields, "loanType")
	s.Contains(ve.Fields, "amountRequested")
	s.applicantRepo.AssertNotCalled(s.T(), "FindApplicantByID", mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestSubmitApplication_WritesStatusAndEventTogether() {
	actor := authUserWithRole(domain.RoleApplicant)
	app := s.draftApp()
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)
	s.loanRepo.On("UpdateStatusWithTimeline", s.ctx, app.LoanApplicationID, domain.LoanStatusPendingLoanOfficerAssignment,
		(*string)(nil), (*string)(nil), actor.UserID, mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(event domain.TimelineEvent) bool {
			return event.EventType == domain.EventApplicationSubmitted &&
				event.EntityType == domain.EntityTypeLoanApplication &&
				event.EntityID == app.LoanApplicationID
		})).Return(nil).Once()

	updated, err := s.service.SubmitApplication(s.ctx, actor, app.LoanApplicationID)

	s.Require().NoError(err)
	s.Equal(domain.LoanStatusPendingLoanOfficerAssignment, updated.Status)
	s.loanRepo.AssertNumberOfCalls(s.T(), "UpdateStatusWithTimeline", 1)
}

func (s *LoanServiceTestSuite) TestSubmitApplication_DefaultRemarksAndActionData() {
	actor := authUserWithRole(domain.RoleApplicant)
	app := s.draftApp()
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)

	var recorded domain.TimelineEvent
	s.loanRepo.On("UpdateStatusWithTimeline", s.ctx, app.LoanApplicationID, domain.LoanStatusPendingLoanOfficerAssignment,
		(*string)(nil), (*string)(nil), actor.UserID, mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(event domain.TimelineEvent) bool {
			recorded = event
			return true
		})).Return(nil).Once()

	_, err := s.service.SubmitApplication(s.ctx, actor, app.LoanApplicationID)

	s.Require().NoError(err)
	s.Equal("status updated to PENDING_LOAN_OFFICER_ASSIGNMENT", recorded.Remarks)

	var payload map[string]any
	s.Require().NoError(json.Unmarshal(recorded.ActionData, &payload))
	s.Equal("DRAFT", payload["oldStatus"])
	s.Equal("PENDING_LOAN_OFFICER_ASSIGNMENT", payload["newStatus"])
}

func (s *LoanServiceTestSuite) TestSubmitApplication_ZeroAmount() {
	actor := authUserWithRole(domain.RoleApplicant)
	app := s.draftApp()
	app.AmountRequested = decimal.Zero
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)

	updated, err := s.service.SubmitApplication(s.ctx, actor, app.LoanApplicationID)

	s.Nil(updated)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.loanRepo.AssertNotCalled(s.T(), "UpdateStatusWithTimeline", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestSubmitApplication_InvalidTransitionWritesNothing() {
	actor := authUserWithRole(domain.RoleApplicant)
	app := s.draftApp()
	app.Status = domain.LoanStatusUnderReview
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)

	updated, err := s.service.SubmitApplication(s.ctx, actor, app.LoanApplicationID)

	s.Nil(updated)
	s.ErrorIs(err, services.ErrInvalidTransition)
	s.loanRepo.AssertNotCalled(s.T(), "UpdateStatusWithTimeline", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestGetApplication_CrossTenantLooksLikeNotFound() {
	actor := authUserWithRole(domain.RoleLoanOfficer)
	app := s.draftApp()
	app.BankID = "bank-2"
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)

	got, err := s.service.GetApplication(s.ctx, actor, app.LoanApplicationID)

	s.Nil(got)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LoanServiceTestSuite) TestAssignLoanOfficer_ChecksTargetRole() {
	actor := authUserWithRole(domain.RoleBankAdmin)
	app := s.draftApp()
	app.Status = domain.LoanStatusPendingLoanOfficerAssignment
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)
	s.bankRepo.On("FindBankMembershipRole", s.ctx, "clerk-1", "bank-1").Return(&domain.BankMembership{
		UserID: "clerk-1", BankID: "bank-1", Role: domain.RoleClerk,
	}, nil)

	updated, err := s.service.AssignLoanOfficer(s.ctx, actor, app.LoanApplicationID, "clerk-1")

	s.Nil(updated)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.loanRepo.AssertNotCalled(s.T(), "UpdateStatusWithTimeline", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestAssignLoanOfficer_RecordsAssignment() {
	actor := authUserWithRole(domain.RoleBankAdmin)
	app := s.draftApp()
	app.Status = domain.LoanStatusPendingLoanOfficerAssignment
	officerID := "officer-1"
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)
	s.bankRepo.On("FindBankMembershipRole", s.ctx, officerID, "bank-1").Return(&domain.BankMembership{
		UserID: officerID, BankID: "bank-1", Role: domain.RoleLoanOfficer,
	}, nil)
	s.loanRepo.On("UpdateStatusWithTimeline", s.ctx, app.LoanApplicationID, domain.LoanStatusPendingLoanOfficerReview,
		&officerID, (*string)(nil), actor.UserID, mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(event domain.TimelineEvent) bool {
			return event.EventType == domain.EventLoanOfficerAssigned
		})).Return(nil).Once()

	updated, err := s.service.AssignLoanOfficer(s.ctx, actor, app.LoanApplicationID, officerID)

	s.Require().NoError(err)
	s.Equal(domain.LoanStatusPendingLoanOfficerReview, updated.Status)
	s.Require().NotNil(updated.AssignedLoanOfficerID)
	s.Equal(officerID, *updated.AssignedLoanOfficerID)
}

func (s *LoanServiceTestSuite) TestReviewByLoanOfficer_FailRequiresRemarks() {
	actor := authUserWithRole(domain.RoleLoanOfficer)
	app := s.draftApp()
	app.Status = domain.LoanStatusPendingLoanOfficerReview
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)

	updated, err := s.service.ReviewByLoanOfficer(s.ctx, actor, app.LoanApplicationID, false, "   ")

	s.Nil(updated)
	s.ErrorIs(err, services.ErrRemarksRequired)
	s.loanRepo.AssertNotCalled(s.T(), "UpdateStatusWithTimeline", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestReviewByLoanOfficer_PassMovesToInspectorAssignment() {
	actor := authUserWithRole(domain.RoleLoanOfficer)
	app := s.draftApp()
	app.Status = domain.LoanStatusPendingLoanOfficerReview
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)
	s.loanRepo.On("UpdateStatusWithTimeline", s.ctx, app.LoanApplicationID, domain.LoanStatusPendingInspectorAssignment,
		(*string)(nil), (*string)(nil), actor.UserID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("domain.TimelineEvent")).Return(nil).Once()

	updated, err := s.service.ReviewByLoanOfficer(s.ctx, actor, app.LoanApplicationID, true, "docs look fine")

	s.Require().NoError(err)
	s.Equal(domain.LoanStatusPendingInspectorAssignment, updated.Status)
}

func (s *LoanServiceTestSuite) TestCompleteVerification_AllPassed() {
	actor := authUserWithRole(domain.RoleInspector)
	app := s.draftApp()
	app.Status = domain.LoanStatusVerificationInProgress
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)
	s.verificationRepo.On("HasFailedVerification", s.ctx, app.LoanApplicationID).Return(false, nil)
	s.loanRepo.On("UpdateStatusWithTimeline", s.ctx, app.LoanApplicationID, domain.LoanStatusVerificationCompleted,
		(*string)(nil), (*string)(nil), actor.UserID, mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(event domain.TimelineEvent) bool {
			return event.EventType == domain.EventVerificationCompleted
		})).Return(nil).Once()

	updated, err := s.service.CompleteVerification(s.ctx, actor, app.LoanApplicationID)

	s.Require().NoError(err)
	s.Equal(domain.LoanStatusVerificationCompleted, updated.Status)
}

func (s *LoanServiceTestSuite) TestCompleteVerification_NoRecordsCountsAsFailed() {
	actor := authUserWithRole(domain.RoleInspector)
	app := s.draftApp()
	app.Status = domain.LoanStatusVerificationInProgress
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)
	// The repository reports failure both for an explicit failed check and for
	// the no-records-at-all case.
	s.verificationRepo.On("HasFailedVerification", s.ctx, app.LoanApplicationID).Return(true, nil)
	s.loanRepo.On("UpdateStatusWithTimeline", s.ctx, app.LoanApplicationID, domain.LoanStatusVerificationFailed,
		(*string)(nil), (*string)(nil), actor.UserID, mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(event domain.TimelineEvent) bool {
			return event.EventType == domain.EventVerificationFailed
		})).Return(nil).Once()

	updated, err := s.service.CompleteVerification(s.ctx, actor, app.LoanApplicationID)

	s.Require().NoError(err)
	s.Equal(domain.LoanStatusVerificationFailed, updated.Status)
}

func (s *LoanServiceTestSuite) TestApprove_BankAdminForbidden() {
	actor := authUserWithRole(domain.RoleBankAdmin)

	updated, err := s.service.Approve(s.ctx, actor, "app-1", "fine by me")

	s.Nil(updated)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.loanRepo.AssertNotCalled(s.T(), "FindLoanApplicationByID", mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestApprove_FromUnderReview() {
	actor := authUserWithRole(domain.RoleCEO)
	app := s.draftApp()
	app.Status = domain.LoanStatusUnderReview
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)
	s.loanRepo.On("UpdateStatusWithTimeline", s.ctx, app.LoanApplicationID, domain.LoanStatusApproved,
		(*string)(nil), (*string)(nil), actor.UserID, mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(event domain.TimelineEvent) bool {
			return event.EventType == domain.EventApplicationApproved
		})).Return(nil).Once()

	updated, err := s.service.Approve(s.ctx, actor, app.LoanApplicationID, "within policy")

	s.Require().NoError(err)
	s.Equal(domain.LoanStatusApproved, updated.Status)
}

func (s *LoanServiceTestSuite) TestReject_RemarksValidatedBeforeRead() {
	actor := authUserWithRole(domain.RoleCEO)

	updated, err := s.service.Reject(s.ctx, actor, "app-1", "")

	s.Nil(updated)
	s.ErrorIs(err, services.ErrRemarksRequired)
	s.loanRepo.AssertNotCalled(s.T(), "FindLoanApplicationByID", mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestWithdraw_FromAnyNonTerminalState() {
	actor := authUserWithRole(domain.RoleApplicant)
	for _, status := range []domain.LoanStatus{
		domain.LoanStatusDraft,
		domain.LoanStatusPendingLoanOfficerReview,
		domain.LoanStatusVerificationInProgress,
		domain.LoanStatusUnderReview,
	} {
		s.SetupTest()
		app := s.draftApp()
		app.Status = status
		s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)
		s.loanRepo.On("UpdateStatusWithTimeline", s.ctx, app.LoanApplicationID, domain.LoanStatusRejectedByApplicant,
			(*string)(nil), (*string)(nil), actor.UserID, mock.AnythingOfType("time.Time"),
			mock.MatchedBy(func(event domain.TimelineEvent) bool {
				return event.EventType == domain.EventApplicationWithdrawn
			})).Return(nil).Once()

		updated, err := s.service.Withdraw(s.ctx, actor, app.LoanApplicationID, "changed my mind")

		s.Require().NoError(err, "from %s", status)
		s.Equal(domain.LoanStatusRejectedByApplicant, updated.Status)
	}
}

func (s *LoanServiceTestSuite) TestWithdraw_TerminalStateRefused() {
	actor := authUserWithRole(domain.RoleApplicant)
	app := s.draftApp()
	app.Status = domain.LoanStatusApproved
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)

	updated, err := s.service.Withdraw(s.ctx, actor, app.LoanApplicationID, "too late")

	s.Nil(updated)
	s.ErrorIs(err, services.ErrInvalidTransition)
}

func (s *LoanServiceTestSuite) TestUpdateDraft_FrozenAfterSubmission() {
	actor := authUserWithRole(domain.RoleApplicant)
	app := s.draftApp()
	app.Status = domain.LoanStatusPendingLoanOfficerAssignment
	s.loanRepo.On("FindLoanApplicationByID", s.ctx, app.LoanApplicationID).Return(app, nil)

	amount := decimal.NewFromInt(999999)
	updated, err := s.service.UpdateDraft(s.ctx, actor, app.LoanApplicationID, dto.UpdateLoanApplicationRequest{
		AmountRequested: &amount,
	})

	s.Nil(updated)
	s.ErrorIs(err, apperrors.ErrInvalidState)
	s.loanRepo.AssertNotCalled(s.T(), "UpdateLoanApplication", mock.Anything, mock.Anything)
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
