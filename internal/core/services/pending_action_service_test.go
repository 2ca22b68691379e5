package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/core/services"
)

// --- Mock pending action repository ---
type MockPendingActionRepository struct {
	mock.Mock
}

func (m *MockPendingActionRepository) FindPendingActionByID(ctx context.Context, pendingActionID string) (*domain.PendingAction, error) {
	args := m.Called(ctx, pendingActionID)
	var action *domain.PendingAction
	if args.Get(0) != nil {
		action = args.Get(0).(*domain.PendingAction)
	}
	return action, args.Error(1)
}

func (m *MockPendingActionRepository) ListPendingActionsByBank(ctx context.Context, bankID string, status *domain.PendingActionStatus, limit int) ([]domain.PendingAction, error) {
	args := m.Called(ctx, bankID, status, limit)
	var actions []domain.PendingAction
	if args.Get(0) != nil {
		actions = args.Get(0).([]domain.PendingAction)
	}
	return actions, args.Error(1)
}

func (m *MockPendingActionRepository) SaveWithTimeline(ctx context.Context, action domain.PendingAction, event domain.TimelineEvent) error {
	args := m.Called(ctx, action, event)
	return args.Error(0)
}

func (m *MockPendingActionRepository) FinalizeWithTimeline(ctx context.Context, pendingActionID string, status domain.PendingActionStatus, reviewerID string, reviewedAt time.Time, remarks string, targetID *string, event domain.TimelineEvent) error {
	args := m.Called(ctx, pendingActionID, status, reviewerID, reviewedAt, remarks, targetID, event)
	return args.Error(0)
}

// --- Mock user creation materializer ---
type MockUserCreationMaterializer struct {
	mock.Mock
}

func (m *MockUserCreationMaterializer) MaterializeBankUser(ctx context.Context, bankID string, payload json.RawMessage, approverID string) (string, error) {
	args := m.Called(ctx, bankID, payload, approverID)
	return args.String(0), args.Error(1)
}

// --- Mock bank reader/writer ---
type MockBankStore struct {
	mock.Mock
}

func (m *MockBankStore) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	args := m.Called(ctx, bankID)
	var bank *domain.Bank
	if args.Get(0) != nil {
		bank = args.Get(0).(*domain.Bank)
	}
	return bank, args.Error(1)
}

func (m *MockBankStore) ListBanks(ctx context.Context, limit, offset int) ([]domain.Bank, error) {
	args := m.Called(ctx, limit, offset)
	var banks []domain.Bank
	if args.Get(0) != nil {
		banks = args.Get(0).([]domain.Bank)
	}
	return banks, args.Error(1)
}

func (m *MockBankStore) SaveBank(ctx context.Context, bank domain.Bank) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *MockBankStore) UpdateBank(ctx context.Context, bank domain.Bank) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

type PendingActionServiceTestSuite struct {
	suite.Suite
	pendingRepo  *MockPendingActionRepository
	userCreation *MockUserCreationMaterializer
	bankStore    *MockBankStore
	service      portssvc.PendingActionSvcFacade
	ctx          context.Context
}

func (s *PendingActionServiceTestSuite) SetupTest() {
	s.pendingRepo = new(MockPendingActionRepository)
	s.userCreation = new(MockUserCreationMaterializer)
	s.bankStore = new(MockBankStore)
	abilitySvc := services.NewAbilityService(new(MockUserReader), new(MockMembershipManager))
	s.service = services.NewPendingActionService(s.pendingRepo, abilitySvc, s.userCreation, s.bankStore, s.bankStore)
	s.ctx = context.Background()
}

func (s *PendingActionServiceTestSuite) pendingUserCreation() *domain.PendingAction {
	return &domain.PendingAction{
		PendingActionID: "pa-1",
		BankID:          "bank-1",
		ActionType:      domain.ActionRequestBankUserCreation,
		Payload:         json.RawMessage(`{"firstName":"Ravi","email":"ravi@example.com","role":"CLERK"}`),
		Status:          domain.PendingActionPending,
		RequestedByID:   "clerk-1",
		RequestedAt:     time.Now().UTC(),
		TargetModel:     "UserProfile",
	}
}

func reviewer() *domain.AuthUser {
	u := authUserWithRole(domain.RoleCEO)
	u.UserID = "ceo-1"
	return u
}

func (s *PendingActionServiceTestSuite) TestRequestAction_Success() {
	actor := authUserWithRole(domain.RoleClerk)
	payload := json.RawMessage(`{"firstName":"Ravi","email":"ravi@example.com","role":"CLERK"}`)
	s.pendingRepo.On("SaveWithTimeline", s.ctx, mock.MatchedBy(func(a domain.PendingAction) bool {
		return a.Status == domain.PendingActionPending &&
			a.TargetModel == "UserProfile" &&
			a.RequestedByID == actor.UserID
	}), mock.MatchedBy(func(event domain.TimelineEvent) bool {
		return event.EventType == domain.EventActionRequested &&
			event.EntityType == domain.EntityTypePendingAction &&
			event.ActorUserID == actor.UserID
	})).Return(nil)

	action, err := s.service.RequestAction(s.ctx, actor, "bank-1", domain.ActionRequestBankUserCreation, payload)

	s.Require().NoError(err)
	s.Equal(domain.PendingActionPending, action.Status)
}

func (s *PendingActionServiceTestSuite) TestRequestAction_InvalidPayload() {
	actor := authUserWithRole(domain.RoleClerk)

	action, err := s.service.RequestAction(s.ctx, actor, "bank-1", domain.ActionRequestBankUserCreation, json.RawMessage(`{not json`))

	s.Nil(action)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.pendingRepo.AssertNotCalled(s.T(), "SaveWithTimeline", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PendingActionServiceTestSuite) TestRequestAction_OtherBankForbidden() {
	actor := authUserWithRole(domain.RoleClerk)

	action, err := s.service.RequestAction(s.ctx, actor, "bank-2", domain.ActionRequestBankUserCreation, json.RawMessage(`{}`))

	s.Nil(action)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *PendingActionServiceTestSuite) TestApprove_MaterializesThenFinalizes() {
	actor := reviewer()
	action := s.pendingUserCreation()
	s.pendingRepo.On("FindPendingActionByID", s.ctx, "pa-1").Return(action, nil)
	s.userCreation.On("MaterializeBankUser", s.ctx, "bank-1", action.Payload, actor.UserID).Return("new-user-1", nil)
	s.pendingRepo.On("FinalizeWithTimeline", s.ctx, "pa-1", domain.PendingActionApproved, actor.UserID,
		mock.AnythingOfType("time.Time"), "", mock.MatchedBy(func(targetID *string) bool {
			return targetID != nil && *targetID == "new-user-1"
		}), mock.MatchedBy(func(event domain.TimelineEvent) bool {
			return event.EventType == domain.EventActionApproved && event.EntityType == domain.EntityTypePendingAction
		})).Return(nil).Once()

	approved, err := s.service.Approve(s.ctx, actor, "pa-1")

	s.Require().NoError(err)
	s.Equal(domain.PendingActionApproved, approved.Status)
	s.Require().NotNil(approved.TargetID)
	s.Equal("new-user-1", *approved.TargetID)
}

func (s *PendingActionServiceTestSuite) TestApprove_SelfApprovalForbidden() {
	actor := authUserWithRole(domain.RoleCEO)
	actor.UserID = "clerk-1" // same as the requester
	action := s.pendingUserCreation()
	s.pendingRepo.On("FindPendingActionByID", s.ctx, "pa-1").Return(action, nil)

	approved, err := s.service.Approve(s.ctx, actor, "pa-1")

	s.Nil(approved)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.userCreation.AssertNotCalled(s.T(), "MaterializeBankUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.pendingRepo.AssertNotCalled(s.T(), "FinalizeWithTimeline", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PendingActionServiceTestSuite) TestApprove_AlreadyReviewed() {
	actor := reviewer()
	action := s.pendingUserCreation()
	action.Status = domain.PendingActionApproved
	s.pendingRepo.On("FindPendingActionByID", s.ctx, "pa-1").Return(action, nil)

	approved, err := s.service.Approve(s.ctx, actor, "pa-1")

	s.Nil(approved)
	s.ErrorIs(err, apperrors.ErrInvalidState)
	s.userCreation.AssertNotCalled(s.T(), "MaterializeBankUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.pendingRepo.AssertNotCalled(s.T(), "FinalizeWithTimeline", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PendingActionServiceTestSuite) TestApprove_ConcurrentReviewerLoses() {
	actor := reviewer()
	action := s.pendingUserCreation()
	s.pendingRepo.On("FindPendingActionByID", s.ctx, "pa-1").Return(action, nil)
	s.userCreation.On("MaterializeBankUser", s.ctx, "bank-1", action.Payload, actor.UserID).Return("new-user-1", nil)
	// Another reviewer finalized between our read and our write.
	s.pendingRepo.On("FinalizeWithTimeline", s.ctx, "pa-1", domain.PendingActionApproved, actor.UserID,
		mock.AnythingOfType("time.Time"), "", mock.Anything, mock.Anything).Return(apperrors.ErrInvalidState)

	approved, err := s.service.Approve(s.ctx, actor, "pa-1")

	s.Nil(approved)
	s.ErrorIs(err, apperrors.ErrInvalidState)
}

func (s *PendingActionServiceTestSuite) TestApprove_BankDetailUpdate() {
	actor := reviewer()
	action := s.pendingUserCreation()
	action.ActionType = domain.ActionRequestBankDetailUpdate
	action.TargetModel = "Bank"
	action.Payload = json.RawMessage(`{"name":"First National"}`)
	s.pendingRepo.On("FindPendingActionByID", s.ctx, "pa-1").Return(action, nil)
	s.bankStore.On("FindBankByID", s.ctx, "bank-1").Return(&domain.Bank{BankID: "bank-1", Name: "Old Name"}, nil)
	s.bankStore.On("UpdateBank", s.ctx, mock.MatchedBy(func(b domain.Bank) bool {
		return b.Name == "First National"
	})).Return(nil)
	s.pendingRepo.On("FinalizeWithTimeline", s.ctx, "pa-1", domain.PendingActionApproved, actor.UserID,
		mock.AnythingOfType("time.Time"), "", mock.Anything, mock.Anything).Return(nil)

	approved, err := s.service.Approve(s.ctx, actor, "pa-1")

	s.Require().NoError(err)
	s.Equal(domain.PendingActionApproved, approved.Status)
	s.bankStore.AssertExpectations(s.T())
}

func (s *PendingActionServiceTestSuite) TestReject_RemarksValidatedBeforeRead() {
	actor := reviewer()

	rejected, err := s.service.Reject(s.ctx, actor, "pa-1", "   ")

	s.Nil(rejected)
	s.ErrorIs(err, services.ErrReviewRemarksRequired)
	var ve *apperrors.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Contains(ve.Fields, "remarks")
	s.pendingRepo.AssertNotCalled(s.T(), "FindPendingActionByID", mock.Anything, mock.Anything)
}

func (s *PendingActionServiceTestSuite) TestReject_Success() {
	actor := reviewer()
	action := s.pendingUserCreation()
	s.pendingRepo.On("FindPendingActionByID", s.ctx, "pa-1").Return(action, nil)
	s.pendingRepo.On("FinalizeWithTimeline", s.ctx, "pa-1", domain.PendingActionRejected, actor.UserID,
		mock.AnythingOfType("time.Time"), "missing documents", (*string)(nil),
		mock.MatchedBy(func(event domain.TimelineEvent) bool {
			return event.EventType == domain.EventActionRejected
		})).Return(nil).Once()

	rejected, err := s.service.Reject(s.ctx, actor, "pa-1", "missing documents")

	s.Require().NoError(err)
	s.Equal(domain.PendingActionRejected, rejected.Status)
	s.Equal("missing documents", rejected.ReviewRemarks)
	s.userCreation.AssertNotCalled(s.T(), "MaterializeBankUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PendingActionServiceTestSuite) TestCancel_ByRequester() {
	actor := authUserWithRole(domain.RoleClerk)
	actor.UserID = "clerk-1"
	action := s.pendingUserCreation()
	s.pendingRepo.On("FindPendingActionByID", s.ctx, "pa-1").Return(action, nil)
	s.pendingRepo.On("FinalizeWithTimeline", s.ctx, "pa-1", domain.PendingActionCancelled, actor.UserID,
		mock.AnythingOfType("time.Time"), "", (*string)(nil),
		mock.MatchedBy(func(event domain.TimelineEvent) bool {
			return event.EventType == domain.EventActionCancelled
		})).Return(nil).Once()

	cancelled, err := s.service.Cancel(s.ctx, actor, "pa-1")

	s.Require().NoError(err)
	s.Equal(domain.PendingActionCancelled, cancelled.Status)
}

func (s *PendingActionServiceTestSuite) TestGetAction_CrossTenantLooksLikeNotFound() {
	actor := reviewer()
	action := s.pendingUserCreation()
	action.BankID = "bank-2"
	s.pendingRepo.On("FindPendingActionByID", s.ctx, "pa-1").Return(action, nil)

	got, err := s.service.GetAction(s.ctx, actor, "pa-1")

	s.Nil(got)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPendingActionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PendingActionServiceTestSuite))
}
