package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/core/services"
)

// --- Mock user reader ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindUserByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	var user *domain.UserProfile
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.UserProfile)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) FindUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	args := m.Called(ctx, email)
	var user *domain.UserProfile
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.UserProfile)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) FindUsers(ctx context.Context, limit, offset int) ([]domain.UserProfile, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.UserProfile
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.UserProfile)
	}
	return users, args.Error(1)
}

// --- Mock membership manager ---
type MockMembershipManager struct {
	mock.Mock
}

func (m *MockMembershipManager) AddUserToBank(ctx context.Context, membership domain.BankMembership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipManager) FindBankMemberships(ctx context.Context, userID string) ([]domain.BankMembership, error) {
	args := m.Called(ctx, userID)
	var memberships []domain.BankMembership
	if args.Get(0) != nil {
		memberships = args.Get(0).([]domain.BankMembership)
	}
	return memberships, args.Error(1)
}

func (m *MockMembershipManager) FindBankMembershipRole(ctx context.Context, userID, bankID string) (*domain.BankMembership, error) {
	args := m.Called(ctx, userID, bankID)
	var membership *domain.BankMembership
	if args.Get(0) != nil {
		membership = args.Get(0).(*domain.BankMembership)
	}
	return membership, args.Error(1)
}

func authUserWithRole(role domain.UserRole) *domain.AuthUser {
	return &domain.AuthUser{
		UserID:      "user-1",
		BankID:      "bank-1",
		Name:        "Test User",
		Roles:       []domain.UserRole{role},
		CurrentRole: role,
	}
}

func TestDefineAbilityFor_NilUserGrantsNothing(t *testing.T) {
	svc := services.NewAbilityService(new(MockUserReader), new(MockMembershipManager))

	ability := svc.DefineAbilityFor(nil)

	assert.True(t, ability.Cannot(domain.ActionView, domain.SubjectLoanApplication))
	assert.True(t, ability.Cannot(domain.ActionManage, domain.SubjectAll))
}

func TestDefineAbilityFor_UnknownRoleDeniedByDefault(t *testing.T) {
	svc := services.NewAbilityService(new(MockUserReader), new(MockMembershipManager))

	ability := svc.DefineAbilityFor(authUserWithRole(domain.UserRole("INTERN")))

	assert.True(t, ability.Cannot(domain.ActionView, domain.SubjectLoanApplication))
	assert.True(t, ability.Cannot(domain.ActionView, domain.SubjectTimeline))
}

func TestDefineAbilityFor_Applicant(t *testing.T) {
	svc := services.NewAbilityService(new(MockUserReader), new(MockMembershipManager))

	ability := svc.DefineAbilityFor(authUserWithRole(domain.RoleApplicant))

	assert.True(t, ability.Can(domain.ActionCreate, domain.SubjectLoanApplication))
	assert.True(t, ability.Can(domain.ActionSubmit, domain.SubjectLoanApplication))
	assert.True(t, ability.Can(domain.ActionCancel, domain.SubjectLoanApplication))
	assert.True(t, ability.Cannot(domain.ActionApprove, domain.SubjectLoanApplication))
	assert.True(t, ability.Cannot(domain.ActionAssign, domain.SubjectLoanApplication))
	assert.True(t, ability.Cannot(domain.ActionView, domain.SubjectIncome))
}

func TestDefineAbilityFor_ApplicantDraftFields(t *testing.T) {
	svc := services.NewAbilityService(new(MockUserReader), new(MockMembershipManager))

	ability := svc.DefineAbilityFor(authUserWithRole(domain.RoleApplicant))

	assert.True(t, ability.CanField(domain.ActionUpdate, domain.SubjectLoanApplication, "loanType"))
	assert.True(t, ability.CanField(domain.ActionUpdate, domain.SubjectLoanApplication, "amountRequested"))
	assert.False(t, ability.CanField(domain.ActionUpdate, domain.SubjectLoanApplication, "status"))
}

func TestDefineAbilityFor_BankAdminDenyOverridesManageAll(t *testing.T) {
	svc := services.NewAbilityService(new(MockUserReader), new(MockMembershipManager))

	ability := svc.DefineAbilityFor(authUserWithRole(domain.RoleBankAdmin))

	assert.True(t, ability.Can(domain.ActionView, domain.SubjectLoanApplication))
	assert.True(t, ability.Can(domain.ActionAssign, domain.SubjectLoanApplication))
	assert.True(t, ability.Can(domain.ActionManage, domain.SubjectBankMembership))

	// The inverted rules win over manage-all.
	assert.True(t, ability.Cannot(domain.ActionApprove, domain.SubjectLoanApplication))
	assert.True(t, ability.Cannot(domain.ActionReject, domain.SubjectLoanApplication))
}

func TestDefineAbilityFor_SaasAdminManagesEverything(t *testing.T) {
	svc := services.NewAbilityService(new(MockUserReader), new(MockMembershipManager))

	ability := svc.DefineAbilityFor(authUserWithRole(domain.RoleSaasAdmin))

	assert.True(t, ability.Can(domain.ActionManage, domain.SubjectAll))
	assert.True(t, ability.Can(domain.ActionCreate, domain.SubjectBank))
	assert.True(t, ability.Can(domain.ActionApprove, domain.SubjectLoanApplication))
	assert.True(t, ability.Can(domain.ActionView, domain.SubjectTimeline))
}

func TestDefineAbilityFor_ReviewRoles(t *testing.T) {
	svc := services.NewAbilityService(new(MockUserReader), new(MockMembershipManager))

	for _, role := range []domain.UserRole{domain.RoleCEO, domain.RoleLoanCommittee, domain.RoleBoard} {
		ability := svc.DefineAbilityFor(authUserWithRole(role))
		assert.True(t, ability.Can(domain.ActionApprove, domain.SubjectLoanApplication), "role %s", role)
		assert.True(t, ability.Can(domain.ActionReject, domain.SubjectLoanApplication), "role %s", role)
		assert.True(t, ability.Can(domain.ActionView, domain.SubjectVerification), "role %s", role)
		assert.True(t, ability.Cannot(domain.ActionUpdate, domain.SubjectApplicant), "role %s", role)
	}
}

func TestResolveAuthUser_Success(t *testing.T) {
	userRepo := new(MockUserReader)
	bankRepo := new(MockMembershipManager)
	svc := services.NewAbilityService(userRepo, bankRepo)
	ctx := context.Background()

	userRepo.On("FindUserByID", ctx, "user-1").Return(&domain.UserProfile{
		UserID:    "user-1",
		FirstName: "Asha",
		LastName:  "Patel",
	}, nil)
	bankRepo.On("FindBankMemberships", ctx, "user-1").Return([]domain.BankMembership{
		{UserID: "user-1", BankID: "bank-1", Role: domain.RoleClerk, JoinedAt: time.Now()},
		{UserID: "user-1", BankID: "bank-2", Role: domain.RoleLoanOfficer, JoinedAt: time.Now()},
	}, nil)

	authUser, err := svc.ResolveAuthUser(ctx, "user-1", "bank-1")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleClerk, authUser.CurrentRole)
	assert.Equal(t, "bank-1", authUser.BankID)
	assert.Equal(t, "Asha Patel", authUser.Name)
}

func TestResolveAuthUser_NoMembershipInScope(t *testing.T) {
	userRepo := new(MockUserReader)
	bankRepo := new(MockMembershipManager)
	svc := services.NewAbilityService(userRepo, bankRepo)
	ctx := context.Background()

	userRepo.On("FindUserByID", ctx, "user-1").Return(&domain.UserProfile{UserID: "user-1", FirstName: "Asha"}, nil)
	bankRepo.On("FindBankMemberships", ctx, "user-1").Return([]domain.BankMembership{
		{UserID: "user-1", BankID: "bank-2", Role: domain.RoleClerk},
	}, nil)

	authUser, err := svc.ResolveAuthUser(ctx, "user-1", "bank-1")

	assert.Nil(t, authUser)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestResolveAuthUser_UnknownUser(t *testing.T) {
	userRepo := new(MockUserReader)
	bankRepo := new(MockMembershipManager)
	svc := services.NewAbilityService(userRepo, bankRepo)
	ctx := context.Background()

	userRepo.On("FindUserByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	authUser, err := svc.ResolveAuthUser(ctx, "ghost", "bank-1")

	assert.Nil(t, authUser)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestResolveAuthUser_SaasAdminWithoutBankScope(t *testing.T) {
	userRepo := new(MockUserReader)
	bankRepo := new(MockMembershipManager)
	svc := services.NewAbilityService(userRepo, bankRepo)
	ctx := context.Background()

	userRepo.On("FindUserByID", ctx, "ops-1").Return(&domain.UserProfile{UserID: "ops-1", FirstName: "Ops"}, nil)
	bankRepo.On("FindBankMemberships", ctx, "ops-1").Return([]domain.BankMembership{
		{UserID: "ops-1", BankID: "", Role: domain.RoleSaasAdmin},
	}, nil)

	authUser, err := svc.ResolveAuthUser(ctx, "ops-1", "")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleSaasAdmin, authUser.CurrentRole)
}
