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
	"github.com/nikitph/los-backend/internal/core/services"
	"github.com/nikitph/los-backend/internal/dto"
	"github.com/nikitph/los-backend/internal/utils"
)

// --- Mock user repository (reader + writer) ---
type MockUserRepository struct {
	MockUserReader
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.UserProfile) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.UserProfile) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	args := m.Called(ctx, userID, deletedAt, deleterUserID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	bankRepo *MockMembershipManager
	service  *services.UserService
	ctx      context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.bankRepo = new(MockMembershipManager)
	s.service = services.NewUserService(s.userRepo, s.bankRepo)
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	s.userRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.UserProfile) bool {
		return u.Email == "asha@example.com" &&
			u.PasswordHash != "" &&
			u.PasswordHash != "hunter2secret"
	})).Return(nil)

	user, err := s.service.CreateUser(s.ctx, dto.CreateUserRequest{
		FirstName: "Asha",
		Email:     "asha@example.com",
		Password:  "hunter2secret",
	}, "admin-1")

	s.Require().NoError(err)
	s.NotEmpty(user.UserID)
	s.Equal("admin-1", user.CreatedBy)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	hash, err := utils.HashPassword("correct-password")
	s.Require().NoError(err)
	s.userRepo.On("FindUserByEmail", s.ctx, "asha@example.com").Return(&domain.UserProfile{
		UserID:       "user-1",
		Email:        "asha@example.com",
		PasswordHash: hash,
	}, nil)

	user, err := s.service.AuthenticateUser(s.ctx, "asha@example.com", "wrong-password")

	s.Nil(user)
	s.ErrorIs(err, services.ErrInvalidCredentials)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailIndistinguishable() {
	s.userRepo.On("FindUserByEmail", s.ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound)

	user, err := s.service.AuthenticateUser(s.ctx, "ghost@example.com", "whatever")

	s.Nil(user)
	s.ErrorIs(err, services.ErrInvalidCredentials)
}

func (s *UserServiceTestSuite) TestFindOrCreateFromGoogle_ExistingUser() {
	existing := &domain.UserProfile{UserID: "user-1", Email: "asha@example.com"}
	s.userRepo.On("FindUserByEmail", s.ctx, "asha@example.com").Return(existing, nil)

	user, err := s.service.FindOrCreateFromGoogle(s.ctx, "asha@example.com", "Asha", "Patel")

	s.Require().NoError(err)
	s.Equal("user-1", user.UserID)
	s.userRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestFindOrCreateFromGoogle_NewUser() {
	s.userRepo.On("FindUserByEmail", s.ctx, "new@example.com").Return(nil, apperrors.ErrNotFound)
	s.userRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.UserProfile) bool {
		return u.Email == "new@example.com" && u.AuthProvider == "google" && u.PasswordHash == ""
	})).Return(nil)

	user, err := s.service.FindOrCreateFromGoogle(s.ctx, "new@example.com", "New", "User")

	s.Require().NoError(err)
	s.Equal("google", user.AuthProvider)
}

func (s *UserServiceTestSuite) TestMaterializeBankUser_CreatesUserAndMembership() {
	payload := json.RawMessage(`{"firstName":"Ravi","lastName":"Shah","email":"ravi@example.com","role":"CLERK"}`)
	s.userRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.UserProfile) bool {
		return u.Email == "ravi@example.com" && u.FirstName == "Ravi"
	})).Return(nil)
	s.bankRepo.On("AddUserToBank", s.ctx, mock.MatchedBy(func(m domain.BankMembership) bool {
		return m.BankID == "bank-1" && m.Role == domain.RoleClerk
	})).Return(nil)

	userID, err := s.service.MaterializeBankUser(s.ctx, "bank-1", payload, "ceo-1")

	s.Require().NoError(err)
	s.NotEmpty(userID)
	s.bankRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestMaterializeBankUser_RejectsIncompletePayload() {
	payload := json.RawMessage(`{"firstName":"Ravi"}`)

	userID, err := s.service.MaterializeBankUser(s.ctx, "bank-1", payload, "ceo-1")

	s.Empty(userID)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.userRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
