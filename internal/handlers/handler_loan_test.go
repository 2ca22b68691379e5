package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	coresvc "github.com/nikitph/los-backend/internal/core/services"
	"github.com/nikitph/los-backend/internal/dto"
	"github.com/nikitph/los-backend/internal/handlers"
	"github.com/nikitph/los-backend/internal/platform/config"
)

// --- Mock LoanService ---
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) CreateApplication(ctx context.Context, actor *domain.AuthUser, req dto.CreateLoanApplicationRequest) (*domain.LoanApplication, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) GetApplication(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, actor, loanApplicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) ListApplications(ctx context.Context, actor *domain.AuthUser, params dto.ListLoanApplicationsParams) (*dto.ListLoanApplicationsResponse, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLoanApplicationsResponse), args.Error(1)
}
func (m *MockLoanService) UpdateDraft(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, req dto.UpdateLoanApplicationRequest) (*domain.LoanApplication, error) {
	args := m.Called(ctx, actor, loanApplicationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) SubmitApplication(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, actor, loanApplicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) AssignLoanOfficer(ctx context.Context, actor *domain.AuthUser, loanApplicationID, loanOfficerID string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, actor, loanApplicationID, loanOfficerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) ReviewByLoanOfficer(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, pass bool, remarks string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, actor, loanApplicationID, pass, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) AssignInspector(ctx context.Context, actor *domain.AuthUser, loanApplicationID, inspectorID string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, actor, loanApplicationID, inspectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) StartVerification(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, actor, loanApplicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) CompleteVerification(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, actor, loanApplicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) MoveToReview(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, actor, loanApplicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) Approve(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, remarks string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, actor, loanApplicationID, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) Reject(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, remarks string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, actor, loanApplicationID, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) Withdraw(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, remarks string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, actor, loanApplicationID, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) UpdateStatusWithLog(ctx context.Context, loanApplicationID string, newStatus domain.LoanStatus, actor *domain.AuthUser, eventType domain.TimelineEventType, remarks string) (*domain.LoanApplication, error) {
	args := m.Called(ctx, loanApplicationID, newStatus, actor, eventType, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}
func (m *MockLoanService) AddGuarantor(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, req dto.CreateGuarantorRequest) (*domain.Guarantor, error) {
	args := m.Called(ctx, actor, loanApplicationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guarantor), args.Error(1)
}
func (m *MockLoanService) ListGuarantors(ctx context.Context, actor *domain.AuthUser, loanApplicationID string) ([]domain.Guarantor, error) {
	args := m.Called(ctx, actor, loanApplicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Guarantor), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LoanSvcFacade = (*MockLoanService)(nil)

// --- Mock repositories backing the real ability service ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindUserByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockUserReader) FindUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockUserReader) FindUsers(ctx context.Context, limit int, offset int) ([]domain.UserProfile, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}

var _ portsrepo.UserReader = (*MockUserReader)(nil)

type MockBankMembershipManager struct {
	mock.Mock
}

func (m *MockBankMembershipManager) AddUserToBank(ctx context.Context, membership domain.BankMembership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}
func (m *MockBankMembershipManager) FindBankMemberships(ctx context.Context, userID string) ([]domain.BankMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankMembership), args.Error(1)
}
func (m *MockBankMembershipManager) FindBankMembershipRole(ctx context.Context, userID, bankID string) (*domain.BankMembership, error) {
	args := m.Called(ctx, userID, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankMembership), args.Error(1)
}

var _ portsrepo.BankMembershipManager = (*MockBankMembershipManager)(nil)

// --- Test Suite ---
//
// Routes are registered through handlers.RegisterRoutes with the real auth
// middleware and the real ability service, so these tests exercise the whole
// request path: token parsing, principal resolution from the membership repo,
// the ability gate and finally the handler.
type LoanHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockLoanService *MockLoanService
	mockUserReader  *MockUserReader
	mockBankRepo    *MockBankMembershipManager
	jwtSecret       string
}

func (suite *LoanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockLoanService = new(MockLoanService)
	suite.mockUserReader = new(MockUserReader)
	suite.mockBankRepo = new(MockBankMembershipManager)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skips the swagger routes
	}
	container := &portssvc.ServiceContainer{
		Loan:    suite.mockLoanService,
		Ability: coresvc.NewAbilityService(suite.mockUserReader, suite.mockBankRepo),
	}

	handlers.RegisterCustomValidators()

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// generateTestToken creates a dummy JWT for testing.
func (suite *LoanHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "los-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// seedPrincipal wires the repo mocks so the ability service resolves userID
// as holding the given role in bankID.
func (suite *LoanHandlerTestSuite) seedPrincipal(userID, bankID string, role domain.UserRole) {
	suite.mockUserReader.On("FindUserByID", mock.Anything, userID).
		Return(&domain.UserProfile{UserID: userID, FirstName: "Test", LastName: "User"}, nil)
	suite.mockBankRepo.On("FindBankMemberships", mock.Anything, userID).
		Return([]domain.BankMembership{{UserID: userID, BankID: bankID, Role: role}}, nil)
}

// newAuthedRequest builds a request carrying a valid bearer token and the
// bank scope header.
func (suite *LoanHandlerTestSuite) newAuthedRequest(method, url, body, userID, bankID string) *http.Request {
	req, _ := http.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("X-Bank-ID", bankID)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// --- Test Cases ---

func (suite *LoanHandlerTestSuite) TestGetApplication_Success() {
	userID := uuid.NewString()
	bankID := uuid.NewString()
	loanID := uuid.NewString()
	suite.seedPrincipal(userID, bankID, domain.RoleClerk)

	expected := &domain.LoanApplication{
		LoanApplicationID: loanID,
		ApplicantID:       uuid.NewString(),
		BankID:            bankID,
		LoanType:          domain.LoanTypePersonal,
		AmountRequested:   decimal.NewFromInt(250000),
		Status:            domain.LoanStatusDraft,
	}
	suite.mockLoanService.On("GetApplication",
		mock.Anything,
		mock.MatchedBy(func(u *domain.AuthUser) bool {
			return u.UserID == userID && u.BankID == bankID && u.CurrentRole == domain.RoleClerk
		}),
		loanID,
	).Return(expected, nil).Once()

	w := httptest.NewRecorder()
	req := suite.newAuthedRequest(http.MethodGet, "/api/v1/loans/"+loanID, "", userID, bankID)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoanApplicationResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(loanID, resp.LoanApplicationID)
	suite.Equal(string(domain.LoanStatusDraft), resp.Status)
	suite.True(resp.AmountRequested.Equal(decimal.NewFromInt(250000)))

	suite.mockLoanService.AssertExpectations(suite.T())
}

func (suite *LoanHandlerTestSuite) TestGetApplication_MissingToken() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/loans/"+uuid.NewString(), nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLoanService.AssertNotCalled(suite.T(), "GetApplication")
}

func (suite *LoanHandlerTestSuite) TestGetApplication_NoMembershipInBank() {
	userID := uuid.NewString()
	suite.mockUserReader.On("FindUserByID", mock.Anything, userID).
		Return(&domain.UserProfile{UserID: userID, FirstName: "Test"}, nil)
	suite.mockBankRepo.On("FindBankMemberships", mock.Anything, userID).
		Return([]domain.BankMembership{}, nil)

	w := httptest.NewRecorder()
	req := suite.newAuthedRequest(http.MethodGet, "/api/v1/loans/"+uuid.NewString(), "", userID, uuid.NewString())
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLoanService.AssertNotCalled(suite.T(), "GetApplication")
}

func (suite *LoanHandlerTestSuite) TestGetApplication_NotFound() {
	userID := uuid.NewString()
	bankID := uuid.NewString()
	loanID := uuid.NewString()
	suite.seedPrincipal(userID, bankID, domain.RoleClerk)

	suite.mockLoanService.On("GetApplication", mock.Anything, mock.AnythingOfType("*domain.AuthUser"), loanID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req := suite.newAuthedRequest(http.MethodGet, "/api/v1/loans/"+loanID, "", userID, bankID)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)

	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Resource not found", resp["error"])
	suite.mockLoanService.AssertExpectations(suite.T())
}

func (suite *LoanHandlerTestSuite) TestCreateApplication_Success() {
	userID := uuid.NewString()
	bankID := uuid.NewString()
	applicantID := uuid.NewString()
	suite.seedPrincipal(userID, bankID, domain.RoleClerk)

	created := &domain.LoanApplication{
		LoanApplicationID: uuid.NewString(),
		ApplicantID:       applicantID,
		BankID:            bankID,
		LoanType:          domain.LoanTypePersonal,
		AmountRequested:   decimal.NewFromInt(100000),
		Status:            domain.LoanStatusDraft,
	}
	suite.mockLoanService.On("CreateApplication",
		mock.Anything,
		mock.AnythingOfType("*domain.AuthUser"),
		mock.MatchedBy(func(r dto.CreateLoanApplicationRequest) bool {
			return r.ApplicantID == applicantID && r.LoanType == "PERSONAL"
		}),
	).Return(created, nil).Once()

	body := `{"applicantID":"` + applicantID + `","loanType":"PERSONAL","amountRequested":100000}`
	w := httptest.NewRecorder()
	req := suite.newAuthedRequest(http.MethodPost, "/api/v1/loans", body, userID, bankID)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.LoanApplicationResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.LoanApplicationID, resp.LoanApplicationID)
	suite.Equal(string(domain.LoanStatusDraft), resp.Status)
	suite.mockLoanService.AssertExpectations(suite.T())
}

func (suite *LoanHandlerTestSuite) TestCreateApplication_ForbiddenForInspector() {
	userID := uuid.NewString()
	bankID := uuid.NewString()
	suite.seedPrincipal(userID, bankID, domain.RoleInspector)

	body := `{"applicantID":"` + uuid.NewString() + `","loanType":"PERSONAL","amountRequested":100000}`
	w := httptest.NewRecorder()
	req := suite.newAuthedRequest(http.MethodPost, "/api/v1/loans", body, userID, bankID)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLoanService.AssertNotCalled(suite.T(), "CreateApplication")
}

func (suite *LoanHandlerTestSuite) TestCreateApplication_MalformedBody() {
	userID := uuid.NewString()
	bankID := uuid.NewString()
	suite.seedPrincipal(userID, bankID, domain.RoleClerk)

	w := httptest.NewRecorder()
	req := suite.newAuthedRequest(http.MethodPost, "/api/v1/loans", `{"applicantID":`, userID, bankID)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLoanService.AssertNotCalled(suite.T(), "CreateApplication")
}

func (suite *LoanHandlerTestSuite) TestCreateApplication_FieldErrorsInBody() {
	userID := uuid.NewString()
	bankID := uuid.NewString()
	applicantID := uuid.NewString()
	suite.seedPrincipal(userID, bankID, domain.RoleClerk)

	suite.mockLoanService.On("CreateApplication",
		mock.Anything,
		mock.AnythingOfType("*domain.AuthUser"),
		mock.AnythingOfType("dto.CreateLoanApplicationRequest"),
	).Return(nil, apperrors.NewValidationError(map[string]string{
		"amountRequested": "must not be negative",
	})).Once()

	body := `{"applicantID":"` + applicantID + `","loanType":"PERSONAL","amountRequested":-100}`
	w := httptest.NewRecorder()
	req := suite.newAuthedRequest(http.MethodPost, "/api/v1/loans", body, userID, bankID)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Fields, "amountRequested")
	suite.mockLoanService.AssertExpectations(suite.T())
}

func (suite *LoanHandlerTestSuite) TestApprove_AllowedForCEO() {
	userID := uuid.NewString()
	bankID := uuid.NewString()
	loanID := uuid.NewString()
	suite.seedPrincipal(userID, bankID, domain.RoleCEO)

	approved := &domain.LoanApplication{
		LoanApplicationID: loanID,
		BankID:            bankID,
		LoanType:          domain.LoanTypePersonal,
		AmountRequested:   decimal.NewFromInt(100000),
		Status:            domain.LoanStatusApproved,
	}
	suite.mockLoanService.On("Approve",
		mock.Anything,
		mock.MatchedBy(func(u *domain.AuthUser) bool { return u.CurrentRole == domain.RoleCEO }),
		loanID,
		"",
	).Return(approved, nil).Once()

	w := httptest.NewRecorder()
	req := suite.newAuthedRequest(http.MethodPost, "/api/v1/loans/"+loanID+"/approve", "", userID, bankID)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoanApplicationResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.LoanStatusApproved), resp.Status)
	suite.mockLoanService.AssertExpectations(suite.T())
}

// Bank admins manage everything except the final credit decision; the gate
// has to deny them even though their role is otherwise the widest.
func (suite *LoanHandlerTestSuite) TestApprove_DeniedForBankAdmin() {
	userID := uuid.NewString()
	bankID := uuid.NewString()
	suite.seedPrincipal(userID, bankID, domain.RoleBankAdmin)

	w := httptest.NewRecorder()
	req := suite.newAuthedRequest(http.MethodPost, "/api/v1/loans/"+uuid.NewString()+"/approve", "", userID, bankID)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLoanService.AssertNotCalled(suite.T(), "Approve")
}

func (suite *LoanHandlerTestSuite) TestSubmit_InvalidTransition() {
	userID := uuid.NewString()
	bankID := uuid.NewString()
	loanID := uuid.NewString()
	suite.seedPrincipal(userID, bankID, domain.RoleApplicant)

	suite.mockLoanService.On("SubmitApplication", mock.Anything, mock.AnythingOfType("*domain.AuthUser"), loanID).
		Return(nil, apperrors.ErrInvalidState).Once()

	w := httptest.NewRecorder()
	req := suite.newAuthedRequest(http.MethodPost, "/api/v1/loans/"+loanID+"/submit", "", userID, bankID)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockLoanService.AssertExpectations(suite.T())
}

func (suite *LoanHandlerTestSuite) TestWithdraw_AllowedForApplicant() {
	userID := uuid.NewString()
	bankID := uuid.NewString()
	loanID := uuid.NewString()
	suite.seedPrincipal(userID, bankID, domain.RoleApplicant)

	withdrawn := &domain.LoanApplication{
		LoanApplicationID: loanID,
		BankID:            bankID,
		LoanType:          domain.LoanTypePersonal,
		AmountRequested:   decimal.NewFromInt(100000),
		Status:            domain.LoanStatusRejectedByApplicant,
	}
	suite.mockLoanService.On("Withdraw", mock.Anything, mock.AnythingOfType("*domain.AuthUser"), loanID, "changed my mind").
		Return(withdrawn, nil).Once()

	w := httptest.NewRecorder()
	req := suite.newAuthedRequest(http.MethodPost, "/api/v1/loans/"+loanID+"/withdraw", `{"remarks":"changed my mind"}`, userID, bankID)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoanApplicationResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.LoanStatusRejectedByApplicant), resp.Status)
	suite.mockLoanService.AssertExpectations(suite.T())
}

func (suite *LoanHandlerTestSuite) TestAssignOfficer_DeniedForLoanOfficer() {
	userID := uuid.NewString()
	bankID := uuid.NewString()
	suite.seedPrincipal(userID, bankID, domain.RoleLoanOfficer)

	body := `{"assigneeID":"` + uuid.NewString() + `"}`
	w := httptest.NewRecorder()
	req := suite.newAuthedRequest(http.MethodPost, "/api/v1/loans/"+uuid.NewString()+"/assign-officer", body, userID, bankID)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLoanService.AssertNotCalled(suite.T(), "AssignLoanOfficer")
}

// --- Run Test Suite ---
func TestLoanHandler(t *testing.T) {
	suite.Run(t, new(LoanHandlerTestSuite))
}
