package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/dto"
	"github.com/nikitph/los-backend/internal/middleware"
	"github.com/nikitph/los-backend/internal/utils"
)

// ErrInvalidCredentials is returned when email/password authentication fails.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)

// UserService manages user profiles and local credentials. It also materializes
// approved bank-user-creation requests for the pending-action workflow.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
	bankRepo portsrepo.BankMembershipManager
}

// NewUserService creates a new UserService.
func NewUserService(ur portsrepo.UserRepositoryFacade, br portsrepo.BankMembershipManager) *UserService {
	return &UserService{
		userRepo: ur,
		bankRepo: br,
	}
}

var (
	_ portssvc.UserSvcFacade            = (*UserService)(nil)
	_ portssvc.UserCreationMaterializer = (*UserService)(nil)
)

func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.UserProfile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var passwordHash string
	if req.Password != "" {
		var err error
		passwordHash, err = utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	now := time.Now().UTC()
	user := domain.UserProfile{
		UserID:       uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if creatorUserID == "" {
		user.CreatedBy = user.UserID
		user.LastUpdatedBy = user.UserID
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("User created", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.UserProfile, error) {
	return s.userRepo.FindUsers(ctx, limit, offset)
}

func (s *UserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.UserProfile, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = updaterUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	return s.userRepo.MarkUserDeleted(ctx, userID, time.Now().UTC(), deleterUserID)
}

// AuthenticateUser verifies email/password credentials. The not-found and
// wrong-password cases are indistinguishable to the caller.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// FindOrCreateFromGoogle resolves the profile for a validated Google identity.
func (s *UserService) FindOrCreateFromGoogle(ctx context.Context, email, firstName, lastName string) (*domain.UserProfile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	now := time.Now().UTC()
	newUser := domain.UserProfile{
		UserID:       uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		AuthProvider: "google",
	}
	newUser.CreatedAt = now
	newUser.CreatedBy = newUser.UserID
	newUser.LastUpdatedAt = now
	newUser.LastUpdatedBy = newUser.UserID

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create user from google identity: %w", err)
	}
	logger.Info("User created from google sign-in", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

func (s *UserService) SetRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiry time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, expiry)
}

func (s *UserService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

// MaterializeBankUser creates the user and membership described by an approved
// REQUEST_BANK_USER_CREATION payload. Called by the pending-action workflow.
func (s *UserService) MaterializeBankUser(ctx context.Context, bankID string, payload json.RawMessage, approverID string) (string, error) {
	var p dto.BankUserCreationPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return "", fmt.Errorf("%w: malformed user creation payload", apperrors.ErrValidation)
	}
	if p.Email == "" || p.FirstName == "" || p.Role == "" {
		return "", fmt.Errorf("%w: firstName, email and role are required", apperrors.ErrValidation)
	}

	user, err := s.CreateUser(ctx, dto.CreateUserRequest{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
	}, approverID)
	if err != nil {
		return "", err
	}

	membership := domain.BankMembership{
		UserID:   user.UserID,
		BankID:   bankID,
		Role:     domain.UserRole(p.Role),
		JoinedAt: time.Now().UTC(),
	}
	if err := s.bankRepo.AddUserToBank(ctx, membership); err != nil {
		return "", fmt.Errorf("failed to add created user to bank: %w", err)
	}

	return user.UserID, nil
}
