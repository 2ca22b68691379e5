package services

import (
	"context"
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
)

// BankService manages tenants and memberships.
type BankService struct {
	bankRepo   portsrepo.BankRepositoryFacade
	abilitySvc portssvc.AbilitySvcFacade
}

// NewBankService creates a new BankService.
func NewBankService(br portsrepo.BankRepositoryFacade, as portssvc.AbilitySvcFacade) *BankService {
	return &BankService{
		bankRepo:   br,
		abilitySvc: as,
	}
}

var _ portssvc.BankSvcFacade = (*BankService)(nil)

// CreateBank creates a new bank tenant and makes the creator its admin.
func (s *BankService) CreateBank(ctx context.Context, actor *domain.AuthUser, req dto.CreateBankRequest) (*domain.Bank, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionCreate, domain.SubjectBank) {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now().UTC()
	bank := domain.Bank{
		BankID:           uuid.NewString(),
		Name:             req.Name,
		OfficialEmail:    req.OfficialEmail,
		ContactNumber:    req.ContactNumber,
		OnboardingStatus: domain.BankOnboardingPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.bankRepo.SaveBank(ctx, bank); err != nil {
		logger.Error("Failed to save bank", slog.String("error", err.Error()))
		return nil, err
	}

	membership := domain.BankMembership{
		UserID:   actor.UserID,
		BankID:   bank.BankID,
		Role:     domain.RoleBankAdmin,
		JoinedAt: now,
	}
	if err := s.bankRepo.AddUserToBank(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to add creator as bank admin: %w", err)
	}

	logger.Info("Bank created", slog.String("bank_id", bank.BankID))
	return &bank, nil
}

func (s *BankService) GetBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	return s.bankRepo.FindBankByID(ctx, bankID)
}

func (s *BankService) ListBanks(ctx context.Context, actor *domain.AuthUser, limit, offset int) ([]domain.Bank, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionView, domain.SubjectBank) {
		return nil, apperrors.ErrForbidden
	}
	return s.bankRepo.ListBanks(ctx, limit, offset)
}

// AddUserToBank grants a role in a bank. Bank admins manage their own bank's
// memberships; only the platform operator can touch other banks.
func (s *BankService) AddUserToBank(ctx context.Context, actor *domain.AuthUser, targetUserID, bankID string, role domain.UserRole) error {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionCreate, domain.SubjectBankMembership) {
		return apperrors.ErrForbidden
	}
	if actor.CurrentRole != domain.RoleSaasAdmin && actor.BankID != bankID {
		return apperrors.ErrForbidden
	}
	if !domain.ValidUserRole(role) {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	membership := domain.BankMembership{
		UserID:   targetUserID,
		BankID:   bankID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
	}
	return s.bankRepo.AddUserToBank(ctx, membership)
}
