package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/middleware"
)

// AbilityService derives capability sets from roles. Rule derivation is pure
// and in-memory; only ResolveAuthUser touches storage.
type AbilityService struct {
	userRepo portsrepo.UserReader
	bankRepo portsrepo.BankMembershipManager
}

// NewAbilityService creates a new AbilityService.
func NewAbilityService(ur portsrepo.UserReader, br portsrepo.BankMembershipManager) portssvc.AbilitySvcFacade {
	return &AbilityService{
		userRepo: ur,
		bankRepo: br,
	}
}

var _ portssvc.AbilitySvcFacade = (*AbilityService)(nil)

// rulesForRole is the single place role capabilities are defined. One switch
// over the role enum; adding a role without a rule set here leaves it with no
// capabilities at all, which is the safe default.
func rulesForRole(role domain.UserRole) []domain.AbilityRule {
	switch role {
	case domain.RoleApplicant:
		return []domain.AbilityRule{
			{Action: domain.ActionView, Subject: domain.SubjectApplicant},
			{Action: domain.ActionUpdate, Subject: domain.SubjectApplicant},
			{Action: domain.ActionView, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionCreate, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionUpdate, Subject: domain.SubjectLoanApplication, Fields: []string{"loanType", "amountRequested"}},
			{Action: domain.ActionSubmit, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionCancel, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionView, Subject: domain.SubjectDocument},
			{Action: domain.ActionCreate, Subject: domain.SubjectDocument},
			{Action: domain.ActionView, Subject: domain.SubjectTimeline},
		}
	case domain.RoleClerk:
		return []domain.AbilityRule{
			{Action: domain.ActionView, Subject: domain.SubjectApplicant},
			{Action: domain.ActionCreate, Subject: domain.SubjectApplicant},
			{Action: domain.ActionUpdate, Subject: domain.SubjectApplicant},
			{Action: domain.ActionView, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionCreate, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionUpdate, Subject: domain.SubjectLoanApplication, Fields: []string{"loanType", "amountRequested"}},
			{Action: domain.ActionSubmit, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionManage, Subject: domain.SubjectIncome},
			{Action: domain.ActionManage, Subject: domain.SubjectLoanObligation},
			{Action: domain.ActionManage, Subject: domain.SubjectDocument},
			{Action: domain.ActionView, Subject: domain.SubjectTimeline},
			{Action: domain.ActionCreate, Subject: domain.SubjectPendingAction},
			{Action: domain.ActionView, Subject: domain.SubjectPendingAction},
			{Action: domain.ActionCancel, Subject: domain.SubjectPendingAction},
		}
	case domain.RoleInspector:
		return []domain.AbilityRule{
			{Action: domain.ActionView, Subject: domain.SubjectApplicant},
			{Action: domain.ActionView, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionVerify, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionManage, Subject: domain.SubjectVerification},
			{Action: domain.ActionView, Subject: domain.SubjectDocument},
			{Action: domain.ActionCreate, Subject: domain.SubjectDocument},
			{Action: domain.ActionView, Subject: domain.SubjectTimeline},
		}
	case domain.RoleLoanOfficer:
		return []domain.AbilityRule{
			{Action: domain.ActionView, Subject: domain.SubjectApplicant},
			{Action: domain.ActionView, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionReview, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionView, Subject: domain.SubjectVerification},
			{Action: domain.ActionView, Subject: domain.SubjectIncome},
			{Action: domain.ActionView, Subject: domain.SubjectLoanObligation},
			{Action: domain.ActionManage, Subject: domain.SubjectDocument},
			{Action: domain.ActionView, Subject: domain.SubjectTimeline},
		}
	case domain.RoleCEO, domain.RoleLoanCommittee, domain.RoleBoard:
		return []domain.AbilityRule{
			{Action: domain.ActionView, Subject: domain.SubjectAll},
			{Action: domain.ActionReview, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionApprove, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionReject, Subject: domain.SubjectLoanApplication},
			{Action: domain.ActionApprove, Subject: domain.SubjectPendingAction},
			{Action: domain.ActionReject, Subject: domain.SubjectPendingAction},
		}
	case domain.RoleBankAdmin:
		return []domain.AbilityRule{
			{Action: domain.ActionManage, Subject: domain.SubjectAll},
			// Final loan dispositions stay with the review roles.
			{Action: domain.ActionApprove, Subject: domain.SubjectLoanApplication, Inverted: true},
			{Action: domain.ActionReject, Subject: domain.SubjectLoanApplication, Inverted: true},
		}
	case domain.RoleSaasAdmin:
		return []domain.AbilityRule{
			{Action: domain.ActionManage, Subject: domain.SubjectAll},
		}
	}
	return nil
}

// DefineAbilityFor builds the capability set for a session principal. A nil
// user, or a role with no rule table, yields an ability that grants nothing.
func (s *AbilityService) DefineAbilityFor(user *domain.AuthUser) *domain.Ability {
	if user == nil {
		return domain.NewAbility()
	}
	return domain.NewAbility(rulesForRole(user.CurrentRole)...)
}

// ResolveAuthUser loads the user and their membership in the requested bank and
// assembles the session principal. An empty bankID is only valid for platform
// operators, whose role is not tied to a tenant.
func (s *AbilityService) ResolveAuthUser(ctx context.Context, userID, bankID string) (*domain.AuthUser, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user %s not found: %w", userID, apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}

	memberships, err := s.bankRepo.FindBankMemberships(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load memberships for user %s: %w", userID, err)
	}

	roles := make([]domain.UserRole, 0, len(memberships))
	var currentRole domain.UserRole
	for _, m := range memberships {
		if m.Role == domain.RoleSaasAdmin {
			roles = append(roles, m.Role)
			if bankID == "" {
				currentRole = domain.RoleSaasAdmin
			}
			continue
		}
		if m.BankID == bankID {
			roles = append(roles, m.Role)
			currentRole = m.Role
		}
	}

	if currentRole == "" {
		logger.Warn("No membership for requested scope", slog.String("user_id", userID), slog.String("bank_id", bankID))
		return nil, fmt.Errorf("no membership in requested scope: %w", apperrors.ErrForbidden)
	}

	return &domain.AuthUser{
		UserID:      userID,
		BankID:      bankID,
		Name:        user.FullName(),
		Roles:       roles,
		CurrentRole: currentRole,
	}, nil
}
