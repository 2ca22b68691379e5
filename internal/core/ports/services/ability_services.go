package services

import (
	"context"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// AbilitySvcFacade computes capability sets. Derivation is pure: the same user
// descriptor always yields the same ability, and nothing is persisted.
type AbilitySvcFacade interface {
	// DefineAbilityFor builds the capability set for a session principal.
	// A nil user yields an ability that grants nothing.
	DefineAbilityFor(user *domain.AuthUser) *domain.Ability

	// ResolveAuthUser loads a user's bank memberships and builds the session
	// principal the ability engine works from. bankID selects the tenant scope;
	// empty bankID is only valid for platform operators.
	ResolveAuthUser(ctx context.Context, userID, bankID string) (*domain.AuthUser, error)
}
