package services

import (
	"context"
	"encoding/json"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// UserCreationMaterializer is the downstream collaborator the pending-action
// workflow calls when a REQUEST_BANK_USER_CREATION is approved. The default
// wiring points at the user service.
type UserCreationMaterializer interface {
	// MaterializeBankUser creates the requested user and membership, returning
	// the new user's ID.
	MaterializeBankUser(ctx context.Context, bankID string, payload json.RawMessage, approverID string) (string, error)
}

// PendingActionSvcFacade is the request/approve/reject/cancel workflow for
// bank-scoped administrative actions.
type PendingActionSvcFacade interface {
	// RequestAction creates a PENDING record and logs a timeline event.
	RequestAction(ctx context.Context, actor *domain.AuthUser, bankID string, actionType domain.PendingActionType, payload json.RawMessage) (*domain.PendingAction, error)

	// GetAction retrieves a single pending action.
	GetAction(ctx context.Context, actor *domain.AuthUser, pendingActionID string) (*domain.PendingAction, error)

	// ListActions retrieves a bank's pending actions, optionally by status.
	ListActions(ctx context.Context, actor *domain.AuthUser, bankID string, status *domain.PendingActionStatus, limit int) ([]domain.PendingAction, error)

	// Approve finalizes a PENDING action as APPROVED and triggers the downstream
	// effect for its action type.
	Approve(ctx context.Context, actor *domain.AuthUser, pendingActionID string) (*domain.PendingAction, error)

	// Reject finalizes a PENDING action as REJECTED. Remarks are mandatory and
	// validated before any write.
	Reject(ctx context.Context, actor *domain.AuthUser, pendingActionID string, remarks string) (*domain.PendingAction, error)

	// Cancel finalizes a PENDING action as CANCELLED. Only the original requester
	// or a holder of the management capability may cancel.
	Cancel(ctx context.Context, actor *domain.AuthUser, pendingActionID string) (*domain.PendingAction, error)
}
