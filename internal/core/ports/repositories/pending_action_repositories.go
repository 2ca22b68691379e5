package repositories

import (
	"context"
	"time"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// PendingActionReader defines read operations for pending actions.
type PendingActionReader interface {
	// FindPendingActionByID retrieves a specific pending action.
	FindPendingActionByID(ctx context.Context, pendingActionID string) (*domain.PendingAction, error)

	// ListPendingActionsByBank retrieves a bank's pending actions, optionally
	// filtered by status, newest first.
	ListPendingActionsByBank(ctx context.Context, bankID string, status *domain.PendingActionStatus, limit int) ([]domain.PendingAction, error)
}

// PendingActionWriter defines write operations for pending actions.
type PendingActionWriter interface {
	// SaveWithTimeline persists a new PENDING record together with its
	// ACTION_REQUESTED timeline event in one database transaction.
	SaveWithTimeline(ctx context.Context, action domain.PendingAction, event domain.TimelineEvent) error

	// FinalizeWithTimeline writes the terminal status, reviewer identity and review
	// timestamp together with the timeline event in one database transaction.
	// It fails with apperrors.ErrInvalidState if the row is no longer PENDING at
	// write time, so a concurrent reviewer cannot finalize twice.
	FinalizeWithTimeline(ctx context.Context, pendingActionID string, status domain.PendingActionStatus, reviewerID string, reviewedAt time.Time, remarks string, targetID *string, event domain.TimelineEvent) error
}

// PendingActionRepositoryFacade combines pending-action repository interfaces.
type PendingActionRepositoryFacade interface {
	PendingActionReader
	PendingActionWriter
}
