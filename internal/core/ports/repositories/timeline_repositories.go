package repositories

import (
	"context"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// TimelineReader defines read operations for timeline events.
type TimelineReader interface {
	// FindTimelineEventsByEntity retrieves events for an entity, newest first.
	FindTimelineEventsByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.TimelineEvent, error)

	// FindTimelineEventsByLoanApplication retrieves every event linked to a loan
	// application regardless of owning entity, newest first.
	FindTimelineEventsByLoanApplication(ctx context.Context, loanApplicationID string, limit int) ([]domain.TimelineEvent, error)
}

// TimelineWriter defines the only write operation for timeline events. Events are
// append-only: there is deliberately no update or delete.
type TimelineWriter interface {
	// SaveTimelineEvent appends a new event.
	SaveTimelineEvent(ctx context.Context, event domain.TimelineEvent) error
}

// TimelineRepositoryFacade combines timeline repository interfaces.
type TimelineRepositoryFacade interface {
	TimelineReader
	TimelineWriter
}
