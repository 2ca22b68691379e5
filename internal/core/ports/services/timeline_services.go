package services

import (
	"context"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// TimelineSvcFacade appends and reads immutable audit events. There is no
// update or delete on purpose.
type TimelineSvcFacade interface {
	// AppendEvent appends a fully-formed event. The event ID and timestamp are
	// assigned here if unset.
	AppendEvent(ctx context.Context, event domain.TimelineEvent) (*domain.TimelineEvent, error)

	// LogEntityEvent is a convenience creator for the common case.
	LogEntityEvent(ctx context.Context, actor *domain.AuthUser, entityType domain.EntityType, entityID string, eventType domain.TimelineEventType, remarks string) (*domain.TimelineEvent, error)

	// ListByEntity retrieves events for an entity, newest first.
	ListByEntity(ctx context.Context, actor *domain.AuthUser, entityType domain.EntityType, entityID string, limit int) ([]domain.TimelineEvent, error)

	// ListByLoanApplication retrieves every event linked to a loan application.
	ListByLoanApplication(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, limit int) ([]domain.TimelineEvent, error)
}
