package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
)

// TimelineService appends and reads immutable audit events.
type TimelineService struct {
	timelineRepo portsrepo.TimelineRepositoryFacade
	abilitySvc   portssvc.AbilitySvcFacade
}

// NewTimelineService creates a new TimelineService.
func NewTimelineService(tr portsrepo.TimelineRepositoryFacade, as portssvc.AbilitySvcFacade) portssvc.TimelineSvcFacade {
	return &TimelineService{
		timelineRepo: tr,
		abilitySvc:   as,
	}
}

var _ portssvc.TimelineSvcFacade = (*TimelineService)(nil)

// AppendEvent appends a fully-formed event, assigning the ID and timestamp if unset.
func (s *TimelineService) AppendEvent(ctx context.Context, event domain.TimelineEvent) (*domain.TimelineEvent, error) {
	if event.TimelineEventID == "" {
		event.TimelineEventID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	if event.EventType == "" {
		return nil, fmt.Errorf("%w: event type is required", apperrors.ErrValidation)
	}
	if err := s.timelineRepo.SaveTimelineEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to append timeline event: %w", err)
	}
	return &event, nil
}

// LogEntityEvent is the convenience creator used by services that do not bundle
// the event into a repository transaction.
func (s *TimelineService) LogEntityEvent(ctx context.Context, actor *domain.AuthUser, entityType domain.EntityType, entityID string, eventType domain.TimelineEventType, remarks string) (*domain.TimelineEvent, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	event := domain.TimelineEvent{
		TimelineEventID: uuid.NewString(),
		EntityType:      entityType,
		EntityID:        entityID,
		EventType:       eventType,
		ActorUserID:     actor.UserID,
		ActorName:       actor.Name,
		ActorRole:       actor.CurrentRole,
		Remarks:         remarks,
		CreatedAt:       time.Now().UTC(),
	}
	if entityType == domain.EntityTypeLoanApplication {
		event.LoanApplicationID = &entityID
	}
	if entityType == domain.EntityTypeApplicant {
		event.ApplicantID = &entityID
	}
	return s.AppendEvent(ctx, event)
}

func (s *TimelineService) ListByEntity(ctx context.Context, actor *domain.AuthUser, entityType domain.EntityType, entityID string, limit int) ([]domain.TimelineEvent, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionView, domain.SubjectTimeline) {
		return nil, apperrors.ErrForbidden
	}
	return s.timelineRepo.FindTimelineEventsByEntity(ctx, entityType, entityID, limit)
}

func (s *TimelineService) ListByLoanApplication(ctx context.Context, actor *domain.AuthUser, loanApplicationID string, limit int) ([]domain.TimelineEvent, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionView, domain.SubjectTimeline) {
		return nil, apperrors.ErrForbidden
	}
	return s.timelineRepo.FindTimelineEventsByLoanApplication(ctx, loanApplicationID, limit)
}
