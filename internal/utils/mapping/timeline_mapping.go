package mapping

import (
	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/models"
)

// ToModelTimelineEvent converts a domain TimelineEvent to a model TimelineEvent
func ToModelTimelineEvent(d domain.TimelineEvent) models.TimelineEvent {
	return models.TimelineEvent{
		TimelineEventID:   d.TimelineEventID,
		EntityType:        string(d.EntityType),
		EntityID:          d.EntityID,
		EventType:         string(d.EventType),
		ActorUserID:       d.ActorUserID,
		ActorName:         d.ActorName,
		ActorRole:         string(d.ActorRole),
		Remarks:           d.Remarks,
		ActionData:        d.ActionData,
		LoanApplicationID: d.LoanApplicationID,
		ApplicantID:       d.ApplicantID,
		CreatedAt:         d.CreatedAt,
	}
}

// ToDomainTimelineEvent converts a model TimelineEvent to a domain TimelineEvent
func ToDomainTimelineEvent(m models.TimelineEvent) domain.TimelineEvent {
	return domain.TimelineEvent{
		TimelineEventID:   m.TimelineEventID,
		EntityType:        domain.EntityType(m.EntityType),
		EntityID:          m.EntityID,
		EventType:         domain.TimelineEventType(m.EventType),
		ActorUserID:       m.ActorUserID,
		ActorName:         m.ActorName,
		ActorRole:         domain.UserRole(m.ActorRole),
		Remarks:           m.Remarks,
		ActionData:        m.ActionData,
		LoanApplicationID: m.LoanApplicationID,
		ApplicantID:       m.ApplicantID,
		CreatedAt:         m.CreatedAt,
	}
}

// ToDomainTimelineEventSlice converts a slice of model TimelineEvents to domain TimelineEvents
func ToDomainTimelineEventSlice(ms []models.TimelineEvent) []domain.TimelineEvent {
	ds := make([]domain.TimelineEvent, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTimelineEvent(m)
	}
	return ds
}
