package dto

import (
	"encoding/json"
	"time"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// TimelineEventResponse defines the data returned for an audit event.
type TimelineEventResponse struct {
	TimelineEventID   string          `json:"timelineEventID"`
	EntityType        string          `json:"entityType"`
	EntityID          string          `json:"entityID"`
	EventType         string          `json:"eventType"`
	ActorUserID       string          `json:"actorUserID"`
	ActorName         string          `json:"actorName"`
	ActorRole         string          `json:"actorRole"`
	Remarks           string          `json:"remarks,omitempty"`
	ActionData        json.RawMessage `json:"actionData,omitempty"`
	LoanApplicationID *string         `json:"loanApplicationID,omitempty"`
	ApplicantID       *string         `json:"applicantID,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToTimelineEventResponse converts a domain.TimelineEvent to its response DTO.
func ToTimelineEventResponse(e *domain.TimelineEvent) TimelineEventResponse {
	return TimelineEventResponse{
		TimelineEventID:   e.TimelineEventID,
		EntityType:        string(e.EntityType),
		EntityID:          e.EntityID,
		EventType:         string(e.EventType),
		ActorUserID:       e.ActorUserID,
		ActorName:         e.ActorName,
		ActorRole:         string(e.ActorRole),
		Remarks:           e.Remarks,
		ActionData:        e.ActionData,
		LoanApplicationID: e.LoanApplicationID,
		ApplicantID:       e.ApplicantID,
		CreatedAt:         e.CreatedAt,
	}
}

// ToTimelineEventResponses converts a slice of events.
func ToTimelineEventResponses(events []domain.TimelineEvent) []TimelineEventResponse {
	responses := make([]TimelineEventResponse, len(events))
	for i := range events {
		responses[i] = ToTimelineEventResponse(&events[i])
	}
	return responses
}
