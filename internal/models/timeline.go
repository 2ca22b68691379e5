package models

import (
	"encoding/json"
	"time"
)

// TimelineEvent represents a row of the timeline_events table. Rows are
// insert-only; there are no update or delete paths.
type TimelineEvent struct {
	TimelineEventID   string          `db:"timeline_event_id"`
	EntityType        string          `db:"entity_type"`
	EntityID          string          `db:"entity_id"`
	EventType         string          `db:"event_type"`
	ActorUserID       string          `db:"actor_user_id"`
	ActorName         string          `db:"actor_name"`
	ActorRole         string          `db:"actor_role"`
	Remarks           string          `db:"remarks"`
	ActionData        json.RawMessage `db:"action_data"`
	LoanApplicationID *string         `db:"loan_application_id"`
	ApplicantID       *string         `db:"applicant_id"`
	CreatedAt         time.Time       `db:"created_at"`
}
