package domain

import (
	"encoding/json"
	"time"
)

// EntityType identifies which aggregate a timeline event (or document) is attached to.
type EntityType string

const (
	EntityTypeApplicant       EntityType = "APPLICANT"
	EntityTypeLoanApplication EntityType = "LOAN_APPLICATION"
	EntityTypeDocument        EntityType = "DOCUMENT"
	EntityTypeVerification    EntityType = "VERIFICATION"
	EntityTypePendingAction   EntityType = "PENDING_ACTION"
)

// ValidEntityType reports whether t is one of the known entity types.
func ValidEntityType(t EntityType) bool {
	switch t {
	case EntityTypeApplicant, EntityTypeLoanApplication, EntityTypeDocument,
		EntityTypeVerification, EntityTypePendingAction:
		return true
	}
	return false
}

// TimelineEventType is the closed set of auditable events.
type TimelineEventType string

const (
	// Application lifecycle
	EventApplicationCreated       TimelineEventType = "APPLICATION_CREATED"
	EventApplicationSubmitted     TimelineEventType = "APPLICATION_SUBMITTED"
	EventApplicationStatusUpdated TimelineEventType = "APPLICATION_STATUS_UPDATED"
	EventLoanOfficerAssigned      TimelineEventType = "LOAN_OFFICER_ASSIGNED"
	EventLoanOfficerReviewed      TimelineEventType = "LOAN_OFFICER_REVIEWED"
	EventInspectorAssigned        TimelineEventType = "INSPECTOR_ASSIGNED"
	EventApplicationApproved      TimelineEventType = "APPLICATION_APPROVED"
	EventApplicationRejected      TimelineEventType = "APPLICATION_REJECTED"
	EventApplicationWithdrawn     TimelineEventType = "APPLICATION_WITHDRAWN"

	// Verification
	EventVerificationStarted   TimelineEventType = "VERIFICATION_STARTED"
	EventVerificationRecorded  TimelineEventType = "VERIFICATION_RECORDED"
	EventVerificationCompleted TimelineEventType = "VERIFICATION_COMPLETED"
	EventVerificationFailed    TimelineEventType = "VERIFICATION_FAILED"

	// Documents
	EventDocumentUploaded TimelineEventType = "DOCUMENT_UPLOADED"
	EventDocumentVerified TimelineEventType = "DOCUMENT_VERIFIED"
	EventDocumentRejected TimelineEventType = "DOCUMENT_REJECTED"

	// Pending-action approvals
	EventActionRequested TimelineEventType = "ACTION_REQUESTED"
	EventActionApproved  TimelineEventType = "ACTION_APPROVED"
	EventActionRejected  TimelineEventType = "ACTION_REJECTED"
	EventActionCancelled TimelineEventType = "ACTION_CANCELLED"
)

// TimelineEvent is an immutable audit record. It is created once, read many
// times, and never mutated or deleted.
type TimelineEvent struct {
	TimelineEventID   string            `json:"timelineEventID"` // Primary Key (UUID)
	EntityType        EntityType        `json:"entityType"`
	EntityID          string            `json:"entityID"`
	EventType         TimelineEventType `json:"eventType"`
	ActorUserID       string            `json:"actorUserID"`
	ActorName         string            `json:"actorName"`
	ActorRole         UserRole          `json:"actorRole"`
	Remarks           string            `json:"remarks,omitempty"`
	ActionData        json.RawMessage   `json:"actionData,omitempty"` // Free-form structured payload
	LoanApplicationID *string           `json:"loanApplicationID,omitempty"`
	ApplicantID       *string           `json:"applicantID,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}
