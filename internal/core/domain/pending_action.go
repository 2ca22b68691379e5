package domain

import (
	"encoding/json"
	"time"
)

// PendingActionType identifies the administrative operation under review.
type PendingActionType string

const (
	ActionRequestBankUserCreation PendingActionType = "REQUEST_BANK_USER_CREATION"
	ActionRequestRoleChange       PendingActionType = "REQUEST_ROLE_CHANGE"
	ActionRequestBankDetailUpdate PendingActionType = "REQUEST_BANK_DETAIL_UPDATE"
)

// PendingActionStatus is the two-phase approval state. PENDING is the only
// non-terminal status; once left, the record is final.
type PendingActionStatus string

const (
	PendingActionPending   PendingActionStatus = "PENDING"
	PendingActionApproved  PendingActionStatus = "APPROVED"
	PendingActionRejected  PendingActionStatus = "REJECTED"
	PendingActionCancelled PendingActionStatus = "CANCELLED"
)

// IsTerminal reports whether s is final.
func (s PendingActionStatus) IsTerminal() bool {
	return s != PendingActionPending
}

// PendingAction is a request/approval envelope for bank-scoped administrative
// operations that require review before taking effect.
type PendingAction struct {
	PendingActionID string              `json:"pendingActionID"` // Primary Key (UUID)
	BankID          string              `json:"bankID"`
	ActionType      PendingActionType   `json:"actionType"`
	Payload         json.RawMessage     `json:"payload"`
	Status          PendingActionStatus `json:"status"`
	RequestedByID   string              `json:"requestedByID"`
	RequestedAt     time.Time           `json:"requestedAt"`
	ReviewedByID    *string             `json:"reviewedByID,omitempty"`
	ReviewedAt      *time.Time          `json:"reviewedAt,omitempty"`
	ReviewRemarks   string              `json:"reviewRemarks,omitempty"`
	TargetModel     string              `json:"targetModel,omitempty"` // Entity materialized on approval
	TargetID        *string             `json:"targetID,omitempty"`
}
