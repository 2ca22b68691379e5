package dto

import (
	"encoding/json"
	"time"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// RequestPendingActionRequest creates a new approval request.
type RequestPendingActionRequest struct {
	ActionType string          `json:"actionType" binding:"required"`
	Payload    json.RawMessage `json:"payload" binding:"required"`
}

// ReviewPendingActionRequest carries reviewer remarks for a rejection.
type ReviewPendingActionRequest struct {
	Remarks string `json:"remarks"`
}

// PendingActionResponse defines the data returned for a pending action.
type PendingActionResponse struct {
	PendingActionID string          `json:"pendingActionID"`
	BankID          string          `json:"bankID"`
	ActionType      string          `json:"actionType"`
	Payload         json.RawMessage `json:"payload,omitempty"`
	Status          string          `json:"status"`
	RequestedByID   string          `json:"requestedByID"`
	RequestedAt     time.Time       `json:"requestedAt"`
	ReviewedByID    *string         `json:"reviewedByID,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewedAt,omitempty"`
	ReviewRemarks   string          `json:"reviewRemarks,omitempty"`
	TargetID        *string         `json:"targetID,omitempty"`
}

// BankDetailUpdatePayload is the payload of a REQUEST_BANK_DETAIL_UPDATE action.
type BankDetailUpdatePayload struct {
	Name          *string `json:"name,omitempty"`
	OfficialEmail *string `json:"officialEmail,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
}

// BankUserCreationPayload is the payload of a REQUEST_BANK_USER_CREATION action.
type BankUserCreationPayload struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

// ToPendingActionResponse converts a domain.PendingAction to its response DTO.
func ToPendingActionResponse(a *domain.PendingAction) PendingActionResponse {
	return PendingActionResponse{
		PendingActionID: a.PendingActionID,
		BankID:          a.BankID,
		ActionType:      string(a.ActionType),
		Payload:         a.Payload,
		Status:          string(a.Status),
		RequestedByID:   a.RequestedByID,
		RequestedAt:     a.RequestedAt,
		ReviewedByID:    a.ReviewedByID,
		ReviewedAt:      a.ReviewedAt,
		ReviewRemarks:   a.ReviewRemarks,
		TargetID:        a.TargetID,
	}
}

// ToPendingActionResponses converts a slice of pending actions.
func ToPendingActionResponses(actions []domain.PendingAction) []PendingActionResponse {
	responses := make([]PendingActionResponse, len(actions))
	for i := range actions {
		responses[i] = ToPendingActionResponse(&actions[i])
	}
	return responses
}
