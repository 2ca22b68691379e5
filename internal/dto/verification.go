package dto

import (
	"time"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// CreateVerificationRequest attaches a new verification to an application.
type CreateVerificationRequest struct {
	LoanApplicationID string `json:"loanApplicationID" binding:"required"`
	Type              string `json:"type" binding:"required"`
	AddressLine       string `json:"addressLine"`
	AddressCity       string `json:"addressCity"`
	AddressState      string `json:"addressState"`
	AddressZip        string `json:"addressZip"`
}

// RecordVerificationResultRequest carries an inspector's finding.
type RecordVerificationResultRequest struct {
	Result  bool   `json:"result"`
	Remarks string `json:"remarks,omitempty"`
}

// VerificationResponse defines the data returned for a verification.
type VerificationResponse struct {
	VerificationID    string     `json:"verificationID"`
	LoanApplicationID string     `json:"loanApplicationID"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	Result            bool       `json:"result"`
	Remarks           string     `json:"remarks,omitempty"`
	VerifiedByID      *string    `json:"verifiedByID,omitempty"`
	VerifiedAt        *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// ToVerificationResponse converts a domain.Verification to its response DTO.
func ToVerificationResponse(v *domain.Verification) VerificationResponse {
	return VerificationResponse{
		VerificationID:    v.VerificationID,
		LoanApplicationID: v.LoanApplicationID,
		Type:              string(v.Type),
		Status:            string(v.Status),
		Result:            v.Result,
		Remarks:           v.Remarks,
		VerifiedByID:      v.VerifiedByID,
		VerifiedAt:        v.VerifiedAt,
		CreatedAt:         v.CreatedAt,
	}
}

// ToVerificationResponses converts a slice of verifications.
func ToVerificationResponses(vs []domain.Verification) []VerificationResponse {
	responses := make([]VerificationResponse, len(vs))
	for i := range vs {
		responses[i] = ToVerificationResponse(&vs[i])
	}
	return responses
}
