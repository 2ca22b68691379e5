package dto

import (
	"time"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// CreateApplicantRequest defines the data needed to create an applicant profile.
type CreateApplicantRequest struct {
	UserID       string     `json:"userID" binding:"required"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	AddressLine  string     `json:"addressLine"`
	AddressCity  string     `json:"addressCity"`
	AddressState string     `json:"addressState"`
	AddressZip   string     `json:"addressZip"`
	PhotoKey     string     `json:"photoKey,omitempty"`
}

// UpdateApplicantRequest defines the mutable fields of an applicant profile.
type UpdateApplicantRequest struct {
	AddressLine  *string `json:"addressLine,omitempty"`
	AddressCity  *string `json:"addressCity,omitempty"`
	AddressState *string `json:"addressState,omitempty"`
	AddressZip   *string `json:"addressZip,omitempty"`
	PhotoKey     *string `json:"photoKey,omitempty"`
}

// ApplicantResponse defines the data returned for an applicant.
type ApplicantResponse struct {
	ApplicantID  string     `json:"applicantID"`
	UserID       string     `json:"userID"`
	BankID       string     `json:"bankID"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	AddressLine  string     `json:"addressLine,omitempty"`
	AddressCity  string     `json:"addressCity,omitempty"`
	AddressState string     `json:"addressState,omitempty"`
	AddressZip   string     `json:"addressZip,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ToApplicantResponse converts a domain.Applicant to its response DTO.
func ToApplicantResponse(a *domain.Applicant) ApplicantResponse {
	return ApplicantResponse{
		ApplicantID:  a.ApplicantID,
		UserID:       a.UserID,
		BankID:       a.BankID,
		DateOfBirth:  a.DateOfBirth,
		AddressLine:  a.AddressLine,
		AddressCity:  a.AddressCity,
		AddressState: a.AddressState,
		AddressZip:   a.AddressZip,
		CreatedAt:    a.CreatedAt,
	}
}

// ToApplicantResponses converts a slice of applicants.
func ToApplicantResponses(applicants []domain.Applicant) []ApplicantResponse {
	responses := make([]ApplicantResponse, len(applicants))
	for i := range applicants {
		responses[i] = ToApplicantResponse(&applicants[i])
	}
	return responses
}
