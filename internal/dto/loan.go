package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// CreateLoanApplicationRequest defines the data needed to create a draft application.
type CreateLoanApplicationRequest struct {
	ApplicantID     string          `json:"applicantID" binding:"required"`
	LoanType        string          `json:"loanType" binding:"required,loantype"`
	AmountRequested decimal.Decimal `json:"amountRequested" binding:"required"`
}

// UpdateLoanApplicationRequest defines the mutable fields of a draft application.
type UpdateLoanApplicationRequest struct {
	LoanType        *string          `json:"loanType,omitempty" binding:"omitempty,loantype"`
	AmountRequested *decimal.Decimal `json:"amountRequested,omitempty"`
}

// UpdateLoanStatusRequest drives the generic status endpoint.
type UpdateLoanStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks,omitempty"`
}

// AssignRequest names the bank user an application is being assigned to.
type AssignRequest struct {
	AssigneeID string `json:"assigneeID" binding:"required"`
}

// ReviewRequest carries a loan officer's or reviewer's decision.
type ReviewRequest struct {
	Pass    bool   `json:"pass"`
	Remarks string `json:"remarks,omitempty"`
}

// ListLoanApplicationsParams holds parameters for listing applications.
type ListLoanApplicationsParams struct {
	Status    *string `form:"status"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// LoanApplicationResponse defines the data returned for a loan application.
type LoanApplicationResponse struct {
	LoanApplicationID     string          `json:"loanApplicationID"`
	ApplicantID           string          `json:"applicantID"`
	BankID                string          `json:"bankID"`
	LoanType              string          `json:"loanType"`
	AmountRequested       decimal.Decimal `json:"amountRequested"`
	Status                string          `json:"status"`
	AssignedLoanOfficerID *string         `json:"assignedLoanOfficerID,omitempty"`
	AssignedInspectorID   *string         `json:"assignedInspectorID,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	LastUpdatedAt         time.Time       `json:"lastUpdatedAt"`
}

// ListLoanApplicationsResponse is a page of applications plus the next page token.
type ListLoanApplicationsResponse struct {
	LoanApplications []LoanApplicationResponse `json:"loanApplications"`
	NextToken        *string                   `json:"nextToken,omitempty"`
}

// CreateGuarantorRequest defines the data needed to attach a guarantor.
type CreateGuarantorRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName"`
	AddressLine  string `json:"addressLine"`
	AddressCity  string `json:"addressCity"`
	AddressState string `json:"addressState"`
	AddressZip   string `json:"addressZip"`
	MobileNumber string `json:"mobileNumber" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
}

// GuarantorResponse is the API representation of a guarantor.
type GuarantorResponse struct {
	GuarantorID       string    `json:"guarantorID"`
	LoanApplicationID string    `json:"loanApplicationID"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	AddressLine       string    `json:"addressLine,omitempty"`
	AddressCity       string    `json:"addressCity,omitempty"`
	AddressState      string    `json:"addressState,omitempty"`
	AddressZip        string    `json:"addressZip,omitempty"`
	MobileNumber      string    `json:"mobileNumber"`
	Email             string    `json:"email,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ToGuarantorResponse converts a domain.Guarantor to its response DTO.
func ToGuarantorResponse(g *domain.Guarantor) GuarantorResponse {
	return GuarantorResponse{
		GuarantorID:       g.GuarantorID,
		LoanApplicationID: g.LoanApplicationID,
		FirstName:         g.FirstName,
		LastName:          g.LastName,
		AddressLine:       g.AddressLine,
		AddressCity:       g.AddressCity,
		AddressState:      g.AddressState,
		AddressZip:        g.AddressZip,
		MobileNumber:      g.MobileNumber,
		Email:             g.Email,
		CreatedAt:         g.CreatedAt,
	}
}

// ToGuarantorResponses converts a slice of domain guarantors.
func ToGuarantorResponses(gs []domain.Guarantor) []GuarantorResponse {
	responses := make([]GuarantorResponse, len(gs))
	for i := range gs {
		responses[i] = ToGuarantorResponse(&gs[i])
	}
	return responses
}

// ToLoanApplicationResponse converts a domain.LoanApplication to its response DTO.
func ToLoanApplicationResponse(app *domain.LoanApplication) LoanApplicationResponse {
	return LoanApplicationResponse{
		LoanApplicationID:     app.LoanApplicationID,
		ApplicantID:           app.ApplicantID,
		BankID:                app.BankID,
		LoanType:              string(app.LoanType),
		AmountRequested:       app.AmountRequested,
		Status:                string(app.Status),
		AssignedLoanOfficerID: app.AssignedLoanOfficerID,
		AssignedInspectorID:   app.AssignedInspectorID,
		CreatedAt:             app.CreatedAt,
		LastUpdatedAt:         app.LastUpdatedAt,
	}
}

// ToLoanApplicationResponses converts a slice of domain applications.
func ToLoanApplicationResponses(apps []domain.LoanApplication) []LoanApplicationResponse {
	responses := make([]LoanApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = ToLoanApplicationResponse(&apps[i])
	}
	return responses
}
