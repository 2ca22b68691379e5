package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// CreateIncomeRequest records a new income declaration for an applicant.
type CreateIncomeRequest struct {
	ApplicantID        string          `json:"applicantID" binding:"required"`
	Type               string          `json:"type" binding:"required"`
	GrossIncome        decimal.Decimal `json:"grossIncome" binding:"required"`
	Rent               decimal.Decimal `json:"rent"`
	Depreciation       decimal.Decimal `json:"depreciation"`
	IncomeFromBusiness decimal.Decimal `json:"incomeFromBusiness"`
}

// ObligationDetailRequest is one outstanding loan inside an obligation declaration.
type ObligationDetailRequest struct {
	LenderName        string          `json:"lenderName" binding:"required"`
	LoanAmount        decimal.Decimal `json:"loanAmount"`
	EmiAmount         decimal.Decimal `json:"emiAmount"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
}

// CreateObligationRequest records an applicant's existing loan commitments.
type CreateObligationRequest struct {
	ApplicantID string                    `json:"applicantID" binding:"required"`
	TotalEmi    decimal.Decimal           `json:"totalEmi"`
	Details     []ObligationDetailRequest `json:"details,omitempty"`
}

// IncomeResponse defines the data returned for an income record.
type IncomeResponse struct {
	IncomeID           string          `json:"incomeID"`
	ApplicantID        string          `json:"applicantID"`
	Type               string          `json:"type"`
	GrossIncome        decimal.Decimal `json:"grossIncome"`
	Rent               decimal.Decimal `json:"rent"`
	Depreciation       decimal.Decimal `json:"depreciation"`
	IncomeFromBusiness decimal.Decimal `json:"incomeFromBusiness"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// ObligationDetailResponse is one outstanding loan inside an obligation record.
type ObligationDetailResponse struct {
	ObligationDetailID string          `json:"obligationDetailID"`
	LenderName         string          `json:"lenderName"`
	LoanAmount         decimal.Decimal `json:"loanAmount"`
	EmiAmount          decimal.Decimal `json:"emiAmount"`
	OutstandingAmount  decimal.Decimal `json:"outstandingAmount"`
}

// ObligationResponse defines the data returned for an obligation record.
type ObligationResponse struct {
	LoanObligationID string                     `json:"loanObligationID"`
	ApplicantID      string                     `json:"applicantID"`
	TotalEmi         decimal.Decimal            `json:"totalEmi"`
	Details          []ObligationDetailResponse `json:"details,omitempty"`
	CreatedAt        time.Time                  `json:"createdAt"`
}

// EligibilityResponse is the derived eligibility figure for an applicant.
type EligibilityResponse struct {
	ApplicantID        string          `json:"applicantID"`
	GrossIncome        decimal.Decimal `json:"grossIncome"`
	TotalEmi           decimal.Decimal `json:"totalEmi"`
	NetIncome          decimal.Decimal `json:"netIncome"`
	EligibleLoanAmount decimal.Decimal `json:"eligibleLoanAmount"`
	TimesOfNetIncome   int64           `json:"timesOfNetIncome"`
}

// ToIncomeResponse converts a domain.Income to its response DTO.
func ToIncomeResponse(in *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:           in.IncomeID,
		ApplicantID:        in.ApplicantID,
		Type:               string(in.Type),
		GrossIncome:        in.GrossIncome,
		Rent:               in.Rent,
		Depreciation:       in.Depreciation,
		IncomeFromBusiness: in.IncomeFromBusiness,
		CreatedAt:          in.CreatedAt,
	}
}

// ToIncomeResponses converts a slice of income records.
func ToIncomeResponses(ins []domain.Income) []IncomeResponse {
	responses := make([]IncomeResponse, len(ins))
	for i := range ins {
		responses[i] = ToIncomeResponse(&ins[i])
	}
	return responses
}

// ToObligationResponse converts a domain.LoanObligation to its response DTO.
func ToObligationResponse(o *domain.LoanObligation) ObligationResponse {
	details := make([]ObligationDetailResponse, len(o.Details))
	for i, d := range o.Details {
		details[i] = ObligationDetailResponse{
			ObligationDetailID: d.ObligationDetailID,
			LenderName:         d.LenderName,
			LoanAmount:         d.LoanAmount,
			EmiAmount:          d.EmiAmount,
			OutstandingAmount:  d.OutstandingAmount,
		}
	}
	return ObligationResponse{
		LoanObligationID: o.LoanObligationID,
		ApplicantID:      o.ApplicantID,
		TotalEmi:         o.TotalEmi,
		Details:          details,
		CreatedAt:        o.CreatedAt,
	}
}

// ToEligibilityResponse converts a domain.Eligibility to its response DTO.
func ToEligibilityResponse(e *domain.Eligibility) EligibilityResponse {
	return EligibilityResponse{
		ApplicantID:        e.ApplicantID,
		GrossIncome:        e.GrossIncome,
		TotalEmi:           e.TotalEmi,
		NetIncome:          e.NetIncome,
		EligibleLoanAmount: e.EligibleLoanAmount,
		TimesOfNetIncome:   e.TimesOfNetIncome,
	}
}
