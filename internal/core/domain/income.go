package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeType identifies the source of an applicant's declared income.
type IncomeType string

const (
	IncomeTypeSalaried     IncomeType = "SALARIED"
	IncomeTypeBusiness     IncomeType = "BUSINESS"
	IncomeTypeAgriculture  IncomeType = "AGRICULTURE"
	IncomeTypeSelfEmployed IncomeType = "SELF_EMPLOYED"
)

// Income is an applicant's declared income record. The latest non-deleted
// record per applicant is the one eligibility reads.
type Income struct {
	IncomeID           string          `json:"incomeID"` // Primary Key (UUID)
	ApplicantID        string          `json:"applicantID"`
	Type               IncomeType      `json:"type"`
	GrossIncome        decimal.Decimal `json:"grossIncome"`
	Rent               decimal.Decimal `json:"rent"`
	Depreciation       decimal.Decimal `json:"depreciation"`
	IncomeFromBusiness decimal.Decimal `json:"incomeFromBusiness"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// LoanObligation aggregates an applicant's existing loan commitments.
// The latest non-deleted record per applicant is the one eligibility reads.
type LoanObligation struct {
	LoanObligationID string          `json:"loanObligationID"` // Primary Key (UUID)
	ApplicantID      string          `json:"applicantID"`
	TotalEmi         decimal.Decimal `json:"totalEmi"`
	Details          []ObligationDetail `json:"details,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// ObligationDetail is one outstanding loan inside a LoanObligation record.
type ObligationDetail struct {
	ObligationDetailID string          `json:"obligationDetailID"` // Primary Key (UUID)
	LoanObligationID   string          `json:"loanObligationID"`
	LenderName         string          `json:"lenderName"`
	LoanAmount         decimal.Decimal `json:"loanAmount"`
	EmiAmount          decimal.Decimal `json:"emiAmount"`
	OutstandingAmount  decimal.Decimal `json:"outstandingAmount"`
}

// Eligibility is the derived figure the aggregator produces. All fields default
// to zero when income or obligation records are missing; the calculation never fails.
type Eligibility struct {
	ApplicantID        string          `json:"applicantID"`
	GrossIncome        decimal.Decimal `json:"grossIncome"`
	TotalEmi           decimal.Decimal `json:"totalEmi"`
	NetIncome          decimal.Decimal `json:"netIncome"`
	EligibleLoanAmount decimal.Decimal `json:"eligibleLoanAmount"`
	TimesOfNetIncome   int64           `json:"timesOfNetIncome"`
}
