package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanType identifies the product a loan application is for.
type LoanType string

const (
	LoanTypePersonal                 LoanType = "PERSONAL"
	LoanTypeVehicle                  LoanType = "VEHICLE"
	LoanTypeHouseConstruction        LoanType = "HOUSE_CONSTRUCTION"
	LoanTypePlotPurchase             LoanType = "PLOT_PURCHASE"
	LoanTypeMortgage                 LoanType = "MORTGAGE"
	LoanTypePlotAndHouseConstruction LoanType = "PLOT_AND_HOUSE_CONSTRUCTION"
)

// ValidLoanType reports whether t is one of the known loan products.
func ValidLoanType(t LoanType) bool {
	switch t {
	case LoanTypePersonal, LoanTypeVehicle, LoanTypeHouseConstruction,
		LoanTypePlotPurchase, LoanTypeMortgage, LoanTypePlotAndHouseConstruction:
		return true
	}
	return false
}

// LoanStatus is the lifecycle state of a loan application.
type LoanStatus string

const (
	LoanStatusDraft                        LoanStatus = "DRAFT"
	LoanStatusPendingLoanOfficerAssignment LoanStatus = "PENDING_LOAN_OFFICER_ASSIGNMENT"
	LoanStatusPendingLoanOfficerReview     LoanStatus = "PENDING_LOAN_OFFICER_REVIEW"
	LoanStatusPendingInspectorAssignment   LoanStatus = "PENDING_INSPECTOR_ASSIGNMENT"
	LoanStatusPendingVerification          LoanStatus = "PENDING_VERIFICATION"
	LoanStatusVerificationInProgress       LoanStatus = "VERIFICATION_IN_PROGRESS"
	LoanStatusVerificationCompleted        LoanStatus = "VERIFICATION_COMPLETED"
	LoanStatusVerificationFailed           LoanStatus = "VERIFICATION_FAILED"
	LoanStatusUnderReview                  LoanStatus = "UNDER_REVIEW"
	LoanStatusApproved                     LoanStatus = "APPROVED"
	LoanStatusRejected                     LoanStatus = "REJECTED"
	LoanStatusRejectedByApplicant          LoanStatus = "REJECTED_BY_APPLICANT"
)

// loanStatusGraph defines the allowed forward transitions. Applicant withdrawal
// (REJECTED_BY_APPLICANT) is handled separately in CanTransitionTo since it is
// reachable from every non-terminal state.
var loanStatusGraph = map[LoanStatus][]LoanStatus{
	LoanStatusDraft:                        {LoanStatusPendingLoanOfficerAssignment},
	LoanStatusPendingLoanOfficerAssignment: {LoanStatusPendingLoanOfficerReview},
	LoanStatusPendingLoanOfficerReview:     {LoanStatusPendingInspectorAssignment, LoanStatusRejected},
	LoanStatusPendingInspectorAssignment:   {LoanStatusPendingVerification},
	LoanStatusPendingVerification:          {LoanStatusVerificationInProgress},
	LoanStatusVerificationInProgress:       {LoanStatusVerificationCompleted, LoanStatusVerificationFailed},
	LoanStatusVerificationCompleted:        {LoanStatusUnderReview},
	LoanStatusVerificationFailed:           {LoanStatusUnderReview, LoanStatusRejected},
	LoanStatusUnderReview:                  {LoanStatusApproved, LoanStatusRejected},
}

// IsTerminal reports whether s is a final disposition.
func (s LoanStatus) IsTerminal() bool {
	switch s {
	case LoanStatusApproved, LoanStatusRejected, LoanStatusRejectedByApplicant:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is allowed by the
// lifecycle graph. Transitions are monotonic; terminal states permit nothing.
func (s LoanStatus) CanTransitionTo(next LoanStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == LoanStatusRejectedByApplicant {
		return true
	}
	for _, allowed := range loanStatusGraph[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LoanApplication is the central aggregate of the origination workflow. It is
// mutated only through the loan service, never directly.
type LoanApplication struct {
	LoanApplicationID     string          `json:"loanApplicationID"` // Primary Key (UUID)
	ApplicantID           string          `json:"applicantID"`       // FK -> applicants.applicant_id
	BankID                string          `json:"bankID"`            // FK -> banks.bank_id
	LoanType              LoanType        `json:"loanType"`
	AmountRequested       decimal.Decimal `json:"amountRequested"` // >= 0; immutable once status leaves DRAFT
	Status                LoanStatus      `json:"status"`
	AssignedLoanOfficerID *string         `json:"assignedLoanOfficerID,omitempty"`
	AssignedInspectorID   *string         `json:"assignedInspectorID,omitempty"`
	Guarantors            []Guarantor     `json:"guarantors,omitempty"` // Often loaded separately
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Guarantor is a person vouching for a loan application.
type Guarantor struct {
	GuarantorID       string `json:"guarantorID"` // Primary Key (UUID)
	LoanApplicationID string `json:"loanApplicationID"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	AddressLine       string `json:"addressLine"`
	AddressCity       string `json:"addressCity"`
	AddressState      string `json:"addressState"`
	AddressZip        string `json:"addressZip"`
	MobileNumber      string `json:"mobileNumber"`
	Email             string `json:"email"`
	AuditFields
}
