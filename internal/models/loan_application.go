package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanApplication represents a row of the loan_applications table.
type LoanApplication struct {
	LoanApplicationID     string          `db:"loan_application_id"`
	ApplicantID           string          `db:"applicant_id"`
	BankID                string          `db:"bank_id"`
	LoanType              string          `db:"loan_type"`
	AmountRequested       decimal.Decimal `db:"amount_requested"`
	Status                string          `db:"status"`
	AssignedLoanOfficerID *string         `db:"assigned_loan_officer_id"`
	AssignedInspectorID   *string         `db:"assigned_inspector_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// Guarantor represents a row of the guarantors table.
type Guarantor struct {
	GuarantorID       string `db:"guarantor_id"`
	LoanApplicationID string `db:"loan_application_id"`
	FirstName         string `db:"first_name"`
	LastName          string `db:"last_name"`
	AddressLine       string `db:"address_line"`
	AddressCity       string `db:"address_city"`
	AddressState      string `db:"address_state"`
	AddressZip        string `db:"address_zip"`
	MobileNumber      string `db:"mobile_number"`
	Email             string `db:"email"`
	AuditFields
}
