package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income represents a row of the incomes table.
type Income struct {
	IncomeID           string          `db:"income_id"`
	ApplicantID        string          `db:"applicant_id"`
	Type               string          `db:"type"`
	GrossIncome        decimal.Decimal `db:"gross_income"`
	Rent               decimal.Decimal `db:"rent"`
	Depreciation       decimal.Decimal `db:"depreciation"`
	IncomeFromBusiness decimal.Decimal `db:"income_from_business"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// LoanObligation represents a row of the loan_obligations table.
type LoanObligation struct {
	LoanObligationID string          `db:"loan_obligation_id"`
	ApplicantID      string          `db:"applicant_id"`
	TotalEmi         decimal.Decimal `db:"total_emi"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// ObligationDetail represents a row of the obligation_details table.
type ObligationDetail struct {
	ObligationDetailID string          `db:"obligation_detail_id"`
	LoanObligationID   string          `db:"loan_obligation_id"`
	LenderName         string          `db:"lender_name"`
	LoanAmount         decimal.Decimal `db:"loan_amount"`
	EmiAmount          decimal.Decimal `db:"emi_amount"`
	OutstandingAmount  decimal.Decimal `db:"outstanding_amount"`
}
