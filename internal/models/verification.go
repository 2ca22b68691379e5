package models

import "time"

// Verification represents a row of the verifications table.
type Verification struct {
	VerificationID    string     `db:"verification_id"`
	LoanApplicationID string     `db:"loan_application_id"`
	Type              string     `db:"type"`
	Status            string     `db:"status"`
	Result            bool       `db:"result"`
	Remarks           string     `db:"remarks"`
	AddressLine       string     `db:"address_line"`
	AddressCity       string     `db:"address_city"`
	AddressState      string     `db:"address_state"`
	AddressZip        string     `db:"address_zip"`
	PhotoKey          string     `db:"photo_key"`
	VerifiedByID      *string    `db:"verified_by_id"`
	VerifiedAt        *time.Time `db:"verified_at"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
