package models

import "time"

// Applicant represents a row of the applicants table.
type Applicant struct {
	ApplicantID  string     `db:"applicant_id"`
	UserID       string     `db:"user_id"`
	BankID       string     `db:"bank_id"`
	DateOfBirth  *time.Time `db:"date_of_birth"`
	AddressLine  string     `db:"address_line"`
	AddressCity  string     `db:"address_city"`
	AddressState string     `db:"address_state"`
	AddressZip   string     `db:"address_zip"`
	PhotoKey     string     `db:"photo_key"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
