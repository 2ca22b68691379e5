package domain

import "time"

// Applicant represents a loan applicant's profile within a bank.
type Applicant struct {
	ApplicantID  string     `json:"applicantID"` // Primary Key (UUID)
	UserID       string     `json:"userID"`      // FK -> user_profiles.user_id
	BankID       string     `json:"bankID"`      // FK -> banks.bank_id
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	AddressLine  string     `json:"addressLine"`
	AddressCity  string     `json:"addressCity"`
	AddressState string     `json:"addressState"`
	AddressZip   string     `json:"addressZip"`
	PhotoKey     string     `json:"photoKey,omitempty"` // Object store key, upload flow is external
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
