package models

import "time"

// Bank represents a row of the banks table. A bank is a tenant.
type Bank struct {
	BankID           string `db:"bank_id"`
	Name             string `db:"name"`
	OfficialEmail    string `db:"official_email"`
	ContactNumber    string `db:"contact_number"`
	OnboardingStatus string `db:"onboarding_status"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
