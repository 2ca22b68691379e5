package domain

import "time"

// BankOnboardingStatus tracks how far a bank has progressed through tenant onboarding.
type BankOnboardingStatus string

const (
	BankOnboardingPending   BankOnboardingStatus = "PENDING"
	BankOnboardingCompleted BankOnboardingStatus = "COMPLETED"
)

// Bank represents a tenant. Every entity and ability grant is scoped to one bank.
type Bank struct {
	BankID           string               `json:"bankID"` // Primary Key (UUID)
	Name             string               `json:"name"`
	OfficialEmail    string               `json:"officialEmail"`
	ContactNumber    string               `json:"contactNumber"`
	OnboardingStatus BankOnboardingStatus `json:"onboardingStatus"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
