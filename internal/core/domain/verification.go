package domain

import "time"

// VerificationType identifies what is being verified for a loan application.
type VerificationType string

const (
	VerificationTypeResidence VerificationType = "RESIDENCE"
	VerificationTypeRental    VerificationType = "RENTAL"
	VerificationTypeBusiness  VerificationType = "BUSINESS"
	VerificationTypeVehicle   VerificationType = "VEHICLE"
	VerificationTypeProperty  VerificationType = "PROPERTY"
)

// VerificationStatus tracks whether an inspector has completed a verification.
type VerificationStatus string

const (
	VerificationStatusPending   VerificationStatus = "PENDING"
	VerificationStatusCompleted VerificationStatus = "COMPLETED"
)

// Verification is an inspector's field check attached to a loan application.
// A loan application has failed verification if any associated verification
// has Result == false.
type Verification struct {
	VerificationID    string             `json:"verificationID"` // Primary Key (UUID)
	LoanApplicationID string             `json:"loanApplicationID"`
	Type              VerificationType   `json:"type"`
	Status            VerificationStatus `json:"status"`
	Result            bool               `json:"result"`
	Remarks           string             `json:"remarks,omitempty"`
	AddressLine       string             `json:"addressLine,omitempty"`
	AddressCity       string             `json:"addressCity,omitempty"`
	AddressState      string             `json:"addressState,omitempty"`
	AddressZip        string             `json:"addressZip,omitempty"`
	PhotoKey          string             `json:"photoKey,omitempty"` // Object store key
	VerifiedByID      *string            `json:"verifiedByID,omitempty"`
	VerifiedAt        *time.Time         `json:"verifiedAt,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
