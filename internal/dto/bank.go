package dto

import (
	"time"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// CreateBankRequest defines the data needed to onboard a bank tenant.
type CreateBankRequest struct {
	Name          string `json:"name" binding:"required"`
	OfficialEmail string `json:"officialEmail" binding:"required,email"`
	ContactNumber string `json:"contactNumber"`
}

// AddBankMemberRequest adds a user to a bank with a role.
type AddBankMemberRequest struct {
	UserID string `json:"userID" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

// BankResponse defines the data returned for a bank.
type BankResponse struct {
	BankID           string    `json:"bankID"`
	Name             string    `json:"name"`
	OfficialEmail    string    `json:"officialEmail"`
	ContactNumber    string    `json:"contactNumber,omitempty"`
	OnboardingStatus string    `json:"onboardingStatus"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToBankResponse converts a domain.Bank to its response DTO.
func ToBankResponse(b *domain.Bank) BankResponse {
	return BankResponse{
		BankID:           b.BankID,
		Name:             b.Name,
		OfficialEmail:    b.OfficialEmail,
		ContactNumber:    b.ContactNumber,
		OnboardingStatus: string(b.OnboardingStatus),
		CreatedAt:        b.CreatedAt,
	}
}

// ToBankResponses converts a slice of banks.
func ToBankResponses(banks []domain.Bank) []BankResponse {
	responses := make([]BankResponse, len(banks))
	for i := range banks {
		responses[i] = ToBankResponse(&banks[i])
	}
	return responses
}
