package mapping

import (
	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/models"
)

// ToModelBank converts a domain Bank to a model Bank
func ToModelBank(d domain.Bank) models.Bank {
	return models.Bank{
		BankID:           d.BankID,
		Name:             d.Name,
		OfficialEmail:    d.OfficialEmail,
		ContactNumber:    d.ContactNumber,
		OnboardingStatus: string(d.OnboardingStatus),
		AuditFields:      ToModelAuditFields(d.AuditFields),
		DeletedAt:        d.DeletedAt,
	}
}

// ToDomainBank converts a model Bank to a domain Bank
func ToDomainBank(m models.Bank) domain.Bank {
	return domain.Bank{
		BankID:           m.BankID,
		Name:             m.Name,
		OfficialEmail:    m.OfficialEmail,
		ContactNumber:    m.ContactNumber,
		OnboardingStatus: domain.BankOnboardingStatus(m.OnboardingStatus),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		DeletedAt:        m.DeletedAt,
	}
}

// ToDomainBankSlice converts a slice of model Banks to domain Banks
func ToDomainBankSlice(ms []models.Bank) []domain.Bank {
	ds := make([]domain.Bank, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBank(m)
	}
	return ds
}
