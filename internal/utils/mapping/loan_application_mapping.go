package mapping

import (
	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/models"
)

// ToModelLoanApplication converts a domain LoanApplication to a model LoanApplication
func ToModelLoanApplication(d domain.LoanApplication) models.LoanApplication {
	return models.LoanApplication{
		LoanApplicationID:     d.LoanApplicationID,
		ApplicantID:           d.ApplicantID,
		BankID:                d.BankID,
		LoanType:              string(d.LoanType),
		AmountRequested:       d.AmountRequested,
		Status:                string(d.Status),
		AssignedLoanOfficerID: d.AssignedLoanOfficerID,
		AssignedInspectorID:   d.AssignedInspectorID,
		AuditFields:           ToModelAuditFields(d.AuditFields),
		DeletedAt:             d.DeletedAt,
	}
}

// ToDomainLoanApplication converts a model LoanApplication to a domain LoanApplication
func ToDomainLoanApplication(m models.LoanApplication) domain.LoanApplication {
	return domain.LoanApplication{
		LoanApplicationID:     m.LoanApplicationID,
		ApplicantID:           m.ApplicantID,
		BankID:                m.BankID,
		LoanType:              domain.LoanType(m.LoanType),
		AmountRequested:       m.AmountRequested,
		Status:                domain.LoanStatus(m.Status),
		AssignedLoanOfficerID: m.AssignedLoanOfficerID,
		AssignedInspectorID:   m.AssignedInspectorID,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
		DeletedAt:             m.DeletedAt,
	}
}

// ToDomainLoanApplicationSlice converts a slice of model LoanApplications to domain LoanApplications
func ToDomainLoanApplicationSlice(ms []models.LoanApplication) []domain.LoanApplication {
	ds := make([]domain.LoanApplication, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoanApplication(m)
	}
	return ds
}

// ToModelGuarantor converts a domain Guarantor to a model Guarantor
func ToModelGuarantor(d domain.Guarantor) models.Guarantor {
	return models.Guarantor{
		GuarantorID:       d.GuarantorID,
		LoanApplicationID: d.LoanApplicationID,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		AddressLine:       d.AddressLine,
		AddressCity:       d.AddressCity,
		AddressState:      d.AddressState,
		AddressZip:        d.AddressZip,
		MobileNumber:      d.MobileNumber,
		Email:             d.Email,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGuarantor converts a model Guarantor to a domain Guarantor
func ToDomainGuarantor(m models.Guarantor) domain.Guarantor {
	return domain.Guarantor{
		GuarantorID:       m.GuarantorID,
		LoanApplicationID: m.LoanApplicationID,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		AddressLine:       m.AddressLine,
		AddressCity:       m.AddressCity,
		AddressState:      m.AddressState,
		AddressZip:        m.AddressZip,
		MobileNumber:      m.MobileNumber,
		Email:             m.Email,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGuarantorSlice converts a slice of model Guarantors to domain Guarantors
func ToDomainGuarantorSlice(ms []models.Guarantor) []domain.Guarantor {
	ds := make([]domain.Guarantor, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGuarantor(m)
	}
	return ds
}
