package mapping

import (
	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/models"
)

// ToModelApplicant converts a domain Applicant to a model Applicant
func ToModelApplicant(d domain.Applicant) models.Applicant {
	return models.Applicant{
		ApplicantID:  d.ApplicantID,
		UserID:       d.UserID,
		BankID:       d.BankID,
		DateOfBirth:  d.DateOfBirth,
		AddressLine:  d.AddressLine,
		AddressCity:  d.AddressCity,
		AddressState: d.AddressState,
		AddressZip:   d.AddressZip,
		PhotoKey:     d.PhotoKey,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		DeletedAt:    d.DeletedAt,
	}
}

// ToDomainApplicant converts a model Applicant to a domain Applicant
func ToDomainApplicant(m models.Applicant) domain.Applicant {
	return domain.Applicant{
		ApplicantID:  m.ApplicantID,
		UserID:       m.UserID,
		BankID:       m.BankID,
		DateOfBirth:  m.DateOfBirth,
		AddressLine:  m.AddressLine,
		AddressCity:  m.AddressCity,
		AddressState: m.AddressState,
		AddressZip:   m.AddressZip,
		PhotoKey:     m.PhotoKey,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
}

// ToDomainApplicantSlice converts a slice of model Applicants to domain Applicants
func ToDomainApplicantSlice(ms []models.Applicant) []domain.Applicant {
	ds := make([]domain.Applicant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainApplicant(m)
	}
	return ds
}
