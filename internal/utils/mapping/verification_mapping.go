package mapping

import (
	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/models"
)

// ToModelVerification converts a domain Verification to a model Verification
func ToModelVerification(d domain.Verification) models.Verification {
	return models.Verification{
		VerificationID:    d.VerificationID,
		LoanApplicationID: d.LoanApplicationID,
		Type:              string(d.Type),
		Status:            string(d.Status),
		Result:            d.Result,
		Remarks:           d.Remarks,
		AddressLine:       d.AddressLine,
		AddressCity:       d.AddressCity,
		AddressState:      d.AddressState,
		AddressZip:        d.AddressZip,
		PhotoKey:          d.PhotoKey,
		VerifiedByID:      d.VerifiedByID,
		VerifiedAt:        d.VerifiedAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
		DeletedAt:         d.DeletedAt,
	}
}

// ToDomainVerification converts a model Verification to a domain Verification
func ToDomainVerification(m models.Verification) domain.Verification {
	return domain.Verification{
		VerificationID:    m.VerificationID,
		LoanApplicationID: m.LoanApplicationID,
		Type:              domain.VerificationType(m.Type),
		Status:            domain.VerificationStatus(m.Status),
		Result:            m.Result,
		Remarks:           m.Remarks,
		AddressLine:       m.AddressLine,
		AddressCity:       m.AddressCity,
		AddressState:      m.AddressState,
		AddressZip:        m.AddressZip,
		PhotoKey:          m.PhotoKey,
		VerifiedByID:      m.VerifiedByID,
		VerifiedAt:        m.VerifiedAt,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
		DeletedAt:         m.DeletedAt,
	}
}

// ToDomainVerificationSlice converts a slice of model Verifications to domain Verifications
func ToDomainVerificationSlice(ms []models.Verification) []domain.Verification {
	ds := make([]domain.Verification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVerification(m)
	}
	return ds
}
