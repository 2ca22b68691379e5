package mapping

import (
	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/models"
)

// ToModelIncome converts a domain Income to a model Income
func ToModelIncome(d domain.Income) models.Income {
	return models.Income{
		IncomeID:           d.IncomeID,
		ApplicantID:        d.ApplicantID,
		Type:               string(d.Type),
		GrossIncome:        d.GrossIncome,
		Rent:               d.Rent,
		Depreciation:       d.Depreciation,
		IncomeFromBusiness: d.IncomeFromBusiness,
		AuditFields:        ToModelAuditFields(d.AuditFields),
		DeletedAt:          d.DeletedAt,
	}
}

// ToDomainIncome converts a model Income to a domain Income
func ToDomainIncome(m models.Income) domain.Income {
	return domain.Income{
		IncomeID:           m.IncomeID,
		ApplicantID:        m.ApplicantID,
		Type:               domain.IncomeType(m.Type),
		GrossIncome:        m.GrossIncome,
		Rent:               m.Rent,
		Depreciation:       m.Depreciation,
		IncomeFromBusiness: m.IncomeFromBusiness,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
		DeletedAt:          m.DeletedAt,
	}
}

// ToModelLoanObligation converts a domain LoanObligation to a model LoanObligation
func ToModelLoanObligation(d domain.LoanObligation) models.LoanObligation {
	return models.LoanObligation{
		LoanObligationID: d.LoanObligationID,
		ApplicantID:      d.ApplicantID,
		TotalEmi:         d.TotalEmi,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		DeletedAt:        d.DeletedAt,
	}
}

// ToDomainLoanObligation converts a model LoanObligation to a domain LoanObligation.
// Details are loaded separately.
func ToDomainLoanObligation(m models.LoanObligation) domain.LoanObligation {
	return domain.LoanObligation{
		LoanObligationID: m.LoanObligationID,
		ApplicantID:      m.ApplicantID,
		TotalEmi:         m.TotalEmi,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		DeletedAt:        m.DeletedAt,
	}
}

// ToModelObligationDetail converts a domain ObligationDetail to a model ObligationDetail
func ToModelObligationDetail(d domain.ObligationDetail) models.ObligationDetail {
	return models.ObligationDetail{
		ObligationDetailID: d.ObligationDetailID,
		LoanObligationID:   d.LoanObligationID,
		LenderName:         d.LenderName,
		LoanAmount:         d.LoanAmount,
		EmiAmount:          d.EmiAmount,
		OutstandingAmount:  d.OutstandingAmount,
	}
}

// ToDomainObligationDetail converts a model ObligationDetail to a domain ObligationDetail
func ToDomainObligationDetail(m models.ObligationDetail) domain.ObligationDetail {
	return domain.ObligationDetail{
		ObligationDetailID: m.ObligationDetailID,
		LoanObligationID:   m.LoanObligationID,
		LenderName:         m.LenderName,
		LoanAmount:         m.LoanAmount,
		EmiAmount:          m.EmiAmount,
		OutstandingAmount:  m.OutstandingAmount,
	}
}

// ToDomainObligationDetailSlice converts a slice of model ObligationDetails to domain ObligationDetails
func ToDomainObligationDetailSlice(ms []models.ObligationDetail) []domain.ObligationDetail {
	ds := make([]domain.ObligationDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainObligationDetail(m)
	}
	return ds
}
