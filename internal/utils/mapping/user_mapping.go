package mapping

import (
	"database/sql"

	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/models"
)

// ToModelUserProfile converts a domain UserProfile to a model UserProfile
func ToModelUserProfile(d domain.UserProfile) models.UserProfile {
	m := models.UserProfile{
		UserID:       d.UserID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		PhoneNumber:  d.PhoneNumber,
		PasswordHash: d.PasswordHash,
		AuthProvider: d.AuthProvider,
		IsOnboarded:  d.IsOnboarded,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		DeletedAt:    d.DeletedAt,
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// ToDomainUserProfile converts a model UserProfile to a domain UserProfile
func ToDomainUserProfile(m models.UserProfile) domain.UserProfile {
	d := domain.UserProfile{
		UserID:       m.UserID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PhoneNumber:  m.PhoneNumber,
		PasswordHash: m.PasswordHash,
		AuthProvider: m.AuthProvider,
		IsOnboarded:  m.IsOnboarded,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	return d
}

// ToDomainUserProfileSlice converts a slice of model UserProfiles to domain UserProfiles
func ToDomainUserProfileSlice(ms []models.UserProfile) []domain.UserProfile {
	ds := make([]domain.UserProfile, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUserProfile(m)
	}
	return ds
}

// ToModelBankMembership converts a domain BankMembership to a model BankMembership
func ToModelBankMembership(d domain.BankMembership) models.BankMembership {
	return models.BankMembership{
		UserID:   d.UserID,
		BankID:   d.BankID,
		Role:     string(d.Role),
		JoinedAt: d.JoinedAt,
	}
}

// ToDomainBankMembership converts a model BankMembership to a domain BankMembership
func ToDomainBankMembership(m models.BankMembership) domain.BankMembership {
	return domain.BankMembership{
		UserID:   m.UserID,
		BankID:   m.BankID,
		Role:     domain.UserRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

// ToDomainBankMembershipSlice converts a slice of model BankMemberships to domain BankMemberships
func ToDomainBankMembershipSlice(ms []models.BankMembership) []domain.BankMembership {
	ds := make([]domain.BankMembership, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankMembership(m)
	}
	return ds
}
