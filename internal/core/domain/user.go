package domain

import "time"

// UserRole defines the roles a user can hold within a bank.
type UserRole string

const (
	RoleApplicant     UserRole = "APPLICANT"
	RoleClerk         UserRole = "CLERK"
	RoleInspector     UserRole = "INSPECTOR"
	RoleLoanOfficer   UserRole = "LOAN_OFFICER"
	RoleCEO           UserRole = "CEO"
	RoleLoanCommittee UserRole = "LOAN_COMMITTEE"
	RoleBoard         UserRole = "BOARD"
	RoleBankAdmin     UserRole = "BANK_ADMIN"
	RoleSaasAdmin     UserRole = "SAAS_ADMIN" // Platform operator, not bank-scoped
)

// ValidUserRole reports whether r is one of the known roles.
func ValidUserRole(r UserRole) bool {
	switch r {
	case RoleApplicant, RoleClerk, RoleInspector, RoleLoanOfficer,
		RoleCEO, RoleLoanCommittee, RoleBoard, RoleBankAdmin, RoleSaasAdmin:
		return true
	}
	return false
}

// UserProfile represents a user of the application in the domain.
type UserProfile struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	PasswordHash string `json:"-"`
	AuthProvider string `json:"authProvider,omitempty"` // e.g. "google", empty for local
	IsOnboarded  bool   `json:"isOnboarded"`
	AuditFields
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	DeletedAt              *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// FullName returns the user's display name.
func (u UserProfile) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// BankMembership represents the membership of a user in a bank with a role.
type BankMembership struct {
	UserID   string    `json:"userID"` // FK -> user_profiles.user_id
	BankID   string    `json:"bankID"` // FK -> banks.bank_id
	Role     UserRole  `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// AuthUser is the session principal the ability engine works from. It is derived
// from the identity provider's session plus the user's bank membership; nothing
// else from the provider crosses into the core.
type AuthUser struct {
	UserID      string     `json:"userID"`
	BankID      string     `json:"bankID"` // Tenant scope; empty for SAAS_ADMIN
	Name        string     `json:"name"`
	Roles       []UserRole `json:"roles"`
	CurrentRole UserRole   `json:"currentRole"`
}

// HasRole reports whether the user holds the given role.
func (u *AuthUser) HasRole(role UserRole) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
