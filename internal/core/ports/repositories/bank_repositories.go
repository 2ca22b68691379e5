package repositories

import (
	"context"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// BankReader defines read operations for bank data.
type BankReader interface {
	// FindBankByID retrieves a specific bank by its ID.
	FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error)

	// ListBanks retrieves a page of banks.
	ListBanks(ctx context.Context, limit int, offset int) ([]domain.Bank, error)
}

// BankWriter defines write operations for bank data.
type BankWriter interface {
	// SaveBank persists a new bank.
	SaveBank(ctx context.Context, bank domain.Bank) error

	// UpdateBank updates mutable bank fields.
	UpdateBank(ctx context.Context, bank domain.Bank) error
}

// BankMembershipManager defines operations for bank memberships.
type BankMembershipManager interface {
	// AddUserToBank adds a user to a bank with a specific role.
	AddUserToBank(ctx context.Context, membership domain.BankMembership) error

	// FindBankMemberships retrieves all of a user's bank memberships.
	FindBankMemberships(ctx context.Context, userID string) ([]domain.BankMembership, error)

	// FindBankMembershipRole retrieves the role of a user in a bank.
	FindBankMembershipRole(ctx context.Context, userID, bankID string) (*domain.BankMembership, error)
}

// BankRepositoryFacade combines all bank-related repository interfaces.
type BankRepositoryFacade interface {
	BankReader
	BankWriter
	BankMembershipManager
}
