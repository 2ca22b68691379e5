package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	"github.com/nikitph/los-backend/internal/models"
	"github.com/nikitph/los-backend/internal/utils/mapping"
)

type PgxBankRepository struct {
	db *pgxpool.Pool
}

func newPgxBankRepository(db *pgxpool.Pool) portsrepo.BankRepositoryFacade {
	return &PgxBankRepository{db: db}
}

var _ portsrepo.BankRepositoryFacade = (*PgxBankRepository)(nil)

func (r *PgxBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	query := `
        INSERT INTO banks (
			bank_id, name, official_email, contact_number, onboarding_status,
			created_at, created_by, last_updated_at, last_updated_by
		)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		m.BankID,
		m.Name,
		m.OfficialEmail,
		m.ContactNumber,
		m.OnboardingStatus,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("bank already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save bank: %w", err)
	}
	return nil
}

func (r *PgxBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	query := `
		SELECT bank_id, name, official_email, contact_number, onboarding_status,
		       created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM banks
		WHERE bank_id = $1 AND deleted_at IS NULL;
	`
	var m models.Bank
	err := r.db.QueryRow(ctx, query, bankID).Scan(
		&m.BankID,
		&m.Name,
		&m.OfficialEmail,
		&m.ContactNumber,
		&m.OnboardingStatus,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank by ID %s: %w", bankID, err)
	}

	d := mapping.ToDomainBank(m)
	return &d, nil
}

func (r *PgxBankRepository) ListBanks(ctx context.Context, limit int, offset int) ([]domain.Bank, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT bank_id, name, official_email, contact_number, onboarding_status,
		       created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM banks
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks: %w", err)
	}
	defer rows.Close()

	modelBanks := []models.Bank{}
	for rows.Next() {
		var m models.Bank
		if err := rows.Scan(
			&m.BankID,
			&m.Name,
			&m.OfficialEmail,
			&m.ContactNumber,
			&m.OnboardingStatus,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bank row: %w", err)
		}
		modelBanks = append(modelBanks, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bank rows: %w", rows.Err())
	}

	return mapping.ToDomainBankSlice(modelBanks), nil
}

func (r *PgxBankRepository) UpdateBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	query := `
        UPDATE banks
        SET name = $1, official_email = $2, contact_number = $3, onboarding_status = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE bank_id = $7 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.OfficialEmail,
		m.ContactNumber,
		m.OnboardingStatus,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.BankID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update bank query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bank not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBankRepository) AddUserToBank(ctx context.Context, membership domain.BankMembership) error {
	m := mapping.ToModelBankMembership(membership)
	query := `
        INSERT INTO bank_memberships (user_id, bank_id, role, joined_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query, m.UserID, m.BankID, m.Role, m.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("user is already a member of the bank: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to add user to bank: %w", err)
	}
	return nil
}

func (r *PgxBankRepository) FindBankMemberships(ctx context.Context, userID string) ([]domain.BankMembership, error) {
	query := `
		SELECT user_id, bank_id, role, joined_at
		FROM bank_memberships
		WHERE user_id = $1
		ORDER BY joined_at ASC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank memberships: %w", err)
	}
	defer rows.Close()

	modelMemberships := []models.BankMembership{}
	for rows.Next() {
		var m models.BankMembership
		if err := rows.Scan(&m.UserID, &m.BankID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bank membership row: %w", err)
		}
		modelMemberships = append(modelMemberships, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bank membership rows: %w", rows.Err())
	}

	return mapping.ToDomainBankMembershipSlice(modelMemberships), nil
}

func (r *PgxBankRepository) FindBankMembershipRole(ctx context.Context, userID, bankID string) (*domain.BankMembership, error) {
	query := `
		SELECT user_id, bank_id, role, joined_at
		FROM bank_memberships
		WHERE user_id = $1 AND bank_id = $2;
	`
	var m models.BankMembership
	err := r.db.QueryRow(ctx, query, userID, bankID).Scan(&m.UserID, &m.BankID, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank membership: %w", err)
	}

	d := mapping.ToDomainBankMembership(m)
	return &d, nil
}
