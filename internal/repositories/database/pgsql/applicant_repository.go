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

type PgxApplicantRepository struct {
	db *pgxpool.Pool
}

func newPgxApplicantRepository(db *pgxpool.Pool) portsrepo.ApplicantRepositoryFacade {
	return &PgxApplicantRepository{db: db}
}

var _ portsrepo.ApplicantRepositoryFacade = (*PgxApplicantRepository)(nil)

const selectApplicantColumns = `
	applicant_id, user_id, bank_id, date_of_birth,
	address_line, address_city, address_state, address_zip, photo_key,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at
`

func scanApplicant(row pgx.Row) (models.Applicant, error) {
	var m models.Applicant
	err := row.Scan(
		&m.ApplicantID,
		&m.UserID,
		&m.BankID,
		&m.DateOfBirth,
		&m.AddressLine,
		&m.AddressCity,
		&m.AddressState,
		&m.AddressZip,
		&m.PhotoKey,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxApplicantRepository) SaveApplicant(ctx context.Context, applicant domain.Applicant) error {
	m := mapping.ToModelApplicant(applicant)
	query := `
        INSERT INTO applicants (
			applicant_id, user_id, bank_id, date_of_birth,
			address_line, address_city, address_state, address_zip, photo_key,
			created_at, created_by, last_updated_at, last_updated_by
		)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.db.Exec(ctx, query,
		m.ApplicantID,
		m.UserID,
		m.BankID,
		m.DateOfBirth,
		m.AddressLine,
		m.AddressCity,
		m.AddressState,
		m.AddressZip,
		m.PhotoKey,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("applicant already exists for user in bank: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save applicant: %w", err)
	}
	return nil
}

func (r *PgxApplicantRepository) FindApplicantByID(ctx context.Context, applicantID string) (*domain.Applicant, error) {
	query := `
		SELECT ` + selectApplicantColumns + `
		FROM applicants
		WHERE applicant_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanApplicant(r.db.QueryRow(ctx, query, applicantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find applicant by ID %s: %w", applicantID, err)
	}

	d := mapping.ToDomainApplicant(m)
	return &d, nil
}

func (r *PgxApplicantRepository) FindApplicantByUserID(ctx context.Context, userID, bankID string) (*domain.Applicant, error) {
	query := `
		SELECT ` + selectApplicantColumns + `
		FROM applicants
		WHERE user_id = $1 AND bank_id = $2 AND deleted_at IS NULL;
	`
	m, err := scanApplicant(r.db.QueryRow(ctx, query, userID, bankID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find applicant by user ID %s: %w", userID, err)
	}

	d := mapping.ToDomainApplicant(m)
	return &d, nil
}

func (r *PgxApplicantRepository) ListApplicantsByBank(ctx context.Context, bankID string, limit int, offset int) ([]domain.Applicant, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + selectApplicantColumns + `
		FROM applicants
		WHERE bank_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, bankID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query applicants: %w", err)
	}
	defer rows.Close()

	modelApplicants := []models.Applicant{}
	for rows.Next() {
		m, err := scanApplicant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan applicant row: %w", err)
		}
		modelApplicants = append(modelApplicants, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating applicant rows: %w", rows.Err())
	}

	return mapping.ToDomainApplicantSlice(modelApplicants), nil
}

func (r *PgxApplicantRepository) UpdateApplicant(ctx context.Context, applicant domain.Applicant) error {
	m := mapping.ToModelApplicant(applicant)
	query := `
        UPDATE applicants
        SET date_of_birth = $1, address_line = $2, address_city = $3,
            address_state = $4, address_zip = $5, photo_key = $6,
            last_updated_at = $7, last_updated_by = $8
        WHERE applicant_id = $9 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.DateOfBirth,
		m.AddressLine,
		m.AddressCity,
		m.AddressState,
		m.AddressZip,
		m.PhotoKey,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ApplicantID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update applicant query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("applicant not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
