package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	"github.com/nikitph/los-backend/internal/models"
	"github.com/nikitph/los-backend/internal/utils/mapping"
)

type PgxVerificationRepository struct {
	db *pgxpool.Pool
}

func newPgxVerificationRepository(db *pgxpool.Pool) portsrepo.VerificationRepositoryFacade {
	return &PgxVerificationRepository{db: db}
}

var _ portsrepo.VerificationRepositoryFacade = (*PgxVerificationRepository)(nil)

const selectVerificationColumns = `
	verification_id, loan_application_id, type, status, result, remarks,
	address_line, address_city, address_state, address_zip, photo_key,
	verified_by_id, verified_at,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at
`

func scanVerification(row pgx.Row) (models.Verification, error) {
	var m models.Verification
	err := row.Scan(
		&m.VerificationID,
		&m.LoanApplicationID,
		&m.Type,
		&m.Status,
		&m.Result,
		&m.Remarks,
		&m.AddressLine,
		&m.AddressCity,
		&m.AddressState,
		&m.AddressZip,
		&m.PhotoKey,
		&m.VerifiedByID,
		&m.VerifiedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxVerificationRepository) SaveVerification(ctx context.Context, verification domain.Verification) error {
	m := mapping.ToModelVerification(verification)
	query := `
        INSERT INTO verifications (
			verification_id, loan_application_id, type, status, result, remarks,
			address_line, address_city, address_state, address_zip, photo_key,
			verified_by_id, verified_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
    `
	_, err := r.db.Exec(ctx, query,
		m.VerificationID,
		m.LoanApplicationID,
		m.Type,
		m.Status,
		m.Result,
		m.Remarks,
		m.AddressLine,
		m.AddressCity,
		m.AddressState,
		m.AddressZip,
		m.PhotoKey,
		m.VerifiedByID,
		m.VerifiedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save verification: %w", err)
	}
	return nil
}

func (r *PgxVerificationRepository) FindVerificationByID(ctx context.Context, verificationID string) (*domain.Verification, error) {
	query := `
		SELECT ` + selectVerificationColumns + `
		FROM verifications
		WHERE verification_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanVerification(r.db.QueryRow(ctx, query, verificationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find verification by ID %s: %w", verificationID, err)
	}

	d := mapping.ToDomainVerification(m)
	return &d, nil
}

func (r *PgxVerificationRepository) FindVerificationsByLoanApplicationID(ctx context.Context, loanApplicationID string) ([]domain.Verification, error) {
	query := `
		SELECT ` + selectVerificationColumns + `
		FROM verifications
		WHERE loan_application_id = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, loanApplicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query verifications: %w", err)
	}
	defer rows.Close()

	modelVerifications := []models.Verification{}
	for rows.Next() {
		m, scanErr := scanVerification(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan verification row: %w", scanErr)
		}
		modelVerifications = append(modelVerifications, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating verification rows: %w", rows.Err())
	}

	return mapping.ToDomainVerificationSlice(modelVerifications), nil
}

// HasFailedVerification treats an application with no verification rows as
// failed: completing the verification phase without recording anything is not a
// pass. One query answers both questions.
func (r *PgxVerificationRepository) HasFailedVerification(ctx context.Context, loanApplicationID string) (bool, error) {
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE result = FALSE) AS failed
		FROM verifications
		WHERE loan_application_id = $1 AND deleted_at IS NULL;
	`
	var total, failed int64
	if err := r.db.QueryRow(ctx, query, loanApplicationID).Scan(&total, &failed); err != nil {
		return false, fmt.Errorf("failed to count verifications for loan application %s: %w", loanApplicationID, err)
	}
	if total == 0 {
		return true, nil
	}
	return failed > 0, nil
}

func (r *PgxVerificationRepository) UpdateVerification(ctx context.Context, verification domain.Verification) error {
	m := mapping.ToModelVerification(verification)
	query := `
        UPDATE verifications
        SET status = $1, result = $2, remarks = $3, photo_key = $4,
            verified_by_id = $5, verified_at = $6,
            last_updated_at = $7, last_updated_by = $8
        WHERE verification_id = $9 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Status,
		m.Result,
		m.Remarks,
		m.PhotoKey,
		m.VerifiedByID,
		m.VerifiedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.VerificationID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update verification query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("verification not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
