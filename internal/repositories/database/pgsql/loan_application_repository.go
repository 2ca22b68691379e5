package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	"github.com/nikitph/los-backend/internal/models"
	"github.com/nikitph/los-backend/internal/utils/mapping"
	"github.com/nikitph/los-backend/internal/utils/pagination"
)

type PgxLoanApplicationRepository struct {
	BaseRepository
}

func newPgxLoanApplicationRepository(db *pgxpool.Pool) portsrepo.LoanApplicationRepositoryWithTx {
	return &PgxLoanApplicationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.LoanApplicationRepositoryWithTx = (*PgxLoanApplicationRepository)(nil)

const selectLoanApplicationColumns = `
	loan_application_id, applicant_id, bank_id, loan_type, amount_requested, status,
	assigned_loan_officer_id, assigned_inspector_id,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at
`

func scanLoanApplication(row pgx.Row) (models.LoanApplication, error) {
	var m models.LoanApplication
	err := row.Scan(
		&m.LoanApplicationID,
		&m.ApplicantID,
		&m.BankID,
		&m.LoanType,
		&m.AmountRequested,
		&m.Status,
		&m.AssignedLoanOfficerID,
		&m.AssignedInspectorID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

// SaveWithTimeline inserts the application and its creation event in one
// transaction so a new application always carries its first audit record.
func (r *PgxLoanApplicationRepository) SaveWithTimeline(ctx context.Context, app domain.LoanApplication, event domain.TimelineEvent) error {
	m := mapping.ToModelLoanApplication(app)
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	query := `
        INSERT INTO loan_applications (
			loan_application_id, applicant_id, bank_id, loan_type, amount_requested, status,
			assigned_loan_officer_id, assigned_inspector_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err = tx.Exec(ctx, query,
		m.LoanApplicationID,
		m.ApplicantID,
		m.BankID,
		m.LoanType,
		m.AmountRequested,
		m.Status,
		m.AssignedLoanOfficerID,
		m.AssignedInspectorID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save loan application: %w", err)
	}

	eventModel := mapping.ToModelTimelineEvent(event)
	if _, err := tx.Exec(ctx, insertTimelineEventSQL, timelineEventArgs(eventModel)...); err != nil {
		return fmt.Errorf("failed to insert timeline event for loan application %s: %w", m.LoanApplicationID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxLoanApplicationRepository) FindLoanApplicationByID(ctx context.Context, loanApplicationID string) (*domain.LoanApplication, error) {
	query := `
		SELECT ` + selectLoanApplicationColumns + `
		FROM loan_applications
		WHERE loan_application_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanLoanApplication(r.Pool.QueryRow(ctx, query, loanApplicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan application by ID %s: %w", loanApplicationID, err)
	}

	d := mapping.ToDomainLoanApplication(m)
	return &d, nil
}

func (r *PgxLoanApplicationRepository) ListLoanApplicationsByBank(ctx context.Context, bankID string, status *domain.LoanStatus, limit int, nextToken *string) ([]domain.LoanApplication, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether there is a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + selectLoanApplicationColumns + `
		FROM loan_applications
	`
	filterClause := `WHERE bank_id = $1 AND deleted_at IS NULL`
	args := []interface{}{bankID}

	if status != nil {
		args = append(args, string(*status))
		filterClause += ` AND status = $` + strconv.Itoa(len(args))
	}

	// Keyset ordering must be stable; loan_application_id breaks created_at ties.
	orderByClause := `ORDER BY created_at DESC, loan_application_id DESC`

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt, lastID)
		filterClause += ` AND (created_at, loan_application_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query loan applications for bank %s: %w", bankID, err)
	}
	defer rows.Close()

	modelApps := make([]models.LoanApplication, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanLoanApplication(rows)
		if scanErr != nil {
			return nil, nil, fmt.Errorf("failed to scan loan application row: %w", scanErr)
		}
		modelApps = append(modelApps, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating loan application rows: %w", err)
	}

	var nextTokenVal *string
	results := modelApps
	if len(modelApps) > limit {
		last := modelApps[limit-1]
		newToken := pagination.EncodeCursor(last.CreatedAt, last.LoanApplicationID)
		nextTokenVal = &newToken
		results = modelApps[:limit]
	}

	return mapping.ToDomainLoanApplicationSlice(results), nextTokenVal, nil
}

func (r *PgxLoanApplicationRepository) ListLoanApplicationsByApplicant(ctx context.Context, applicantID string) ([]domain.LoanApplication, error) {
	query := `
		SELECT ` + selectLoanApplicationColumns + `
		FROM loan_applications
		WHERE applicant_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query loan applications for applicant %s: %w", applicantID, err)
	}
	defer rows.Close()

	modelApps := []models.LoanApplication{}
	for rows.Next() {
		m, scanErr := scanLoanApplication(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan loan application row: %w", scanErr)
		}
		modelApps = append(modelApps, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating loan application rows: %w", rows.Err())
	}

	return mapping.ToDomainLoanApplicationSlice(modelApps), nil
}

// UpdateLoanApplication updates the fields an applicant may still edit. Amount
// and loan type only change while the row is in DRAFT; the WHERE clause makes
// this a no-op (and therefore an error) in any other status.
func (r *PgxLoanApplicationRepository) UpdateLoanApplication(ctx context.Context, app domain.LoanApplication) error {
	m := mapping.ToModelLoanApplication(app)
	query := `
        UPDATE loan_applications
        SET loan_type = $1, amount_requested = $2, last_updated_at = $3, last_updated_by = $4
        WHERE loan_application_id = $5 AND status = $6 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.LoanType,
		m.AmountRequested,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.LoanApplicationID,
		string(domain.LoanStatusDraft),
	)
	if err != nil {
		return fmt.Errorf("failed to execute update loan application query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("loan application not editable: %w", apperrors.ErrInvalidState)
	}
	return nil
}

// UpdateStatusWithTimeline writes the status change and its timeline event in one
// transaction so the audit record cannot be lost if the process dies between the
// two writes. Assignment columns are only touched when the pointers are non-nil.
func (r *PgxLoanApplicationRepository) UpdateStatusWithTimeline(ctx context.Context, loanApplicationID string, status domain.LoanStatus, assignedLoanOfficerID, assignedInspectorID *string, updatedBy string, updatedAt time.Time, event domain.TimelineEvent) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	query := `
        UPDATE loan_applications
        SET status = $1,
            assigned_loan_officer_id = COALESCE($2, assigned_loan_officer_id),
            assigned_inspector_id = COALESCE($3, assigned_inspector_id),
            last_updated_at = $4, last_updated_by = $5
        WHERE loan_application_id = $6 AND deleted_at IS NULL;
    `
	cmdTag, err := tx.Exec(ctx, query,
		string(status),
		assignedLoanOfficerID,
		assignedInspectorID,
		updatedAt,
		updatedBy,
		loanApplicationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan application status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("loan application not found or already deleted: %w", apperrors.ErrNotFound)
	}

	eventModel := mapping.ToModelTimelineEvent(event)
	if _, err := tx.Exec(ctx, insertTimelineEventSQL, timelineEventArgs(eventModel)...); err != nil {
		return fmt.Errorf("failed to insert timeline event for loan application %s: %w", loanApplicationID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxLoanApplicationRepository) SaveGuarantor(ctx context.Context, guarantor domain.Guarantor) error {
	m := mapping.ToModelGuarantor(guarantor)
	query := `
        INSERT INTO guarantors (
			guarantor_id, loan_application_id, first_name, last_name,
			address_line, address_city, address_state, address_zip,
			mobile_number, email,
			created_at, created_by, last_updated_at, last_updated_by
		)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.GuarantorID,
		m.LoanApplicationID,
		m.FirstName,
		m.LastName,
		m.AddressLine,
		m.AddressCity,
		m.AddressState,
		m.AddressZip,
		m.MobileNumber,
		m.Email,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save guarantor: %w", err)
	}
	return nil
}

func (r *PgxLoanApplicationRepository) FindGuarantorsByLoanApplicationID(ctx context.Context, loanApplicationID string) ([]domain.Guarantor, error) {
	query := `
		SELECT guarantor_id, loan_application_id, first_name, last_name,
		       address_line, address_city, address_state, address_zip,
		       mobile_number, email,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM guarantors
		WHERE loan_application_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, loanApplicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guarantors: %w", err)
	}
	defer rows.Close()

	modelGuarantors := []models.Guarantor{}
	for rows.Next() {
		var m models.Guarantor
		if err := rows.Scan(
			&m.GuarantorID,
			&m.LoanApplicationID,
			&m.FirstName,
			&m.LastName,
			&m.AddressLine,
			&m.AddressCity,
			&m.AddressState,
			&m.AddressZip,
			&m.MobileNumber,
			&m.Email,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan guarantor row: %w", err)
		}
		modelGuarantors = append(modelGuarantors, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating guarantor rows: %w", rows.Err())
	}

	return mapping.ToDomainGuarantorSlice(modelGuarantors), nil
}
