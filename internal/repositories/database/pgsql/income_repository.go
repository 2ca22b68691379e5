package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	"github.com/nikitph/los-backend/internal/models"
	"github.com/nikitph/los-backend/internal/utils/mapping"
)

type PgxIncomeRepository struct {
	BaseRepository
}

func newPgxIncomeRepository(db *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

const selectIncomeColumns = `
	income_id, applicant_id, type, gross_income, rent, depreciation, income_from_business,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at
`

func scanIncome(row pgx.Row) (models.Income, error) {
	var m models.Income
	err := row.Scan(
		&m.IncomeID,
		&m.ApplicantID,
		&m.Type,
		&m.GrossIncome,
		&m.Rent,
		&m.Depreciation,
		&m.IncomeFromBusiness,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	m := mapping.ToModelIncome(income)
	query := `
        INSERT INTO incomes (
			income_id, applicant_id, type, gross_income, rent, depreciation, income_from_business,
			created_at, created_by, last_updated_at, last_updated_by
		)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.IncomeID,
		m.ApplicantID,
		m.Type,
		m.GrossIncome,
		m.Rent,
		m.Depreciation,
		m.IncomeFromBusiness,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save income: %w", err)
	}
	return nil
}

func (r *PgxIncomeRepository) FindLatestIncomeByApplicantID(ctx context.Context, applicantID string) (*domain.Income, error) {
	query := `
		SELECT ` + selectIncomeColumns + `
		FROM incomes
		WHERE applicant_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1;
	`
	m, err := scanIncome(r.Pool.QueryRow(ctx, query, applicantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest income for applicant %s: %w", applicantID, err)
	}

	d := mapping.ToDomainIncome(m)
	return &d, nil
}

func (r *PgxIncomeRepository) FindIncomesByApplicantID(ctx context.Context, applicantID string) ([]domain.Income, error) {
	query := `
		SELECT ` + selectIncomeColumns + `
		FROM incomes
		WHERE applicant_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer rows.Close()

	modelIncomes := []models.Income{}
	for rows.Next() {
		m, scanErr := scanIncome(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan income row: %w", scanErr)
		}
		modelIncomes = append(modelIncomes, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating income rows: %w", rows.Err())
	}

	ds := make([]domain.Income, len(modelIncomes))
	for i, m := range modelIncomes {
		ds[i] = mapping.ToDomainIncome(m)
	}
	return ds, nil
}

func (r *PgxIncomeRepository) MarkIncomeDeleted(ctx context.Context, incomeID string, deletedBy string) error {
	query := `
        UPDATE incomes
        SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
        WHERE income_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, time.Now().UTC(), deletedBy, incomeID)
	if err != nil {
		return fmt.Errorf("failed to mark income as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("income not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

// SaveObligation persists the obligation record and its detail rows in one
// transaction; a half-written obligation would corrupt eligibility results.
func (r *PgxIncomeRepository) SaveObligation(ctx context.Context, obligation domain.LoanObligation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelLoanObligation(obligation)
	query := `
        INSERT INTO loan_obligations (
			loan_obligation_id, applicant_id, total_emi,
			created_at, created_by, last_updated_at, last_updated_by
		)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	if _, err := tx.Exec(ctx, query,
		m.LoanObligationID,
		m.ApplicantID,
		m.TotalEmi,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to save loan obligation: %w", err)
	}

	detailQuery := `
        INSERT INTO obligation_details (
			obligation_detail_id, loan_obligation_id, lender_name,
			loan_amount, emi_amount, outstanding_amount
		)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	for _, detail := range obligation.Details {
		dm := mapping.ToModelObligationDetail(detail)
		if _, err := tx.Exec(ctx, detailQuery,
			dm.ObligationDetailID,
			dm.LoanObligationID,
			dm.LenderName,
			dm.LoanAmount,
			dm.EmiAmount,
			dm.OutstandingAmount,
		); err != nil {
			return fmt.Errorf("failed to save obligation detail: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxIncomeRepository) FindLatestObligationByApplicantID(ctx context.Context, applicantID string) (*domain.LoanObligation, error) {
	query := `
		SELECT loan_obligation_id, applicant_id, total_emi,
		       created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM loan_obligations
		WHERE applicant_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1;
	`
	var m models.LoanObligation
	err := r.Pool.QueryRow(ctx, query, applicantID).Scan(
		&m.LoanObligationID,
		&m.ApplicantID,
		&m.TotalEmi,
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
		return nil, fmt.Errorf("failed to find latest obligation for applicant %s: %w", applicantID, err)
	}

	d := mapping.ToDomainLoanObligation(m)

	detailQuery := `
		SELECT obligation_detail_id, loan_obligation_id, lender_name,
		       loan_amount, emi_amount, outstanding_amount
		FROM obligation_details
		WHERE loan_obligation_id = $1;
	`
	rows, err := r.Pool.Query(ctx, detailQuery, d.LoanObligationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query obligation details: %w", err)
	}
	defer rows.Close()

	modelDetails := []models.ObligationDetail{}
	for rows.Next() {
		var dm models.ObligationDetail
		if err := rows.Scan(
			&dm.ObligationDetailID,
			&dm.LoanObligationID,
			&dm.LenderName,
			&dm.LoanAmount,
			&dm.EmiAmount,
			&dm.OutstandingAmount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan obligation detail row: %w", err)
		}
		modelDetails = append(modelDetails, dm)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating obligation detail rows: %w", rows.Err())
	}

	d.Details = mapping.ToDomainObligationDetailSlice(modelDetails)
	return &d, nil
}

func (r *PgxIncomeRepository) MarkObligationDeleted(ctx context.Context, loanObligationID string, deletedBy string) error {
	query := `
        UPDATE loan_obligations
        SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
        WHERE loan_obligation_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, time.Now().UTC(), deletedBy, loanObligationID)
	if err != nil {
		return fmt.Errorf("failed to mark obligation as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("obligation not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
