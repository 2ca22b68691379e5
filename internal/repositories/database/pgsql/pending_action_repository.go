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

type PgxPendingActionRepository struct {
	BaseRepository
}

func newPgxPendingActionRepository(db *pgxpool.Pool) portsrepo.PendingActionRepositoryFacade {
	return &PgxPendingActionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PendingActionRepositoryFacade = (*PgxPendingActionRepository)(nil)

const selectPendingActionColumns = `
	pending_action_id, bank_id, action_type, payload, status,
	requested_by_id, requested_at, reviewed_by_id, reviewed_at, review_remarks,
	target_model, target_id
`

func scanPendingAction(row pgx.Row) (models.PendingAction, error) {
	var m models.PendingAction
	err := row.Scan(
		&m.PendingActionID,
		&m.BankID,
		&m.ActionType,
		&m.Payload,
		&m.Status,
		&m.RequestedByID,
		&m.RequestedAt,
		&m.ReviewedByID,
		&m.ReviewedAt,
		&m.ReviewRemarks,
		&m.TargetModel,
		&m.TargetID,
	)
	return m, err
}

// SaveWithTimeline inserts the request and its ACTION_REQUESTED event in one
// transaction, mirroring FinalizeWithTimeline on the review side.
func (r *PgxPendingActionRepository) SaveWithTimeline(ctx context.Context, action domain.PendingAction, event domain.TimelineEvent) error {
	m := mapping.ToModelPendingAction(action)
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	query := `
        INSERT INTO pending_actions (
			pending_action_id, bank_id, action_type, payload, status,
			requested_by_id, requested_at, review_remarks, target_model
		)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err = tx.Exec(ctx, query,
		m.PendingActionID,
		m.BankID,
		m.ActionType,
		m.Payload,
		m.Status,
		m.RequestedByID,
		m.RequestedAt,
		m.ReviewRemarks,
		m.TargetModel,
	)
	if err != nil {
		return fmt.Errorf("failed to save pending action: %w", err)
	}

	eventModel := mapping.ToModelTimelineEvent(event)
	if _, err := tx.Exec(ctx, insertTimelineEventSQL, timelineEventArgs(eventModel)...); err != nil {
		return fmt.Errorf("failed to insert timeline event for pending action %s: %w", m.PendingActionID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPendingActionRepository) FindPendingActionByID(ctx context.Context, pendingActionID string) (*domain.PendingAction, error) {
	query := `
		SELECT ` + selectPendingActionColumns + `
		FROM pending_actions
		WHERE pending_action_id = $1;
	`
	m, err := scanPendingAction(r.Pool.QueryRow(ctx, query, pendingActionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pending action by ID %s: %w", pendingActionID, err)
	}

	d := mapping.ToDomainPendingAction(m)
	return &d, nil
}

func (r *PgxPendingActionRepository) ListPendingActionsByBank(ctx context.Context, bankID string, status *domain.PendingActionStatus, limit int) ([]domain.PendingAction, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + selectPendingActionColumns + `
		FROM pending_actions
		WHERE bank_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY requested_at DESC
		LIMIT $3;
	`
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}
	rows, err := r.Pool.Query(ctx, query, bankID, statusArg, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending actions for bank %s: %w", bankID, err)
	}
	defer rows.Close()

	modelActions := []models.PendingAction{}
	for rows.Next() {
		m, scanErr := scanPendingAction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan pending action row: %w", scanErr)
		}
		modelActions = append(modelActions, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating pending action rows: %w", rows.Err())
	}

	return mapping.ToDomainPendingActionSlice(modelActions), nil
}

// FinalizeWithTimeline moves a pending action to a terminal status and appends
// the timeline event in the same transaction. The status = 'PENDING' guard in
// the UPDATE makes the first reviewer win; a concurrent second review affects
// zero rows and surfaces as ErrInvalidState.
func (r *PgxPendingActionRepository) FinalizeWithTimeline(ctx context.Context, pendingActionID string, status domain.PendingActionStatus, reviewerID string, reviewedAt time.Time, remarks string, targetID *string, event domain.TimelineEvent) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
        UPDATE pending_actions
        SET status = $1, reviewed_by_id = $2, reviewed_at = $3, review_remarks = $4,
            target_id = COALESCE($5, target_id)
        WHERE pending_action_id = $6 AND status = $7;
    `
	cmdTag, err := tx.Exec(ctx, query,
		string(status),
		reviewerID,
		reviewedAt,
		remarks,
		targetID,
		pendingActionID,
		string(domain.PendingActionPending),
	)
	if err != nil {
		return fmt.Errorf("failed to finalize pending action: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("pending action already reviewed or missing: %w", apperrors.ErrInvalidState)
	}

	eventModel := mapping.ToModelTimelineEvent(event)
	if _, err := tx.Exec(ctx, insertTimelineEventSQL, timelineEventArgs(eventModel)...); err != nil {
		return fmt.Errorf("failed to insert timeline event for pending action %s: %w", pendingActionID, err)
	}

	return r.Commit(ctx, tx)
}
