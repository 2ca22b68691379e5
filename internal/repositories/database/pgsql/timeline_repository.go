package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	"github.com/nikitph/los-backend/internal/models"
	"github.com/nikitph/los-backend/internal/utils/mapping"
)

// insertTimelineEventSQL is shared with the repositories that append a timeline
// event inside their own transaction (loan status changes, pending-action reviews).
const insertTimelineEventSQL = `
	INSERT INTO timeline_events (
		timeline_event_id, entity_type, entity_id, event_type,
		actor_user_id, actor_name, actor_role, remarks, action_data,
		loan_application_id, applicant_id, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

func timelineEventArgs(m models.TimelineEvent) []any {
	return []any{
		m.TimelineEventID,
		m.EntityType,
		m.EntityID,
		m.EventType,
		m.ActorUserID,
		m.ActorName,
		m.ActorRole,
		m.Remarks,
		m.ActionData,
		m.LoanApplicationID,
		m.ApplicantID,
		m.CreatedAt,
	}
}

const selectTimelineEventColumns = `
	timeline_event_id, entity_type, entity_id, event_type,
	actor_user_id, actor_name, actor_role, remarks, action_data,
	loan_application_id, applicant_id, created_at
`

type PgxTimelineRepository struct {
	BaseRepository
}

func newPgxTimelineRepository(db *pgxpool.Pool) portsrepo.TimelineRepositoryFacade {
	return &PgxTimelineRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TimelineRepositoryFacade = (*PgxTimelineRepository)(nil)

// SaveTimelineEvent appends a new event. There is no update or delete path for
// timeline rows anywhere in this package.
func (r *PgxTimelineRepository) SaveTimelineEvent(ctx context.Context, event domain.TimelineEvent) error {
	m := mapping.ToModelTimelineEvent(event)
	_, err := r.Pool.Exec(ctx, insertTimelineEventSQL, timelineEventArgs(m)...)
	if err != nil {
		return fmt.Errorf("failed to save timeline event: %w", err)
	}
	return nil
}

func (r *PgxTimelineRepository) FindTimelineEventsByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.TimelineEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT ` + selectTimelineEventColumns + `
		FROM timeline_events
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query timeline events: %w", err)
	}
	defer rows.Close()

	modelEvents := []models.TimelineEvent{}
	for rows.Next() {
		var m models.TimelineEvent
		if err := rows.Scan(
			&m.TimelineEventID,
			&m.EntityType,
			&m.EntityID,
			&m.EventType,
			&m.ActorUserID,
			&m.ActorName,
			&m.ActorRole,
			&m.Remarks,
			&m.ActionData,
			&m.LoanApplicationID,
			&m.ApplicantID,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan timeline event row: %w", err)
		}
		modelEvents = append(modelEvents, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating timeline event rows: %w", rows.Err())
	}

	return mapping.ToDomainTimelineEventSlice(modelEvents), nil
}

func (r *PgxTimelineRepository) FindTimelineEventsByLoanApplication(ctx context.Context, loanApplicationID string, limit int) ([]domain.TimelineEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT ` + selectTimelineEventColumns + `
		FROM timeline_events
		WHERE loan_application_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, loanApplicationID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query timeline events for loan application %s: %w", loanApplicationID, err)
	}
	defer rows.Close()

	modelEvents := []models.TimelineEvent{}
	for rows.Next() {
		var m models.TimelineEvent
		if err := rows.Scan(
			&m.TimelineEventID,
			&m.EntityType,
			&m.EntityID,
			&m.EventType,
			&m.ActorUserID,
			&m.ActorName,
			&m.ActorRole,
			&m.Remarks,
			&m.ActionData,
			&m.LoanApplicationID,
			&m.ApplicantID,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan timeline event row: %w", err)
		}
		modelEvents = append(modelEvents, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating timeline event rows: %w", rows.Err())
	}

	return mapping.ToDomainTimelineEventSlice(modelEvents), nil
}
