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

type PgxDocumentRepository struct {
	db *pgxpool.Pool
}

func newPgxDocumentRepository(db *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{db: db}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

const selectDocumentColumns = `
	document_id, entity_type, entity_id, storage_key, file_name, file_size, mime_type, status,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at
`

func scanDocument(row pgx.Row) (models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID,
		&m.EntityType,
		&m.EntityID,
		&m.StorageKey,
		&m.FileName,
		&m.FileSize,
		&m.MimeType,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	m := mapping.ToModelDocument(document)
	query := `
        INSERT INTO documents (
			document_id, entity_type, entity_id, storage_key, file_name, file_size, mime_type, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		m.DocumentID,
		m.EntityType,
		m.EntityID,
		m.StorageKey,
		m.FileName,
		m.FileSize,
		m.MimeType,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `
		SELECT ` + selectDocumentColumns + `
		FROM documents
		WHERE document_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanDocument(r.db.QueryRow(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document by ID %s: %w", documentID, err)
	}

	d := mapping.ToDomainDocument(m)
	return &d, nil
}

func (r *PgxDocumentRepository) FindDocumentsByEntity(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.Document, error) {
	query := `
		SELECT ` + selectDocumentColumns + `
		FROM documents
		WHERE entity_type = $1 AND entity_id = $2 AND deleted_at IS NULL
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, string(entityType), entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	modelDocuments := []models.Document{}
	for rows.Next() {
		m, scanErr := scanDocument(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", scanErr)
		}
		modelDocuments = append(modelDocuments, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", rows.Err())
	}

	return mapping.ToDomainDocumentSlice(modelDocuments), nil
}

func (r *PgxDocumentRepository) UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updatedBy string) error {
	query := `
        UPDATE documents
        SET status = $1, last_updated_at = $2, last_updated_by = $3
        WHERE document_id = $4 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, string(status), time.Now().UTC(), updatedBy, documentID)
	if err != nil {
		return fmt.Errorf("failed to update document status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("document not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
