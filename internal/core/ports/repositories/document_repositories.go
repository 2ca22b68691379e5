package repositories

import (
	"context"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// DocumentReader defines read operations for document metadata.
type DocumentReader interface {
	// FindDocumentByID retrieves a specific document record.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// FindDocumentsByEntity retrieves document records attached to an entity.
	FindDocumentsByEntity(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.Document, error)
}

// DocumentWriter defines write operations for document metadata.
type DocumentWriter interface {
	// SaveDocument persists a new document record.
	SaveDocument(ctx context.Context, document domain.Document) error

	// UpdateDocumentStatus updates the review status of a document.
	UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updatedBy string) error
}

// DocumentRepositoryFacade combines document repository interfaces.
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
