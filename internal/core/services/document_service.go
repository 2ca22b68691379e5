package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portsrepo "github.com/nikitph/los-backend/internal/core/ports/repositories"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/dto"
	"github.com/nikitph/los-backend/internal/middleware"
)

// DocumentService manages stored-blob metadata. The blobs themselves live in an
// external object store reached via presigned URLs.
type DocumentService struct {
	documentRepo portsrepo.DocumentRepositoryFacade
	abilitySvc   portssvc.AbilitySvcFacade
	timelineSvc  portssvc.TimelineSvcFacade
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(dr portsrepo.DocumentRepositoryFacade, as portssvc.AbilitySvcFacade, ts portssvc.TimelineSvcFacade) *DocumentService {
	return &DocumentService{
		documentRepo: dr,
		abilitySvc:   as,
		timelineSvc:  ts,
	}
}

var _ portssvc.DocumentSvcFacade = (*DocumentService)(nil)

func (s *DocumentService) AttachDocument(ctx context.Context, actor *domain.AuthUser, req dto.AttachDocumentRequest) (*domain.Document, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionCreate, domain.SubjectDocument) {
		return nil, apperrors.ErrForbidden
	}
	entityType := domain.EntityType(req.EntityType)
	if !domain.ValidEntityType(entityType) {
		return nil, fmt.Errorf("%w: unknown entity type %q", apperrors.ErrValidation, req.EntityType)
	}

	now := time.Now().UTC()
	document := domain.Document{
		DocumentID: uuid.NewString(),
		EntityType: entityType,
		EntityID:   req.EntityID,
		StorageKey: req.StorageKey,
		FileName:   req.FileName,
		FileSize:   req.FileSize,
		MimeType:   req.MimeType,
		Status:     domain.DocumentStatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.documentRepo.SaveDocument(ctx, document); err != nil {
		return nil, err
	}

	if _, err := s.timelineSvc.LogEntityEvent(ctx, actor, entityType, req.EntityID, domain.EventDocumentUploaded, req.FileName); err != nil {
		logger.Error("Failed to log document upload", slog.String("error", err.Error()), slog.String("document_id", document.DocumentID))
	}

	return &document, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, actor *domain.AuthUser, entityType domain.EntityType, entityID string) ([]domain.Document, error) {
	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionView, domain.SubjectDocument) {
		return nil, apperrors.ErrForbidden
	}
	return s.documentRepo.FindDocumentsByEntity(ctx, entityType, entityID)
}

// ReviewDocument marks a document VERIFIED or REJECTED and logs the outcome
// against the document's owning entity.
func (s *DocumentService) ReviewDocument(ctx context.Context, actor *domain.AuthUser, documentID string, approved bool) (*domain.Document, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ability := s.abilitySvc.DefineAbilityFor(actor)
	if ability.Cannot(domain.ActionUpdate, domain.SubjectDocument) {
		return nil, apperrors.ErrForbidden
	}

	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if document.Status != domain.DocumentStatusPending {
		return nil, fmt.Errorf("document already reviewed: %w", apperrors.ErrInvalidState)
	}

	status := domain.DocumentStatusVerified
	eventType := domain.EventDocumentVerified
	if !approved {
		status = domain.DocumentStatusRejected
		eventType = domain.EventDocumentRejected
	}

	if err := s.documentRepo.UpdateDocumentStatus(ctx, documentID, status, actor.UserID); err != nil {
		return nil, err
	}
	document.Status = status
	document.LastUpdatedAt = time.Now().UTC()
	document.LastUpdatedBy = actor.UserID

	if _, err := s.timelineSvc.LogEntityEvent(ctx, actor, document.EntityType, document.EntityID, eventType, document.FileName); err != nil {
		logger.Error("Failed to log document review", slog.String("error", err.Error()), slog.String("document_id", documentID))
	}

	return document, nil
}
