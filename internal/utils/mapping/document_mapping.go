package mapping

import (
	"github.com/nikitph/los-backend/internal/core/domain"
	"github.com/nikitph/los-backend/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:  d.DocumentID,
		EntityType:  string(d.EntityType),
		EntityID:    d.EntityID,
		StorageKey:  d.StorageKey,
		FileName:    d.FileName,
		FileSize:    d.FileSize,
		MimeType:    d.MimeType,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
		DeletedAt:   d.DeletedAt,
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:  m.DocumentID,
		EntityType:  domain.EntityType(m.EntityType),
		EntityID:    m.EntityID,
		StorageKey:  m.StorageKey,
		FileName:    m.FileName,
		FileSize:    m.FileSize,
		MimeType:    m.MimeType,
		Status:      domain.DocumentStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
}

// ToDomainDocumentSlice converts a slice of model Documents to domain Documents
func ToDomainDocumentSlice(ms []models.Document) []domain.Document {
	ds := make([]domain.Document, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocument(m)
	}
	return ds
}
