package dto

import (
	"time"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// AttachDocumentRequest records metadata for a blob already uploaded to the
// external object store.
type AttachDocumentRequest struct {
	EntityType string `json:"entityType" binding:"required"`
	EntityID   string `json:"entityID" binding:"required"`
	StorageKey string `json:"storageKey" binding:"required"`
	FileName   string `json:"fileName" binding:"required"`
	FileSize   int64  `json:"fileSize"`
	MimeType   string `json:"mimeType"`
}

// ReviewDocumentRequest is the verdict on a pending document.
type ReviewDocumentRequest struct {
	Approved bool `json:"approved"`
}

// DocumentResponse defines the data returned for a document record.
type DocumentResponse struct {
	DocumentID string    `json:"documentID"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityID"`
	StorageKey string    `json:"storageKey"`
	FileName   string    `json:"fileName"`
	FileSize   int64     `json:"fileSize"`
	MimeType   string    `json:"mimeType,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToDocumentResponse converts a domain.Document to its response DTO.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID: d.DocumentID,
		EntityType: string(d.EntityType),
		EntityID:   d.EntityID,
		StorageKey: d.StorageKey,
		FileName:   d.FileName,
		FileSize:   d.FileSize,
		MimeType:   d.MimeType,
		Status:     string(d.Status),
		CreatedAt:  d.CreatedAt,
	}
}

// ToDocumentResponses converts a slice of documents.
func ToDocumentResponses(docs []domain.Document) []DocumentResponse {
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = ToDocumentResponse(&docs[i])
	}
	return responses
}
