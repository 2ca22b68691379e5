package domain

import "time"

// DocumentStatus tracks review of an uploaded document's metadata.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "PENDING"
	DocumentStatusVerified DocumentStatus = "VERIFIED"
	DocumentStatusRejected DocumentStatus = "REJECTED"
)

// Document is the metadata record for a stored blob. The blob itself lives in an
// external object store and is referenced by StorageKey; upload and download flow
// through presigned URLs outside this core.
type Document struct {
	DocumentID string         `json:"documentID"` // Primary Key (UUID)
	EntityType EntityType     `json:"entityType"` // What the document is attached to
	EntityID   string         `json:"entityID"`
	StorageKey string         `json:"storageKey"`
	FileName   string         `json:"fileName"`
	FileSize   int64          `json:"fileSize"`
	MimeType   string         `json:"mimeType"`
	Status     DocumentStatus `json:"status"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
