package models

import "time"

// Document represents a row of the documents table. The blob itself is stored
// externally and addressed by storage_key.
type Document struct {
	DocumentID string `db:"document_id"`
	EntityType string `db:"entity_type"`
	EntityID   string `db:"entity_id"`
	StorageKey string `db:"storage_key"`
	FileName   string `db:"file_name"`
	FileSize   int64  `db:"file_size"`
	MimeType   string `db:"mime_type"`
	Status     string `db:"status"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
