package models

import (
	"encoding/json"
	"time"
)

// PendingAction represents a row of the pending_actions table.
type PendingAction struct {
	PendingActionID string          `db:"pending_action_id"`
	BankID          string          `db:"bank_id"`
	ActionType      string          `db:"action_type"`
	Payload         json.RawMessage `db:"payload"`
	Status          string          `db:"status"`
	RequestedByID   string          `db:"requested_by_id"`
	RequestedAt     time.Time       `db:"requested_at"`
	ReviewedByID    *string         `db:"reviewed_by_id"`
	ReviewedAt      *time.Time      `db:"reviewed_at"`
	ReviewRemarks   string          `db:"review_remarks"`
	TargetModel     string          `db:"target_model"`
	TargetID        *string         `db:"target_id"`
}
