package models

import (
	"time"

	"github.com/google/uuid"
)

// SupervisionRequest status constants
const (
	RequestStatusPending   = "pending"
	RequestStatusAccepted  = "accepted"
	RequestStatusRejected  = "rejected"
	RequestStatusCancelled = "cancelled"
)

// SupervisionRequest represents one owner's ask for a specific supervisor's
// review of their idea. At most one pending request exists per owner.
type SupervisionRequest struct {
	ID           uuid.UUID  `json:"id"`
	IdeaID       uuid.UUID  `json:"idea_id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	SupervisorID uuid.UUID  `json:"supervisor_id"`
	Status       string     `json:"status"` // pending, accepted, rejected, cancelled
	CreatedAt    time.Time  `json:"created_at"`
	DecidedAt    *time.Time `json:"decided_at"`

	// Non-DB fields, populated via JOIN for display
	IdeaTitle  string `json:"idea_title,omitempty"`
	OwnerName  string `json:"owner_name,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty"`
}

// IsTerminal returns true once the request can no longer change state.
func (r *SupervisionRequest) IsTerminal() bool {
	return r.Status != RequestStatusPending
}
