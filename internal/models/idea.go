package models

import (
	"time"

	"github.com/google/uuid"
)

// Idea status constants
const (
	IdeaStatusDraft         = "draft"
	IdeaStatusPendingReview = "pending_review"
	IdeaStatusPublic        = "public"
)

// Idea represents a startup idea ("spark") owned by a single member.
// Status is only ever written by the workflow coordinator.
type Idea struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Status       string     `json:"status"` // draft, pending_review, public
	SupervisorID *uuid.UUID `json:"supervisor_id"` // set once the idea goes public
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Non-DB fields, populated via JOIN for display
	OwnerName      string `json:"owner_name,omitempty"`
	SupervisorName string `json:"supervisor_name,omitempty"`
}
