package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"youthhub/internal/models"
)

// Store sentinels. Implementations translate their storage-level "no rows"
// and unique-violation conditions into these so the coordinator can reason
// about them without knowing the storage engine.
var (
	ErrIdeaNotFound     = errors.New("idea not found")
	ErrRequestNotFound  = errors.New("supervision request not found")
	ErrDuplicateIdea    = errors.New("owner already has an idea")
	ErrDuplicatePending = errors.New("owner already has a pending request")
)

// IdeaStore persists idea records. Each method is atomic for a single record.
type IdeaStore interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Idea, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Idea, error)
	Insert(ctx context.Context, idea *models.Idea) error
	UpdateContent(ctx context.Context, id uuid.UUID, title, description, category string) error
	// SetStatus transitions the idea's status and, when the idea goes public,
	// records the accepting supervisor.
	SetStatus(ctx context.Context, id uuid.UUID, status string, supervisorID *uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RequestStore persists supervision request records.
type RequestStore interface {
	GetPendingByOwner(ctx context.Context, ownerID uuid.UUID) (*models.SupervisionRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.SupervisionRequest, error)
	Insert(ctx context.Context, req *models.SupervisionRequest) error
	SetStatus(ctx context.Context, id uuid.UUID, status string, decidedAt *time.Time) error
}

// UserDirectory answers role lookups. External collaborator: the coordinator
// only needs to know whether an account can supervise.
type UserDirectory interface {
	IsSupervisor(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Notification event types emitted by the coordinator.
const (
	EventRequestSubmitted = "request_submitted"
	EventRequestAccepted  = "request_accepted"
	EventRequestRejected  = "request_rejected"
	EventRequestCancelled = "request_cancelled"
)

// NotificationSink receives best-effort status-change notifications.
// Implementations must never block the workflow and never return errors;
// delivery failures are theirs to log.
type NotificationSink interface {
	Notify(ctx context.Context, userID uuid.UUID, event string, req *models.SupervisionRequest)
}

// TxRunner runs fn inside a storage transaction. Store calls made with the
// ctx passed to fn join that transaction; returning an error rolls it back.
// Optional: without one the coordinator falls back to compensating writes.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
