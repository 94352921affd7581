package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"youthhub/internal/models"
	"youthhub/internal/workflow"
)

func newTestRequest(ideaID, ownerID, supervisorID uuid.UUID) *models.SupervisionRequest {
	return &models.SupervisionRequest{
		ID:           uuid.New(),
		IdeaID:       ideaID,
		OwnerID:      ownerID,
		SupervisorID: supervisorID,
		Status:       models.RequestStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestRequestInsertAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := createUser(t, db, "req-owner", models.RoleMember)
	supervisorID := createUser(t, db, "req-sup", models.RoleSupervisor)

	idea := newTestIdea(ownerID)
	if err := db.Ideas().Insert(ctx, idea); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	req := newTestRequest(idea.ID, ownerID, supervisorID)
	if err := db.Requests().Insert(ctx, req); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := db.Requests().GetPendingByOwner(ctx, ownerID)
	if err != nil {
		t.Fatalf("GetPendingByOwner() error = %v", err)
	}
	if got.ID != req.ID || got.SupervisorID != supervisorID {
		t.Errorf("GetPendingByOwner() = %+v, want inserted request", got)
	}

	if _, err := db.Requests().GetByID(ctx, uuid.New()); !errors.Is(err, workflow.ErrRequestNotFound) {
		t.Errorf("GetByID(unknown) error = %v, want ErrRequestNotFound", err)
	}
}

// The partial unique index permits one pending request per owner but any
// number of terminal ones.
func TestRequestOnePendingPerOwner(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := createUser(t, db, "pending-owner", models.RoleMember)
	supervisorID := createUser(t, db, "pending-sup", models.RoleSupervisor)

	idea := newTestIdea(ownerID)
	if err := db.Ideas().Insert(ctx, idea); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	first := newTestRequest(idea.ID, ownerID, supervisorID)
	if err := db.Requests().Insert(ctx, first); err != nil {
		t.Fatalf("first Insert() error = %v", err)
	}

	err := db.Requests().Insert(ctx, newTestRequest(idea.ID, ownerID, supervisorID))
	if !errors.Is(err, workflow.ErrDuplicatePending) {
		t.Errorf("second Insert() error = %v, want ErrDuplicatePending", err)
	}

	// A cancelled request no longer blocks a new pending one.
	now := time.Now().UTC()
	if err := db.Requests().SetStatus(ctx, first.ID, models.RequestStatusCancelled, &now); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if err := db.Requests().Insert(ctx, newTestRequest(idea.ID, ownerID, supervisorID)); err != nil {
		t.Errorf("Insert() after cancel error = %v", err)
	}
}

func TestRequestSetStatus(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := createUser(t, db, "set-owner", models.RoleMember)
	supervisorID := createUser(t, db, "set-sup", models.RoleSupervisor)

	idea := newTestIdea(ownerID)
	if err := db.Ideas().Insert(ctx, idea); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	req := newTestRequest(idea.ID, ownerID, supervisorID)
	if err := db.Requests().Insert(ctx, req); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	decidedAt := time.Now().UTC()
	if err := db.Requests().SetStatus(ctx, req.ID, models.RequestStatusAccepted, &decidedAt); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	got, err := db.Requests().GetByID(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != models.RequestStatusAccepted {
		t.Errorf("status = %q, want accepted", got.Status)
	}
	if got.DecidedAt == nil {
		t.Error("decided_at not recorded")
	}

	if err := db.Requests().SetStatus(ctx, uuid.New(), models.RequestStatusRejected, &decidedAt); !errors.Is(err, workflow.ErrRequestNotFound) {
		t.Errorf("SetStatus(unknown) error = %v, want ErrRequestNotFound", err)
	}
}

func TestGetPendingForSupervisor(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := createUser(t, db, "queue-owner", models.RoleMember)
	supA := createUser(t, db, "queue-sup-a", models.RoleSupervisor)
	supB := createUser(t, db, "queue-sup-b", models.RoleSupervisor)

	idea := newTestIdea(ownerID)
	if err := db.Ideas().Insert(ctx, idea); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := db.Requests().Insert(ctx, newTestRequest(idea.ID, ownerID, supA)); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	queue, err := db.GetPendingForSupervisor(ctx, supA)
	if err != nil {
		t.Fatalf("GetPendingForSupervisor() error = %v", err)
	}
	if len(queue) != 1 {
		t.Fatalf("queue has %d entries, want 1", len(queue))
	}
	if queue[0].IdeaTitle == "" || queue[0].OwnerName == "" {
		t.Error("joined idea/owner info missing")
	}

	queue, err = db.GetPendingForSupervisor(ctx, supB)
	if err != nil {
		t.Fatalf("GetPendingForSupervisor() error = %v", err)
	}
	if len(queue) != 0 {
		t.Errorf("other supervisor's queue has %d entries, want 0", len(queue))
	}
}

func TestGetStalePendingRequests(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := createUser(t, db, "stale-owner", models.RoleMember)
	supervisorID := createUser(t, db, "stale-sup", models.RoleSupervisor)

	idea := newTestIdea(ownerID)
	if err := db.Ideas().Insert(ctx, idea); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	req := newTestRequest(idea.ID, ownerID, supervisorID)
	req.CreatedAt = time.Now().UTC().Add(-100 * time.Hour)
	if err := db.Requests().Insert(ctx, req); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	stale, err := db.GetStalePendingRequests(ctx, time.Now().UTC().Add(-72*time.Hour), 10)
	if err != nil {
		t.Fatalf("GetStalePendingRequests() error = %v", err)
	}
	if len(stale) != 1 {
		t.Errorf("found %d stale requests, want 1", len(stale))
	}

	stale, err = db.GetStalePendingRequests(ctx, time.Now().UTC().Add(-200*time.Hour), 10)
	if err != nil {
		t.Fatalf("GetStalePendingRequests() error = %v", err)
	}
	if len(stale) != 0 {
		t.Errorf("found %d stale requests before the cutoff, want 0", len(stale))
	}
}

// Terminal requests keep their rows when the idea goes away, so a late
// decision can still be answered from history.
func TestTerminalRequestSurvivesIdeaDeletion(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := createUser(t, db, "history-owner", models.RoleMember)
	supervisorID := createUser(t, db, "history-sup", models.RoleSupervisor)

	idea := newTestIdea(ownerID)
	if err := db.Ideas().Insert(ctx, idea); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	req := newTestRequest(idea.ID, ownerID, supervisorID)
	if err := db.Requests().Insert(ctx, req); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	now := time.Now().UTC()
	if err := db.Requests().SetStatus(ctx, req.ID, models.RequestStatusCancelled, &now); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if err := db.Ideas().Delete(ctx, idea.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	got, err := db.Requests().GetByID(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetByID() after idea deletion error = %v", err)
	}
	if got.Status != models.RequestStatusCancelled {
		t.Errorf("status = %q, want cancelled", got.Status)
	}
}
