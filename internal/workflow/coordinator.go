// Package workflow implements the spark supervision workflow: a member
// publishes an idea, asks one supervisor at a time for review, and the
// idea's visibility is gated by that supervisor's decision.
//
// The coordinator is the only writer of Idea.Status, Idea.SupervisorID and
// SupervisionRequest.Status. Every operation for a given owner runs under a
// per-owner lock, so precondition checks and the writes they guard are
// serialized per owner while different owners proceed in parallel.
package workflow

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"youthhub/internal/metrics"
	"youthhub/internal/models"
	"youthhub/internal/validation"
)

// Decision is a supervisor's verdict on a pending request.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// IdeaDraft carries the owner-editable content fields of an idea.
type IdeaDraft struct {
	Title       string
	Description string
	Category    string
}

// Coordinator mediates between the idea and request stores, enforcing the
// workflow invariants.
type Coordinator struct {
	ideas    IdeaStore
	requests RequestStore
	users    UserDirectory
	sink     NotificationSink
	tx       TxRunner
	locks    *ownerLocks
	now      func() time.Time
}

// New creates a coordinator. sink and tx may be nil: without a sink no
// notifications are emitted, without a tx runner two-record transitions fall
// back to compensating writes.
func New(ideas IdeaStore, requests RequestStore, users UserDirectory, sink NotificationSink, tx TxRunner) *Coordinator {
	return &Coordinator{
		ideas:    ideas,
		requests: requests,
		users:    users,
		sink:     sink,
		tx:       tx,
		locks:    newOwnerLocks(),
		now:      time.Now,
	}
}

// CreateIdea creates the owner's idea in draft status. An owner has at most
// one idea, any status.
func (co *Coordinator) CreateIdea(ctx context.Context, ownerID uuid.UUID, draft IdeaDraft) (*models.Idea, error) {
	if ok, msg := validation.ValidateIdeaFields(draft.Title, draft.Description, draft.Category); !ok {
		return nil, newError(KindValidation, msg)
	}

	release := co.locks.acquire(ownerID)
	defer release()

	_, err := co.ideas.GetByOwner(ctx, ownerID)
	if err == nil {
		return nil, newError(KindAlreadyExists, "You already have a spark. Edit or delete it first.")
	}
	if !errors.Is(err, ErrIdeaNotFound) {
		return nil, err
	}

	idea := &models.Idea{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Category:    strings.TrimSpace(draft.Category),
		Status:      models.IdeaStatusDraft,
	}
	if err := co.ideas.Insert(ctx, idea); err != nil {
		// Unique index backstop in case another path inserted concurrently.
		if errors.Is(err, ErrDuplicateIdea) {
			return nil, newError(KindAlreadyExists, "You already have a spark. Edit or delete it first.")
		}
		return nil, err
	}
	return idea, nil
}

// UpdateIdea replaces the idea's content fields. Edits are allowed while the
// idea is draft or pending_review; approved public content is frozen.
func (co *Coordinator) UpdateIdea(ctx context.Context, ownerID uuid.UUID, draft IdeaDraft) (*models.Idea, error) {
	if ok, msg := validation.ValidateIdeaFields(draft.Title, draft.Description, draft.Category); !ok {
		return nil, newError(KindValidation, msg)
	}

	release := co.locks.acquire(ownerID)
	defer release()

	idea, err := co.ideas.GetByOwner(ctx, ownerID)
	if errors.Is(err, ErrIdeaNotFound) {
		return nil, newError(KindNotFound, "You have no spark yet")
	}
	if err != nil {
		return nil, err
	}
	if idea.Status == models.IdeaStatusPublic {
		return nil, newError(KindInvalidState, "A published spark can no longer be edited")
	}

	idea.Title = strings.TrimSpace(draft.Title)
	idea.Description = strings.TrimSpace(draft.Description)
	idea.Category = strings.TrimSpace(draft.Category)
	if err := co.ideas.UpdateContent(ctx, idea.ID, idea.Title, idea.Description, idea.Category); err != nil {
		return nil, err
	}
	return idea, nil
}

// RequestSupervision asks the named supervisor to review the owner's draft
// idea. The request row and the idea's move to pending_review commit
// together or not at all.
func (co *Coordinator) RequestSupervision(ctx context.Context, ownerID, supervisorID uuid.UUID) (*models.SupervisionRequest, error) {
	isSupervisor, err := co.users.IsSupervisor(ctx, supervisorID)
	if err != nil {
		return nil, err
	}
	if !isSupervisor {
		return nil, newError(KindNotFound, "Supervisor not found")
	}

	release := co.locks.acquire(ownerID)
	defer release()

	idea, err := co.ideas.GetByOwner(ctx, ownerID)
	if errors.Is(err, ErrIdeaNotFound) {
		return nil, newError(KindNotFound, "You have no spark to submit")
	}
	if err != nil {
		return nil, err
	}
	if idea.Status != models.IdeaStatusDraft {
		return nil, newError(KindInvalidState, "This spark is not in draft")
	}

	if _, err := co.requests.GetPendingByOwner(ctx, ownerID); err == nil {
		return nil, newError(KindDuplicatePending, "You already have a pending request")
	} else if !errors.Is(err, ErrRequestNotFound) {
		return nil, err
	}

	req := &models.SupervisionRequest{
		ID:           uuid.New(),
		IdeaID:       idea.ID,
		OwnerID:      ownerID,
		SupervisorID: supervisorID,
		Status:       models.RequestStatusPending,
		CreatedAt:    co.now(),
	}

	err = co.runAtomic(ctx, func(ctx context.Context) error {
		if err := co.requests.Insert(ctx, req); err != nil {
			if errors.Is(err, ErrDuplicatePending) {
				return newError(KindDuplicatePending, "You already have a pending request")
			}
			return err
		}
		if err := co.ideas.SetStatus(ctx, idea.ID, models.IdeaStatusPendingReview, nil); err != nil {
			return co.repair(ctx, "request_supervision", err, func(ctx context.Context) error {
				return co.requests.SetStatus(ctx, req.ID, models.RequestStatusCancelled, nil)
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordSupervisionEvent(EventRequestSubmitted)
	co.notify(ctx, supervisorID, EventRequestSubmitted, req)
	return req, nil
}

// RespondToRequest records the named supervisor's decision on a pending
// request. Accepting publishes the idea; rejecting returns it to draft so
// the owner can ask someone else.
func (co *Coordinator) RespondToRequest(ctx context.Context, supervisorID, requestID uuid.UUID, decision Decision) (*models.SupervisionRequest, error) {
	if decision != DecisionAccept && decision != DecisionReject {
		return nil, newError(KindValidation, "Decision must be accept or reject")
	}

	req, err := co.requests.GetByID(ctx, requestID)
	if errors.Is(err, ErrRequestNotFound) {
		return nil, newError(KindNotFound, "Supervision request not found")
	}
	if err != nil {
		return nil, err
	}

	release := co.locks.acquire(req.OwnerID)
	defer release()

	// Re-read under the lock: the owner may have cancelled or deleted in the
	// window before we acquired it.
	req, err = co.requests.GetByID(ctx, requestID)
	if errors.Is(err, ErrRequestNotFound) {
		return nil, newError(KindNotFound, "Supervision request not found")
	}
	if err != nil {
		return nil, err
	}

	if req.SupervisorID != supervisorID {
		return nil, newError(KindForbidden, "This request is addressed to a different supervisor")
	}
	if req.Status != models.RequestStatusPending {
		return nil, newError(KindInvalidState, "This request has already been decided or cancelled")
	}

	decidedAt := co.now()
	requestStatus := models.RequestStatusAccepted
	ideaStatus := models.IdeaStatusPublic
	var ideaSupervisor *uuid.UUID = &supervisorID
	event := EventRequestAccepted
	if decision == DecisionReject {
		requestStatus = models.RequestStatusRejected
		ideaStatus = models.IdeaStatusDraft
		ideaSupervisor = nil
		event = EventRequestRejected
	}

	err = co.runAtomic(ctx, func(ctx context.Context) error {
		if err := co.requests.SetStatus(ctx, req.ID, requestStatus, &decidedAt); err != nil {
			return err
		}
		if err := co.ideas.SetStatus(ctx, req.IdeaID, ideaStatus, ideaSupervisor); err != nil {
			return co.repair(ctx, "respond_to_request", err, func(ctx context.Context) error {
				return co.requests.SetStatus(ctx, req.ID, models.RequestStatusPending, nil)
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	req.Status = requestStatus
	req.DecidedAt = &decidedAt

	metrics.RecordSupervisionEvent(event)
	co.notify(ctx, req.OwnerID, event, req)
	return req, nil
}

// CancelRequest withdraws the owner's pending request and returns the idea
// to draft.
func (co *Coordinator) CancelRequest(ctx context.Context, ownerID, requestID uuid.UUID) error {
	req, err := co.requests.GetByID(ctx, requestID)
	if errors.Is(err, ErrRequestNotFound) {
		return newError(KindNotFound, "Supervision request not found")
	}
	if err != nil {
		return err
	}
	if req.OwnerID != ownerID {
		return newError(KindForbidden, "Only the owner may cancel a request")
	}

	release := co.locks.acquire(ownerID)
	defer release()

	req, err = co.requests.GetByID(ctx, requestID)
	if errors.Is(err, ErrRequestNotFound) {
		return newError(KindNotFound, "Supervision request not found")
	}
	if err != nil {
		return err
	}
	if req.Status != models.RequestStatusPending {
		return newError(KindInvalidState, "This request is no longer pending")
	}

	decidedAt := co.now()
	err = co.runAtomic(ctx, func(ctx context.Context) error {
		if err := co.requests.SetStatus(ctx, req.ID, models.RequestStatusCancelled, &decidedAt); err != nil {
			return err
		}
		if err := co.ideas.SetStatus(ctx, req.IdeaID, models.IdeaStatusDraft, nil); err != nil {
			return co.repair(ctx, "cancel_request", err, func(ctx context.Context) error {
				return co.requests.SetStatus(ctx, req.ID, models.RequestStatusPending, nil)
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	req.Status = models.RequestStatusCancelled
	req.DecidedAt = &decidedAt

	metrics.RecordSupervisionEvent(EventRequestCancelled)
	co.notify(ctx, req.SupervisorID, EventRequestCancelled, req)
	return nil
}

// DeleteIdea removes the owner's idea. A pending request on the idea is
// cancelled in the same transaction so no pending request ever references a
// deleted idea. Deleting twice fails with NotFound.
func (co *Coordinator) DeleteIdea(ctx context.Context, ownerID, ideaID uuid.UUID) error {
	release := co.locks.acquire(ownerID)
	defer release()

	idea, err := co.ideas.GetByID(ctx, ideaID)
	if errors.Is(err, ErrIdeaNotFound) {
		return newError(KindNotFound, "Spark not found")
	}
	if err != nil {
		return err
	}
	if idea.OwnerID != ownerID {
		return newError(KindForbidden, "Only the owner may delete a spark")
	}

	var pending *models.SupervisionRequest
	pending, err = co.requests.GetPendingByOwner(ctx, ownerID)
	if err != nil && !errors.Is(err, ErrRequestNotFound) {
		return err
	}
	if pending != nil && pending.IdeaID != ideaID {
		pending = nil
	}

	decidedAt := co.now()
	err = co.runAtomic(ctx, func(ctx context.Context) error {
		if pending != nil {
			if err := co.requests.SetStatus(ctx, pending.ID, models.RequestStatusCancelled, &decidedAt); err != nil {
				return err
			}
		}
		if err := co.ideas.Delete(ctx, ideaID); err != nil {
			if pending == nil {
				return err
			}
			return co.repair(ctx, "delete_idea", err, func(ctx context.Context) error {
				return co.requests.SetStatus(ctx, pending.ID, models.RequestStatusPending, nil)
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	if pending != nil {
		pending.Status = models.RequestStatusCancelled
		pending.DecidedAt = &decidedAt
		metrics.RecordSupervisionEvent(EventRequestCancelled)
		co.notify(ctx, pending.SupervisorID, EventRequestCancelled, pending)
	}
	return nil
}

// runAtomic executes fn inside the storage transaction when one is
// available, otherwise directly.
func (co *Coordinator) runAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	if co.tx != nil {
		return co.tx.InTx(ctx, fn)
	}
	return fn(ctx)
}

// repair handles the second write of a two-record transition failing after
// the first committed. Inside a transaction the rollback covers it; without
// one the undo runs as a compensating write. A failed compensation is a
// consistency violation and is alerted, not swallowed.
func (co *Coordinator) repair(ctx context.Context, op string, cause error, undo func(ctx context.Context) error) error {
	if co.tx != nil {
		return cause
	}
	if undoErr := undo(ctx); undoErr != nil {
		metrics.RecordConsistencyFailure(op)
		slog.Error("partial workflow write could not be repaired",
			"op", op, "cause", cause, "undo_error", undoErr)
		return wrapError(KindConsistency, "Internal consistency failure; the operation was partially applied", cause)
	}
	return cause
}

func (co *Coordinator) notify(ctx context.Context, userID uuid.UUID, event string, req *models.SupervisionRequest) {
	if co.sink == nil {
		return
	}
	co.sink.Notify(ctx, userID, event, req)
}
