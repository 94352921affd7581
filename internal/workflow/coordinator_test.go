package workflow

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"youthhub/internal/models"
)

// memState is a shared in-memory backing store for the fake idea and request
// stores, guarded by one mutex so fakes can be used concurrently.
type memState struct {
	mu       sync.Mutex
	ideas    map[uuid.UUID]*models.Idea
	requests map[uuid.UUID]*models.SupervisionRequest

	// Failure injection for the compensating-write paths.
	failIdeaSetStatus    error
	failIdeaDelete       error
	failRequestSetStatus error
}

func newMemState() *memState {
	return &memState{
		ideas:    make(map[uuid.UUID]*models.Idea),
		requests: make(map[uuid.UUID]*models.SupervisionRequest),
	}
}

type memIdeaStore struct{ s *memState }

func (m *memIdeaStore) GetByOwner(_ context.Context, ownerID uuid.UUID) (*models.Idea, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, idea := range m.s.ideas {
		if idea.OwnerID == ownerID {
			cp := *idea
			return &cp, nil
		}
	}
	return nil, ErrIdeaNotFound
}

func (m *memIdeaStore) GetByID(_ context.Context, id uuid.UUID) (*models.Idea, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	idea, ok := m.s.ideas[id]
	if !ok {
		return nil, ErrIdeaNotFound
	}
	cp := *idea
	return &cp, nil
}

func (m *memIdeaStore) Insert(_ context.Context, idea *models.Idea) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, existing := range m.s.ideas {
		if existing.OwnerID == idea.OwnerID {
			return ErrDuplicateIdea
		}
	}
	cp := *idea
	m.s.ideas[idea.ID] = &cp
	return nil
}

func (m *memIdeaStore) UpdateContent(_ context.Context, id uuid.UUID, title, description, category string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	idea, ok := m.s.ideas[id]
	if !ok {
		return ErrIdeaNotFound
	}
	idea.Title = title
	idea.Description = description
	idea.Category = category
	return nil
}

func (m *memIdeaStore) SetStatus(_ context.Context, id uuid.UUID, status string, supervisorID *uuid.UUID) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failIdeaSetStatus != nil {
		return m.s.failIdeaSetStatus
	}
	idea, ok := m.s.ideas[id]
	if !ok {
		return ErrIdeaNotFound
	}
	idea.Status = status
	idea.SupervisorID = supervisorID
	return nil
}

func (m *memIdeaStore) Delete(_ context.Context, id uuid.UUID) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failIdeaDelete != nil {
		return m.s.failIdeaDelete
	}
	if _, ok := m.s.ideas[id]; !ok {
		return ErrIdeaNotFound
	}
	delete(m.s.ideas, id)
	return nil
}

type memRequestStore struct{ s *memState }

func (m *memRequestStore) GetPendingByOwner(_ context.Context, ownerID uuid.UUID) (*models.SupervisionRequest, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, req := range m.s.requests {
		if req.OwnerID == ownerID && req.Status == models.RequestStatusPending {
			cp := *req
			return &cp, nil
		}
	}
	return nil, ErrRequestNotFound
}

func (m *memRequestStore) GetByID(_ context.Context, id uuid.UUID) (*models.SupervisionRequest, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	req, ok := m.s.requests[id]
	if !ok {
		return nil, ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (m *memRequestStore) Insert(_ context.Context, req *models.SupervisionRequest) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, existing := range m.s.requests {
		if existing.OwnerID == req.OwnerID && existing.Status == models.RequestStatusPending {
			return ErrDuplicatePending
		}
	}
	cp := *req
	m.s.requests[req.ID] = &cp
	return nil
}

func (m *memRequestStore) SetStatus(_ context.Context, id uuid.UUID, status string, decidedAt *time.Time) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failRequestSetStatus != nil {
		return m.s.failRequestSetStatus
	}
	req, ok := m.s.requests[id]
	if !ok {
		return ErrRequestNotFound
	}
	req.Status = status
	req.DecidedAt = decidedAt
	return nil
}

type memDirectory struct {
	mu          sync.Mutex
	supervisors map[uuid.UUID]bool
}

func (m *memDirectory) IsSupervisor(_ context.Context, userID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.supervisors[userID], nil
}

type recordedNotification struct {
	userID uuid.UUID
	event  string
}

type memSink struct {
	mu   sync.Mutex
	sent []recordedNotification
}

func (m *memSink) Notify(_ context.Context, userID uuid.UUID, event string, _ *models.SupervisionRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, recordedNotification{userID: userID, event: event})
}

func (m *memSink) events() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	for i, n := range m.sent {
		out[i] = n.event
	}
	return out
}

// fixture bundles a coordinator with its fakes and two standing users.
type fixture struct {
	co           *Coordinator
	state        *memState
	sink         *memSink
	ownerID      uuid.UUID
	supervisorID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	state := newMemState()
	sink := &memSink{}
	supervisorID := uuid.New()
	dir := &memDirectory{supervisors: map[uuid.UUID]bool{supervisorID: true}}

	// No TxRunner: these tests exercise the compensating-write path.
	co := New(&memIdeaStore{s: state}, &memRequestStore{s: state}, dir, sink, nil)

	return &fixture{
		co:           co,
		state:        state,
		sink:         sink,
		ownerID:      uuid.New(),
		supervisorID: supervisorID,
	}
}

func validDraft() IdeaDraft {
	return IdeaDraft{
		Title:       "Repair cafe for bikes",
		Description: "A weekly meetup where members fix each other's bikes with donated tools.",
		Category:    "social",
	}
}

func (f *fixture) createIdea(t *testing.T) *models.Idea {
	t.Helper()
	idea, err := f.co.CreateIdea(context.Background(), f.ownerID, validDraft())
	if err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}
	return idea
}

func (f *fixture) requestSupervision(t *testing.T) *models.SupervisionRequest {
	t.Helper()
	req, err := f.co.RequestSupervision(context.Background(), f.ownerID, f.supervisorID)
	if err != nil {
		t.Fatalf("RequestSupervision failed: %v", err)
	}
	return req
}

func (f *fixture) ideaStatus(t *testing.T, id uuid.UUID) string {
	t.Helper()
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	idea, ok := f.state.ideas[id]
	if !ok {
		t.Fatalf("idea %s not in store", id)
	}
	return idea.Status
}

func (f *fixture) requestStatus(t *testing.T, id uuid.UUID) string {
	t.Helper()
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	req, ok := f.state.requests[id]
	if !ok {
		t.Fatalf("request %s not in store", id)
	}
	return req.Status
}

func wantKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	got, ok := KindOf(err)
	if !ok {
		t.Fatalf("expected %s error, got untyped: %v", kind, err)
	}
	if got != kind {
		t.Fatalf("expected %s error, got %s: %v", kind, got, err)
	}
}

func TestCreateIdea(t *testing.T) {
	f := newFixture(t)

	idea := f.createIdea(t)
	if idea.Status != models.IdeaStatusDraft {
		t.Errorf("new idea status = %q, want draft", idea.Status)
	}
	if idea.OwnerID != f.ownerID {
		t.Errorf("owner = %s, want %s", idea.OwnerID, f.ownerID)
	}
}

func TestCreateIdeaValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		draft IdeaDraft
	}{
		{"empty title", IdeaDraft{Description: "desc", Category: "tech"}},
		{"empty description", IdeaDraft{Title: "title", Category: "tech"}},
		{"empty category", IdeaDraft{Title: "title", Description: "desc"}},
		{"title too long", IdeaDraft{Title: strings.Repeat("x", 121), Description: "desc", Category: "tech"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.co.CreateIdea(context.Background(), f.ownerID, tt.draft)
			wantKind(t, err, KindValidation)
		})
	}
}

func TestCreateIdeaSecondIdeaRejected(t *testing.T) {
	f := newFixture(t)
	f.createIdea(t)

	_, err := f.co.CreateIdea(context.Background(), f.ownerID, validDraft())
	wantKind(t, err, KindAlreadyExists)
}

func TestUpdateIdea(t *testing.T) {
	f := newFixture(t)
	idea := f.createIdea(t)

	draft := validDraft()
	draft.Title = "Repair cafe for bikes and skateboards"
	updated, err := f.co.UpdateIdea(context.Background(), f.ownerID, draft)
	if err != nil {
		t.Fatalf("UpdateIdea failed: %v", err)
	}
	if updated.Title != draft.Title {
		t.Errorf("title = %q, want %q", updated.Title, draft.Title)
	}
	if updated.ID != idea.ID {
		t.Errorf("update changed the idea identity")
	}
}

func TestUpdateIdeaPublicIsFrozen(t *testing.T) {
	f := newFixture(t)
	f.createIdea(t)
	req := f.requestSupervision(t)

	if _, err := f.co.RespondToRequest(context.Background(), f.supervisorID, req.ID, DecisionAccept); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	_, err := f.co.UpdateIdea(context.Background(), f.ownerID, validDraft())
	wantKind(t, err, KindInvalidState)
}

// Happy path: draft -> pending_review -> public, with the supervisor
// recorded on the idea and both parties notified.
func TestAcceptFlow(t *testing.T) {
	f := newFixture(t)
	idea := f.createIdea(t)

	req := f.requestSupervision(t)
	if got := f.ideaStatus(t, idea.ID); got != models.IdeaStatusPendingReview {
		t.Fatalf("idea status after request = %q, want pending_review", got)
	}

	decided, err := f.co.RespondToRequest(context.Background(), f.supervisorID, req.ID, DecisionAccept)
	if err != nil {
		t.Fatalf("RespondToRequest failed: %v", err)
	}
	if decided.Status != models.RequestStatusAccepted {
		t.Errorf("request status = %q, want accepted", decided.Status)
	}
	if decided.DecidedAt == nil {
		t.Error("accepted request has no decision timestamp")
	}

	if got := f.ideaStatus(t, idea.ID); got != models.IdeaStatusPublic {
		t.Errorf("idea status after accept = %q, want public", got)
	}
	f.state.mu.Lock()
	sup := f.state.ideas[idea.ID].SupervisorID
	f.state.mu.Unlock()
	if sup == nil || *sup != f.supervisorID {
		t.Error("accepting supervisor not recorded on the idea")
	}

	events := f.sink.events()
	if len(events) != 2 || events[0] != EventRequestSubmitted || events[1] != EventRequestAccepted {
		t.Errorf("notifications = %v, want [request_submitted request_accepted]", events)
	}
}

// Rejection returns the idea to draft so the owner can revise and ask
// another supervisor.
func TestRejectFlow(t *testing.T) {
	f := newFixture(t)
	idea := f.createIdea(t)
	req := f.requestSupervision(t)

	decided, err := f.co.RespondToRequest(context.Background(), f.supervisorID, req.ID, DecisionReject)
	if err != nil {
		t.Fatalf("RespondToRequest failed: %v", err)
	}
	if decided.Status != models.RequestStatusRejected {
		t.Errorf("request status = %q, want rejected", decided.Status)
	}
	if got := f.ideaStatus(t, idea.ID); got != models.IdeaStatusDraft {
		t.Errorf("idea status after reject = %q, want draft", got)
	}

	// The owner can now ask again.
	if _, err := f.co.RequestSupervision(context.Background(), f.ownerID, f.supervisorID); err != nil {
		t.Fatalf("second request after rejection failed: %v", err)
	}
}

func TestRequestSupervisionPreconditions(t *testing.T) {
	f := newFixture(t)

	t.Run("no idea", func(t *testing.T) {
		_, err := f.co.RequestSupervision(context.Background(), f.ownerID, f.supervisorID)
		wantKind(t, err, KindNotFound)
	})

	f.createIdea(t)

	t.Run("unknown supervisor", func(t *testing.T) {
		_, err := f.co.RequestSupervision(context.Background(), f.ownerID, uuid.New())
		wantKind(t, err, KindNotFound)
	})

	t.Run("duplicate pending", func(t *testing.T) {
		f.requestSupervision(t)
		_, err := f.co.RequestSupervision(context.Background(), f.ownerID, f.supervisorID)
		wantKind(t, err, KindDuplicatePending)
	})

	t.Run("idea not in draft", func(t *testing.T) {
		// Still pending_review from the previous subtest.
		f.state.mu.Lock()
		for _, req := range f.state.requests {
			req.Status = models.RequestStatusCancelled
		}
		f.state.mu.Unlock()

		_, err := f.co.RequestSupervision(context.Background(), f.ownerID, f.supervisorID)
		wantKind(t, err, KindInvalidState)
	})
}

func TestRespondToRequestGuards(t *testing.T) {
	f := newFixture(t)
	f.createIdea(t)
	req := f.requestSupervision(t)

	t.Run("wrong supervisor", func(t *testing.T) {
		_, err := f.co.RespondToRequest(context.Background(), uuid.New(), req.ID, DecisionAccept)
		wantKind(t, err, KindForbidden)
	})

	t.Run("bad decision", func(t *testing.T) {
		_, err := f.co.RespondToRequest(context.Background(), f.supervisorID, req.ID, Decision("maybe"))
		wantKind(t, err, KindValidation)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := f.co.RespondToRequest(context.Background(), f.supervisorID, uuid.New(), DecisionAccept)
		wantKind(t, err, KindNotFound)
	})

	t.Run("already decided", func(t *testing.T) {
		if _, err := f.co.RespondToRequest(context.Background(), f.supervisorID, req.ID, DecisionAccept); err != nil {
			t.Fatalf("accept failed: %v", err)
		}
		_, err := f.co.RespondToRequest(context.Background(), f.supervisorID, req.ID, DecisionReject)
		wantKind(t, err, KindInvalidState)
	})
}

func TestCancelRequest(t *testing.T) {
	f := newFixture(t)
	idea := f.createIdea(t)
	req := f.requestSupervision(t)

	if err := f.co.CancelRequest(context.Background(), f.ownerID, req.ID); err != nil {
		t.Fatalf("CancelRequest failed: %v", err)
	}
	if got := f.requestStatus(t, req.ID); got != models.RequestStatusCancelled {
		t.Errorf("request status = %q, want cancelled", got)
	}
	if got := f.ideaStatus(t, idea.ID); got != models.IdeaStatusDraft {
		t.Errorf("idea status after cancel = %q, want draft", got)
	}

	// Cancelling again is no longer pending.
	err := f.co.CancelRequest(context.Background(), f.ownerID, req.ID)
	wantKind(t, err, KindInvalidState)
}

func TestCancelRequestOnlyOwner(t *testing.T) {
	f := newFixture(t)
	f.createIdea(t)
	req := f.requestSupervision(t)

	err := f.co.CancelRequest(context.Background(), uuid.New(), req.ID)
	wantKind(t, err, KindForbidden)
}

// A supervisor deciding a request the owner cancelled first gets
// InvalidState, and the late decision does not resurrect the request.
func TestCancelThenRespond(t *testing.T) {
	f := newFixture(t)
	idea := f.createIdea(t)
	req := f.requestSupervision(t)

	if err := f.co.CancelRequest(context.Background(), f.ownerID, req.ID); err != nil {
		t.Fatalf("CancelRequest failed: %v", err)
	}

	_, err := f.co.RespondToRequest(context.Background(), f.supervisorID, req.ID, DecisionAccept)
	wantKind(t, err, KindInvalidState)

	if got := f.ideaStatus(t, idea.ID); got != models.IdeaStatusDraft {
		t.Errorf("idea status = %q, want draft", got)
	}
	if got := f.requestStatus(t, req.ID); got != models.RequestStatusCancelled {
		t.Errorf("request status = %q, want cancelled", got)
	}
}

func TestDeleteIdeaCancelsPendingRequest(t *testing.T) {
	f := newFixture(t)
	idea := f.createIdea(t)
	req := f.requestSupervision(t)

	if err := f.co.DeleteIdea(context.Background(), f.ownerID, idea.ID); err != nil {
		t.Fatalf("DeleteIdea failed: %v", err)
	}

	f.state.mu.Lock()
	_, ideaExists := f.state.ideas[idea.ID]
	f.state.mu.Unlock()
	if ideaExists {
		t.Error("idea still in store after delete")
	}
	if got := f.requestStatus(t, req.ID); got != models.RequestStatusCancelled {
		t.Errorf("request status after delete = %q, want cancelled", got)
	}

	// Second delete is NotFound.
	err := f.co.DeleteIdea(context.Background(), f.ownerID, idea.ID)
	wantKind(t, err, KindNotFound)
}

func TestDeleteIdeaOnlyOwner(t *testing.T) {
	f := newFixture(t)
	idea := f.createIdea(t)

	err := f.co.DeleteIdea(context.Background(), uuid.New(), idea.ID)
	wantKind(t, err, KindForbidden)
}

// The terminal request outlives the deleted idea; deciding it later fails
// with InvalidState, not a dangling-reference panic.
func TestDeleteIdeaThenRespond(t *testing.T) {
	f := newFixture(t)
	idea := f.createIdea(t)
	req := f.requestSupervision(t)

	if err := f.co.DeleteIdea(context.Background(), f.ownerID, idea.ID); err != nil {
		t.Fatalf("DeleteIdea failed: %v", err)
	}

	_, err := f.co.RespondToRequest(context.Background(), f.supervisorID, req.ID, DecisionAccept)
	wantKind(t, err, KindInvalidState)
}

// N goroutines racing RequestSupervision for one owner: exactly one wins,
// the rest see DuplicatePending, and the store holds one pending request.
func TestConcurrentRequestSupervision(t *testing.T) {
	f := newFixture(t)
	f.createIdea(t)

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.co.RequestSupervision(context.Background(), f.ownerID, f.supervisorID)
		}(i)
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case IsKind(err, KindDuplicatePending):
			dup++
		case IsKind(err, KindInvalidState):
			// Lost the race after the idea already left draft.
			dup++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Errorf("%d requests succeeded, want exactly 1", ok)
	}
	if ok+dup != n {
		t.Errorf("accounted for %d of %d requests", ok+dup, n)
	}

	f.state.mu.Lock()
	pending := 0
	for _, req := range f.state.requests {
		if req.Status == models.RequestStatusPending {
			pending++
		}
	}
	f.state.mu.Unlock()
	if pending != 1 {
		t.Errorf("%d pending requests in store, want 1", pending)
	}
}

// Owner cancelling while the supervisor decides: whatever the interleaving,
// the records must land in one of the two consistent outcomes.
func TestConcurrentCancelAndRespond(t *testing.T) {
	f := newFixture(t)
	idea := f.createIdea(t)
	req := f.requestSupervision(t)

	var wg sync.WaitGroup
	var cancelErr, respondErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		cancelErr = f.co.CancelRequest(context.Background(), f.ownerID, req.ID)
	}()
	go func() {
		defer wg.Done()
		_, respondErr = f.co.RespondToRequest(context.Background(), f.supervisorID, req.ID, DecisionAccept)
	}()
	wg.Wait()

	reqStatus := f.requestStatus(t, req.ID)
	ideaStatus := f.ideaStatus(t, idea.ID)

	switch {
	case cancelErr == nil && IsKind(respondErr, KindInvalidState):
		if reqStatus != models.RequestStatusCancelled || ideaStatus != models.IdeaStatusDraft {
			t.Errorf("cancel won but state is request=%q idea=%q", reqStatus, ideaStatus)
		}
	case respondErr == nil && IsKind(cancelErr, KindInvalidState):
		if reqStatus != models.RequestStatusAccepted || ideaStatus != models.IdeaStatusPublic {
			t.Errorf("accept won but state is request=%q idea=%q", reqStatus, ideaStatus)
		}
	default:
		t.Errorf("no clean winner: cancelErr=%v respondErr=%v", cancelErr, respondErr)
	}
}

// Without a TxRunner, a failed second write triggers the compensating
// write: the request is cancelled again and no pending request survives.
func TestRequestSupervisionCompensation(t *testing.T) {
	f := newFixture(t)
	f.createIdea(t)

	f.state.mu.Lock()
	f.state.failIdeaSetStatus = errors.New("storage down")
	f.state.mu.Unlock()

	_, err := f.co.RequestSupervision(context.Background(), f.ownerID, f.supervisorID)
	if err == nil {
		t.Fatal("expected error when idea transition fails")
	}
	if _, isWorkflow := KindOf(err); isWorkflow {
		t.Errorf("compensated failure should surface the cause, got workflow error %v", err)
	}

	f.state.mu.Lock()
	for _, req := range f.state.requests {
		if req.Status == models.RequestStatusPending {
			t.Error("pending request survived a compensated failure")
		}
	}
	f.state.failIdeaSetStatus = nil
	f.state.mu.Unlock()

	// The owner is not stuck: the next request goes through.
	if _, err := f.co.RequestSupervision(context.Background(), f.ownerID, f.supervisorID); err != nil {
		t.Fatalf("request after compensation failed: %v", err)
	}
}

// When the compensating write itself fails the coordinator must scream:
// the caller gets a consistency error wrapping the original cause.
func TestCompensationFailureIsConsistencyError(t *testing.T) {
	f := newFixture(t)
	f.createIdea(t)

	f.state.mu.Lock()
	f.state.failIdeaSetStatus = errors.New("storage down")
	f.state.failRequestSetStatus = errors.New("storage still down")
	f.state.mu.Unlock()

	_, err := f.co.RequestSupervision(context.Background(), f.ownerID, f.supervisorID)
	wantKind(t, err, KindConsistency)
}

// With a TxRunner the coordinator delegates atomicity instead of
// compensating itself.
type recordingTxRunner struct {
	calls int
	fail  error
}

func (r *recordingTxRunner) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	if err := fn(ctx); err != nil {
		// A real runner would roll back here.
		return err
	}
	if r.fail != nil {
		return r.fail
	}
	return nil
}

func TestRunAtomicUsesTxRunner(t *testing.T) {
	state := newMemState()
	sink := &memSink{}
	supervisorID := uuid.New()
	dir := &memDirectory{supervisors: map[uuid.UUID]bool{supervisorID: true}}
	runner := &recordingTxRunner{}

	co := New(&memIdeaStore{s: state}, &memRequestStore{s: state}, dir, sink, runner)

	ownerID := uuid.New()
	if _, err := co.CreateIdea(context.Background(), ownerID, validDraft()); err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}
	if _, err := co.RequestSupervision(context.Background(), ownerID, supervisorID); err != nil {
		t.Fatalf("RequestSupervision failed: %v", err)
	}

	if runner.calls != 1 {
		t.Errorf("tx runner ran %d times, want 1", runner.calls)
	}
}

func TestNilSinkDoesNotPanic(t *testing.T) {
	state := newMemState()
	supervisorID := uuid.New()
	dir := &memDirectory{supervisors: map[uuid.UUID]bool{supervisorID: true}}

	co := New(&memIdeaStore{s: state}, &memRequestStore{s: state}, dir, nil, nil)

	ownerID := uuid.New()
	if _, err := co.CreateIdea(context.Background(), ownerID, validDraft()); err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}
	if _, err := co.RequestSupervision(context.Background(), ownerID, supervisorID); err != nil {
		t.Fatalf("RequestSupervision failed: %v", err)
	}
}
