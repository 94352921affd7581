package email

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"youthhub/internal/config"
	"youthhub/internal/models"
	"youthhub/internal/workflow"
)

type recordingGetter struct {
	calls int
}

func (g *recordingGetter) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	g.calls++
	return &models.User{ID: id, Email: "user@example.org"}, nil
}

// With email disabled the notifier must be a no-op: no recipient lookups,
// no sends, no panics.
func TestNotifierDisabledIsNoOp(t *testing.T) {
	cfg := &config.Config{} // no SMTP host: disabled
	svc := NewService(cfg)
	if svc.IsEnabled() {
		t.Fatal("service enabled without SMTP config")
	}

	getter := &recordingGetter{}
	n := NewNotifier(svc, getter, cfg)

	req := &models.SupervisionRequest{IdeaTitle: "Repair cafe"}
	n.Notify(context.Background(), uuid.New(), workflow.EventRequestSubmitted, req)
	n.SendStaleReminder(context.Background(), uuid.New(), []*models.SupervisionRequest{req})

	if getter.calls != 0 {
		t.Errorf("disabled notifier resolved %d recipients, want 0", getter.calls)
	}
}

func TestNotifierNilServiceIsNoOp(t *testing.T) {
	getter := &recordingGetter{}
	n := NewNotifier(nil, getter, &config.Config{})

	n.Notify(context.Background(), uuid.New(), workflow.EventRequestAccepted, &models.SupervisionRequest{})

	if getter.calls != 0 {
		t.Errorf("nil-service notifier resolved %d recipients, want 0", getter.calls)
	}
}
