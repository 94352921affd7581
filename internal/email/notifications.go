package email

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"youthhub/internal/config"
	"youthhub/internal/models"
	"youthhub/internal/workflow"
)

// RecipientGetter resolves a user ID to a user record so the notifier can
// find the recipient address.
type RecipientGetter interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Notifier delivers workflow notifications over email. It is best-effort:
// delivery problems are logged, never surfaced to the caller.
type Notifier struct {
	svc   *Service
	users RecipientGetter
	cfg   *config.Config
}

// NewNotifier creates a notifier backed by the given email service.
func NewNotifier(svc *Service, users RecipientGetter, cfg *config.Config) *Notifier {
	return &Notifier{svc: svc, users: users, cfg: cfg}
}

// Notify sends the email matching a supervision workflow event, if that
// event's notifications are enabled. Implements workflow.NotificationSink.
func (n *Notifier) Notify(ctx context.Context, userID uuid.UUID, event string, req *models.SupervisionRequest) {
	if n.svc == nil || !n.svc.IsEnabled() {
		return
	}

	var subject, htmlBody, textBody string
	switch event {
	case workflow.EventRequestSubmitted:
		if !n.cfg.EmailNotifySupervisorOnSubmit {
			return
		}
		subject, htmlBody, textBody = RequestSubmittedEmail(req, n.cfg.BaseURL)
	case workflow.EventRequestAccepted:
		if !n.cfg.EmailNotifyOwnerOnDecision {
			return
		}
		subject, htmlBody, textBody = RequestAcceptedEmail(req, n.cfg.BaseURL)
	case workflow.EventRequestRejected:
		if !n.cfg.EmailNotifyOwnerOnDecision {
			return
		}
		subject, htmlBody, textBody = RequestRejectedEmail(req, n.cfg.BaseURL)
	case workflow.EventRequestCancelled:
		if !n.cfg.EmailNotifySupervisorOnCancel {
			return
		}
		subject, htmlBody, textBody = RequestCancelledEmail(req, n.cfg.BaseURL)
	default:
		slog.Warn("Unknown notification event", "event", event)
		return
	}

	user, err := n.users.GetUserByID(ctx, userID)
	if err != nil {
		slog.Error("Failed to resolve notification recipient", "user_id", userID, "event", event, "error", err)
		return
	}
	if user.Email == "" {
		return
	}

	n.svc.SendAsync([]string{user.Email}, subject, htmlBody, textBody)
}

// SendStaleReminder emails a supervisor about requests that have been
// pending longer than the configured maximum age.
func (n *Notifier) SendStaleReminder(ctx context.Context, supervisorID uuid.UUID, requests []*models.SupervisionRequest) {
	if n.svc == nil || !n.svc.IsEnabled() || len(requests) == 0 {
		return
	}

	user, err := n.users.GetUserByID(ctx, supervisorID)
	if err != nil {
		slog.Error("Failed to resolve reminder recipient", "user_id", supervisorID, "error", err)
		return
	}
	if user.Email == "" {
		return
	}

	subject, htmlBody, textBody := StaleRequestReminderEmail(requests, n.cfg.BaseURL)
	n.svc.SendAsync([]string{user.Email}, subject, htmlBody, textBody)
}
