package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"youthhub/internal/db"
	"youthhub/internal/email"
	"youthhub/internal/models"
)

// Reminder nags supervisors about pending requests that have sat in their
// queue past the configured maximum age.
type Reminder struct {
	db       *db.DB
	notifier *email.Notifier
	interval time.Duration
	maxAge   time.Duration
}

// NewReminder creates a new stale-request reminder job.
func NewReminder(database *db.DB, notifier *email.Notifier, interval, maxAge time.Duration) *Reminder {
	return &Reminder{
		db:       database,
		notifier: notifier,
		interval: interval,
		maxAge:   maxAge,
	}
}

// Start begins the background reminder loop.
func (r *Reminder) Start(ctx context.Context) {
	log.Printf("Reminder job started (interval: %v, maxAge: %v)", r.interval, r.maxAge)

	// Run immediately on start
	r.runOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Reminder job stopped")
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

// runOnce finds stale pending requests and emails each supervisor one
// digest covering their queue.
func (r *Reminder) runOnce(ctx context.Context) {
	cutoff := time.Now().Add(-r.maxAge)
	stale, err := r.db.GetStalePendingRequests(ctx, cutoff, 200)
	if err != nil {
		log.Printf("Reminder job: failed to get stale requests: %v", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	log.Printf("Reminder job: %d stale pending request(s)", len(stale))

	bySupervisor := groupBySupervisor(stale)
	for supervisorID, requests := range bySupervisor {
		select {
		case <-ctx.Done():
			return
		default:
		}
		r.notifier.SendStaleReminder(ctx, supervisorID, requests)
	}
}

// groupBySupervisor buckets requests by the supervisor they are addressed to.
func groupBySupervisor(requests []models.SupervisionRequest) map[uuid.UUID][]*models.SupervisionRequest {
	grouped := make(map[uuid.UUID][]*models.SupervisionRequest)
	for i := range requests {
		req := &requests[i]
		grouped[req.SupervisorID] = append(grouped[req.SupervisorID], req)
	}
	return grouped
}
