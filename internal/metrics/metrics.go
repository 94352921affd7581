package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// WorkflowCounter is an interface for reading workflow state counts.
type WorkflowCounter interface {
	CountIdeasByStatus(ctx context.Context) (map[string]int64, error)
	CountPendingRequests(ctx context.Context) (int64, error)
}

var (
	supervisionEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "youthhub_supervision_events_total",
			Help: "Supervision workflow transitions by event",
		},
		[]string{"event"},
	)

	consistencyFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "youthhub_workflow_consistency_failures_total",
			Help: "Partial two-record writes that could not be repaired",
		},
		[]string{"op"},
	)

	ideasDesc = prometheus.NewDesc(
		"youthhub_ideas",
		"Idea count by status",
		[]string{"status"},
		nil,
	)

	pendingRequestsDesc = prometheus.NewDesc(
		"youthhub_pending_supervision_requests",
		"Supervision requests currently awaiting a decision",
		nil,
		nil,
	)
)

// WorkflowCollector is a custom Prometheus collector that reads workflow
// state counts from the database on each scrape.
type WorkflowCollector struct {
	db WorkflowCounter
}

// Describe sends the metric descriptors to the channel.
func (c *WorkflowCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- ideasDesc
	ch <- pendingRequestsDesc
}

// Collect queries the database for workflow counts and emits them as gauges.
func (c *WorkflowCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	counts, err := c.db.CountIdeasByStatus(ctx)
	if err != nil {
		slog.Error("failed to collect idea metrics", "error", err)
	} else {
		for status, n := range counts {
			ch <- prometheus.MustNewConstMetric(ideasDesc, prometheus.GaugeValue, float64(n), status)
		}
	}

	pending, err := c.db.CountPendingRequests(ctx)
	if err != nil {
		slog.Error("failed to collect pending request metrics", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(pendingRequestsDesc, prometheus.GaugeValue, float64(pending))
}

var initOnce sync.Once

// Init registers the workflow collector and counters.
// Must be called once at startup.
func Init(database WorkflowCounter) {
	initOnce.Do(func() {
		prometheus.MustRegister(supervisionEventsTotal, consistencyFailuresTotal)
		prometheus.MustRegister(&WorkflowCollector{db: database})
	})
}

// RecordSupervisionEvent counts a workflow transition.
func RecordSupervisionEvent(event string) {
	supervisionEventsTotal.WithLabelValues(event).Inc()
}

// RecordConsistencyFailure counts an unrepaired partial write. These feed an
// operator alert; any non-zero value means the atomicity guarantee was
// violated by the storage layer.
func RecordConsistencyFailure(op string) {
	consistencyFailuresTotal.WithLabelValues(op).Inc()
}
