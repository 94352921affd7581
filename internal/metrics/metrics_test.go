package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

type fakeCounter struct {
	ideas   map[string]int64
	pending int64
	fail    bool
}

func (f *fakeCounter) CountIdeasByStatus(context.Context) (map[string]int64, error) {
	if f.fail {
		return nil, errors.New("db down")
	}
	return f.ideas, nil
}

func (f *fakeCounter) CountPendingRequests(context.Context) (int64, error) {
	if f.fail {
		return 0, errors.New("db down")
	}
	return f.pending, nil
}

func TestWorkflowCollector(t *testing.T) {
	collector := &WorkflowCollector{db: &fakeCounter{
		ideas:   map[string]int64{"draft": 3, "public": 1},
		pending: 2,
	}}

	ch := make(chan prometheus.Metric, 16)
	collector.Collect(ch)
	close(ch)

	var metrics []prometheus.Metric
	for m := range ch {
		metrics = append(metrics, m)
	}

	// Two idea statuses plus the pending gauge.
	if len(metrics) != 3 {
		t.Errorf("collected %d metrics, want 3", len(metrics))
	}
}

func TestWorkflowCollectorSurvivesDBFailure(t *testing.T) {
	collector := &WorkflowCollector{db: &fakeCounter{fail: true}}

	ch := make(chan prometheus.Metric, 16)
	collector.Collect(ch)
	close(ch)

	for range ch {
		t.Error("collector emitted metrics despite a failing source")
	}
}

func TestRecordCountersDoNotPanic(t *testing.T) {
	// Counters work whether or not Init has registered them.
	RecordSupervisionEvent("request_submitted")
	RecordConsistencyFailure("cancel_request")
}
