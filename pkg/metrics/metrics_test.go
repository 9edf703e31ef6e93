package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/x", 200, time.Millisecond)
		m.ObserveDBQuery("exec", time.Millisecond)
		m.SetDBPoolStats(1, 1, 0)
		m.IncSubmission("success")
		m.IncProbe("available")
		m.IncSuggestionReset()
		m.IncLockExpiration()
		m.IncScheduleFallback()
		m.IncSideEffectFailure("history")
		m.SetActiveFlows(3)
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.IncSubmission("conflict")
	m.IncSubmission("conflict")
	m.IncLockExpiration()
	m.SetActiveFlows(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissions.WithLabelValues("conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lockExpirations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.activeFlows))
}
