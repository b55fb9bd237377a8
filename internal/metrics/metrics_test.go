package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMetrics_Records(t *testing.T) {
	m := NewSyncMetrics()

	m.Pass(PassCompleted)
	m.Pass(PassCompleted)
	m.Mutation(OutcomeDeadLetter)
	m.Refresh(false)
	m.QueueSize(3, 1)
	m.SetReachable(true)
	m.Dispatched("order_updated", 12*time.Millisecond)
	m.Pulled("order", true)
	m.Pulled("ticket", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PassesTotal.WithLabelValues(PassCompleted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MutationsTotal.WithLabelValues(OutcomeDeadLetter)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshTotal.WithLabelValues("fail")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Pending))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DeadLetters))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Reachable))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PullsTotal.WithLabelValues("order", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PullsTotal.WithLabelValues("ticket", "fail")))
}

func TestSyncMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewSyncMetrics()
		NewSyncMetrics()
	})
}

func TestSyncMetrics_NilIsNoop(t *testing.T) {
	var m *SyncMetrics

	assert.NotPanics(t, func() {
		m.Pass(PassError)
		m.Mutation(OutcomeRetry)
		m.Refresh(true)
		m.QueueSize(1, 1)
		m.SetReachable(false)
		m.Dispatched("x", time.Second)
		m.Pulled("order", true)
	})
}

func TestSyncMetrics_Handler(t *testing.T) {
	m := NewSyncMetrics()
	m.Pass(PassOffline)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `sync_passes_total{result="offline"} 1`)
}
