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

func TestNilMetrics_NoPanic(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementPackage("DE", PackageMatched)
		m.IncrementMatches(3)
		m.ObserveCycle("ordinary", time.Second)
		_ = m.Handler()
	})
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}

func TestCounters(t *testing.T) {
	m := New()

	m.IncrementPackage("DE", PackageMatched)
	m.IncrementPackage("DE", PackageMatched)
	m.IncrementPackage("DE", PackageVerificationFailed)
	m.IncrementMatches(2)
	m.IncrementMatches(0)
	m.ObserveCycle("emptyDiscovery", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PackagesProcessed.WithLabelValues("DE", PackageMatched)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PackagesProcessed.WithLabelValues("DE", PackageVerificationFailed)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MatchesCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CycleOutcome.WithLabelValues("emptyDiscovery")))
}

func TestHandler_ServesMetrics(t *testing.T) {
	m := New()
	m.IncrementMatches(1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "trace_warnings_matches_created_total 1")
}
