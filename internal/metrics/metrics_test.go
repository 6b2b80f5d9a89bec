package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-agency/backend/internal/metrics"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.IncClientsCreated()
	m.IncClientsCreated()
	m.ObserveRegistration(metrics.OutcomeRegistered)
	m.ObserveRegistration(metrics.OutcomeCapacityExceeded)
	m.ObserveRegistration(metrics.OutcomeCapacityExceeded)
	m.IncCancellations()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ClientsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues(metrics.OutcomeRegistered)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Registrations.WithLabelValues(metrics.OutcomeCapacityExceeded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Cancellations))
}

// TestMetrics_Nil verifies that a nil *Metrics can be used freely.
func TestMetrics_Nil(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.IncClientsCreated()
		m.ObserveRegistration(metrics.OutcomeFailed)
		m.IncCancellations()
		m.ObserveRequest(http.MethodGet, "/api/trips", http.StatusOK, time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodGet, "/api/trips", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `travel_agency_http_requests_total{method="GET",route="/api/trips",status="200"} 1`)
	assert.Contains(t, string(body), "travel_agency_http_request_duration_seconds")
}

// TestNew_Independent builds two Metrics values; a shared default registry
// would panic on the second registration.
func TestNew_Independent(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New()
		metrics.New()
	})
}
