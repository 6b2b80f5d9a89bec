// Package metrics holds the Prometheus collectors of the API.
// Collectors live on a private registry so tests can build as many
// Metrics values as they like without duplicate-registration panics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registration outcomes recorded by ObserveRegistration.
const (
	OutcomeRegistered        = "registered"
	OutcomeCapacityExceeded  = "capacity_exceeded"
	OutcomeAlreadyRegistered = "already_registered"
	OutcomeNotFound          = "not_found"
	OutcomeFailed            = "failed"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	ClientsCreated prometheus.Counter
	Registrations  *prometheus.CounterVec
	Cancellations  prometheus.Counter
	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ClientsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "travel_agency_clients_created_total",
			Help: "Total number of clients created",
		}),
		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_agency_trip_registrations_total",
			Help: "Trip registration attempts by outcome",
		}, []string{"outcome"}),
		Cancellations: factory.NewCounter(prometheus.CounterOpts{
			Name: "travel_agency_trip_cancellations_total",
			Help: "Total number of registrations removed",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_agency_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "travel_agency_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// IncClientsCreated counts one created client.
func (m *Metrics) IncClientsCreated() {
	if m == nil {
		return
	}
	m.ClientsCreated.Inc()
}

// ObserveRegistration counts one registration attempt with the given outcome.
func (m *Metrics) ObserveRegistration(outcome string) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(outcome).Inc()
}

// IncCancellations counts one removed registration.
func (m *Metrics) IncCancellations() {
	if m == nil {
		return
	}
	m.Cancellations.Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
