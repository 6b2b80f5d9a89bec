// Package handler implements the HTTP handlers for the travel agency API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, client.go, registration.go) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/spec"
)

// TripServicer defines the trip operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a fake without touching the database or service layer.
type TripServicer interface {
	List(ctx context.Context) ([]domain.Trip, error)
}

// ClientServicer defines the client operations the handlers depend on.
type ClientServicer interface {
	Create(ctx context.Context, client domain.Client) (int, error)
	ListTrips(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
}

// RegistrationServicer defines the registration operations the handlers depend on.
type RegistrationServicer interface {
	Register(ctx context.Context, clientID, tripID int, paymentDate *time.Time) error
	Cancel(ctx context.Context, clientID, tripID int) error
}

// Pinger reports whether the database still answers.
// *database.Provider satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server serves every API endpoint.
// Wire it in main.go via r.Mount("/", server.Handler()).
type Server struct {
	trips         TripServicer
	clients       ClientServicer
	registrations RegistrationServicer
	db            Pinger
	log           *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil db skips the database check in GetHealth; a nil logger falls back
// to slog.Default().
func NewServer(trips TripServicer, clients ClientServicer, registrations RegistrationServicer, db Pinger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{trips: trips, clients: clients, registrations: registrations, db: db, log: log}
}

// Handler returns the routes of the API. Middleware is applied by the caller.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/trips", s.handle(s.ListTrips))
		r.Post("/clients", s.handle(s.CreateClient))
		r.Get("/clients/{id}/trips", s.handle(s.ListClientTrips))
		r.Put("/clients/{clientId}/trips/{tripId}", s.handle(s.RegisterClient))
		r.Delete("/clients/{clientId}/trips/{tripId}", s.handle(s.CancelRegistration))
	})

	return r
}

// apiFunc is a handler that may fail. Returning an error means the failure
// was not anticipated; handle answers it with the generic 500 body.
type apiFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Server) handle(fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			s.log.ErrorContext(r.Context(), "unhandled error",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
			)
			WriteInternalError(w, r)
		}
	}
}

// serveOpenAPI serves the embedded OpenAPI document.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
