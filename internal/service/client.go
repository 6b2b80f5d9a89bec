package service

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/metrics"
	"github.com/pkordes/travel-agency/backend/internal/repo"
	"github.com/pkordes/travel-agency/backend/internal/validate"
)

// ClientService implements client creation and the client's trip listing.
type ClientService struct {
	repo    repo.TripRepo
	metrics *metrics.Metrics
}

// NewClientService constructs a ClientService. m may be nil.
func NewClientService(r repo.TripRepo, m *metrics.Metrics) *ClientService {
	return &ClientService{repo: r, metrics: m}
}

// Create validates client and persists it, returning the generated ID.
// Invalid input returns an error wrapping validate.Violations and never
// reaches the store. A duplicate email or PESEL wraps domain.ErrConflict.
func (s *ClientService) Create(ctx context.Context, client domain.Client) (int, error) {
	if violations := validate.Client(client); len(violations) > 0 {
		return 0, fmt.Errorf("service.ClientService.Create: %w", violations)
	}

	id, err := s.repo.AddClient(ctx, client)
	if err != nil {
		return 0, fmt.Errorf("service.ClientService.Create: %w", err)
	}

	s.metrics.IncClientsCreated()
	return id, nil
}

// ListTrips returns the trips a client is registered for.
// An unknown client returns domain.ErrClientNotFound and a client without
// registrations returns domain.ErrNoClientTrips.
func (s *ClientService) ListTrips(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	exists, err := s.repo.ClientExists(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("service.ClientService.ListTrips: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("service.ClientService.ListTrips: %w", domain.ErrClientNotFound)
	}

	trips, err := s.repo.GetClientTrips(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("service.ClientService.ListTrips: %w", err)
	}
	if len(trips) == 0 {
		return nil, fmt.Errorf("service.ClientService.ListTrips: %w", domain.ErrNoClientTrips)
	}
	return trips, nil
}
