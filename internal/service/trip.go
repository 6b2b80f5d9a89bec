// Package service contains the business logic for the travel agency API.
// Services validate inputs, enforce business rules such as trip capacity,
// and orchestrate repo calls. No SQL lives here; services depend on the
// repo.TripRepo interface, not its implementation.
package service

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// TripService implements the read-only trip catalogue.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// List returns every trip with its countries, latest start date first.
// The result is never nil.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.repo.GetAllTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}
