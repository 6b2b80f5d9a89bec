package handler

import (
	"fmt"
	"net/http"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// ListTrips handles GET /api/trips.
// Each trip carries its countries; an empty catalogue is an empty array.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) error {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		return fmt.Errorf("handler.ListTrips: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	respondJSON(w, http.StatusOK, trips)
	return nil
}
