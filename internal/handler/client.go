package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/validate"
)

// clientRequest is the JSON body of POST /api/clients.
type clientRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Pesel     string `json:"pesel"`
}

// createdResponse is the body of a 201 from POST /api/clients.
type createdResponse struct {
	ID int `json:"id"`
}

// CreateClient handles POST /api/clients.
func (s *Server) CreateClient(w http.ResponseWriter, r *http.Request) error {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if respondTooLarge(w, err) {
			return nil
		}
		respondJSON(w, http.StatusBadRequest, requestBody("request body must be a JSON client object"))
		return nil
	}

	id, err := s.clients.Create(r.Context(), domain.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Telephone: req.Telephone,
		Pesel:     req.Pesel,
	})
	if err != nil {
		var violations validate.Violations
		switch {
		case errors.As(err, &violations):
			respondJSON(w, http.StatusBadRequest, violations)
			return nil
		case errors.Is(err, domain.ErrConflict):
			respondJSON(w, http.StatusConflict, conflictBody("Client with this PESEL or Email already exists"))
			return nil
		}
		return fmt.Errorf("handler.CreateClient: %w", err)
	}

	w.Header().Set("Location", fmt.Sprintf("/api/clients/%d", id))
	respondJSON(w, http.StatusCreated, createdResponse{ID: id})
	return nil
}

// ListClientTrips handles GET /api/clients/{id}/trips.
func (s *Server) ListClientTrips(w http.ResponseWriter, r *http.Request) error {
	id, err := pathInt(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return nil
	}

	trips, err := s.clients.ListTrips(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrClientNotFound):
			respondJSON(w, http.StatusNotFound, notFoundBody(fmt.Sprintf("Client with ID %d not found", id)))
			return nil
		case errors.Is(err, domain.ErrNoClientTrips):
			respondJSON(w, http.StatusNotFound, notFoundBody(fmt.Sprintf("No trips found for client with ID %d", id)))
			return nil
		}
		return fmt.Errorf("handler.ListClientTrips: %w", err)
	}

	respondJSON(w, http.StatusOK, trips)
	return nil
}
