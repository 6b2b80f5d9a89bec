package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// registeredMessage is the plain-text body of a successful registration.
const registeredMessage = "Client successfully registered for the trip"

// clientTripIDs reads {clientId} and {tripId}. On failure the 400 has
// already been written and ok is false.
func clientTripIDs(w http.ResponseWriter, r *http.Request) (clientID, tripID int, ok bool) {
	clientID, err := pathInt(r, "clientId")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return 0, 0, false
	}
	tripID, err = pathInt(r, "tripId")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return 0, 0, false
	}
	return clientID, tripID, true
}

// RegisterClient handles PUT /api/clients/{clientId}/trips/{tripId}.
// The payment date is optional; see paymentDate for accepted forms.
func (s *Server) RegisterClient(w http.ResponseWriter, r *http.Request) error {
	clientID, tripID, ok := clientTripIDs(w, r)
	if !ok {
		return nil
	}

	paid, err := paymentDate(r)
	if err != nil {
		if respondTooLarge(w, err) {
			return nil
		}
		respondJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return nil
	}

	err = s.registrations.Register(r.Context(), clientID, tripID, paid)
	switch {
	case err == nil:
		respondText(w, http.StatusOK, registeredMessage)
	case errors.Is(err, domain.ErrClientNotFound):
		respondJSON(w, http.StatusNotFound, notFoundBody(fmt.Sprintf("Client with ID %d not found", clientID)))
	case errors.Is(err, domain.ErrTripNotFound):
		respondJSON(w, http.StatusNotFound, notFoundBody(fmt.Sprintf("Trip with ID %d not found", tripID)))
	case errors.Is(err, domain.ErrCapacityExceeded):
		respondJSON(w, http.StatusBadRequest, capacityBody())
	case errors.Is(err, domain.ErrAlreadyRegistered):
		respondJSON(w, http.StatusConflict, conflictBody("Client is already registered for this trip"))
	case errors.Is(err, domain.ErrRegistrationFailed):
		respondJSON(w, http.StatusBadRequest, requestBody("Failed to register client for the trip"))
	default:
		return fmt.Errorf("handler.RegisterClient: %w", err)
	}
	return nil
}

// CancelRegistration handles DELETE /api/clients/{clientId}/trips/{tripId}.
func (s *Server) CancelRegistration(w http.ResponseWriter, r *http.Request) error {
	clientID, tripID, ok := clientTripIDs(w, r)
	if !ok {
		return nil
	}

	err := s.registrations.Cancel(r.Context(), clientID, tripID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, notFoundBody("Registration not found or already removed"))
	default:
		return fmt.Errorf("handler.CancelRegistration: %w", err)
	}
	return nil
}
