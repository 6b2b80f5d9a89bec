package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// InternalErrorMessage is the only detail a client ever sees about an
// unexpected failure.
const InternalErrorMessage = "An unexpected error occurred. Please try again later."

// InternalError is the body of every 500 response.
type InternalError struct {
	Message  string    `json:"message"`
	DateTime time.Time `json:"dateTime"`
}

// ErrorResponse is the body of every anticipated 4xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteInternalError writes the fixed 500 body stamped with the current UTC time.
// It is an http.HandlerFunc so the panic recoverer can reuse it.
func WriteInternalError(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusInternalServerError, InternalError{
		Message:  InternalErrorMessage,
		DateTime: time.Now().UTC(),
	})
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "Trip with ID 3 not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}}
}

// conflictBody returns an ErrorResponse for a uniqueness conflict.
func conflictBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "conflict", Message: message}}
}

// capacityBody returns an ErrorResponse for a full trip.
func capacityBody() ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "capacity_exceeded", Message: "This trip has reached maximum capacity"}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "bad_request", Message: message}}
}

// respondTooLarge writes a 413 and returns true when err came from a body
// that exceeded its http.MaxBytesReader limit.
func respondTooLarge(w http.ResponseWriter, err error) bool {
	var tooLarge *http.MaxBytesError
	if !errors.As(err, &tooLarge) {
		return false
	}
	respondJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: ErrorDetail{
		Code:    "request_too_large",
		Message: fmt.Sprintf("request body must not exceed %d bytes", tooLarge.Limit),
	}})
	return true
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
