package domain

import "time"

// Client is a customer of the agency.
// Email and Pesel are unique in the store; a collision surfaces as ErrConflict.
type Client struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Pesel     string `json:"pesel"` // 11-digit national identifier
}

// ClientTrip is a registration of a client on a trip.
// RegisteredAt is always set by the server at creation time.
// PaymentDate is nil while the registration is unpaid.
//
// TripName, TripStartDate and TripEndDate are denormalized from the trip and
// are only populated by client-facing listings.
type ClientTrip struct {
	ClientID      int        `json:"clientId"`
	TripID        int        `json:"tripId"`
	RegisteredAt  time.Time  `json:"registeredAt"`
	PaymentDate   *time.Time `json:"paymentDate"`
	TripName      string     `json:"tripName"`
	TripStartDate time.Time  `json:"tripStartDate"`
	TripEndDate   time.Time  `json:"tripEndDate"`
}
