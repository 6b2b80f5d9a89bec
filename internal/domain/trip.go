// Package domain contains the core data types for the travel agency API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Trip is a bookable journey. Trips are created and edited outside this API;
// here they are read-only apart from the registrations that reference them.
type Trip struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	MaxPeople   int       `json:"maxPeople"` // capacity ceiling for registrations
	Countries   []Country `json:"countries"` // join order, never nil when loaded by the repo
}

// Country is a destination visited by one or more trips.
type Country struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
