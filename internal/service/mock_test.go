package service_test

import (
	"context"
	"time"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field; set only the ones your test needs.
// Calling a method whose field is nil panics, which flags unexpected calls.
type mockTripRepo struct {
	getAllTrips       func(ctx context.Context) ([]domain.Trip, error)
	getTrip           func(ctx context.Context, tripID int) (domain.Trip, error)
	tripExists        func(ctx context.Context, tripID int) (bool, error)
	getClientTrips    func(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
	addClient         func(ctx context.Context, client domain.Client) (int, error)
	clientExists      func(ctx context.Context, clientID int) (bool, error)
	assign            func(ctx context.Context, clientID, tripID int, paymentDate *time.Time) (bool, error)
	assignWithinLimit func(ctx context.Context, clientID, tripID int, paymentDate *time.Time) (bool, error)
	remove            func(ctx context.Context, clientID, tripID int) (bool, error)
	participants      func(ctx context.Context, tripID int) (int, error)
}

func (m *mockTripRepo) GetAllTrips(ctx context.Context) ([]domain.Trip, error) {
	return m.getAllTrips(ctx)
}
func (m *mockTripRepo) GetTrip(ctx context.Context, tripID int) (domain.Trip, error) {
	return m.getTrip(ctx, tripID)
}
func (m *mockTripRepo) TripExists(ctx context.Context, tripID int) (bool, error) {
	return m.tripExists(ctx, tripID)
}
func (m *mockTripRepo) GetClientTrips(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	return m.getClientTrips(ctx, clientID)
}
func (m *mockTripRepo) AddClient(ctx context.Context, client domain.Client) (int, error) {
	return m.addClient(ctx, client)
}
func (m *mockTripRepo) ClientExists(ctx context.Context, clientID int) (bool, error) {
	return m.clientExists(ctx, clientID)
}
func (m *mockTripRepo) AssignClientToTrip(ctx context.Context, clientID, tripID int, paymentDate *time.Time) (bool, error) {
	return m.assign(ctx, clientID, tripID, paymentDate)
}
func (m *mockTripRepo) AssignClientToTripWithinCapacity(ctx context.Context, clientID, tripID int, paymentDate *time.Time) (bool, error) {
	return m.assignWithinLimit(ctx, clientID, tripID, paymentDate)
}
func (m *mockTripRepo) RemoveClientFromTrip(ctx context.Context, clientID, tripID int) (bool, error) {
	return m.remove(ctx, clientID, tripID)
}
func (m *mockTripRepo) GetTripParticipantsCount(ctx context.Context, tripID int) (int, error) {
	return m.participants(ctx, tripID)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)
