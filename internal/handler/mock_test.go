package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
type mockTripServicer struct {
	list func(ctx context.Context) ([]domain.Trip, error)
}

func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}

// mockClientServicer is a test double for handler.ClientServicer.
// Set only the method fields your test needs.
type mockClientServicer struct {
	create    func(ctx context.Context, client domain.Client) (int, error)
	listTrips func(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
}

func (m *mockClientServicer) Create(ctx context.Context, c domain.Client) (int, error) {
	return m.create(ctx, c)
}
func (m *mockClientServicer) ListTrips(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	return m.listTrips(ctx, clientID)
}

// mockRegistrationServicer is a test double for handler.RegistrationServicer.
type mockRegistrationServicer struct {
	register func(ctx context.Context, clientID, tripID int, paymentDate *time.Time) error
	cancel   func(ctx context.Context, clientID, tripID int) error
}

func (m *mockRegistrationServicer) Register(ctx context.Context, clientID, tripID int, paymentDate *time.Time) error {
	return m.register(ctx, clientID, tripID, paymentDate)
}
func (m *mockRegistrationServicer) Cancel(ctx context.Context, clientID, tripID int) error {
	return m.cancel(ctx, clientID, tripID)
}

// mockPinger is a test double for handler.Pinger.
type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.Pinger               = (*mockPinger)(nil)
	_ handler.TripServicer         = (*mockTripServicer)(nil)
	_ handler.ClientServicer       = (*mockClientServicer)(nil)
	_ handler.RegistrationServicer = (*mockRegistrationServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks the same way main.go
// mounts it. Nil mocks are replaced by empty ones that panic if called.
func newHTTPHandler(trips handler.TripServicer, clients handler.ClientServicer, regs handler.RegistrationServicer) http.Handler {
	if trips == nil {
		trips = &mockTripServicer{}
	}
	if clients == nil {
		clients = &mockClientServicer{}
	}
	if regs == nil {
		regs = &mockRegistrationServicer{}
	}
	return handler.NewServer(trips, clients, regs, nil, nil).Handler()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// decodeError decodes an ErrorResponse body.
func decodeError(t *testing.T, body *bytes.Buffer) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

// requireInternalError asserts the fixed 500 body.
func requireInternalError(t *testing.T, code int, body *bytes.Buffer) {
	t.Helper()
	require.Equal(t, http.StatusInternalServerError, code)
	var resp handler.InternalError
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	require.Equal(t, handler.InternalErrorMessage, resp.Message)
	require.False(t, resp.DateTime.IsZero())
	require.Equal(t, time.UTC, resp.DateTime.Location())
}
