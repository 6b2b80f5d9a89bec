package repo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

func TestTripRepo_AssignClientToTrip(t *testing.T) {
	r, mock := newMockRepo(t)

	paid := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`INSERT INTO client_trip`).
		WithArgs(3, 2, pgxmock.AnyArg(), &paid).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	ok, err := r.AssignClientToTrip(context.Background(), 3, 2, &paid)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTripRepo_AssignClientToTrip_Unpaid(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO client_trip`).
		WithArgs(3, 2, pgxmock.AnyArg(), (*time.Time)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	ok, err := r.AssignClientToTrip(context.Background(), 3, 2, nil)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTripRepo_AssignClientToTrip_Duplicate(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO client_trip`).
		WithArgs(3, 2, pgxmock.AnyArg(), (*time.Time)(nil)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "client_trip_pkey"})

	ok, err := r.AssignClientToTrip(context.Background(), 3, 2, nil)

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTripRepo_AssignClientToTrip_ForeignKeyViolation(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO client_trip`).
		WithArgs(3, 2, pgxmock.AnyArg(), (*time.Time)(nil)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "client_trip_id_trip_fkey"})

	_, err := r.AssignClientToTrip(context.Background(), 3, 2, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_AssignWithinCapacity_Inserts(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"max_people"}).AddRow(2))
	mock.ExpectQuery(`FROM client_trip WHERE id_trip`).WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`INSERT INTO client_trip`).
		WithArgs(3, 2, pgxmock.AnyArg(), (*time.Time)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	ok, err := r.AssignClientToTripWithinCapacity(context.Background(), 3, 2, nil)

	require.NoError(t, err)
	assert.True(t, ok)
}

// TestTripRepo_AssignWithinCapacity_Full verifies the insert is never issued
// once the trip is full and the transaction is rolled back.
func TestTripRepo_AssignWithinCapacity_Full(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"max_people"}).AddRow(1))
	mock.ExpectQuery(`FROM client_trip WHERE id_trip`).WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	ok, err := r.AssignClientToTripWithinCapacity(context.Background(), 3, 2, nil)

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestTripRepo_AssignWithinCapacity_TripMissing(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs(9).
		WillReturnRows(pgxmock.NewRows([]string{"max_people"}))
	mock.ExpectRollback()

	_, err := r.AssignClientToTripWithinCapacity(context.Background(), 3, 9, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_AssignWithinCapacity_BeginError(t *testing.T) {
	r, mock := newMockRepo(t)

	beginErr := errors.New("too many clients")
	mock.ExpectBegin().WillReturnError(beginErr)

	_, err := r.AssignClientToTripWithinCapacity(context.Background(), 3, 2, nil)

	assert.ErrorIs(t, err, beginErr)
}

func TestTripRepo_RemoveClientFromTrip(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"deleted", 1, true},
		{"no matching registration", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, mock := newMockRepo(t)

			mock.ExpectExec(`DELETE FROM client_trip`).WithArgs(3, 2).
				WillReturnResult(pgxmock.NewResult("DELETE", tc.affected))

			got, err := r.RemoveClientFromTrip(context.Background(), 3, 2)

			require.NoError(t, err, "a missing row is a false result, not an error")
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTripRepo_GetTripParticipantsCount(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM client_trip WHERE id_trip`).WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

	got, err := r.GetTripParticipantsCount(context.Background(), 2)

	require.NoError(t, err)
	assert.Zero(t, got)
}
