// Package repo contains all database access logic for the travel agency API.
// Every operation acquires its own connection from a database.Connector,
// runs one parameterized statement and releases the connection before
// returning. No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/travel-agency/backend/internal/database"
	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// TripRepo defines every persistence operation of the API: trips, clients
// and the client_trip registrations between them.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows services to be unit-tested with a fake.
type TripRepo interface {
	// GetAllTrips returns every trip with its countries, ordered by start date
	// descending. Trips without countries are included with an empty list.
	GetAllTrips(ctx context.Context) ([]domain.Trip, error)

	// GetTrip returns a single trip with its countries.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetTrip(ctx context.Context, tripID int) (domain.Trip, error)

	// TripExists reports whether a trip with the given ID exists.
	TripExists(ctx context.Context, tripID int) (bool, error)

	// GetClientTrips returns the registrations of a client joined with the
	// trip name and dates, ordered by trip start date descending.
	// A client without registrations yields an empty slice, not an error.
	GetClientTrips(ctx context.Context, clientID int) ([]domain.ClientTrip, error)

	// AddClient inserts a client and returns its generated ID.
	// Returns an error wrapping domain.ErrConflict if the email or PESEL is taken.
	AddClient(ctx context.Context, client domain.Client) (int, error)

	// ClientExists reports whether a client with the given ID exists.
	ClientExists(ctx context.Context, clientID int) (bool, error)

	// AssignClientToTrip inserts a registration stamped with the current server
	// time. It performs no capacity or existence checks of its own and reports
	// whether exactly one row was inserted.
	AssignClientToTrip(ctx context.Context, clientID, tripID int, paymentDate *time.Time) (bool, error)

	// AssignClientToTripWithinCapacity inserts a registration only while the
	// trip has free places. The trip row is locked for the duration of the
	// check and the insert, so concurrent registrations cannot overbook it.
	// Returns domain.ErrCapacityExceeded when the trip is full and
	// domain.ErrNotFound when the trip does not exist.
	AssignClientToTripWithinCapacity(ctx context.Context, clientID, tripID int, paymentDate *time.Time) (bool, error)

	// RemoveClientFromTrip deletes a registration and reports whether a row
	// was actually deleted.
	RemoveClientFromTrip(ctx context.Context, clientID, tripID int) (bool, error)

	// GetTripParticipantsCount returns the number of registrations for a trip.
	GetTripParticipantsCount(ctx context.Context, tripID int) (int, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	conns database.Connector
}

// NewTripRepo constructs a TripRepo that acquires a fresh connection from
// conns for every operation. In production pass *database.Provider.
func NewTripRepo(conns database.Connector) TripRepo {
	return &pgTripRepo{conns: conns}
}

// withConn acquires a connection, hands it to fn and releases it on every
// exit path. op prefixes acquisition errors.
func (r *pgTripRepo) withConn(ctx context.Context, op string, fn func(conn database.Conn) error) error {
	conn, err := r.conns.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer conn.Release()

	return fn(conn)
}

const tripColumns = `
		SELECT t.id_trip, t.name, t.description, t.date_from, t.date_to, t.max_people,
		       c.id_country, c.name
		FROM trip t
		LEFT JOIN country_trip ct ON ct.id_trip = t.id_trip
		LEFT JOIN country c ON c.id_country = ct.id_country`

// GetAllTrips runs one left join over trip, country_trip and country and
// folds the (trip, country) rows back into one Trip per ID.
func (r *pgTripRepo) GetAllTrips(ctx context.Context) ([]domain.Trip, error) {
	const op = "repo.TripRepo.GetAllTrips"
	const q = tripColumns + `
		ORDER BY t.date_from DESC, t.id_trip`

	var trips []domain.Trip
	err := r.withConn(ctx, op, func(conn database.Conn) error {
		rows, err := conn.Query(ctx, q)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		trips, err = foldTrips(rows)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trips, nil
}

// GetTrip loads one trip through the same join as GetAllTrips.
func (r *pgTripRepo) GetTrip(ctx context.Context, tripID int) (domain.Trip, error) {
	const op = "repo.TripRepo.GetTrip"
	const q = tripColumns + `
		WHERE t.id_trip = $1`

	var trips []domain.Trip
	err := r.withConn(ctx, op, func(conn database.Conn) error {
		rows, err := conn.Query(ctx, q, tripID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		trips, err = foldTrips(rows)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
	if err != nil {
		return domain.Trip{}, err
	}
	if len(trips) == 0 {
		return domain.Trip{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return trips[0], nil
}

// TripExists runs a presence query; a missing trip is false, never an error.
func (r *pgTripRepo) TripExists(ctx context.Context, tripID int) (bool, error) {
	const op = "repo.TripRepo.TripExists"
	const q = `SELECT EXISTS (SELECT 1 FROM trip WHERE id_trip = $1)`

	return r.exists(ctx, op, q, tripID)
}

// exists scans the single boolean produced by a SELECT EXISTS query.
func (r *pgTripRepo) exists(ctx context.Context, op, q string, id int) (bool, error) {
	var found bool
	err := r.withConn(ctx, op, func(conn database.Conn) error {
		if err := conn.QueryRow(ctx, q, id).Scan(&found); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// foldTrips collapses joined (trip, country) rows into trips.
// The first row of a trip ID creates the trip; every row with a non-null
// country appends it. Trips keep their first-seen order and countries keep
// join order. rows is always closed.
func foldTrips(rows pgx.Rows) ([]domain.Trip, error) {
	defer rows.Close()

	trips := []domain.Trip{}
	index := make(map[int]int)

	for rows.Next() {
		var (
			t           domain.Trip
			countryID   *int
			countryName *string
		)
		err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.StartDate, &t.EndDate, &t.MaxPeople,
			&countryID, &countryName)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		i, seen := index[t.ID]
		if !seen {
			t.Countries = []domain.Country{}
			trips = append(trips, t)
			i = len(trips) - 1
			index[t.ID] = i
		}

		if countryID != nil {
			c := domain.Country{ID: *countryID}
			if countryName != nil {
				c.Name = *countryName
			}
			trips[i].Countries = append(trips[i].Countries, c)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return trips, nil
}
