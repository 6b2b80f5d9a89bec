package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/travel-agency/backend/internal/database"
	"github.com/pkordes/travel-agency/backend/internal/domain"
)

const insertRegistration = `
		INSERT INTO client_trip (id_client, id_trip, registered_at, payment_date)
		VALUES ($1, $2, $3, $4)`

// AssignClientToTrip inserts a registration without any checks.
// A nil paymentDate is stored as NULL (unpaid).
func (r *pgTripRepo) AssignClientToTrip(ctx context.Context, clientID, tripID int, paymentDate *time.Time) (bool, error) {
	const op = "repo.TripRepo.AssignClientToTrip"

	var inserted bool
	err := r.withConn(ctx, op, func(conn database.Conn) error {
		tag, err := conn.Exec(ctx, insertRegistration, clientID, tripID, time.Now().UTC(), paymentDate)
		if err != nil {
			return fmt.Errorf("%s: %w", op, translate(err))
		}
		inserted = tag.RowsAffected() == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// AssignClientToTripWithinCapacity checks capacity and inserts in one
// transaction. SELECT ... FOR UPDATE on the trip row serializes concurrent
// registrations for the same trip until commit.
func (r *pgTripRepo) AssignClientToTripWithinCapacity(ctx context.Context, clientID, tripID int, paymentDate *time.Time) (bool, error) {
	const op = "repo.TripRepo.AssignClientToTripWithinCapacity"

	var inserted bool
	err := r.withConn(ctx, op, func(conn database.Conn) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("%s: begin: %w", op, err)
		}

		inserted, err = insertWithinCapacity(ctx, tx, clientID, tripID, paymentDate)
		if err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("%s: commit: %w", op, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

func insertWithinCapacity(ctx context.Context, tx pgx.Tx, clientID, tripID int, paymentDate *time.Time) (bool, error) {
	const lockTrip = `SELECT max_people FROM trip WHERE id_trip = $1 FOR UPDATE`
	const countParticipants = `SELECT COUNT(*) FROM client_trip WHERE id_trip = $1`

	var maxPeople int
	if err := tx.QueryRow(ctx, lockTrip, tripID).Scan(&maxPeople); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("lock trip: %w", err)
	}

	var count int
	if err := tx.QueryRow(ctx, countParticipants, tripID).Scan(&count); err != nil {
		return false, fmt.Errorf("count participants: %w", err)
	}
	if count >= maxPeople {
		return false, domain.ErrCapacityExceeded
	}

	tag, err := tx.Exec(ctx, insertRegistration, clientID, tripID, time.Now().UTC(), paymentDate)
	if err != nil {
		return false, translate(err)
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveClientFromTrip deletes the (client, trip) registration.
// No matching row is reported as false so the caller can answer "not found".
func (r *pgTripRepo) RemoveClientFromTrip(ctx context.Context, clientID, tripID int) (bool, error) {
	const op = "repo.TripRepo.RemoveClientFromTrip"
	const q = `DELETE FROM client_trip WHERE id_client = $1 AND id_trip = $2`

	var deleted bool
	err := r.withConn(ctx, op, func(conn database.Conn) error {
		tag, err := conn.Exec(ctx, q, clientID, tripID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// GetTripParticipantsCount counts the registrations of a trip.
func (r *pgTripRepo) GetTripParticipantsCount(ctx context.Context, tripID int) (int, error) {
	const op = "repo.TripRepo.GetTripParticipantsCount"
	const q = `SELECT COUNT(*) FROM client_trip WHERE id_trip = $1`

	var count int
	err := r.withConn(ctx, op, func(conn database.Conn) error {
		if err := conn.QueryRow(ctx, q, tripID).Scan(&count); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
