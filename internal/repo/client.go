package repo

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-agency/backend/internal/database"
	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// AddClient inserts a client row and returns the generated id_client.
func (r *pgTripRepo) AddClient(ctx context.Context, client domain.Client) (int, error) {
	const op = "repo.TripRepo.AddClient"
	const q = `
		INSERT INTO client (first_name, last_name, email, telephone, pesel)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_client`

	var id int
	err := r.withConn(ctx, op, func(conn database.Conn) error {
		row := conn.QueryRow(ctx, q, client.FirstName, client.LastName, client.Email, client.Telephone, client.Pesel)
		if err := row.Scan(&id); err != nil {
			return fmt.Errorf("%s: %w", op, translate(err))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ClientExists runs a presence query; a missing client is false, never an error.
func (r *pgTripRepo) ClientExists(ctx context.Context, clientID int) (bool, error) {
	const op = "repo.TripRepo.ClientExists"
	const q = `SELECT EXISTS (SELECT 1 FROM client WHERE id_client = $1)`

	return r.exists(ctx, op, q, clientID)
}

// GetClientTrips returns a client's registrations with trip name and dates.
func (r *pgTripRepo) GetClientTrips(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	const op = "repo.TripRepo.GetClientTrips"
	const q = `
		SELECT ct.id_client, ct.id_trip, ct.registered_at, ct.payment_date,
		       t.name, t.date_from, t.date_to
		FROM client_trip ct
		JOIN trip t ON t.id_trip = ct.id_trip
		WHERE ct.id_client = $1
		ORDER BY t.date_from DESC`

	out := []domain.ClientTrip{}
	err := r.withConn(ctx, op, func(conn database.Conn) error {
		rows, err := conn.Query(ctx, q, clientID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		defer rows.Close()

		for rows.Next() {
			var ct domain.ClientTrip
			err := rows.Scan(&ct.ClientID, &ct.TripID, &ct.RegisteredAt, &ct.PaymentDate,
				&ct.TripName, &ct.TripStartDate, &ct.TripEndDate)
			if err != nil {
				return fmt.Errorf("%s: scan: %w", op, err)
			}
			out = append(out, ct)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%s: rows: %w", op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
