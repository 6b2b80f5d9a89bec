package repo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// Postgres SQLSTATE codes the repository reacts to.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// registrationKey is the primary key of client_trip; a unique violation on it
// means the client is already registered for the trip.
const registrationKey = "client_trip_pkey"

// translate maps constraint violations onto domain sentinels and returns any
// other error unchanged. The original error text is kept for logs.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolation:
		if pgErr.ConstraintName == registrationKey {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyRegistered, pgErr.Message)
		}
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.Message)
	case foreignKeyViolation:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, pgErr.Message)
	}
	return err
}
