package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/metrics"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// RegistrationService registers clients for trips and cancels registrations.
type RegistrationService struct {
	repo    repo.TripRepo
	metrics *metrics.Metrics
}

// NewRegistrationService constructs a RegistrationService. m may be nil.
func NewRegistrationService(r repo.TripRepo, m *metrics.Metrics) *RegistrationService {
	return &RegistrationService{repo: r, metrics: m}
}

// Register signs clientID up for tripID with an optional payment date.
//
// The client and trip must exist and the trip must have a free place. A full
// trip is rejected before any insert is attempted. The insert itself re-checks
// capacity under a row lock, so two requests racing for the last place cannot
// both succeed.
func (s *RegistrationService) Register(ctx context.Context, clientID, tripID int, paymentDate *time.Time) error {
	const op = "service.RegistrationService.Register"

	if err := s.check(ctx, clientID, tripID); err != nil {
		s.metrics.ObserveRegistration(outcomeOf(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	ok, err := s.repo.AssignClientToTripWithinCapacity(ctx, clientID, tripID, paymentDate)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrTripNotFound) {
			// The trip or client disappeared between the checks and the insert.
			err = fmt.Errorf("%w: %w", domain.ErrTripNotFound, err)
		}
		s.metrics.ObserveRegistration(outcomeOf(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		s.metrics.ObserveRegistration(metrics.OutcomeFailed)
		return fmt.Errorf("%s: %w", op, domain.ErrRegistrationFailed)
	}

	s.metrics.ObserveRegistration(metrics.OutcomeRegistered)
	return nil
}

// check runs the existence and capacity checks that precede the insert.
func (s *RegistrationService) check(ctx context.Context, clientID, tripID int) error {
	exists, err := s.repo.ClientExists(ctx, clientID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrClientNotFound
	}

	exists, err = s.repo.TripExists(ctx, tripID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTripNotFound
	}

	participants, err := s.repo.GetTripParticipantsCount(ctx, tripID)
	if err != nil {
		return err
	}

	trip, err := s.repo.GetTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrTripNotFound
		}
		return err
	}

	if participants >= trip.MaxPeople {
		return domain.ErrCapacityExceeded
	}
	return nil
}

// Cancel removes the registration of clientID on tripID.
// Returns domain.ErrRegistrationNotFound when there was nothing to remove.
func (s *RegistrationService) Cancel(ctx context.Context, clientID, tripID int) error {
	removed, err := s.repo.RemoveClientFromTrip(ctx, clientID, tripID)
	if err != nil {
		return fmt.Errorf("service.RegistrationService.Cancel: %w", err)
	}
	if !removed {
		return fmt.Errorf("service.RegistrationService.Cancel: %w", domain.ErrRegistrationNotFound)
	}

	s.metrics.IncCancellations()
	return nil
}

// outcomeOf maps a registration error onto its metrics label.
func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrCapacityExceeded):
		return metrics.OutcomeCapacityExceeded
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return metrics.OutcomeAlreadyRegistered
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeFailed
	}
}
