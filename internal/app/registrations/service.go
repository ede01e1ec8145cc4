package registrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/wisla-travel/booking-api/internal/domain"
	"github.com/wisla-travel/booking-api/internal/platform/dateint"
	"github.com/wisla-travel/booking-api/internal/platform/metrics"
	clockport "github.com/wisla-travel/booking-api/internal/ports/out/clock"
	"github.com/wisla-travel/booking-api/internal/ports/out/clientrepo"
	"github.com/wisla-travel/booking-api/internal/ports/out/registrationrepo"
	"github.com/wisla-travel/booking-api/internal/ports/out/triprepo"
)

// Service implements the capacity-checked registration protocol and its
// removal counterpart.
type Service struct {
	clients clientrepo.Repository
	trips   triprepo.Repository
	regs    registrationrepo.Repository
	clk     clockport.Clock
	metrics *metrics.Metrics
}

func NewService(
	clients clientrepo.Repository,
	trips triprepo.Repository,
	regs registrationrepo.Repository,
	clk clockport.Clock,
	m *metrics.Metrics,
) *Service {
	return &Service{
		clients: clients,
		trips:   trips,
		regs:    regs,
		clk:     clk,
		metrics: m,
	}
}

// Register registers the client for the trip.
//
// The checks run in a fixed order and short-circuit on the first failure:
// client exists, trip exists (capacity fetched here), not already registered,
// occupancy below capacity. On success exactly one registration row is
// inserted with RegisteredAt stamped to today's UTC date and no payment date;
// no failure path has a side effect.
//
// The capacity check and the insert are separate store operations, so two
// concurrent callers can both pass the check for the last open seat. The
// store's (client, trip) primary key keeps the uniqueness invariant atomic;
// the capacity invariant is only as strong as the store's isolation level.
func (s *Service) Register(ctx context.Context, clientID domain.ClientID, tripID domain.TripID) error {
	ok, err := s.clients.Exists(ctx, clientID)
	if err != nil {
		return fmt.Errorf("check client: %w", err)
	}
	if !ok {
		s.metrics.RegistrationsRejected.WithLabelValues("client_not_found").Inc()
		return &Error{Status: 404, Code: CodeClientNotFound, Message: fmt.Sprintf("client with id %d not found", clientID)}
	}

	maxPeople, err := s.trips.MaxPeople(ctx, tripID)
	if err != nil {
		if errors.Is(err, triprepo.ErrNotFound) {
			s.metrics.RegistrationsRejected.WithLabelValues("trip_not_found").Inc()
			return &Error{Status: 404, Code: CodeTripNotFound, Message: fmt.Sprintf("trip with id %d not found", tripID)}
		}
		return fmt.Errorf("check trip: %w", err)
	}

	registered, err := s.regs.Exists(ctx, clientID, tripID)
	if err != nil {
		return fmt.Errorf("check registration: %w", err)
	}
	if registered {
		s.metrics.RegistrationsRejected.WithLabelValues("already_registered").Inc()
		return &Error{Status: 409, Code: CodeAlreadyRegistered, Message: "client is already registered for this trip"}
	}

	count, err := s.regs.CountByTrip(ctx, tripID)
	if err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}
	if count >= maxPeople {
		s.metrics.RegistrationsRejected.WithLabelValues("trip_full").Inc()
		return &Error{Status: 400, Code: CodeTripFull, Message: "maximum number of participants reached for this trip"}
	}

	reg := registrationrepo.Registration{
		ClientID:     clientID,
		TripID:       tripID,
		RegisteredAt: dateint.Encode(s.clk.Now().UTC()),
	}
	if err := s.regs.Insert(ctx, reg); err != nil {
		if errors.Is(err, registrationrepo.ErrAlreadyExists) {
			// A concurrent caller won the insert between our check and ours.
			s.metrics.RegistrationsRejected.WithLabelValues("already_registered").Inc()
			return &Error{Status: 409, Code: CodeAlreadyRegistered, Message: "client is already registered for this trip"}
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	s.metrics.RegistrationsCreated.Inc()
	return nil
}

// Unregister removes the client's registration for the trip. The existence
// check runs first, so a repeat call after success fails with
// REGISTRATION_NOT_FOUND rather than silently succeeding.
func (s *Service) Unregister(ctx context.Context, clientID domain.ClientID, tripID domain.TripID) error {
	exists, err := s.regs.Exists(ctx, clientID, tripID)
	if err != nil {
		return fmt.Errorf("check registration: %w", err)
	}
	if !exists {
		return &Error{Status: 404, Code: CodeRegistrationNotFound, Message: "registration not found"}
	}

	if err := s.regs.Delete(ctx, clientID, tripID); err != nil {
		if errors.Is(err, registrationrepo.ErrNotFound) {
			return &Error{Status: 404, Code: CodeRegistrationNotFound, Message: "registration not found"}
		}
		return fmt.Errorf("delete registration: %w", err)
	}

	s.metrics.RegistrationsRemoved.Inc()
	return nil
}
