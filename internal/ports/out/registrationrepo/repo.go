package registrationrepo

import (
	"context"

	"github.com/wisla-travel/booking-api/internal/domain"
)

// Registration is the persistence shape of a client-trip registration.
// RegisteredAt and PaymentDate use the dateint YYYYMMDD encoding; PaymentDate
// is nil until a payment is recorded (this system never sets it).
type Registration struct {
	ClientID domain.ClientID
	TripID   domain.TripID

	RegisteredAt int
	PaymentDate  *int
}

// Repository provides access to persisted registrations.
//
// The registration protocol issues each of these as an independent store
// operation; cross-operation atomicity is whatever the backing store gives.
type Repository interface {
	// Exists reports whether a registration row for (clientID, tripID) exists.
	Exists(ctx context.Context, clientID domain.ClientID, tripID domain.TripID) (bool, error)

	// CountByTrip returns the number of registrations for the trip.
	CountByTrip(ctx context.Context, tripID domain.TripID) (int, error)

	// Insert creates a registration row. ErrAlreadyExists is returned when a
	// row for the same (client, trip) pair already exists.
	Insert(ctx context.Context, r Registration) error

	// Delete removes the registration row for (clientID, tripID), or returns
	// ErrNotFound if no such row exists.
	Delete(ctx context.Context, clientID domain.ClientID, tripID domain.TripID) error
}
