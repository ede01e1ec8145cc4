package clientrepo

import (
	"context"

	"github.com/wisla-travel/booking-api/internal/domain"
)

// NewClient carries the caller-provided fields for a client insert.
// Telephone and Pesel are optional; nil is stored as SQL NULL.
type NewClient struct {
	FirstName string
	LastName  string
	Email     string

	Telephone *string
	Pesel     *string
}

// Repository provides access to persisted clients.
type Repository interface {
	// Create inserts a new client row and returns the store-generated id.
	Create(ctx context.Context, c NewClient) (domain.ClientID, error)

	// Exists reports whether a client with the given id exists.
	Exists(ctx context.Context, id domain.ClientID) (bool, error)

	// ListTrips returns the trips the client is registered for, ordered by
	// trip id ascending, each with its ordered country list and the
	// registration's decoded dates.
	ListTrips(ctx context.Context, id domain.ClientID) ([]domain.ClientTrip, error)
}
