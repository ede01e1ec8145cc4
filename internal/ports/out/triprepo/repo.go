package triprepo

import (
	"context"

	"github.com/wisla-travel/booking-api/internal/domain"
)

// Repository provides read access to persisted trips.
//
// Trips are created and maintained by external administrative processes; this
// system only reads them and checks their capacity.
type Repository interface {
	// ListAll returns every trip ordered by trip id ascending, each populated
	// with its full ordered country list. Trips with zero countries are
	// included.
	ListAll(ctx context.Context) ([]domain.Trip, error)

	// MaxPeople returns the registration capacity of the trip, or ErrNotFound
	// if the trip does not exist.
	MaxPeople(ctx context.Context, id domain.TripID) (int, error)
}
