package domain

import "time"

// Country is a destination associated with a trip via the trip_countries
// association table.
type Country struct {
	ID   CountryID
	Name string
}

// Trip is the domain representation of a bookable trip.
//
// Countries preserves the order in which countries first appear in the
// underlying join result; a trip may have zero countries.
type Trip struct {
	ID          TripID
	Name        string
	Description *string

	// DateFrom and DateTo carry date-only semantics at the edges.
	DateFrom time.Time
	DateTo   time.Time

	// MaxPeople is the registration capacity of the trip.
	MaxPeople int

	Countries []Country
}

// ClientTrip is the read model for one of a client's registrations: the trip
// joined with the registration's dates. It is produced for read queries only
// and never persisted as such.
type ClientTrip struct {
	Trip

	RegisteredAt *time.Time
	PaymentDate  *time.Time
}
