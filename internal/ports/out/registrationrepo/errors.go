package registrationrepo

import "errors"

var (
	// ErrNotFound indicates no registration exists for the (client, trip) pair.
	ErrNotFound = errors.New("registration not found")

	// ErrAlreadyExists indicates a registration already exists for the
	// (client, trip) pair.
	ErrAlreadyExists = errors.New("registration already exists")
)
