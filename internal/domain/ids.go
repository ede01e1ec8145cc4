package domain

// TripID is the store-generated identifier of a trip.
type TripID int

// CountryID is the store-generated identifier of a country.
type CountryID int

// ClientID is the store-generated identifier of a client.
type ClientID int
