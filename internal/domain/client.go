package domain

// Client is the domain representation of a client record.
// Telephone and Pesel are optional; nil means unset.
type Client struct {
	ID ClientID

	FirstName string
	LastName  string
	Email     string

	Telephone *string
	Pesel     *string
}
