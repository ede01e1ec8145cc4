package registrations

// Error codes returned by the registration protocol. Each failure condition
// maps to its own code; the transport layer decides presentation.
const (
	CodeClientNotFound       = "CLIENT_NOT_FOUND"
	CodeTripNotFound         = "TRIP_NOT_FOUND"
	CodeAlreadyRegistered    = "ALREADY_REGISTERED"
	CodeTripFull             = "TRIP_FULL"
	CodeRegistrationNotFound = "REGISTRATION_NOT_FOUND"
)

// Error is an application-layer error that can be mapped to an HTTP response.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}
