package httpapi

import (
	"github.com/oapi-codegen/nullable"
	"github.com/oapi-codegen/runtime/types"

	"github.com/wisla-travel/booking-api/internal/domain"
)

type countryResponse struct {
	ID   int    `json:"idCountry"`
	Name string `json:"name"`
}

type tripResponse struct {
	ID          int               `json:"idTrip"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	DateFrom    types.Date        `json:"dateFrom"`
	DateTo      types.Date        `json:"dateTo"`
	MaxPeople   int               `json:"maxPeople"`
	Countries   []countryResponse `json:"countries"`
}

type clientTripResponse struct {
	tripResponse
	RegisteredAt *types.Date `json:"registeredAt"`
	PaymentDate  *types.Date `json:"paymentDate"`
}

// createClientRequest uses nullable fields for telephone and pesel so an
// explicit null and an omitted field both store an absent value.
type createClientRequest struct {
	FirstName string                    `json:"firstName"`
	LastName  string                    `json:"lastName"`
	Email     string                    `json:"email"`
	Telephone nullable.Nullable[string] `json:"telephone"`
	Pesel     nullable.Nullable[string] `json:"pesel"`
}

type createClientResponse struct {
	ID int `json:"idClient"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toTripResponse(t domain.Trip) tripResponse {
	countries := make([]countryResponse, 0, len(t.Countries))
	for _, c := range t.Countries {
		countries = append(countries, countryResponse{ID: int(c.ID), Name: c.Name})
	}
	return tripResponse{
		ID:          int(t.ID),
		Name:        t.Name,
		Description: t.Description,
		DateFrom:    types.Date{Time: t.DateFrom},
		DateTo:      types.Date{Time: t.DateTo},
		MaxPeople:   t.MaxPeople,
		Countries:   countries,
	}
}

func toClientTripResponse(ct domain.ClientTrip) clientTripResponse {
	out := clientTripResponse{tripResponse: toTripResponse(ct.Trip)}
	if ct.RegisteredAt != nil {
		out.RegisteredAt = &types.Date{Time: *ct.RegisteredAt}
	}
	if ct.PaymentDate != nil {
		out.PaymentDate = &types.Date{Time: *ct.PaymentDate}
	}
	return out
}

// optString collapses a nullable field to a plain optional: nil when the
// field was omitted or explicitly null.
func optString(n nullable.Nullable[string]) *string {
	if !n.IsSpecified() || n.IsNull() {
		return nil
	}
	v := n.MustGet()
	return &v
}
