package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/wisla-travel/booking-api/internal/app/clients"
	"github.com/wisla-travel/booking-api/internal/domain"
)

func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	req.FirstName = domain.NormalizeHumanName(req.FirstName)
	req.LastName = domain.NormalizeHumanName(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "FirstName, LastName and Email are required.")
		return
	}
	if !domain.ValidEmail(req.Email) {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Email format is invalid.")
		return
	}

	id, err := s.clients.Create(r.Context(), clients.CreateClientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Telephone: optString(req.Telephone),
		Pesel:     optString(req.Pesel),
	})
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/clients/%d", id))
	writeJSON(w, http.StatusCreated, createClientResponse{ID: int(id)})
}

func (s *Server) handleListClientTrips(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientID")
	if !ok {
		return
	}

	list, err := s.clients.ListTrips(r.Context(), domain.ClientID(clientID))
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}

	// Zero registrations is not an error: the endpoint answers with a message
	// body rather than an empty array.
	if len(list) == 0 {
		writeJSON(w, http.StatusOK, messageResponse{Message: "client has no trips registered"})
		return
	}

	out := make([]clientTripResponse, 0, len(list))
	for _, ct := range list {
		out = append(out, toClientTripResponse(ct))
	}
	writeJSON(w, http.StatusOK, out)
}
