package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wisla-travel/booking-api/internal/domain"
)

// pathID parses an integer URL parameter, writing a 400 and returning
// ok=false when it is not a valid integer.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", name+" must be an integer")
		return 0, false
	}
	return id, true
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientID")
	if !ok {
		return
	}
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}

	if err := s.regs.Register(r.Context(), domain.ClientID(clientID), domain.TripID(tripID)); err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "client registered for trip successfully"})
}

func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientID")
	if !ok {
		return
	}
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}

	if err := s.regs.Unregister(r.Context(), domain.ClientID(clientID), domain.TripID(tripID)); err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "registration deleted successfully"})
}
