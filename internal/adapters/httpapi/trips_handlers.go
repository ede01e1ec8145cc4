package httpapi

import "net/http"

func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	list, err := s.trips.List(r.Context())
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}

	out := make([]tripResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTripResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}
