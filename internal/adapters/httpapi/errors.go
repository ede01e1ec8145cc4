package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/wisla-travel/booking-api/internal/app/clients"
	"github.com/wisla-travel/booking-api/internal/app/registrations"
)

type errorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{
		Code:      code,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	}})
}

// writeAppError maps a service error to its HTTP representation. Errors the
// app layer did not classify become an opaque 500; the detail stays in the
// server log, not the response.
func (s *Server) writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	var regErr *registrations.Error
	if errors.As(err, &regErr) {
		writeError(w, r, regErr.Status, regErr.Code, regErr.Message)
		return
	}
	var clientErr *clients.Error
	if errors.As(err, &clientErr) {
		writeError(w, r, clientErr.Status, clientErr.Code, clientErr.Message)
		return
	}
	s.log.ErrorContext(r.Context(), "request failed",
		"error", err,
		"request_id", middleware.GetReqID(r.Context()),
	)
	writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal server error")
}
