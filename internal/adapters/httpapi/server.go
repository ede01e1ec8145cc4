// Package httpapi is the HTTP transport for the booking API: routing,
// request decoding and validation, and mapping application outcomes to
// status codes. All booking rules live in the app services.
package httpapi

import (
	"log/slog"

	"github.com/wisla-travel/booking-api/internal/app/clients"
	"github.com/wisla-travel/booking-api/internal/app/registrations"
	"github.com/wisla-travel/booking-api/internal/app/trips"
)

// Server holds the application services the handlers delegate to.
type Server struct {
	trips   *trips.Service
	clients *clients.Service
	regs    *registrations.Service

	log *slog.Logger
}

func NewServer(tripSvc *trips.Service, clientSvc *clients.Service, regSvc *registrations.Service, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:   tripSvc,
		clients: clientSvc,
		regs:    regSvc,
		log:     log,
	}
}
