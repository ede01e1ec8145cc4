// Package metrics declares the Prometheus instruments exported by the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ClientsCreated        prometheus.Counter
	RegistrationsCreated  prometheus.Counter
	RegistrationsRemoved  prometheus.Counter
	RegistrationsRejected *prometheus.CounterVec
}

// New creates all metrics and registers them on reg. Passing a fresh
// prometheus.NewRegistry keeps parallel tests from colliding on the default
// registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ClientsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_clients_created_total",
			Help: "Total number of clients created.",
		}),
		RegistrationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_registrations_created_total",
			Help: "Total number of trip registrations created.",
		}),
		RegistrationsRemoved: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_registrations_removed_total",
			Help: "Total number of trip registrations removed.",
		}),
		RegistrationsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_registrations_rejected_total",
			Help: "Total number of rejected registration attempts, by reason.",
		}, []string{"reason"}),
	}
}
