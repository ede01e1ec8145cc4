package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/wisla-travel/booking-api/internal/domain"
	"github.com/wisla-travel/booking-api/internal/platform/metrics"
	"github.com/wisla-travel/booking-api/internal/ports/out/clientrepo"
)

// Service handles client creation and the client-scoped trip listing.
type Service struct {
	repo    clientrepo.Repository
	metrics *metrics.Metrics
}

func NewService(repo clientrepo.Repository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, metrics: m}
}

// CreateClientInput carries the already-validated fields for a new client.
// Field presence and email shape are the transport layer's responsibility.
type CreateClientInput struct {
	FirstName string
	LastName  string
	Email     string

	Telephone *string
	Pesel     *string
}

// Create inserts the client and returns the store-generated id. Store
// failures are wrapped with context; the original error chain is preserved.
func (s *Service) Create(ctx context.Context, in CreateClientInput) (domain.ClientID, error) {
	id, err := s.repo.Create(ctx, clientrepo.NewClient{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Telephone: in.Telephone,
		Pesel:     in.Pesel,
	})
	if err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}
	s.metrics.ClientsCreated.Inc()
	return id, nil
}

// ListTrips returns the client's registrations as denormalized ClientTrip
// records, after verifying the client exists.
func (s *Service) ListTrips(ctx context.Context, id domain.ClientID) ([]domain.ClientTrip, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check client: %w", err)
	}
	if !ok {
		return nil, &Error{Status: 404, Code: CodeClientNotFound, Message: fmt.Sprintf("client with id %d does not exist", id)}
	}

	trips, err := s.repo.ListTrips(ctx, id)
	if err != nil {
		if errors.Is(err, clientrepo.ErrNotFound) {
			return nil, &Error{Status: 404, Code: CodeClientNotFound, Message: fmt.Sprintf("client with id %d does not exist", id)}
		}
		return nil, err
	}
	return trips, nil
}
