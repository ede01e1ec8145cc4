package trips

import (
	"context"

	"github.com/wisla-travel/booking-api/internal/domain"
	"github.com/wisla-travel/booking-api/internal/ports/out/triprepo"
)

// Service exposes the trip catalogue.
type Service struct {
	repo triprepo.Repository
}

func NewService(repo triprepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns all trips with their nested country lists, ordered by trip id.
func (s *Service) List(ctx context.Context) ([]domain.Trip, error) {
	return s.repo.ListAll(ctx)
}
