package triprepo

import (
	"context"
	"sort"
	"sync"

	"github.com/wisla-travel/booking-api/internal/domain"
	"github.com/wisla-travel/booking-api/internal/ports/out/triprepo"
)

// Repo is an in-memory implementation of triprepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.TripID]domain.Trip
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.TripID]domain.Trip)}
}

// Add seeds the trip catalogue. Trip authoring is an administrative concern
// outside the API surface, so this is not part of the port.
func (r *Repo) Add(t domain.Trip) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[t.ID] = cloneTrip(t)
}

// Get returns the trip by id; used by the memory client repo to materialize
// the registration read model.
func (r *Repo) Get(id domain.TripID) (domain.Trip, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return domain.Trip{}, false
	}
	return cloneTrip(t), true
}

func (r *Repo) ListAll(ctx context.Context) ([]domain.Trip, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Trip, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, cloneTrip(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repo) MaxPeople(ctx context.Context, id domain.TripID) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return 0, triprepo.ErrNotFound
	}
	return t.MaxPeople, nil
}

func cloneTrip(t domain.Trip) domain.Trip {
	out := t
	if t.Description != nil {
		v := *t.Description
		out.Description = &v
	}
	out.Countries = append([]domain.Country(nil), t.Countries...)
	if out.Countries == nil {
		out.Countries = make([]domain.Country, 0)
	}
	return out
}
