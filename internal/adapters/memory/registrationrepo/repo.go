package registrationrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/wisla-travel/booking-api/internal/domain"
	"github.com/wisla-travel/booking-api/internal/ports/out/registrationrepo"
)

type key struct {
	clientID domain.ClientID
	tripID   domain.TripID
}

// Repo is an in-memory implementation of registrationrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex
	m  map[key]registrationrepo.Registration
}

func NewRepo() *Repo {
	return &Repo{m: make(map[key]registrationrepo.Registration)}
}

func (r *Repo) Exists(ctx context.Context, clientID domain.ClientID, tripID domain.TripID) (bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.m[key{clientID: clientID, tripID: tripID}]
	return ok, nil
}

func (r *Repo) CountByTrip(ctx context.Context, tripID domain.TripID) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for k := range r.m {
		if k.tripID == tripID {
			n++
		}
	}
	return n, nil
}

func (r *Repo) Insert(ctx context.Context, reg registrationrepo.Registration) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key{clientID: reg.ClientID, tripID: reg.TripID}
	if _, ok := r.m[k]; ok {
		return registrationrepo.ErrAlreadyExists
	}
	r.m[k] = cloneRegistration(reg)
	return nil
}

func (r *Repo) Delete(ctx context.Context, clientID domain.ClientID, tripID domain.TripID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key{clientID: clientID, tripID: tripID}
	if _, ok := r.m[k]; !ok {
		return registrationrepo.ErrNotFound
	}
	delete(r.m, k)
	return nil
}

// ListByClient returns the client's registrations ordered by trip id; used by
// the memory client repo to materialize the registration read model.
func (r *Repo) ListByClient(clientID domain.ClientID) []registrationrepo.Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]registrationrepo.Registration, 0)
	for k, v := range r.m {
		if k.clientID == clientID {
			out = append(out, cloneRegistration(v))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TripID < out[j].TripID })
	return out
}

func cloneRegistration(reg registrationrepo.Registration) registrationrepo.Registration {
	out := reg
	if reg.PaymentDate != nil {
		v := *reg.PaymentDate
		out.PaymentDate = &v
	}
	return out
}
