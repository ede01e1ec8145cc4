package clientrepo

import (
	"context"
	"sync"

	memregistrationrepo "github.com/wisla-travel/booking-api/internal/adapters/memory/registrationrepo"
	memtriprepo "github.com/wisla-travel/booking-api/internal/adapters/memory/triprepo"
	"github.com/wisla-travel/booking-api/internal/domain"
	"github.com/wisla-travel/booking-api/internal/platform/dateint"
	"github.com/wisla-travel/booking-api/internal/ports/out/clientrepo"
)

// Repo is an in-memory implementation of clientrepo.Repository.
// It is safe for concurrent use.
//
// ListTrips needs the trip and registration data the SQL adapter gets from a
// join, so the memory repo collaborates with its sibling adapters directly.
type Repo struct {
	mu     sync.RWMutex
	nextID domain.ClientID
	byID   map[domain.ClientID]domain.Client

	trips *memtriprepo.Repo
	regs  *memregistrationrepo.Repo
}

func NewRepo(trips *memtriprepo.Repo, regs *memregistrationrepo.Repo) *Repo {
	return &Repo{
		nextID: 1,
		byID:   make(map[domain.ClientID]domain.Client),
		trips:  trips,
		regs:   regs,
	}
}

func (r *Repo) Create(ctx context.Context, c clientrepo.NewClient) (domain.ClientID, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.byID[id] = domain.Client{
		ID:        id,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Telephone: cloneStringPtr(c.Telephone),
		Pesel:     cloneStringPtr(c.Pesel),
	}
	return id, nil
}

func (r *Repo) Exists(ctx context.Context, id domain.ClientID) (bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok, nil
}

func (r *Repo) ListTrips(ctx context.Context, id domain.ClientID) ([]domain.ClientTrip, error) {
	_ = ctx
	out := make([]domain.ClientTrip, 0)
	for _, reg := range r.regs.ListByClient(id) {
		t, ok := r.trips.Get(reg.TripID)
		if !ok {
			// Matches the SQL inner join: a registration without its trip
			// contributes nothing.
			continue
		}
		registeredAt, err := dateint.Decode(reg.RegisteredAt)
		if err != nil {
			return nil, err
		}
		ct := domain.ClientTrip{
			Trip:         t,
			RegisteredAt: &registeredAt,
		}
		if reg.PaymentDate != nil {
			paid, err := dateint.Decode(*reg.PaymentDate)
			if err != nil {
				return nil, err
			}
			ct.PaymentDate = &paid
		}
		out = append(out, ct)
	}
	return out, nil
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
