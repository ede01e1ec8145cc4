package registrationrepo_test

import (
	"testing"

	"github.com/wisla-travel/booking-api/internal/adapters/contracttest"
	memclientrepo "github.com/wisla-travel/booking-api/internal/adapters/memory/clientrepo"
	memregistrationrepo "github.com/wisla-travel/booking-api/internal/adapters/memory/registrationrepo"
	memtriprepo "github.com/wisla-travel/booking-api/internal/adapters/memory/triprepo"
	"github.com/wisla-travel/booking-api/internal/domain"
)

func newMemoryRepos(t *testing.T) (contracttest.Repos, contracttest.SeedTripFunc, contracttest.CleanupFunc) {
	t.Helper()

	trips := memtriprepo.NewRepo()
	regs := memregistrationrepo.NewRepo()
	clients := memclientrepo.NewRepo(trips, regs)

	nextTrip := 0
	nextCountry := 0
	seed := func(t *testing.T, name string, maxPeople int, countries ...string) domain.TripID {
		t.Helper()
		nextTrip++
		cs := make([]domain.Country, 0, len(countries))
		for _, c := range countries {
			nextCountry++
			cs = append(cs, domain.Country{ID: domain.CountryID(nextCountry), Name: c})
		}
		tr := domain.Trip{
			ID:        domain.TripID(nextTrip),
			Name:      name,
			MaxPeople: maxPeople,
			Countries: cs,
		}
		trips.Add(tr)
		return tr.ID
	}

	return contracttest.Repos{Clients: clients, Trips: trips, Regs: regs}, seed, nil
}

func TestContract_MemoryRegistrationRepo(t *testing.T) {
	t.Parallel()
	contracttest.RunRegistrationRepo(t, newMemoryRepos)
}
