package triprepo

import (
	"testing"

	"github.com/wisla-travel/booking-api/internal/adapters/contracttest"
	pgclientrepo "github.com/wisla-travel/booking-api/internal/adapters/postgres/clientrepo"
	pgregistrationrepo "github.com/wisla-travel/booking-api/internal/adapters/postgres/registrationrepo"
	"github.com/wisla-travel/booking-api/internal/adapters/postgres/testutil"
	"github.com/wisla-travel/booking-api/internal/domain"
)

func TestContract_PostgresTripRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunTripRepo(t, func(t *testing.T) (contracttest.Repos, contracttest.SeedTripFunc, contracttest.CleanupFunc) {
		t.Helper()
		testutil.Truncate(t, pool)
		repos := contracttest.Repos{
			Clients: pgclientrepo.NewRepo(pool),
			Trips:   NewRepo(pool),
			Regs:    pgregistrationrepo.NewRepo(pool),
		}
		seed := func(t *testing.T, name string, maxPeople int, countries ...string) domain.TripID {
			return domain.TripID(testutil.SeedTrip(t, pool, name, maxPeople, countries...))
		}
		return repos, seed, nil
	})
}
