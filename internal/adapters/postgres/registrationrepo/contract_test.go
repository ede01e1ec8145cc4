package registrationrepo

import (
	"testing"

	"github.com/wisla-travel/booking-api/internal/adapters/contracttest"
	pgclientrepo "github.com/wisla-travel/booking-api/internal/adapters/postgres/clientrepo"
	"github.com/wisla-travel/booking-api/internal/adapters/postgres/testutil"
	pgtriprepo "github.com/wisla-travel/booking-api/internal/adapters/postgres/triprepo"
	"github.com/wisla-travel/booking-api/internal/domain"
)

func TestContract_PostgresRegistrationRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunRegistrationRepo(t, func(t *testing.T) (contracttest.Repos, contracttest.SeedTripFunc, contracttest.CleanupFunc) {
		t.Helper()
		testutil.Truncate(t, pool)
		repos := contracttest.Repos{
			Clients: pgclientrepo.NewRepo(pool),
			Trips:   pgtriprepo.NewRepo(pool),
			Regs:    NewRepo(pool),
		}
		seed := func(t *testing.T, name string, maxPeople int, countries ...string) domain.TripID {
			return domain.TripID(testutil.SeedTrip(t, pool, name, maxPeople, countries...))
		}
		return repos, seed, nil
	})
}
