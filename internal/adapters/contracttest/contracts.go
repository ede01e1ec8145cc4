// Package contracttest holds behavior suites every repository backend must
// satisfy. Each adapter package runs them against its own factory.
package contracttest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wisla-travel/booking-api/internal/domain"
	clientrepoport "github.com/wisla-travel/booking-api/internal/ports/out/clientrepo"
	registrationrepoport "github.com/wisla-travel/booking-api/internal/ports/out/registrationrepo"
	triprepoport "github.com/wisla-travel/booking-api/internal/ports/out/triprepo"
)

type CleanupFunc = func()

// Repos bundles the three ports; the registration read model spans all of
// them, so the suites take the set rather than one repository at a time.
type Repos struct {
	Clients clientrepoport.Repository
	Trips   triprepoport.Repository
	Regs    registrationrepoport.Repository
}

// SeedTripFunc inserts a trip with the given countries into the backing store
// and returns its id. Trip authoring is outside the API surface, so each
// backend provides its own seeding path.
type SeedTripFunc func(t *testing.T, name string, maxPeople int, countries ...string) domain.TripID

type ReposFactory func(t *testing.T) (Repos, SeedTripFunc, CleanupFunc)

// fixtureClient builds a NewClient with a collision-free email so suites can
// run against a shared database.
func fixtureClient() clientrepoport.NewClient {
	tel := "+48 600 700 800"
	return clientrepoport.NewClient{
		FirstName: "Jan",
		LastName:  "Kowalski",
		Email:     "jan-" + uuid.NewString() + "@example.test",
		Telephone: &tel,
	}
}

func RunTripRepo(t *testing.T, newRepos ReposFactory) {
	t.Helper()
	ctx := context.Background()

	repos, seedTrip, cleanup := newRepos(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	trips, err := repos.Trips.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll(empty): %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("ListAll(empty) len=%d, want 0", len(trips))
	}

	id1 := seedTrip(t, "Alpine Crossing", 10, "Austria", "Italy")
	id2 := seedTrip(t, "City Break", 5)
	id3 := seedTrip(t, "Fjord Cruise", 8, "Norway")

	trips, err = repos.Trips.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(trips) != 3 {
		t.Fatalf("ListAll len=%d, want 3", len(trips))
	}
	if trips[0].ID != id1 || trips[1].ID != id2 || trips[2].ID != id3 {
		t.Fatalf("ListAll order=%v, want [%d %d %d]", []domain.TripID{trips[0].ID, trips[1].ID, trips[2].ID}, id1, id2, id3)
	}
	if got := countryNames(trips[0]); len(got) != 2 || got[0] != "Austria" || got[1] != "Italy" {
		t.Fatalf("trip 1 countries=%v, want [Austria Italy]", got)
	}
	if got := countryNames(trips[1]); len(got) != 0 {
		t.Fatalf("trip 2 countries=%v, want []", got)
	}
	if got := countryNames(trips[2]); len(got) != 1 || got[0] != "Norway" {
		t.Fatalf("trip 3 countries=%v, want [Norway]", got)
	}

	max, err := repos.Trips.MaxPeople(ctx, id2)
	if err != nil {
		t.Fatalf("MaxPeople: %v", err)
	}
	if max != 5 {
		t.Fatalf("MaxPeople=%d, want 5", max)
	}
	if _, err := repos.Trips.MaxPeople(ctx, id3+1000); err != triprepoport.ErrNotFound {
		t.Fatalf("MaxPeople(missing) err=%v, want %v", err, triprepoport.ErrNotFound)
	}
}

func RunClientRepo(t *testing.T, newRepos ReposFactory) {
	t.Helper()
	ctx := context.Background()

	repos, seedTrip, cleanup := newRepos(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	id, err := repos.Clients.Create(ctx, fixtureClient())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id <= 0 {
		t.Fatalf("Create id=%d, want > 0", id)
	}
	id2, err := repos.Clients.Create(ctx, fixtureClient())
	if err != nil {
		t.Fatalf("Create(second): %v", err)
	}
	if id2 == id {
		t.Fatalf("Create(second) id=%d, want distinct from %d", id2, id)
	}

	ok, err := repos.Clients.Exists(ctx, id)
	if err != nil || !ok {
		t.Fatalf("Exists(%d)=%v err=%v, want true", id, ok, err)
	}
	ok, err = repos.Clients.Exists(ctx, id2+1000)
	if err != nil || ok {
		t.Fatalf("Exists(missing)=%v err=%v, want false", ok, err)
	}

	// No registrations yet.
	cts, err := repos.Clients.ListTrips(ctx, id)
	if err != nil {
		t.Fatalf("ListTrips(empty): %v", err)
	}
	if len(cts) != 0 {
		t.Fatalf("ListTrips(empty) len=%d, want 0", len(cts))
	}

	tripID := seedTrip(t, "Baltic Coast", 12, "Poland", "Lithuania")
	err = repos.Regs.Insert(ctx, registrationrepoport.Registration{
		ClientID:     id,
		TripID:       tripID,
		RegisteredAt: 20260115,
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	cts, err = repos.Clients.ListTrips(ctx, id)
	if err != nil {
		t.Fatalf("ListTrips: %v", err)
	}
	if len(cts) != 1 {
		t.Fatalf("ListTrips len=%d, want 1", len(cts))
	}
	ct := cts[0]
	if ct.ID != tripID || ct.Name != "Baltic Coast" || ct.MaxPeople != 12 {
		t.Fatalf("ListTrips[0]=%+v, want trip %d", ct.Trip, tripID)
	}
	want := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	if ct.RegisteredAt == nil || !ct.RegisteredAt.Equal(want) {
		t.Fatalf("RegisteredAt=%v, want %v", ct.RegisteredAt, want)
	}
	if ct.PaymentDate != nil {
		t.Fatalf("PaymentDate=%v, want nil", ct.PaymentDate)
	}
	if got := countryNames(ct.Trip); len(got) != 2 || got[0] != "Poland" || got[1] != "Lithuania" {
		t.Fatalf("countries=%v, want [Poland Lithuania]", got)
	}
}

func RunRegistrationRepo(t *testing.T, newRepos ReposFactory) {
	t.Helper()
	ctx := context.Background()

	repos, seedTrip, cleanup := newRepos(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	clientID, err := repos.Clients.Create(ctx, fixtureClient())
	if err != nil {
		t.Fatalf("Create client: %v", err)
	}
	otherID, err := repos.Clients.Create(ctx, fixtureClient())
	if err != nil {
		t.Fatalf("Create other client: %v", err)
	}
	tripID := seedTrip(t, "Desert Trek", 4)
	otherTrip := seedTrip(t, "Island Hop", 4)

	ok, err := repos.Regs.Exists(ctx, clientID, tripID)
	if err != nil || ok {
		t.Fatalf("Exists(before)=%v err=%v, want false", ok, err)
	}

	reg := registrationrepoport.Registration{ClientID: clientID, TripID: tripID, RegisteredAt: 20260301}
	if err := repos.Regs.Insert(ctx, reg); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	ok, err = repos.Regs.Exists(ctx, clientID, tripID)
	if err != nil || !ok {
		t.Fatalf("Exists(after)=%v err=%v, want true", ok, err)
	}
	if err := repos.Regs.Insert(ctx, reg); err != registrationrepoport.ErrAlreadyExists {
		t.Fatalf("Insert(duplicate) err=%v, want %v", err, registrationrepoport.ErrAlreadyExists)
	}

	if err := repos.Regs.Insert(ctx, registrationrepoport.Registration{ClientID: otherID, TripID: tripID, RegisteredAt: 20260302}); err != nil {
		t.Fatalf("Insert(other client): %v", err)
	}
	if err := repos.Regs.Insert(ctx, registrationrepoport.Registration{ClientID: clientID, TripID: otherTrip, RegisteredAt: 20260302}); err != nil {
		t.Fatalf("Insert(other trip): %v", err)
	}

	n, err := repos.Regs.CountByTrip(ctx, tripID)
	if err != nil {
		t.Fatalf("CountByTrip: %v", err)
	}
	if n != 2 {
		t.Fatalf("CountByTrip=%d, want 2", n)
	}

	if err := repos.Regs.Delete(ctx, clientID, tripID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	ok, err = repos.Regs.Exists(ctx, clientID, tripID)
	if err != nil || ok {
		t.Fatalf("Exists(deleted)=%v err=%v, want false", ok, err)
	}
	if err := repos.Regs.Delete(ctx, clientID, tripID); err != registrationrepoport.ErrNotFound {
		t.Fatalf("Delete(repeat) err=%v, want %v", err, registrationrepoport.ErrNotFound)
	}
}

func countryNames(t domain.Trip) []string {
	out := make([]string, 0, len(t.Countries))
	for _, c := range t.Countries {
		out = append(out, c.Name)
	}
	return out
}
