package registrations_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	memclientrepo "github.com/wisla-travel/booking-api/internal/adapters/memory/clientrepo"
	memregistrationrepo "github.com/wisla-travel/booking-api/internal/adapters/memory/registrationrepo"
	memtriprepo "github.com/wisla-travel/booking-api/internal/adapters/memory/triprepo"
	"github.com/wisla-travel/booking-api/internal/app/registrations"
	"github.com/wisla-travel/booking-api/internal/domain"
	"github.com/wisla-travel/booking-api/internal/platform/metrics"
	"github.com/wisla-travel/booking-api/internal/ports/out/clientrepo"
	"github.com/wisla-travel/booking-api/internal/ports/out/registrationrepo"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixture struct {
	svc     *registrations.Service
	clients *memclientrepo.Repo
	trips   *memtriprepo.Repo
	regs    *memregistrationrepo.Repo
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	trips := memtriprepo.NewRepo()
	regs := memregistrationrepo.NewRepo()
	clients := memclientrepo.NewRepo(trips, regs)
	m := metrics.New(prometheus.NewRegistry())
	svc := registrations.NewService(clients, trips, regs, fixedClock{now: now}, m)
	return &fixture{svc: svc, clients: clients, trips: trips, regs: regs}
}

func (f *fixture) addClient(t *testing.T) domain.ClientID {
	t.Helper()
	id, err := f.clients.Create(context.Background(), clientrepo.NewClient{
		FirstName: "Anna",
		LastName:  "Kowalska",
		Email:     "anna@example.com",
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return id
}

func (f *fixture) addTrip(id domain.TripID, maxPeople int) {
	f.trips.Add(domain.Trip{
		ID:        id,
		Name:      "Baltic Coast",
		DateFrom:  time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		DateTo:    time.Date(2026, time.June, 8, 0, 0, 0, 0, time.UTC),
		MaxPeople: maxPeople,
	})
}

func appErr(t *testing.T, err error) *registrations.Error {
	t.Helper()
	var e *registrations.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not a *registrations.Error", err)
	}
	return e
}

func TestRegisterStampsTodayWithNoPaymentDate(t *testing.T) {
	now := time.Date(2026, time.January, 15, 13, 45, 0, 0, time.UTC)
	f := newFixture(t, now)
	clientID := f.addClient(t)
	f.addTrip(10, 5)

	if err := f.svc.Register(context.Background(), clientID, 10); err != nil {
		t.Fatalf("Register: %v", err)
	}

	regs := f.regs.ListByClient(clientID)
	if len(regs) != 1 {
		t.Fatalf("got %d registrations, want 1", len(regs))
	}
	if regs[0].RegisteredAt != 20260115 {
		t.Errorf("RegisteredAt = %d, want 20260115", regs[0].RegisteredAt)
	}
	if regs[0].PaymentDate != nil {
		t.Errorf("PaymentDate = %v, want nil", *regs[0].PaymentDate)
	}
}

func TestRegisterUnknownClient(t *testing.T) {
	f := newFixture(t, time.Now())
	f.addTrip(10, 5)

	err := f.svc.Register(context.Background(), 99, 10)
	e := appErr(t, err)
	if e.Status != 404 || e.Code != registrations.CodeClientNotFound {
		t.Fatalf("got %d/%s, want 404/%s", e.Status, e.Code, registrations.CodeClientNotFound)
	}
}

func TestRegisterUnknownTrip(t *testing.T) {
	f := newFixture(t, time.Now())
	clientID := f.addClient(t)

	err := f.svc.Register(context.Background(), clientID, 99)
	e := appErr(t, err)
	if e.Status != 404 || e.Code != registrations.CodeTripNotFound {
		t.Fatalf("got %d/%s, want 404/%s", e.Status, e.Code, registrations.CodeTripNotFound)
	}
}

func TestRegisterChecksClientBeforeTrip(t *testing.T) {
	// Both the client and the trip are missing; the client check runs first.
	f := newFixture(t, time.Now())

	err := f.svc.Register(context.Background(), 99, 99)
	e := appErr(t, err)
	if e.Code != registrations.CodeClientNotFound {
		t.Fatalf("got code %s, want %s", e.Code, registrations.CodeClientNotFound)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	f := newFixture(t, time.Now())
	clientID := f.addClient(t)
	f.addTrip(10, 5)

	if err := f.svc.Register(context.Background(), clientID, 10); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := f.svc.Register(context.Background(), clientID, 10)
	e := appErr(t, err)
	if e.Status != 409 || e.Code != registrations.CodeAlreadyRegistered {
		t.Fatalf("got %d/%s, want 409/%s", e.Status, e.Code, registrations.CodeAlreadyRegistered)
	}
}

func TestRegisterFullTrip(t *testing.T) {
	f := newFixture(t, time.Now())
	f.addTrip(10, 1)
	first := f.addClient(t)
	second := f.addClient(t)

	if err := f.svc.Register(context.Background(), first, 10); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := f.svc.Register(context.Background(), second, 10)
	e := appErr(t, err)
	if e.Status != 400 || e.Code != registrations.CodeTripFull {
		t.Fatalf("got %d/%s, want 400/%s", e.Status, e.Code, registrations.CodeTripFull)
	}

	// The rejected attempt must leave no row behind.
	if got := len(f.regs.ListByClient(second)); got != 0 {
		t.Fatalf("rejected registration left %d rows", got)
	}
}

func TestRegisterAtExactCapacityBoundary(t *testing.T) {
	f := newFixture(t, time.Now())
	f.addTrip(10, 2)
	first := f.addClient(t)
	second := f.addClient(t)

	if err := f.svc.Register(context.Background(), first, 10); err != nil {
		t.Fatalf("Register below capacity: %v", err)
	}
	// Occupancy 1 of 2: the last seat is still grantable.
	if err := f.svc.Register(context.Background(), second, 10); err != nil {
		t.Fatalf("Register at last seat: %v", err)
	}
}

func TestRegisterMapsInsertConflictToAlreadyRegistered(t *testing.T) {
	// Simulate losing the check-then-insert race: the row appears between the
	// service's existence check and its insert.
	f := newFixture(t, time.Now())
	clientID := f.addClient(t)
	f.addTrip(10, 5)

	err := f.regs.Insert(context.Background(), registrationrepo.Registration{
		ClientID: clientID, TripID: 10, RegisteredAt: 20260101,
	})
	if err != nil {
		t.Fatalf("seed registration: %v", err)
	}

	got := f.svc.Register(context.Background(), clientID, 10)
	e := appErr(t, got)
	if e.Status != 409 || e.Code != registrations.CodeAlreadyRegistered {
		t.Fatalf("got %d/%s, want 409/%s", e.Status, e.Code, registrations.CodeAlreadyRegistered)
	}
}

func TestUnregister(t *testing.T) {
	f := newFixture(t, time.Now())
	clientID := f.addClient(t)
	f.addTrip(10, 5)
	if err := f.svc.Register(context.Background(), clientID, 10); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := f.svc.Unregister(context.Background(), clientID, 10); err != nil {
		t.Fatalf("Unregister: %v", err)
	}
	if got := len(f.regs.ListByClient(clientID)); got != 0 {
		t.Fatalf("registration still present after Unregister")
	}

	// A repeat removal is not idempotent success.
	err := f.svc.Unregister(context.Background(), clientID, 10)
	e := appErr(t, err)
	if e.Status != 404 || e.Code != registrations.CodeRegistrationNotFound {
		t.Fatalf("got %d/%s, want 404/%s", e.Status, e.Code, registrations.CodeRegistrationNotFound)
	}
}

func TestUnregisterNeverRegistered(t *testing.T) {
	f := newFixture(t, time.Now())
	clientID := f.addClient(t)
	f.addTrip(10, 5)

	err := f.svc.Unregister(context.Background(), clientID, 10)
	e := appErr(t, err)
	if e.Status != 404 || e.Code != registrations.CodeRegistrationNotFound {
		t.Fatalf("got %d/%s, want 404/%s", e.Status, e.Code, registrations.CodeRegistrationNotFound)
	}
}
