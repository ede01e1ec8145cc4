// Package testutil provides the Postgres harness for adapter contract tests.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	migrations "github.com/wisla-travel/booking-api/db/migrations"
	postgres "github.com/wisla-travel/booking-api/internal/adapters/postgres"
)

// OpenMigratedPool connects to the database named by TEST_DATABASE_URL,
// applies all pending migrations, and returns a pool closed at test cleanup.
// The test is skipped when TEST_DATABASE_URL is not set, so the suite stays
// runnable without a database.
func OpenMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres contract tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open migration connection: %v", err)
	}
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("set goose dialect: %v", err)
	}
	goose.SetBaseFS(migrations.FS)
	if err := goose.Up(db, "."); err != nil {
		_ = db.Close()
		t.Fatalf("apply migrations: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close migration connection: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{})
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// Truncate empties all booking tables and resets identity sequences so each
// contract run starts from a clean slate.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		TRUNCATE client_trips, trip_countries, countries, clients, trips
		RESTART IDENTITY CASCADE
	`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

// SeedTrip inserts a trip (and its countries) directly, returning the
// generated id. Trip authoring is outside the API surface, so contract tests
// seed via SQL.
func SeedTrip(t *testing.T, pool *pgxpool.Pool, name string, maxPeople int, countries ...string) int {
	t.Helper()
	ctx := context.Background()

	var tripID int
	err := pool.QueryRow(ctx, `
		INSERT INTO trips (name, description, date_from, date_to, max_people)
		VALUES ($1, NULL, '2026-06-01', '2026-06-14', $2)
		RETURNING id
	`, name, maxPeople).Scan(&tripID)
	if err != nil {
		t.Fatalf("seed trip: %v", err)
	}

	for _, c := range countries {
		var countryID int
		if err := pool.QueryRow(ctx, `
			INSERT INTO countries (name) VALUES ($1) RETURNING id
		`, c).Scan(&countryID); err != nil {
			t.Fatalf("seed country: %v", err)
		}
		if _, err := pool.Exec(ctx, `
			INSERT INTO trip_countries (trip_id, country_id) VALUES ($1, $2)
		`, tripID, countryID); err != nil {
			t.Fatalf("seed trip_country: %v", err)
		}
	}
	return tripID
}
