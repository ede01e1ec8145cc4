package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"

	migrations "github.com/wisla-travel/booking-api/db/migrations"
	"github.com/wisla-travel/booking-api/internal/adapters/httpapi"
	memclientrepo "github.com/wisla-travel/booking-api/internal/adapters/memory/clientrepo"
	memregistrationrepo "github.com/wisla-travel/booking-api/internal/adapters/memory/registrationrepo"
	memtriprepo "github.com/wisla-travel/booking-api/internal/adapters/memory/triprepo"
	postgres "github.com/wisla-travel/booking-api/internal/adapters/postgres"
	pgclientrepo "github.com/wisla-travel/booking-api/internal/adapters/postgres/clientrepo"
	pgregistrationrepo "github.com/wisla-travel/booking-api/internal/adapters/postgres/registrationrepo"
	pgtriprepo "github.com/wisla-travel/booking-api/internal/adapters/postgres/triprepo"
	"github.com/wisla-travel/booking-api/internal/app/clients"
	"github.com/wisla-travel/booking-api/internal/app/registrations"
	"github.com/wisla-travel/booking-api/internal/app/trips"
	platformclock "github.com/wisla-travel/booking-api/internal/platform/clock"
	"github.com/wisla-travel/booking-api/internal/platform/config"
	"github.com/wisla-travel/booking-api/internal/platform/metrics"
	clientrepoport "github.com/wisla-travel/booking-api/internal/ports/out/clientrepo"
	registrationrepoport "github.com/wisla-travel/booking-api/internal/ports/out/registrationrepo"
	triprepoport "github.com/wisla-travel/booking-api/internal/ports/out/triprepo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	m := metrics.New(prometheus.DefaultRegisterer)
	clk := platformclock.NewSystemClock()

	var (
		tripRepo   triprepoport.Repository
		clientRepo clientrepoport.Repository
		regRepo    registrationrepoport.Repository
		cleanup    func()
	)

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		if cfg.Migrate {
			if err := runMigrations(cfg.DatabaseURL); err != nil {
				logger.Error("migrations failed", "error", err)
				os.Exit(1)
			}
			logger.Info("migrations applied")
		}

		pool, err := postgres.NewPool(context.Background(), cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			logger.Error("invalid postgres config", "error", err)
			os.Exit(1)
		}
		if err := pool.Ping(context.Background()); err != nil {
			logger.Error("postgres unreachable", "error", err)
			os.Exit(1)
		}
		cleanup = pool.Close

		tripRepo = pgtriprepo.NewRepo(pool)
		clientRepo = pgclientrepo.NewRepo(pool)
		regRepo = pgregistrationrepo.NewRepo(pool)
	default:
		memTrips := memtriprepo.NewRepo()
		memRegs := memregistrationrepo.NewRepo()
		tripRepo = memTrips
		clientRepo = memclientrepo.NewRepo(memTrips, memRegs)
		regRepo = memRegs
	}

	if cleanup != nil {
		defer cleanup()
	}

	tripSvc := trips.NewService(tripRepo)
	clientSvc := clients.NewService(clientRepo, m)
	regSvc := registrations.NewService(clientRepo, tripRepo, regRepo, clk, m)

	api := httpapi.NewServer(tripSvc, clientSvc, regSvc, logger)
	handler := httpapi.NewRouter(api, logger, prometheus.DefaultGatherer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("api listening", "port", cfg.Port, "backend", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

// runMigrations applies pending schema migrations through database/sql, the
// interface goose expects; the pgx stdlib driver backs it.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
