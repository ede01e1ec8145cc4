package registrationrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/wisla-travel/booking-api/internal/adapters/postgres"
	"github.com/wisla-travel/booking-api/internal/domain"
	"github.com/wisla-travel/booking-api/internal/ports/out/registrationrepo"
)

// Repo is a Postgres implementation of registrationrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Exists(ctx context.Context, clientID domain.ClientID, tripID domain.TripID) (bool, error) {
	if r.pool == nil {
		return false, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM client_trips WHERE client_id = $1 AND trip_id = $2
	`, int(clientID), int(tripID))
	var n int
	if err := row.Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repo) CountByTrip(ctx context.Context, tripID domain.TripID) (int, error) {
	if r.pool == nil {
		return 0, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT count(*) FROM client_trips WHERE trip_id = $1`, int(tripID))
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repo) Insert(ctx context.Context, reg registrationrepo.Registration) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO client_trips (client_id, trip_id, registered_at, payment_date)
		VALUES ($1, $2, $3, $4)
	`,
		int(reg.ClientID),
		int(reg.TripID),
		reg.RegisteredAt,
		reg.PaymentDate,
	)
	if err != nil {
		// The (client_id, trip_id) primary key backstops the protocol's
		// uniqueness check against concurrent inserts.
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
			return registrationrepo.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, clientID domain.ClientID, tripID domain.TripID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `
		DELETE FROM client_trips WHERE client_id = $1 AND trip_id = $2
	`, int(clientID), int(tripID))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return registrationrepo.ErrNotFound
	}
	return nil
}
