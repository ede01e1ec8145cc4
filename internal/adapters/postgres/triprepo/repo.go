package triprepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/wisla-travel/booking-api/internal/adapters/postgres"
	"github.com/wisla-travel/booking-api/internal/domain"
	"github.com/wisla-travel/booking-api/internal/ports/out/triprepo"
)

// Repo is a Postgres implementation of triprepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// tripRow is one row of the trip/country left join. Country columns are nil
// for trips without countries.
type tripRow struct {
	id          domain.TripID
	name        string
	description *string
	dateFrom    pgtype.Date
	dateTo      pgtype.Date
	maxPeople   int

	countryID   *int
	countryName *string
}

func (r *Repo) ListAll(ctx context.Context) ([]domain.Trip, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}

	// One row per trip x country pair; the ORDER BY keeps each trip's rows
	// contiguous, which is the folder's precondition.
	rows, err := r.pool.Query(ctx, `
		SELECT
			t.id, t.name, t.description, t.date_from, t.date_to, t.max_people,
			c.id, c.name
		FROM trips t
		LEFT JOIN trip_countries tc ON tc.trip_id = t.id
		LEFT JOIN countries c ON c.id = tc.country_id
		ORDER BY t.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	f := postgres.Folder[domain.TripID, tripRow, domain.Trip]{
		Key: func(row tripRow) domain.TripID { return row.id },
		Begin: func(row tripRow) domain.Trip {
			return domain.Trip{
				ID:          row.id,
				Name:        row.name,
				Description: row.description,
				DateFrom:    dateToTime(row.dateFrom),
				DateTo:      dateToTime(row.dateTo),
				MaxPeople:   row.maxPeople,
				Countries:   make([]domain.Country, 0),
			}
		},
		Add: func(t *domain.Trip, row tripRow) {
			if row.countryID == nil {
				return
			}
			t.Countries = append(t.Countries, domain.Country{
				ID:   domain.CountryID(*row.countryID),
				Name: *row.countryName,
			})
		},
	}

	for rows.Next() {
		var row tripRow
		if err := rows.Scan(
			&row.id,
			&row.name,
			&row.description,
			&row.dateFrom,
			&row.dateTo,
			&row.maxPeople,
			&row.countryID,
			&row.countryName,
		); err != nil {
			return nil, err
		}
		f.Push(row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return f.Finish(), nil
}

func (r *Repo) MaxPeople(ctx context.Context, id domain.TripID) (int, error) {
	if r.pool == nil {
		return 0, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT max_people FROM trips WHERE id = $1`, int(id))
	var n int
	if err := row.Scan(&n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, triprepo.ErrNotFound
		}
		return 0, err
	}
	return n, nil
}

func dateToTime(d pgtype.Date) time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}
