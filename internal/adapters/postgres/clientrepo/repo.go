package clientrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/wisla-travel/booking-api/internal/adapters/postgres"
	"github.com/wisla-travel/booking-api/internal/domain"
	"github.com/wisla-travel/booking-api/internal/platform/dateint"
	"github.com/wisla-travel/booking-api/internal/ports/out/clientrepo"
)

// Repo is a Postgres implementation of clientrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, c clientrepo.NewClient) (domain.ClientID, error) {
	if r.pool == nil {
		return 0, errors.New("nil postgres pool")
	}
	var id domain.ClientID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO clients (first_name, last_name, email, telephone, pesel)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		c.FirstName,
		c.LastName,
		c.Email,
		c.Telephone,
		c.Pesel,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repo) Exists(ctx context.Context, id domain.ClientID) (bool, error) {
	if r.pool == nil {
		return false, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT count(*) FROM clients WHERE id = $1`, int(id))
	var n int
	if err := row.Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// clientTripRow is one row of the registration/trip/country join. The
// registration date columns are decoded from their YYYYMMDD encoding during
// the scan so decode failures surface as query errors.
type clientTripRow struct {
	tripID      domain.TripID
	name        string
	description *string
	dateFrom    pgtype.Date
	dateTo      pgtype.Date
	maxPeople   int

	registeredAt *time.Time
	paymentDate  *time.Time

	countryID   *int
	countryName *string
}

func (r *Repo) ListTrips(ctx context.Context, id domain.ClientID) ([]domain.ClientTrip, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT
			t.id, t.name, t.description, t.date_from, t.date_to, t.max_people,
			ct.registered_at, ct.payment_date,
			c.id, c.name
		FROM client_trips ct
		JOIN trips t ON t.id = ct.trip_id
		LEFT JOIN trip_countries tc ON tc.trip_id = t.id
		LEFT JOIN countries c ON c.id = tc.country_id
		WHERE ct.client_id = $1
		ORDER BY t.id
	`, int(id))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	f := postgres.Folder[domain.TripID, clientTripRow, domain.ClientTrip]{
		Key: func(row clientTripRow) domain.TripID { return row.tripID },
		Begin: func(row clientTripRow) domain.ClientTrip {
			return domain.ClientTrip{
				Trip: domain.Trip{
					ID:          row.tripID,
					Name:        row.name,
					Description: row.description,
					DateFrom:    dateToTime(row.dateFrom),
					DateTo:      dateToTime(row.dateTo),
					MaxPeople:   row.maxPeople,
					Countries:   make([]domain.Country, 0),
				},
				RegisteredAt: row.registeredAt,
				PaymentDate:  row.paymentDate,
			}
		},
		Add: func(t *domain.ClientTrip, row clientTripRow) {
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
		var (
			row          clientTripRow
			registeredAt *int
			paymentDate  *int
		)
		if err := rows.Scan(
			&row.tripID,
			&row.name,
			&row.description,
			&row.dateFrom,
			&row.dateTo,
			&row.maxPeople,
			&registeredAt,
			&paymentDate,
			&row.countryID,
			&row.countryName,
		); err != nil {
			return nil, err
		}
		if row.registeredAt, err = decodeDate(registeredAt); err != nil {
			return nil, fmt.Errorf("trip %d: registered_at: %w", row.tripID, err)
		}
		if row.paymentDate, err = decodeDate(paymentDate); err != nil {
			return nil, fmt.Errorf("trip %d: payment_date: %w", row.tripID, err)
		}
		f.Push(row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return f.Finish(), nil
}

func decodeDate(v *int) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := dateint.Decode(*v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func dateToTime(d pgtype.Date) time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}
