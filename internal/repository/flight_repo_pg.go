package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xwasu/airline-project/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
	Passengers(ctx context.Context, flightID int64) ([]domain.Passenger, error)
	NonPassengers(ctx context.Context, flightID int64) ([]domain.Passenger, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const selectFlights = `SELECT f.id, f.duration,
		o.id, o.code, o.city,
		d.id, d.code, d.city
	FROM flights f
	JOIN airports o ON o.id = f.origin_id
	JOIN airports d ON d.id = f.destination_id`

func scanFlight(row pgx.Row) (domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.ID, &f.Duration,
		&f.Origin.ID, &f.Origin.Code, &f.Origin.City,
		&f.Destination.ID, &f.Destination.Code, &f.Destination.City)
	f.OriginID = f.Origin.ID
	f.DestinationID = f.Destination.ID
	return f, err
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, selectFlights+` ORDER BY f.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, selectFlights+` WHERE f.id=$1`, id))
	if err != nil {
		return nil, notFound("flight", id, err)
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (origin_id, destination_id, duration) VALUES ($1, $2, $3) RETURNING id`,
		flight.OriginID, flight.DestinationID, flight.Duration).Scan(&flight.ID)
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	cmd, err := r.db.Exec(ctx, `UPDATE flights SET origin_id=$1, destination_id=$2, duration=$3 WHERE id=$4`,
		flight.OriginID, flight.DestinationID, flight.Duration, flight.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("flight %d: %w", flight.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("flight %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *PGFlightRepository) Passengers(ctx context.Context, flightID int64) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT p.id, p.first_name, p.last_name
		FROM passengers p
		JOIN bookings b ON b.passenger_id = p.id
		WHERE b.flight_id = $1
		ORDER BY p.id`, flightID)
	if err != nil {
		return nil, err
	}
	return scanPassengers(rows)
}

// NonPassengers lists every passenger not booked on the flight.
func (r *PGFlightRepository) NonPassengers(ctx context.Context, flightID int64) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT p.id, p.first_name, p.last_name
		FROM passengers p
		WHERE NOT EXISTS (
			SELECT 1 FROM bookings b WHERE b.passenger_id = p.id AND b.flight_id = $1
		)
		ORDER BY p.id`, flightID)
	if err != nil {
		return nil, err
	}
	return scanPassengers(rows)
}

func scanPassengers(rows pgx.Rows) ([]domain.Passenger, error) {
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.First, &p.Last); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
