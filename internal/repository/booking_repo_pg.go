package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingRepository maintains the passenger/flight set. Both calls report
// whether the set actually changed.
type BookingRepository interface {
	Add(ctx context.Context, passengerID, flightID int64) (bool, error)
	Remove(ctx context.Context, passengerID, flightID int64) (bool, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Add(ctx context.Context, passengerID, flightID int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `INSERT INTO bookings (passenger_id, flight_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, passengerID, flightID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGBookingRepository) Remove(ctx context.Context, passengerID, flightID int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE passenger_id=$1 AND flight_id=$2`, passengerID, flightID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
