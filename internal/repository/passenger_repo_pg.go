package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xwasu/airline-project/internal/domain"
)

type PassengerRepository interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Create(ctx context.Context, passenger *domain.Passenger) error
	Update(ctx context.Context, passenger *domain.Passenger) error
	Delete(ctx context.Context, id int64) error
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name FROM passengers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return scanPassengers(rows)
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	var p domain.Passenger
	err := r.db.QueryRow(ctx, `SELECT id, first_name, last_name FROM passengers WHERE id=$1`, id).Scan(&p.ID, &p.First, &p.Last)
	if err != nil {
		return nil, notFound("passenger", id, err)
	}
	return &p, nil
}

func (r *PGPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	return r.db.QueryRow(ctx, `INSERT INTO passengers (first_name, last_name) VALUES ($1, $2) RETURNING id`, passenger.First, passenger.Last).Scan(&passenger.ID)
}

func (r *PGPassengerRepository) Update(ctx context.Context, passenger *domain.Passenger) error {
	cmd, err := r.db.Exec(ctx, `UPDATE passengers SET first_name=$1, last_name=$2 WHERE id=$3`, passenger.First, passenger.Last, passenger.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("passenger %d: %w", passenger.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the passenger together with their bookings (ON DELETE CASCADE).
func (r *PGPassengerRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM passengers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("passenger %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
