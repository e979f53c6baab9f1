package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xwasu/airline-project/internal/domain"
)

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	Create(ctx context.Context, airport *domain.Airport) error
	Update(ctx context.Context, airport *domain.Airport) error
	Delete(ctx context.Context, id int64) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, city FROM airports ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Code, &a.City); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	var a domain.Airport
	err := r.db.QueryRow(ctx, `SELECT id, code, city FROM airports WHERE id=$1`, id).Scan(&a.ID, &a.Code, &a.City)
	if err != nil {
		return nil, notFound("airport", id, err)
	}
	return &a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airports (code, city) VALUES ($1, $2) RETURNING id`, airport.Code, airport.City).Scan(&airport.ID)
	if isUniqueViolation(err) {
		return duplicateCode()
	}
	return err
}

func (r *PGAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	cmd, err := r.db.Exec(ctx, `UPDATE airports SET code=$1, city=$2 WHERE id=$3`, airport.Code, airport.City, airport.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return duplicateCode()
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("airport %d: %w", airport.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the airport; flights that use it go with it (ON DELETE CASCADE).
func (r *PGAirportRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM airports WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("airport %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func duplicateCode() error {
	return domain.NewValidationError("code", "Airport with this code already exists.")
}

var _ AirportRepository = (*PGAirportRepository)(nil)
