package flights

import (
	"context"
	"errors"
	"log"

	"github.com/xwasu/airline-project/internal/domain"
	"github.com/xwasu/airline-project/internal/pagination"
	"github.com/xwasu/airline-project/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, page string) (pagination.Page[domain.Flight], error)
	Get(ctx context.Context, id int64) (*domain.Flight, error)
	Detail(ctx context.Context, id int64) (*domain.FlightDetail, error)
	Create(ctx context.Context, flight domain.Flight) (*domain.Flight, error)
	Update(ctx context.Context, id int64, flight domain.Flight) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

// FlightCache holds the full flight list. SetFlights must drop the write when
// an invalidation happened after version was read.
type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	FlightsVersion(ctx context.Context) (int64, error)
	SetFlights(ctx context.Context, flights []domain.Flight, version int64) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo     repository.FlightRepository
	airports repository.AirportRepository
	cache    FlightCache
	pageSize int
}

func NewFlightService(repo repository.FlightRepository, airports repository.AirportRepository, cache FlightCache, pageSize int) *FlightService {
	return &FlightService{repo: repo, airports: airports, cache: cache, pageSize: pageSize}
}

func (s *FlightService) List(ctx context.Context, page string) (pagination.Page[domain.Flight], error) {
	flights, err := s.all(ctx)
	if err != nil {
		return pagination.Page[domain.Flight]{}, err
	}
	return pagination.Paginate(flights, s.pageSize, page), nil
}

func (s *FlightService) all(ctx context.Context) ([]domain.Flight, error) {
	cacheable := false
	var version int64
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
		v, err := s.cache.FlightsVersion(ctx)
		if err != nil {
			log.Printf("failed to read flights cache version: %v", err)
		} else {
			cacheable, version = true, v
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if cacheable {
		if err := s.cache.SetFlights(ctx, flights, version); err != nil {
			log.Printf("failed to cache flights: %v", err)
		}
	}
	return flights, nil
}

func (s *FlightService) Get(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Detail(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	passengers, err := s.repo.Passengers(ctx, id)
	if err != nil {
		return nil, err
	}
	nonPassengers, err := s.repo.NonPassengers(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.FlightDetail{Flight: *flight, Passengers: passengers, NonPassengers: nonPassengers}, nil
}

func (s *FlightService) Create(ctx context.Context, flight domain.Flight) (*domain.Flight, error) {
	if err := s.prepare(ctx, &flight); err != nil {
		return nil, err
	}
	flight.ID = 0
	if err := s.repo.Create(ctx, &flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &flight, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, flight domain.Flight) (*domain.Flight, error) {
	if err := s.prepare(ctx, &flight); err != nil {
		return nil, err
	}
	flight.ID = id
	if err := s.repo.Update(ctx, &flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// prepare validates the flight and resolves both airport references.
func (s *FlightService) prepare(ctx context.Context, flight *domain.Flight) error {
	if err := flight.Validate(); err != nil {
		return err
	}

	verr := &domain.ValidationError{Fields: map[string]string{}}
	origin, err := s.lookupAirport(ctx, "origin", flight.OriginID, verr)
	if err != nil {
		return err
	}
	destination, err := s.lookupAirport(ctx, "destination", flight.DestinationID, verr)
	if err != nil {
		return err
	}
	if len(verr.Fields) > 0 {
		return verr
	}

	flight.Origin = *origin
	flight.Destination = *destination
	return nil
}

func (s *FlightService) lookupAirport(ctx context.Context, field string, id int64, verr *domain.ValidationError) (*domain.Airport, error) {
	airport, err := s.airports.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		verr.Fields[field] = domain.InvalidChoice
		return nil, nil
	}
	return airport, err
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("failed to invalidate flights cache: %v", err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
