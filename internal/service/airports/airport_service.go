package airports

import (
	"context"
	"log"

	"github.com/xwasu/airline-project/internal/domain"
	"github.com/xwasu/airline-project/internal/pagination"
	"github.com/xwasu/airline-project/internal/repository"
)

type AirportUseCase interface {
	List(ctx context.Context, page string) (pagination.Page[domain.Airport], error)
	All(ctx context.Context) ([]domain.Airport, error)
	Get(ctx context.Context, id int64) (*domain.Airport, error)
	Create(ctx context.Context, code, city string) (*domain.Airport, error)
	Update(ctx context.Context, id int64, code, city string) (*domain.Airport, error)
	Delete(ctx context.Context, id int64) error
}

// FlightsCache is the part of the cache that goes stale when airports change:
// flight listings embed airport codes.
type FlightsCache interface {
	InvalidateFlights(ctx context.Context) error
}

type AirportService struct {
	repo     repository.AirportRepository
	cache    FlightsCache
	pageSize int
}

func NewAirportService(repo repository.AirportRepository, cache FlightsCache, pageSize int) *AirportService {
	return &AirportService{repo: repo, cache: cache, pageSize: pageSize}
}

func (s *AirportService) List(ctx context.Context, page string) (pagination.Page[domain.Airport], error) {
	airports, err := s.repo.List(ctx)
	if err != nil {
		return pagination.Page[domain.Airport]{}, err
	}
	return pagination.Paginate(airports, s.pageSize, page), nil
}

func (s *AirportService) All(ctx context.Context) ([]domain.Airport, error) {
	return s.repo.List(ctx)
}

func (s *AirportService) Get(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AirportService) Create(ctx context.Context, code, city string) (*domain.Airport, error) {
	airport, err := domain.NewAirport(code, city)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &airport); err != nil {
		return nil, err
	}
	return &airport, nil
}

func (s *AirportService) Update(ctx context.Context, id int64, code, city string) (*domain.Airport, error) {
	airport, err := domain.NewAirport(code, city)
	if err != nil {
		return nil, err
	}
	airport.ID = id
	if err := s.repo.Update(ctx, &airport); err != nil {
		return nil, err
	}
	s.invalidateFlights(ctx)
	return &airport, nil
}

func (s *AirportService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateFlights(ctx)
	return nil
}

func (s *AirportService) invalidateFlights(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("failed to invalidate flights cache: %v", err)
	}
}

var _ AirportUseCase = (*AirportService)(nil)
