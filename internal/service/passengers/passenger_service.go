package passengers

import (
	"context"

	"github.com/xwasu/airline-project/internal/domain"
	"github.com/xwasu/airline-project/internal/pagination"
	"github.com/xwasu/airline-project/internal/repository"
)

type PassengerUseCase interface {
	List(ctx context.Context, page string) (pagination.Page[domain.Passenger], error)
	Get(ctx context.Context, id int64) (*domain.Passenger, error)
	Create(ctx context.Context, first, last string) (*domain.Passenger, error)
	Update(ctx context.Context, id int64, first, last string) (*domain.Passenger, error)
	Delete(ctx context.Context, id int64) error
}

type PassengerService struct {
	repo     repository.PassengerRepository
	pageSize int
}

func NewPassengerService(repo repository.PassengerRepository, pageSize int) *PassengerService {
	return &PassengerService{repo: repo, pageSize: pageSize}
}

func (s *PassengerService) List(ctx context.Context, page string) (pagination.Page[domain.Passenger], error) {
	passengers, err := s.repo.List(ctx)
	if err != nil {
		return pagination.Page[domain.Passenger]{}, err
	}
	return pagination.Paginate(passengers, s.pageSize, page), nil
}

func (s *PassengerService) Get(ctx context.Context, id int64) (*domain.Passenger, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PassengerService) Create(ctx context.Context, first, last string) (*domain.Passenger, error) {
	passenger, err := domain.NewPassenger(first, last)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &passenger); err != nil {
		return nil, err
	}
	return &passenger, nil
}

func (s *PassengerService) Update(ctx context.Context, id int64, first, last string) (*domain.Passenger, error) {
	passenger, err := domain.NewPassenger(first, last)
	if err != nil {
		return nil, err
	}
	passenger.ID = id
	if err := s.repo.Update(ctx, &passenger); err != nil {
		return nil, err
	}
	return &passenger, nil
}

func (s *PassengerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var _ PassengerUseCase = (*PassengerService)(nil)
