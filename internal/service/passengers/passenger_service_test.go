package passengers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xwasu/airline-project/internal/domain"
)

type MockPassengerRepository struct {
	mock.Mock
}

func (m *MockPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	args := m.Called(ctx, passenger)
	if args.Error(0) == nil {
		passenger.ID = 10
	}
	return args.Error(0)
}

func (m *MockPassengerRepository) Update(ctx context.Context, passenger *domain.Passenger) error {
	return m.Called(ctx, passenger).Error(0)
}

func (m *MockPassengerRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestPassengerService_List(t *testing.T) {
	ctx := context.Background()
	repo := &MockPassengerRepository{}
	repo.On("List", ctx).Return([]domain.Passenger{}, nil).Once()
	s := NewPassengerService(repo, 3)

	page, err := s.List(ctx, "4")

	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.NumPages)
	assert.Empty(t, page.Items)
}

func TestPassengerService_ListError(t *testing.T) {
	ctx := context.Background()
	repo := &MockPassengerRepository{}
	repo.On("List", ctx).Return(nil, errors.New("database error")).Once()
	s := NewPassengerService(repo, 3)

	_, err := s.List(ctx, "1")

	assert.EqualError(t, err, "database error")
}

func TestPassengerService_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		first, last string
		wantFields  map[string]string
	}{
		{name: "valid", first: "Harry", last: "Potter"},
		{name: "hyphenated last name", first: "Anna", last: "Smith-Jones",
			wantFields: map[string]string{"last": "The last should only contain letters."}},
		{name: "digits", first: "R2D2", last: "Droid",
			wantFields: map[string]string{"first": "The first should only contain letters."}},
		{name: "missing", first: "", last: "Granger",
			wantFields: map[string]string{"first": "This field is required."}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &MockPassengerRepository{}
			repo.On("Create", ctx, mock.AnythingOfType("*domain.Passenger")).Return(nil).Maybe()
			s := NewPassengerService(repo, 3)

			got, err := s.Create(ctx, tc.first, tc.last)

			if tc.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, int64(10), got.ID)
				repo.AssertNumberOfCalls(t, "Create", 1)
				return
			}
			ve, ok := domain.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantFields, ve.Fields)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestPassengerService_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := &MockPassengerRepository{}
	repo.On("Update", ctx, &domain.Passenger{ID: 5, First: "Ron", Last: "Weasley"}).
		Return(fmt.Errorf("passenger 5: %w", domain.ErrNotFound)).Once()
	s := NewPassengerService(repo, 3)

	_, err := s.Update(ctx, 5, "Ron", "Weasley")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestPassengerService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := &MockPassengerRepository{}
	repo.On("Delete", ctx, int64(3)).Return(nil).Once()
	s := NewPassengerService(repo, 3)

	require.NoError(t, s.Delete(ctx, 3))
	repo.AssertExpectations(t)
}
