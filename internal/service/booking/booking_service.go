package booking

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xwasu/airline-project/internal/domain"
	"github.com/xwasu/airline-project/internal/kafka"
	"github.com/xwasu/airline-project/internal/repository"
)

type BookingUseCase interface {
	Book(ctx context.Context, flightID, passengerID int64) error
	Unbook(ctx context.Context, flightID, passengerID int64) error
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

type BookingService struct {
	bookings     repository.BookingRepository
	flights      repository.FlightRepository
	passengers   repository.PassengerRepository
	producer     Producer
	bookingTopic string
	retries      int
	now          func() time.Time
}

type BookingServiceOption func(*BookingService)

// WithPublishRetries bounds how many times an event is offered to the
// producer. Values below 1 mean a single attempt.
func WithPublishRetries(n int) BookingServiceOption {
	return func(s *BookingService) {
		if n < 1 {
			n = 1
		}
		s.retries = n
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	passengers repository.PassengerRepository,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flights,
		passengers:   passengers,
		producer:     producer,
		bookingTopic: bookingTopic,
		retries:      1,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Book adds the passenger to the flight. Booking an already booked
// passenger succeeds without emitting an event.
func (s *BookingService) Book(ctx context.Context, flightID, passengerID int64) error {
	return s.change(ctx, domain.BookingChangeBooked, flightID, passengerID, s.bookings.Add)
}

// Unbook removes the passenger from the flight; unbooking a passenger who is
// not on the flight is a no-op.
func (s *BookingService) Unbook(ctx context.Context, flightID, passengerID int64) error {
	return s.change(ctx, domain.BookingChangeUnbooked, flightID, passengerID, s.bookings.Remove)
}

func (s *BookingService) change(
	ctx context.Context,
	kind domain.BookingChange,
	flightID, passengerID int64,
	mutate func(ctx context.Context, passengerID, flightID int64) (bool, error),
) error {
	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return err
	}
	passenger, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		return err
	}

	changed, err := mutate(ctx, passenger.ID, flight.ID)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err := s.publish(ctx, kind, flight, passenger); err != nil {
		log.Printf("WARNING: failed to publish %s event for flight %d: %v", kind, flight.ID, err)
	}
	return nil
}

func (s *BookingService) publish(ctx context.Context, kind domain.BookingChange, flight *domain.Flight, passenger *domain.Passenger) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		ID:          uuid.NewString(),
		Type:        kind,
		FlightID:    flight.ID,
		PassengerID: passenger.ID,
		Passenger:   passenger.String(),
		Route:       flight.Origin.Code + " to " + flight.Destination.Code,
		OccurredAt:  s.now().UTC(),
	}
	return s.producer.PublishWithRetry(ctx, s.bookingTopic, event.Key(), event, s.retries)
}

var (
	_ BookingUseCase = (*BookingService)(nil)
	_ Producer       = (*kafka.Producer)(nil)
)
