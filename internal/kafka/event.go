package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/xwasu/airline-project/internal/domain"
)

// BookingEvent is published whenever a passenger is added to or removed
// from a flight.
type BookingEvent struct {
	ID          string               `json:"id"`
	Type        domain.BookingChange `json:"type"`
	FlightID    int64                `json:"flight_id"`
	PassengerID int64                `json:"passenger_id"`
	Passenger   string               `json:"passenger"`
	Route       string               `json:"route"`
	OccurredAt  time.Time            `json:"occurred_at"`
}

func (e BookingEvent) Key() string {
	return fmt.Sprintf("%d", e.FlightID)
}

func DecodeBookingEvent(data []byte) (BookingEvent, error) {
	var event BookingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return BookingEvent{}, fmt.Errorf("decode booking event: %w", err)
	}
	if event.Type != domain.BookingChangeBooked && event.Type != domain.BookingChangeUnbooked {
		return BookingEvent{}, fmt.Errorf("decode booking event: unknown type %q", event.Type)
	}
	return event, nil
}
