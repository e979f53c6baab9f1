package domain

type BookingChange string

const (
	BookingChangeBooked   BookingChange = "passenger_booked"
	BookingChangeUnbooked BookingChange = "passenger_unbooked"
)

type Booking struct {
	PassengerID int64
	FlightID    int64
}
