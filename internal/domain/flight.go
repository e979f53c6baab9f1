package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type Flight struct {
	ID            int64   `form:"-"`
	OriginID      int64   `form:"origin" validate:"required"`
	DestinationID int64   `form:"destination" validate:"required"`
	Origin        Airport `form:"-" validate:"-"`
	Destination   Airport `form:"-" validate:"-"`
	Duration      int     `form:"duration" validate:"gte=-2147483648,lte=2147483647"`
}

func NewFlight(originID, destinationID int64, duration int) (Flight, error) {
	f := Flight{OriginID: originID, DestinationID: destinationID, Duration: duration}
	if err := f.Validate(); err != nil {
		return Flight{}, err
	}
	return f, nil
}

// InvalidChoice is the message for a selection that does not name an existing row.
const InvalidChoice = "Select a valid choice."

func (f Flight) Validate() error {
	return validateStruct(f)
}

func (f Flight) String() string {
	return fmt.Sprintf("%d: %s to %s", f.ID, f.Origin.Code, f.Destination.Code)
}

// FlightDetail is a flight together with both sides of its booking relation.
type FlightDetail struct {
	Flight        Flight
	Passengers    []Passenger
	NonPassengers []Passenger
}

// ParseFlight builds a flight from raw form values. Malformed airport ids are
// reported the same way as unknown ones.
func ParseFlight(origin, destination, duration string) (Flight, error) {
	verr := &ValidationError{Fields: map[string]string{}}

	originID := parseChoice("origin", origin, verr)
	destinationID := parseChoice("destination", destination, verr)

	var minutes int
	switch d := strings.TrimSpace(duration); {
	case d == "":
		verr.Fields["duration"] = "This field is required."
	default:
		n, err := strconv.Atoi(d)
		if err != nil {
			verr.Fields["duration"] = "Enter a whole number."
		}
		minutes = n
	}

	if len(verr.Fields) > 0 {
		return Flight{}, verr
	}
	return NewFlight(originID, destinationID, minutes)
}

func parseChoice(field, raw string, verr *ValidationError) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.Fields[field] = "This field is required."
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		verr.Fields[field] = InvalidChoice
		return 0
	}
	return id
}
