package email

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/xwasu/airline-project/internal/domain"
	"github.com/xwasu/airline-project/internal/kafka"
)

// Sender renders booking notifications. Delivery is a line on the configured
// writer; there is no mail transport behind it.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func NewSenderTo(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.out, Subject(event))
	return err
}

func Subject(event kafka.BookingEvent) string {
	switch event.Type {
	case domain.BookingChangeBooked:
		return fmt.Sprintf("%s booked on flight %d (%s)", event.Passenger, event.FlightID, event.Route)
	case domain.BookingChangeUnbooked:
		return fmt.Sprintf("%s removed from flight %d (%s)", event.Passenger, event.FlightID, event.Route)
	default:
		return fmt.Sprintf("booking update %s for flight %d", event.Type, event.FlightID)
	}
}
