package email

import (
	"context"

	"github.com/Domenick1991/travelapp/internal/kafka"
	"github.com/rs/zerolog"
)

// Sender delivers booking confirmations. Delivery is a structured log
// line until an SMTP relay is configured.
type Sender struct {
	log zerolog.Logger
}

func NewSender(log zerolog.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Info().
		Str("to", event.PassengerEmail).
		Str("event", event.Type).
		Str("booking_reference", event.Reference).
		Int64("flight_id", event.FlightID).
		Str("flight_number", event.FlightNumber).
		Msg("send_confirmation_email")
	return nil
}
