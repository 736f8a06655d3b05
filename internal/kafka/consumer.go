package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// BookingConsumer reads booking events from one topic as part of a
// consumer group.
type BookingConsumer struct {
	reader messageReader
	log    zerolog.Logger
}

func NewBookingConsumer(brokers []string, groupID, topic string, log zerolog.Logger) *BookingConsumer {
	return &BookingConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			StartOffset:       kafka.FirstOffset,
			CommitInterval:    time.Second,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *BookingConsumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume passes each decoded event to handle until ctx ends, the reader
// fails or handle returns an error. Payloads that are not booking events
// are logged and skipped.
func (c *BookingConsumer) Consume(ctx context.Context, handle func(context.Context, BookingEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var event BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.log.Warn().Err(err).
				Str("key", string(msg.Key)).
				Int64("offset", msg.Offset).
				Msg("decode_booking_event")
			continue
		}
		if err := handle(ctx, event); err != nil {
			return err
		}
	}
}
