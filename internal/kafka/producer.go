package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/travelapp/internal/domain"
	"github.com/segmentio/kafka-go"
)

const EventBookingConfirmed = "booking_confirmed"

type BookingEvent struct {
	Type           string    `json:"type"`
	Reference      string    `json:"booking_reference"`
	FlightID       int64     `json:"flight_id"`
	FlightNumber   string    `json:"flight_number,omitempty"`
	PassengerName  string    `json:"passenger_name"`
	PassengerEmail string    `json:"passenger_email"`
	Status         string    `json:"status"`
	BookingDate    time.Time `json:"booking_date"`
}

func NewBookingEvent(eventType string, b *domain.Booking) BookingEvent {
	event := BookingEvent{
		Type:           eventType,
		Reference:      b.Reference,
		FlightID:       b.FlightID,
		PassengerName:  b.PassengerName,
		PassengerEmail: b.PassengerEmail,
		Status:         string(b.Status),
		BookingDate:    b.BookingDate,
	}
	if b.Flight != nil {
		event.FlightNumber = b.Flight.FlightNumber
	}
	return event
}

type Producer struct {
	brokers []string
	writer  *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		brokers: brokers,
		writer:  writer,
	}
}

// Publish JSON-encodes payload and writes it to topic keyed by key.
func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// CheckConnection dials the first broker and reads partition metadata.
func (p *Producer) CheckConnection(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ReadPartitions(); err != nil {
		return fmt.Errorf("failed to read partitions: %w", err)
	}
	return nil
}
