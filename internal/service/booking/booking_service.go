package booking

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Domenick1991/travelapp/internal/domain"
	"github.com/Domenick1991/travelapp/internal/kafka"
	"github.com/Domenick1991/travelapp/internal/repository"
	"github.com/rs/zerolog"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,20}$`)
)

// DefaultPublishTimeout bounds how long a booking waits on its events.
const DefaultPublishTimeout = 2 * time.Second

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	references         *ReferenceGenerator
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	publishTimeout     time.Duration
	log                zerolog.Logger
	now                func() time.Time
}

type CreateBookingInput struct {
	FlightID       int64  `json:"flightId"`
	PassengerName  string `json:"passengerName"`
	PassengerEmail string `json:"passengerEmail"`
	PassengerPhone string `json:"passengerPhone"`
}

type BookingServiceOption func(*BookingService)

// WithEvents publishes a booking_confirmed event to topic for every booking.
func WithEvents(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = topic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithPublishTimeout(timeout time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.publishTimeout = timeout
	}
}

func WithLogger(log zerolog.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.log = log
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

// WithRandom replaces the secure random source used for references.
func WithRandom(random io.Reader) BookingServiceOption {
	return func(s *BookingService) {
		s.references = NewReferenceGenerator(s.bookings, random)
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:       bookings,
		flights:        flights,
		references:     NewReferenceGenerator(bookings, nil),
		publishTimeout: DefaultPublishTimeout,
		log:            zerolog.Nop(),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking books one passenger on a flight. The seat count is read as
// a gate only; nothing is decremented.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.InvalidArgument("Flight not found: %d", input.FlightID)
		}
		return nil, err
	}

	passenger := domain.Passenger{
		Name:  strings.TrimSpace(input.PassengerName),
		Email: input.PassengerEmail,
		Phone: input.PassengerPhone,
	}
	if err := validatePassenger(passenger); err != nil {
		return nil, err
	}

	if flight.AvailableSeats <= 0 {
		return nil, domain.InvalidState("No seats available on this flight")
	}

	reference, err := s.references.Generate(ctx)
	if err != nil {
		return nil, err
	}

	saved, err := s.bookings.Save(ctx, domain.NewBooking(flight, reference, passenger, s.now().UTC()))
	if err != nil {
		return nil, err
	}
	if saved.Flight == nil {
		saved.Flight = flight
	}

	s.log.Info().
		Str("booking_reference", saved.Reference).
		Int64("flight_id", saved.FlightID).
		Msg("booking_created")

	if err := s.publish(ctx, kafka.EventBookingConfirmed, saved); err != nil {
		s.log.Warn().Err(err).Str("booking_reference", saved.Reference).Msg("booking_event_publish")
	}
	return saved, nil
}

func (s *BookingService) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookings.GetByReference(ctx, reference)
}

func validatePassenger(p domain.Passenger) error {
	name := utf8.RuneCountInString(strings.TrimSpace(p.Name))
	if name < 2 || name > 100 {
		return domain.InvalidArgument("Passenger name must be between 2 and 100 characters")
	}
	if !emailPattern.MatchString(p.Email) {
		return domain.InvalidArgument("Invalid email address")
	}
	if !phonePattern.MatchString(p.Phone) {
		return domain.InvalidArgument("Phone number must be 10-20 digits")
	}
	return nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	if s.publishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.publishTimeout)
		defer cancel()
	}
	event := kafka.NewBookingEvent(eventType, booking)
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
