package travel_service_api

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/Domenick1991/travelapp/internal/domain"
	"github.com/Domenick1991/travelapp/internal/service/booking"
	"github.com/Domenick1991/travelapp/internal/service/flights"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	unexpectedErrorMessage = "An unexpected error occurred"
	bookingCreatedMessage  = "Booking created successfully"
)

// Server implements TravelServiceServer on top of the flight and booking
// use cases.
type Server struct {
	flights  flights.FlightUseCase
	bookings booking.BookingUseCase
	log      zerolog.Logger
}

func NewServer(flights flights.FlightUseCase, bookings booking.BookingUseCase, log zerolog.Logger) *Server {
	return &Server{flights: flights, bookings: bookings, log: log}
}

func (s *Server) SearchFlights(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	passengers := 1
	if v, ok := req.GetFields()["passengers"]; ok {
		n, err := integerField("passengers", v)
		if err != nil {
			return nil, err
		}
		passengers = int(n)
	}

	list, err := s.flights.Search(ctx,
		stringField(req, "origin"), stringField(req, "destination"), stringField(req, "departureDate"), passengers)
	if err != nil {
		return nil, s.toStatus(err)
	}
	list, err = flights.SortBy(list, stringField(req, "sort"))
	if err != nil {
		return nil, s.toStatus(err)
	}

	items := make([]any, 0, len(list))
	for i := range list {
		items = append(items, flightFields(&list[i]))
	}
	return structpb.NewStruct(map[string]any{"flights": items})
}

// GetFlight answers {"flight": null} for an unknown id.
func (s *Server) GetFlight(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := integerField("id", req.GetFields()["id"])
	if err != nil {
		return nil, err
	}
	flight, err := s.flights.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return structpb.NewStruct(map[string]any{"flight": nil})
	}
	if err != nil {
		return nil, s.toStatus(err)
	}
	return structpb.NewStruct(map[string]any{"flight": flightFields(flight)})
}

func (s *Server) CreateBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	flightID, err := integerField("flightId", req.GetFields()["flightId"])
	if err != nil {
		return nil, err
	}
	created, err := s.bookings.CreateBooking(ctx, booking.CreateBookingInput{
		FlightID:       flightID,
		PassengerName:  stringField(req, "passengerName"),
		PassengerEmail: stringField(req, "passengerEmail"),
		PassengerPhone: stringField(req, "passengerPhone"),
	})
	if err != nil {
		return structpb.NewStruct(map[string]any{
			"success": false,
			"booking": nil,
			"message": s.failureMessage(err),
		})
	}
	return structpb.NewStruct(map[string]any{
		"success": true,
		"booking": bookingFields(created),
		"message": bookingCreatedMessage,
	})
}

// GetBooking answers {"booking": null} for an unknown or malformed reference.
func (s *Server) GetBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	reference := stringField(req, "reference")
	if !domain.IsReference(reference) {
		return structpb.NewStruct(map[string]any{"booking": nil})
	}
	found, err := s.bookings.GetByReference(ctx, reference)
	if errors.Is(err, domain.ErrNotFound) {
		return structpb.NewStruct(map[string]any{"booking": nil})
	}
	if err != nil {
		return nil, s.toStatus(err)
	}
	return structpb.NewStruct(map[string]any{"booking": bookingFields(found)})
}

// failureMessage is the message carried by an unsuccessful booking result.
func (s *Server) failureMessage(err error) string {
	if domain.IsClientError(err) {
		return err.Error()
	}
	s.log.Error().Err(err).Msg("grpc_booking_failed")
	return unexpectedErrorMessage
}

func (s *Server) toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		s.log.Error().Err(err).Msg("grpc_request_failed")
		return status.Error(codes.Internal, unexpectedErrorMessage)
	}
}

// UnaryLogger logs every unary call with its status code.
func UnaryLogger(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)
		event := log.Info()
		if code == codes.Internal || code == codes.Unknown {
			event = log.Error()
		}
		event.
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("latency", time.Since(start)).
			Msg("grpc_request")
		return resp, err
	}
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

// maxExactInteger bounds the integers a JSON number carries exactly.
const maxExactInteger = 1 << 53

func integerField(name string, v *structpb.Value) (int64, error) {
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be an integer", name)
	}
	if math.Abs(n.NumberValue) > maxExactInteger {
		return 0, status.Errorf(codes.InvalidArgument, "%s is out of range", name)
	}
	return int64(n.NumberValue), nil
}

func flightFields(f *domain.Flight) map[string]any {
	return map[string]any{
		"id":              f.ID,
		"flightNumber":    f.FlightNumber,
		"airline":         f.Airline,
		"origin":          f.Origin,
		"destination":     f.Destination,
		"departureTime":   f.DepartureTime.Format(time.RFC3339),
		"arrivalTime":     f.ArrivalTime.Format(time.RFC3339),
		"durationMinutes": f.DurationMinutes,
		"price":           f.Price(),
		"priceCents":      f.PriceCents,
		"availableSeats":  f.AvailableSeats,
		"stops":           f.Stops,
		"aircraftType":    f.AircraftType,
	}
}

func bookingFields(b *domain.Booking) map[string]any {
	fields := map[string]any{
		"id":               b.ID.String(),
		"bookingReference": b.Reference,
		"flight":           nil,
		"passengerName":    b.PassengerName,
		"passengerEmail":   b.PassengerEmail,
		"passengerPhone":   b.PassengerPhone,
		"bookingDate":      b.BookingDate.Format(time.RFC3339),
		"status":           string(b.Status),
	}
	if b.Flight != nil {
		fields["flight"] = flightFields(b.Flight)
	}
	return fields
}

var _ TravelServiceServer = (*Server)(nil)
