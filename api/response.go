package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/travelapp/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const unexpectedErrorMessage = "An unexpected error occurred"

type flightResponse struct {
	ID              int64       `json:"id"`
	FlightNumber    string      `json:"flightNumber"`
	Airline         string      `json:"airline"`
	Origin          string      `json:"origin"`
	Destination     string      `json:"destination"`
	DepartureTime   string      `json:"departureTime"`
	ArrivalTime     string      `json:"arrivalTime"`
	DurationMinutes int         `json:"durationMinutes"`
	Price           json.Number `json:"price" swaggertype:"number"`
	AvailableSeats  int         `json:"availableSeats"`
	Stops           int         `json:"stops"`
	AircraftType    string      `json:"aircraftType"`
}

type bookingResponse struct {
	ID               string          `json:"id"`
	BookingReference string          `json:"bookingReference"`
	Flight           *flightResponse `json:"flight"`
	PassengerName    string          `json:"passengerName"`
	PassengerEmail   string          `json:"passengerEmail"`
	PassengerPhone   string          `json:"passengerPhone"`
	BookingDate      string          `json:"bookingDate"`
	Status           string          `json:"status"`
}

type bookingResult struct {
	Success bool             `json:"success"`
	Booking *bookingResponse `json:"booking"`
	Message string           `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newFlightResponse(f *domain.Flight) *flightResponse {
	if f == nil {
		return nil
	}
	return &flightResponse{
		ID:              f.ID,
		FlightNumber:    f.FlightNumber,
		Airline:         f.Airline,
		Origin:          f.Origin,
		Destination:     f.Destination,
		DepartureTime:   f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:     f.ArrivalTime.Format(time.RFC3339),
		DurationMinutes: f.DurationMinutes,
		Price:           json.Number(f.Price()),
		AvailableSeats:  f.AvailableSeats,
		Stops:           f.Stops,
		AircraftType:    f.AircraftType,
	}
}

func newFlightList(flights []domain.Flight) []flightResponse {
	out := make([]flightResponse, 0, len(flights))
	for i := range flights {
		out = append(out, *newFlightResponse(&flights[i]))
	}
	return out
}

func newBookingResponse(b *domain.Booking) *bookingResponse {
	return &bookingResponse{
		ID:               b.ID.String(),
		BookingReference: b.Reference,
		Flight:           newFlightResponse(b.Flight),
		PassengerName:    b.PassengerName,
		PassengerEmail:   b.PassengerEmail,
		PassengerPhone:   b.PassengerPhone,
		BookingDate:      b.BookingDate.Format(time.RFC3339),
		Status:           string(b.Status),
	}
}

// errorStatus maps an error kind onto an HTTP status. The message is only
// exposed for client errors.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, unexpectedErrorMessage
	}
}

func writeError(c *gin.Context, log zerolog.Logger, err error) {
	status, message := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request_failed")
	}
	c.JSON(status, errorResponse{Error: message})
}
