package domain

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	flightNumberPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{3,4}$`)
	airportCodePattern  = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Flight is read-only for this service; rows are seeded externally.
type Flight struct {
	ID              int64
	FlightNumber    string
	Airline         string
	Origin          string
	Destination     string
	DepartureTime   time.Time
	ArrivalTime     time.Time
	DurationMinutes int
	PriceCents      int64
	AvailableSeats  int
	Stops           int
	AircraftType    string
}

// Price renders the fare with exactly two fractional digits.
func (f Flight) Price() string {
	return FormatCents(f.PriceCents)
}

func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Validate checks the stored field formats. Arrival is not
// compared against departure.
func (f Flight) Validate() error {
	var errs []error
	if !flightNumberPattern.MatchString(f.FlightNumber) {
		errs = append(errs, errors.New("Flight number must be in format XX000 or XX0000"))
	}
	if f.Airline == "" {
		errs = append(errs, errors.New("Airline is required"))
	}
	if !airportCodePattern.MatchString(f.Origin) {
		errs = append(errs, errors.New("Origin must be a valid 3-letter airport code"))
	}
	if !airportCodePattern.MatchString(f.Destination) {
		errs = append(errs, errors.New("Destination must be a valid 3-letter airport code"))
	}
	if f.DepartureTime.IsZero() {
		errs = append(errs, errors.New("Departure time is required"))
	}
	if f.ArrivalTime.IsZero() {
		errs = append(errs, errors.New("Arrival time is required"))
	}
	if f.DurationMinutes <= 0 {
		errs = append(errs, errors.New("Duration must be positive"))
	}
	if f.PriceCents < 1 {
		errs = append(errs, errors.New("Price must be at least 0.01"))
	}
	if f.AvailableSeats < 0 {
		errs = append(errs, errors.New("Available seats cannot be negative"))
	}
	if f.Stops < 0 {
		errs = append(errs, errors.New("Stops cannot be negative"))
	}
	if f.AircraftType == "" {
		errs = append(errs, errors.New("Aircraft type is required"))
	}
	if len(errs) == 0 {
		return nil
	}
	return &Error{Kind: ErrInvalidArgument, Message: errors.Join(errs...).Error()}
}
