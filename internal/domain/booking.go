package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
)

const (
	ReferenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	ReferenceLength   = 6
)

type Passenger struct {
	Name  string
	Email string
	Phone string
}

type Booking struct {
	ID             uuid.UUID
	FlightID       int64
	Flight         *Flight
	Reference      string
	PassengerName  string
	PassengerEmail string
	PassengerPhone string
	BookingDate    time.Time
	Status         BookingStatus
}

// NewBooking returns a fully initialised confirmed booking for flight.
// Identity and booking date are assigned here, never by the store.
func NewBooking(flight *Flight, reference string, passenger Passenger, now time.Time) *Booking {
	return &Booking{
		ID:             uuid.New(),
		FlightID:       flight.ID,
		Flight:         flight,
		Reference:      reference,
		PassengerName:  passenger.Name,
		PassengerEmail: passenger.Email,
		PassengerPhone: passenger.Phone,
		BookingDate:    now,
		Status:         BookingStatusConfirmed,
	}
}

// IsReference reports whether s has the shape of a booking reference.
func IsReference(s string) bool {
	if len(s) != ReferenceLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
