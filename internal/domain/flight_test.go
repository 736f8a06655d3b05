package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFlight() Flight {
	dep := time.Date(2026, 11, 2, 8, 30, 0, 0, time.UTC)
	return Flight{
		ID:              1,
		FlightNumber:    "UA1234",
		Airline:         "United Airlines",
		Origin:          "SFO",
		Destination:     "JFK",
		DepartureTime:   dep,
		ArrivalTime:     dep.Add(5*time.Hour + 30*time.Minute),
		DurationMinutes: 330,
		PriceCents:      35000,
		AvailableSeats:  12,
		Stops:           0,
		AircraftType:    "Boeing 737",
	}
}

func TestFlight_Validate(t *testing.T) {
	assert.NoError(t, validFlight().Validate())

	testCases := []struct {
		name   string
		mutate func(f *Flight)
		want   string
	}{
		{"lowercase flight number", func(f *Flight) { f.FlightNumber = "ua123" }, "Flight number"},
		{"short flight number", func(f *Flight) { f.FlightNumber = "UA12" }, "Flight number"},
		{"long flight number", func(f *Flight) { f.FlightNumber = "UA12345" }, "Flight number"},
		{"bad origin", func(f *Flight) { f.Origin = "sfo" }, "Origin"},
		{"bad destination", func(f *Flight) { f.Destination = "JFKX" }, "Destination"},
		{"zero duration", func(f *Flight) { f.DurationMinutes = 0 }, "Duration"},
		{"free fare", func(f *Flight) { f.PriceCents = 0 }, "Price must be at least 0.01"},
		{"negative seats", func(f *Flight) { f.AvailableSeats = -1 }, "Available seats"},
		{"negative stops", func(f *Flight) { f.Stops = -1 }, "Stops"},
		{"no aircraft", func(f *Flight) { f.AircraftType = "" }, "Aircraft type"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := validFlight()
			tc.mutate(&f)
			err := f.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestFlight_ArrivalBeforeDepartureIsAccepted(t *testing.T) {
	f := validFlight()
	f.ArrivalTime = f.DepartureTime.Add(-time.Hour)
	assert.NoError(t, f.Validate())
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "350.00", FormatCents(35000))
	assert.Equal(t, "0.01", FormatCents(1))
	assert.Equal(t, "1299.95", FormatCents(129995))
	assert.Equal(t, "-2.50", FormatCents(-250))
	assert.Equal(t, "325.00", Flight{PriceCents: 32500}.Price())
}
