package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/travelapp/internal/domain"
	"github.com/jackc/pgx/v5"
)

// FlightRepository is the flight catalog.
type FlightRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	// Search returns flights on the route departing on the calendar day
	// that starts at day, ordered by departure time.
	Search(ctx context.Context, origin, destination string, day time.Time) ([]domain.Flight, error)
}

type PGFlightRepository struct {
	db DB
}

func NewFlightRepository(db DB) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, flight_number, airline, origin, destination, departure_time, arrival_time, duration_minutes, (price * 100)::bigint, available_seats, stops, aircraft_type`

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	f, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get flight %d: %w", id, err)
	}
	return f, nil
}

func (r *PGFlightRepository) Search(ctx context.Context, origin, destination string, day time.Time) ([]domain.Flight, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights
		WHERE origin=$1 AND destination=$2 AND departure_time >= $3 AND departure_time < $4
		ORDER BY departure_time`, origin, destination, start, end)
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flight: %w", err)
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.Airline, &f.Origin, &f.Destination, &f.DepartureTime, &f.ArrivalTime,
		&f.DurationMinutes, &f.PriceCents, &f.AvailableSeats, &f.Stops, &f.AircraftType); err != nil {
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
