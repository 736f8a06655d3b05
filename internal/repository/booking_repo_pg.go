package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/travelapp/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type BookingRepository interface {
	Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ExistsByReference(ctx context.Context, reference string) (bool, error)
}

type PGBookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &PGBookingRepository{db: db}
}

// Save inserts booking. The unique index on booking_reference is the
// real guard against duplicate references; a violation is reported as
// domain.ErrReferenceConflict.
func (r *PGBookingRepository) Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (id, flight_id, booking_reference, passenger_name, passenger_email, passenger_phone, booking_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, booking_date`,
		booking.ID, booking.FlightID, booking.Reference, booking.PassengerName, booking.PassengerEmail,
		booking.PassengerPhone, booking.BookingDate, booking.Status).
		Scan(&booking.ID, &booking.BookingDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("save booking %s: %w", booking.Reference, domain.ErrReferenceConflict)
		}
		return nil, fmt.Errorf("save booking %s: %w", booking.Reference, err)
	}
	return booking, nil
}

func (r *PGBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT b.id, b.flight_id, b.booking_reference, b.passenger_name, b.passenger_email, b.passenger_phone, b.booking_date, b.status,
		f.id, f.flight_number, f.airline, f.origin, f.destination, f.departure_time, f.arrival_time, f.duration_minutes, (f.price * 100)::bigint, f.available_seats, f.stops, f.aircraft_type
		FROM bookings b JOIN flights f ON f.id = b.flight_id
		WHERE b.booking_reference=$1`, reference)

	var (
		b domain.Booking
		f domain.Flight
	)
	if err := row.Scan(&b.ID, &b.FlightID, &b.Reference, &b.PassengerName, &b.PassengerEmail, &b.PassengerPhone, &b.BookingDate, &b.Status,
		&f.ID, &f.FlightNumber, &f.Airline, &f.Origin, &f.Destination, &f.DepartureTime, &f.ArrivalTime,
		&f.DurationMinutes, &f.PriceCents, &f.AvailableSeats, &f.Stops, &f.AircraftType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking %s: %w", reference, err)
	}
	b.Flight = &f
	return &b, nil
}

func (r *PGBookingRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE booking_reference=$1)`, reference).Scan(&exists); err != nil {
		return false, fmt.Errorf("check booking reference: %w", err)
	}
	return exists, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
