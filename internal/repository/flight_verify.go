package repository

import (
	"context"
	"fmt"
)

// InvalidFlight is a stored flight row that fails domain validation.
type InvalidFlight struct {
	ID           int64
	FlightNumber string
	Err          error
}

// VerifyFlights validates every row of the flights table and returns the
// ones that fail, ordered by id.
func VerifyFlights(ctx context.Context, db DB) ([]InvalidFlight, error) {
	rows, err := db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	defer rows.Close()

	var invalid []InvalidFlight
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flight: %w", err)
		}
		if err := f.Validate(); err != nil {
			invalid = append(invalid, InvalidFlight{ID: f.ID, FlightNumber: f.FlightNumber, Err: err})
		}
	}
	return invalid, rows.Err()
}
