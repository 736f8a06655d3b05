package flights

import (
	"cmp"
	"context"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/Domenick1991/travelapp/internal/domain"
	"github.com/Domenick1991/travelapp/internal/repository"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

var airportCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

type FlightUseCase interface {
	Search(ctx context.Context, origin, destination, departureDate string, passengers int) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type FlightCache interface {
	GetSearch(ctx context.Context, origin, destination string, day time.Time) ([]domain.Flight, error)
	SetSearch(ctx context.Context, origin, destination string, day time.Time, flights []domain.Flight) error
	GetFlight(ctx context.Context, id int64) (*domain.Flight, error)
	SetFlight(ctx context.Context, flight *domain.Flight) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache FlightCache
	log   zerolog.Logger
	now   func() time.Time
}

type FlightServiceOption func(*FlightService)

func WithLogger(log zerolog.Logger) FlightServiceOption {
	return func(s *FlightService) {
		s.log = log
	}
}

// WithClock replaces time.Now when deciding what "today" is.
func WithClock(now func() time.Time) FlightServiceOption {
	return func(s *FlightService) {
		s.now = now
	}
}

// NewFlightService builds the search service. cache may be nil.
func NewFlightService(repo repository.FlightRepository, cache FlightCache, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{
		repo:  repo,
		cache: cache,
		log:   zerolog.Nop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search validates the route and date and returns the matching flights in
// departure order. passengers is accepted for API compatibility and does
// not filter results.
func (s *FlightService) Search(ctx context.Context, origin, destination, departureDate string, passengers int) ([]domain.Flight, error) {
	if err := validateAirportCode(origin); err != nil {
		return nil, err
	}
	if err := validateAirportCode(destination); err != nil {
		return nil, err
	}
	day, err := s.parseDepartureDate(departureDate)
	if err != nil {
		return nil, err
	}

	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)

	if s.cache != nil {
		cached, err := s.cache.GetSearch(ctx, origin, destination, day)
		if err != nil {
			s.log.Warn().Err(err).Str("origin", origin).Str("destination", destination).Msg("flight_search_cache_read")
		} else if cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Search(ctx, origin, destination, day)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetSearch(ctx, origin, destination, day, flights); err != nil {
			s.log.Warn().Err(err).Str("origin", origin).Str("destination", destination).Msg("flight_search_cache_write")
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	if s.cache != nil {
		cached, err := s.cache.GetFlight(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Int64("flight_id", id).Msg("flight_cache_read")
		} else if cached != nil {
			return cached, nil
		}
	}

	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlight(ctx, flight); err != nil {
			s.log.Warn().Err(err).Int64("flight_id", id).Msg("flight_cache_write")
		}
	}
	return flight, nil
}

func validateAirportCode(code string) error {
	if !airportCodePattern.MatchString(code) {
		return domain.InvalidArgument("Airport code must be exactly 3 letters: %s", code)
	}
	return nil
}

// parseDepartureDate returns midnight UTC of the requested calendar day.
// Dates before today's local calendar date are rejected.
func (s *FlightService) parseDepartureDate(value string) (time.Time, error) {
	day, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domain.InvalidArgument("Invalid date format. Expected: YYYY-MM-DD")
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return time.Time{}, domain.InvalidArgument("Departure date must be today or in the future")
	}
	return day, nil
}

// Sort keys accepted by SortBy.
const (
	SortByPriceKey         = "price"
	SortByDurationKey      = "duration"
	SortByDepartureTimeKey = "departureTime"
)

// SortBy dispatches to one of the stable sorts. An empty key keeps the
// catalog order.
func SortBy(flights []domain.Flight, key string) ([]domain.Flight, error) {
	switch key {
	case "":
		return flights, nil
	case SortByPriceKey:
		return SortByPrice(flights), nil
	case SortByDurationKey:
		return SortByDuration(flights), nil
	case SortByDepartureTimeKey:
		return SortByDepartureTime(flights), nil
	default:
		return nil, domain.InvalidArgument("Unsupported sort option: %s", key)
	}
}

// SortByPrice returns a copy ordered by ascending fare; ties keep their
// input order. The same holds for the other sorts.
func SortByPrice(flights []domain.Flight) []domain.Flight {
	return sortedCopy(flights, func(a, b domain.Flight) int {
		return cmp.Compare(a.PriceCents, b.PriceCents)
	})
}

func SortByDuration(flights []domain.Flight) []domain.Flight {
	return sortedCopy(flights, func(a, b domain.Flight) int {
		return cmp.Compare(a.DurationMinutes, b.DurationMinutes)
	})
}

func SortByDepartureTime(flights []domain.Flight) []domain.Flight {
	return sortedCopy(flights, func(a, b domain.Flight) int {
		return a.DepartureTime.Compare(b.DepartureTime)
	})
}

func sortedCopy(flights []domain.Flight, cmpFn func(a, b domain.Flight) int) []domain.Flight {
	sorted := slices.Clone(flights)
	slices.SortStableFunc(sorted, cmpFn)
	return sorted
}

var _ FlightUseCase = (*FlightService)(nil)
