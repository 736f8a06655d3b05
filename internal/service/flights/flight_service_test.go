package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/travelapp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Search(ctx context.Context, origin, destination string, day time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, origin, destination, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetSearch(ctx context.Context, origin, destination string, day time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, origin, destination, day)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetSearch(ctx context.Context, origin, destination string, day time.Time, flights []domain.Flight) error {
	args := m.Called(ctx, origin, destination, day, flights)
	return args.Error(0)
}

func (m *MockCache) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlight(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

var fixedNow = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func flight(id int64, number string, priceCents int64, duration int, dep time.Time) domain.Flight {
	return domain.Flight{
		ID:              id,
		FlightNumber:    number,
		Airline:         "Test Air",
		Origin:          "SFO",
		Destination:     "JFK",
		DepartureTime:   dep,
		ArrivalTime:     dep.Add(time.Duration(duration) * time.Minute),
		DurationMinutes: duration,
		PriceCents:      priceCents,
		AvailableSeats:  10,
		AircraftType:    "Boeing 737",
	}
}

func TestFlightService_Search_NormalizesInput(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, WithClock(fixedClock))

	ctx := context.Background()
	day := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	flights := []domain.Flight{
		flight(1, "UA1234", 35000, 330, day.Add(8*time.Hour)),
		flight(2, "AA245", 32500, 410, day.Add(11*time.Hour)),
	}

	mockRepo.On("Search", ctx, "SFO", "JFK", day).Return(flights, nil).Once()

	result, err := service.Search(ctx, "sfo", "jFk", "2026-11-02", 1)

	require.NoError(t, err)
	assert.Equal(t, flights, result)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_Search_TodayIsAllowed(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, WithClock(fixedClock))

	ctx := context.Background()
	today := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	mockRepo.On("Search", ctx, "SFO", "JFK", today).Return([]domain.Flight{}, nil).Once()

	result, err := service.Search(ctx, "SFO", "JFK", "2026-10-17", 1)

	require.NoError(t, err)
	assert.Empty(t, result)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_Search_ValidationErrors(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, WithClock(fixedClock))

	testCases := []struct {
		name        string
		origin      string
		destination string
		date        string
		expectedErr string
	}{
		{"origin too long", "SFOX", "JFK", "2026-02-15", "Airport code must be exactly 3 letters"},
		{"destination too short", "SFO", "JF", "2026-11-02", "Airport code must be exactly 3 letters"},
		{"digits in code", "S1O", "JFK", "2026-11-02", "Airport code must be exactly 3 letters"},
		{"empty code", "", "JFK", "2026-11-02", "Airport code must be exactly 3 letters"},
		{"past date", "SFO", "JFK", "2020-01-01", "Departure date must be today or in the future"},
		{"yesterday", "SFO", "JFK", "2026-10-16", "Departure date must be today or in the future"},
		{"single digit month", "SFO", "JFK", "2026-2-15", "Invalid date format. Expected: YYYY-MM-DD"},
		{"impossible day", "SFO", "JFK", "2027-02-30", "Invalid date format. Expected: YYYY-MM-DD"},
		{"trailing characters", "SFO", "JFK", "2026-11-02T10:00", "Invalid date format. Expected: YYYY-MM-DD"},
		{"other layout", "SFO", "JFK", "02/11/2026", "Invalid date format. Expected: YYYY-MM-DD"},
		{"empty date", "SFO", "JFK", "", "Invalid date format. Expected: YYYY-MM-DD"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := service.Search(context.Background(), tc.origin, tc.destination, tc.date, 1)
			assert.Nil(t, result)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}

	mockRepo.AssertNotCalled(t, "Search")
}

func TestFlightService_Search_PassengerCountDoesNotFilter(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, WithClock(fixedClock))

	ctx := context.Background()
	day := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	flights := []domain.Flight{flight(1, "UA1234", 35000, 330, day.Add(8*time.Hour))}
	flights[0].AvailableSeats = 1

	mockRepo.On("Search", ctx, "SFO", "JFK", day).Return(flights, nil).Twice()

	one, err := service.Search(ctx, "SFO", "JFK", "2026-11-02", 1)
	require.NoError(t, err)
	many, err := service.Search(ctx, "SFO", "JFK", "2026-11-02", 9)
	require.NoError(t, err)

	assert.Equal(t, one, many)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_Search_RepositoryError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, WithClock(fixedClock))

	ctx := context.Background()
	day := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	expectedErr := errors.New("database error")
	mockRepo.On("Search", ctx, "SFO", "JFK", day).Return(nil, expectedErr).Once()

	result, err := service.Search(ctx, "SFO", "JFK", "2026-11-02", 1)

	assert.Nil(t, result)
	assert.Equal(t, expectedErr, err)
}

func TestFlightService_Search_CacheMiss(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache, WithClock(fixedClock))

	ctx := context.Background()
	day := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	flights := []domain.Flight{flight(1, "UA1234", 35000, 330, day.Add(8*time.Hour))}

	mockCache.On("GetSearch", ctx, "SFO", "JFK", day).Return(([]domain.Flight)(nil), nil).Once()
	mockRepo.On("Search", ctx, "SFO", "JFK", day).Return(flights, nil).Once()
	mockCache.On("SetSearch", ctx, "SFO", "JFK", day, flights).Return(nil).Once()

	result, err := service.Search(ctx, "SFO", "JFK", "2026-11-02", 1)

	require.NoError(t, err)
	assert.Equal(t, flights, result)
	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_Search_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache, WithClock(fixedClock))

	ctx := context.Background()
	day := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	flights := []domain.Flight{flight(1, "UA1234", 35000, 330, day.Add(8*time.Hour))}

	mockCache.On("GetSearch", ctx, "SFO", "JFK", day).Return(flights, nil).Once()

	result, err := service.Search(ctx, "SFO", "JFK", "2026-11-02", 1)

	require.NoError(t, err)
	assert.Equal(t, flights, result)
	mockRepo.AssertNotCalled(t, "Search")
	mockCache.AssertNotCalled(t, "SetSearch")
}

func TestFlightService_Search_CacheErrorsDegrade(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache, WithClock(fixedClock))

	ctx := context.Background()
	day := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	flights := []domain.Flight{flight(1, "UA1234", 35000, 330, day.Add(8*time.Hour))}

	mockCache.On("GetSearch", ctx, "SFO", "JFK", day).Return(([]domain.Flight)(nil), errors.New("cache error")).Once()
	mockRepo.On("Search", ctx, "SFO", "JFK", day).Return(flights, nil).Once()
	mockCache.On("SetSearch", ctx, "SFO", "JFK", day, flights).Return(errors.New("cache error")).Once()

	result, err := service.Search(ctx, "SFO", "JFK", "2026-11-02", 1)

	require.NoError(t, err)
	assert.Equal(t, flights, result)
	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_GetByID(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	f := flight(4, "UA1234", 35000, 330, fixedNow)

	mockCache.On("GetFlight", ctx, int64(4)).Return(nil, nil).Once()
	mockRepo.On("GetByID", ctx, int64(4)).Return(&f, nil).Once()
	mockCache.On("SetFlight", ctx, &f).Return(nil).Once()

	result, err := service.GetByID(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, &f, result)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_GetByID_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	f := flight(4, "UA1234", 35000, 330, fixedNow)
	mockCache.On("GetFlight", ctx, int64(4)).Return(&f, nil).Once()

	result, err := service.GetByID(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, &f, result)
	mockRepo.AssertNotCalled(t, "GetByID")
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(999)).Return(nil, domain.ErrNotFound).Once()

	result, err := service.GetByID(ctx, 999)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestSortByPrice(t *testing.T) {
	a := flight(1, "AA100", 35000, 300, fixedNow)
	b := flight(2, "BB200", 32500, 300, fixedNow)
	input := []domain.Flight{a, b}

	sorted := SortByPrice(input)

	assert.Equal(t, []domain.Flight{b, a}, sorted)
	assert.Equal(t, []domain.Flight{a, b}, input, "input must not be reordered")
}

func TestSortByPrice_Stable(t *testing.T) {
	a := flight(1, "AA100", 30000, 300, fixedNow)
	b := flight(2, "BB200", 30000, 200, fixedNow)
	c := flight(3, "CC300", 10000, 100, fixedNow)

	assert.Equal(t, []domain.Flight{c, a, b}, SortByPrice([]domain.Flight{a, b, c}))
	assert.Equal(t, []domain.Flight{c, b, a}, SortByPrice([]domain.Flight{b, a, c}))
}

func TestSortByDuration_Stable(t *testing.T) {
	a := flight(1, "AA100", 30000, 300, fixedNow)
	b := flight(2, "BB200", 10000, 300, fixedNow)
	c := flight(3, "CC300", 20000, 120, fixedNow)

	assert.Equal(t, []domain.Flight{c, a, b}, SortByDuration([]domain.Flight{a, b, c}))
	assert.Equal(t, []domain.Flight{c, b, a}, SortByDuration([]domain.Flight{b, a, c}))
}

func TestSortByDepartureTime_Stable(t *testing.T) {
	early := fixedNow.Add(time.Hour)
	late := fixedNow.Add(5 * time.Hour)
	a := flight(1, "AA100", 30000, 300, late)
	b := flight(2, "BB200", 10000, 200, late)
	c := flight(3, "CC300", 20000, 120, early)

	assert.Equal(t, []domain.Flight{c, a, b}, SortByDepartureTime([]domain.Flight{a, b, c}))
	assert.Equal(t, []domain.Flight{c, b, a}, SortByDepartureTime([]domain.Flight{b, a, c}))
}

func TestSorts_Empty(t *testing.T) {
	assert.Empty(t, SortByPrice(nil))
	assert.Empty(t, SortByDuration([]domain.Flight{}))
	assert.Empty(t, SortByDepartureTime(nil))
}

func TestSortBy(t *testing.T) {
	a := flight(1, "AA100", 35000, 100, fixedNow.Add(2*time.Hour))
	b := flight(2, "BB200", 32500, 200, fixedNow.Add(time.Hour))
	input := []domain.Flight{a, b}

	testCases := []struct {
		key  string
		want []domain.Flight
	}{
		{"", []domain.Flight{a, b}},
		{SortByPriceKey, []domain.Flight{b, a}},
		{SortByDurationKey, []domain.Flight{a, b}},
		{SortByDepartureTimeKey, []domain.Flight{b, a}},
	}
	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			got, err := SortBy(input, tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := SortBy(input, "stops")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "Unsupported sort option: stops")
}
