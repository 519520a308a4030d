package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-booking/flight-booking-api/internal/domain"
)

// availabilityFixture wires an availability use case over mock stores with
// the given flights and bookings.
func availabilityFixture(t *testing.T, flights []domain.Flight, bookings []domain.Booking) AvailabilityUseCase {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	flightStore := domain.NewMockFlightStore(ctrl)
	flightStore.EXPECT().List(gomock.Any()).Return(flights, nil).AnyTimes()

	bookingStore := domain.NewMockBookingStore(ctrl)
	bookingStore.EXPECT().List(gomock.Any(), true).Return(bookings, nil).AnyTimes()

	return NewAvailability(flightStore, bookingStore)
}

func TestGetAvailableFlightsMissingBounds(t *testing.T) {
	uc := availabilityFixture(t, nil, nil)

	tests := []struct {
		name       string
		start, end time.Time
	}{
		{name: "missing start", start: time.Time{}, end: date(2018, 5, 12)},
		{name: "missing end", start: date(2018, 5, 10), end: time.Time{}},
		{name: "missing both", start: time.Time{}, end: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.GetAvailableFlights(context.Background(), tt.start, tt.end, 0)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMissingDateRange)
			assert.Equal(t, "Missing required argument.", err.Error())
		})
	}
}

// TestGetAvailableFlightsEmptyRange: one flight with capacity 1 and no
// bookings over a three-day range yields one entry per day at full capacity.
func TestGetAvailableFlightsNoBookings(t *testing.T) {
	uc := availabilityFixture(t,
		[]domain.Flight{{Number: 1, Capacity: 1}},
		nil,
	)

	available, err := uc.GetAvailableFlights(context.Background(), date(2018, 5, 10), date(2018, 5, 12), 0)

	require.NoError(t, err)
	require.Len(t, available, 3)
	for i, day := range []time.Time{date(2018, 5, 10), date(2018, 5, 11), date(2018, 5, 12)} {
		assert.Equal(t, day, available[i].Date)
		assert.Equal(t, 1, available[i].Flight.Number)
		assert.Equal(t, 1, available[i].RemainingCapacity)
	}
}

// A booking on 2018-05-11 fills the capacity-1 flight for that day only, so a
// one-passenger request sees all other days at unchanged capacity.
func TestGetAvailableFlightsBookedOut(t *testing.T) {
	uc := availabilityFixture(t,
		[]domain.Flight{{Number: 1, Capacity: 1}},
		[]domain.Booking{{ID: 1, Date: date(2018, 5, 11), FlightNumber: 1, PassengerName: "Jane Ford"}},
	)

	available, err := uc.GetAvailableFlights(context.Background(), date(2018, 5, 10), date(2018, 5, 12), 1)

	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, date(2018, 5, 10), available[0].Date)
	assert.Equal(t, 1, available[0].RemainingCapacity)
	assert.Equal(t, date(2018, 5, 12), available[1].Date)
	assert.Equal(t, 1, available[1].RemainingCapacity)
}

func TestGetAvailableFlightsPassengersExceedCapacity(t *testing.T) {
	uc := availabilityFixture(t,
		[]domain.Flight{{Number: 1, Capacity: 1}},
		nil,
	)

	available, err := uc.GetAvailableFlights(context.Background(), date(2018, 5, 10), date(2018, 5, 12), 2)

	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestGetAvailableFlightsNoFlights(t *testing.T) {
	uc := availabilityFixture(t, nil, nil)

	available, err := uc.GetAvailableFlights(context.Background(), date(2018, 5, 10), date(2018, 5, 12), 0)

	require.NoError(t, err)
	assert.Empty(t, available)
}

/// Remaining capacity reports capacity before honoring the current request:
// the passenger count gates inclusion but is never deducted.
func TestGetAvailableFlightsRemainingCapacityExcludesRequest(t *testing.T) {
	uc := availabilityFixture(t,
		[]domain.Flight{{Number: 2, Capacity: 4}},
		[]domain.Booking{{ID: 1, Date: date(2018, 5, 10), FlightNumber: 2, PassengerName: "Jane Ford"}},
	)

	available, err := uc.GetAvailableFlights(context.Background(), date(2018, 5, 10), date(2018, 5, 10), 3)

	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, 3, available[0].RemainingCapacity)
}

func TestGetAvailableFlightsDateMajorOrdering(t *testing.T) {
	uc := availabilityFixture(t,
		[]domain.Flight{
			{Number: 1, Capacity: 12},
			{Number: 2, Capacity: 4},
			{Number: 3, Capacity: 6},
		},
		nil,
	)

	available, err := uc.GetAvailableFlights(context.Background(), date(2018, 5, 10), date(2018, 5, 11), 0)

	require.NoError(t, err)
	require.Len(t, available, 6)

	// Date-major, then flight store order within each day.
	for i, want := range []struct {
		day    time.Time
		number int
	}{
		{date(2018, 5, 10), 1},
		{date(2018, 5, 10), 2},
		{date(2018, 5, 10), 3},
		{date(2018, 5, 11), 1},
		{date(2018, 5, 11), 2},
		{date(2018, 5, 11), 3},
	} {
		assert.Equal(t, want.day, available[i].Date, "entry %d", i)
		assert.Equal(t, want.number, available[i].Flight.Number, "entry %d", i)
	}
}

func TestGetAvailableFlightsIdempotent(t *testing.T) {
	uc := availabilityFixture(t,
		[]domain.Flight{{Number: 2, Capacity: 4}},
		[]domain.Booking{{ID: 1, Date: date(2018, 5, 10), FlightNumber: 2, PassengerName: "Jane Ford"}},
	)

	first, err := uc.GetAvailableFlights(context.Background(), date(2018, 5, 9), date(2018, 5, 15), 2)
	require.NoError(t, err)
	second, err := uc.GetAvailableFlights(context.Background(), date(2018, 5, 9), date(2018, 5, 15), 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// The emitted views never carry the source flight's bookings collection.
func TestGetAvailableFlightsDetachedFlightView(t *testing.T) {
	flight := domain.Flight{
		Number:   2,
		Capacity: 4,
		Bookings: []domain.Booking{{ID: 1, PassengerName: "Jane Ford"}},
	}
	uc := availabilityFixture(t, []domain.Flight{flight}, nil)

	available, err := uc.GetAvailableFlights(context.Background(), date(2018, 5, 10), date(2018, 5, 10), 0)

	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, 2, available[0].Flight.Number)
	assert.Equal(t, 4, available[0].Flight.Capacity)
}

// Bookings outside the requested window must not count against capacity.
func TestGetAvailableFlightsIgnoresBookingsOutsideRange(t *testing.T) {
	uc := availabilityFixture(t,
		[]domain.Flight{{Number: 1, Capacity: 1}},
		[]domain.Booking{
			{ID: 1, Date: date(2018, 5, 9), FlightNumber: 1, PassengerName: "Joe Bloggs"},
			{ID: 2, Date: date(2018, 5, 13), FlightNumber: 1, PassengerName: "Jane Smith"},
		},
	)

	available, err := uc.GetAvailableFlights(context.Background(), date(2018, 5, 10), date(2018, 5, 12), 1)

	require.NoError(t, err)
	assert.Len(t, available, 3)
}
