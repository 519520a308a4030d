package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-booking/flight-booking-api/internal/domain"
)

// stubFlightCache is a simple in-process FlightCache for tests.
type stubFlightCache struct {
	flights []domain.FlightView
	getErr  error
	sets    int
}

func (c *stubFlightCache) GetFlights(context.Context) ([]domain.FlightView, error) {
	return c.flights, c.getErr
}

func (c *stubFlightCache) SetFlights(_ context.Context, flights []domain.FlightView) error {
	c.flights = flights
	c.sets++
	return nil
}

func TestFlightList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := domain.NewMockFlightStore(ctrl)
	store.EXPECT().List(gomock.Any()).Return([]domain.Flight{
		{Number: 1, Capacity: 12, DepartureCity: "Muttaburra", ArrivalCity: "Camooweal",
			Bookings: []domain.Booking{{ID: 1}}},
		{Number: 2, Capacity: 4, DepartureCity: "Thargomindah", ArrivalCity: "Einasleigh"},
	}, nil)

	uc := NewFlight(store, nil)
	views, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 1, views[0].Number)
	assert.Equal(t, 2, views[1].Number)
}

func TestFlightListCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Store must not be queried on a cache hit.
	store := domain.NewMockFlightStore(ctrl)
	cache := &stubFlightCache{flights: []domain.FlightView{{Number: 1, Capacity: 12}}}

	uc := NewFlight(store, cache)
	views, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 1, views[0].Number)
}

func TestFlightListCacheMissPopulates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := domain.NewMockFlightStore(ctrl)
	store.EXPECT().List(gomock.Any()).Return([]domain.Flight{{Number: 3, Capacity: 6}}, nil)

	cache := &stubFlightCache{}
	uc := NewFlight(store, cache)

	views, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, views, cache.flights)
}

func TestFlightListCacheErrorFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := domain.NewMockFlightStore(ctrl)
	store.EXPECT().List(gomock.Any()).Return([]domain.Flight{{Number: 1, Capacity: 12}}, nil)

	cache := &stubFlightCache{getErr: errors.New("redis down")}
	uc := NewFlight(store, cache)

	views, err := uc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestFlightGetByNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := domain.NewMockFlightStore(ctrl)
	store.EXPECT().GetByNumber(gomock.Any(), 2).Return(&domain.Flight{
		Number: 2, Capacity: 4,
		Bookings: []domain.Booking{{ID: 1, PassengerName: "Jane Ford"}},
	}, nil)

	uc := NewFlight(store, nil)
	view, err := uc.GetByNumber(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, view.Number)
	assert.Equal(t, 4, view.Capacity)
}

func TestFlightGetByNumberNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := domain.NewMockFlightStore(ctrl)
	store.EXPECT().GetByNumber(gomock.Any(), 99).Return(nil, domain.ErrFlightNotFound)

	uc := NewFlight(store, nil)
	view, err := uc.GetByNumber(context.Background(), 99)

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}
