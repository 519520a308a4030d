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

func TestCreateBookingInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := domain.NewMockBookingStore(ctrl)
	uc := NewBooking(store)

	tests := []struct {
		name    string
		booking *domain.Booking
	}{
		{name: "nil booking", booking: nil},
		{name: "missing name", booking: &domain.Booking{Date: date(2018, 5, 11), FlightNumber: 2}},
		{name: "unset date", booking: &domain.Booking{PassengerName: "Fred Jones", FlightNumber: 2}},
		{name: "zero flight number", booking: &domain.Booking{PassengerName: "Fred Jones", Date: date(2018, 5, 11)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Validation rejects before the store is touched.
			created, err := uc.Create(context.Background(), tt.booking)
			require.Error(t, err)
			assert.Nil(t, created)
			assert.ErrorIs(t, err, domain.ErrInvalidBooking)
		})
	}
}

func TestCreateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := domain.NewMockBookingStore(ctrl)
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b *domain.Booking) error {
			// The store assigns identity and attaches the flight view.
			b.ID = 3
			b.Flight = &domain.FlightView{Number: 2, Capacity: 4}
			return nil
		})

	uc := NewBooking(store)
	created, err := uc.Create(context.Background(), &domain.Booking{
		PassengerName: "Fred Jones",
		Date:          time.Date(2018, 5, 11, 9, 30, 0, 0, time.UTC),
		FlightNumber:  2,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, date(2018, 5, 11), created.Date, "travel date is normalized to the calendar day")
	require.NotNil(t, created.Flight)
	assert.Equal(t, 2, created.Flight.Number)
}

func TestCreateBookingFlightNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := domain.NewMockBookingStore(ctrl)
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(domain.ErrFlightNotFound)

	uc := NewBooking(store)
	_, err := uc.Create(context.Background(), &domain.Booking{
		PassengerName: "Fred Jones",
		Date:          date(2018, 5, 11),
		FlightNumber:  99,
	})

	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

// A booking on a flight already at capacity is rejected before persistence.
func TestCreateBookingFlightFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := domain.NewMockBookingStore(ctrl)
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(domain.ErrFlightFull)

	uc := NewBooking(store)
	created, err := uc.Create(context.Background(), &domain.Booking{
		PassengerName: "Fred Jones",
		Date:          date(2018, 5, 11),
		FlightNumber:  2,
	})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, domain.ErrFlightFull)
}

func TestGetBookingByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := &domain.Booking{ID: 1, PassengerName: "Jane Ford", FlightNumber: 2, Flight: &domain.FlightView{Number: 2}}
	store := domain.NewMockBookingStore(ctrl)
	store.EXPECT().GetByID(gomock.Any(), 1).Return(want, nil)

	uc := NewBooking(store)
	got, err := uc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetBookingByIDNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := domain.NewMockBookingStore(ctrl)
	store.EXPECT().GetByID(gomock.Any(), 42).Return(nil, domain.ErrBookingNotFound)

	uc := NewBooking(store)
	_, err := uc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
