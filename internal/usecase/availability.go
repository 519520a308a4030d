package usecase

import (
	"context"
	"time"

	"github.com/flight-booking/flight-booking-api/internal/domain"
	"github.com/flight-booking/flight-booking-api/internal/infrastructure/timeutil"
)

// AvailabilityUseCase computes which flights have free capacity across a
// date range.
type AvailabilityUseCase interface {
	// GetAvailableFlights returns every (date, flight) combination in the
	// closed range [start, end] with enough free seats for the requested
	// passenger count. A passenger count of zero means no admission test
	// beyond nonnegative remaining capacity.
	//
	// Fails with domain.ErrMissingDateRange when either bound is unset.
	GetAvailableFlights(ctx context.Context, start, end time.Time, passengers int) ([]domain.AvailableFlight, error)
}

type availabilityUseCase struct {
	flights  domain.FlightStore
	bookings domain.BookingStore
}

// NewAvailability creates an AvailabilityUseCase over the given stores.
func NewAvailability(flights domain.FlightStore, bookings domain.BookingStore) AvailabilityUseCase {
	return &availabilityUseCase{flights: flights, bookings: bookings}
}

func (uc *availabilityUseCase) GetAvailableFlights(ctx context.Context, start, end time.Time, passengers int) ([]domain.AvailableFlight, error) {
	if start.IsZero() || end.IsZero() {
		return nil, domain.ErrMissingDateRange
	}

	// Fetch the bookings in range once, up front, instead of querying per day.
	pred, err := domain.BuildPredicate([]domain.Criterion{
		domain.DateOnOrAfter(start),
		domain.DateOnOrBefore(end),
	})
	if err != nil {
		return nil, err
	}
	all, err := uc.bookings.List(ctx, true)
	if err != nil {
		return nil, err
	}
	existing := filterBookings(all, pred)

	flights, err := uc.flights.List(ctx)
	if err != nil {
		return nil, err
	}

	// Date-major over the cross-product, flights in store order.
	available := make([]domain.AvailableFlight, 0, len(flights))
	for _, day := range timeutil.DatesBetween(start, end) {
		for i := range flights {
			flight := &flights[i]
			booked := countBookings(existing, day, flight.Number)
			if flight.Capacity-booked-passengers >= 0 {
				available = append(available, domain.AvailableFlight{
					Date:   day,
					Flight: flight.View(),
					// The requested passenger count gates inclusion but is
					// not deducted from the reported remaining capacity.
					RemainingCapacity: flight.Capacity - booked,
				})
			}
		}
	}
	return available, nil
}

// countBookings counts bookings for the exact (day, flight number) pair.
func countBookings(bookings []domain.Booking, day time.Time, flightNumber int) int {
	count := 0
	for i := range bookings {
		b := &bookings[i]
		if b.FlightNumber == flightNumber && timeutil.DateOnly(b.Date).Equal(day) {
			count++
		}
	}
	return count
}
