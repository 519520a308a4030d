// Package usecase contains the business logic for booking search, flight
// availability, and booking creation.
package usecase

import (
	"context"
	"time"

	"github.com/flight-booking/flight-booking-api/internal/domain"
	"github.com/flight-booking/flight-booking-api/internal/infrastructure/timeutil"
)

// SearchParams holds the independently-optional criteria for a booking search.
// The zero value of each field means "not supplied".
type SearchParams struct {
	// PassengerName matches bookings whose passenger name contains this value
	PassengerName string

	// Date matches bookings travelling on exactly this calendar day
	Date time.Time

	// FlightNumber matches bookings on exactly this flight
	FlightNumber *int

	// ArrivalCity matches bookings whose flight's arrival city contains this value
	ArrivalCity string

	// DepartureCity matches bookings whose flight's departure city contains this value
	DepartureCity string
}

// HasCriteria reports whether any search criterion was supplied. The
// presentation boundary uses it to route between criteria search and the
// unfiltered upcoming listing.
func (p SearchParams) HasCriteria() bool {
	return p.PassengerName != "" || !p.Date.IsZero() || p.FlightNumber != nil ||
		p.ArrivalCity != "" || p.DepartureCity != ""
}

// criteria converts the supplied parameters into an ordered criterion list.
// The order is fixed for deterministic evaluation.
func (p SearchParams) criteria() []domain.Criterion {
	var criteria []domain.Criterion
	if p.PassengerName != "" {
		criteria = append(criteria, domain.PassengerNameContains(p.PassengerName))
	}
	if !p.Date.IsZero() {
		criteria = append(criteria, domain.DateEquals(p.Date))
	}
	if p.FlightNumber != nil {
		criteria = append(criteria, domain.FlightNumberEquals(*p.FlightNumber))
	}
	if p.ArrivalCity != "" {
		criteria = append(criteria, domain.ArrivalCityContains(p.ArrivalCity))
	}
	if p.DepartureCity != "" {
		criteria = append(criteria, domain.DepartureCityContains(p.DepartureCity))
	}
	return criteria
}

// BookingSearchUseCase defines the query operations over bookings.
type BookingSearchUseCase interface {
	// Search returns the bookings matching the AND of all supplied criteria.
	// With zero criteria it fails with domain.ErrNoSearchCriteria.
	Search(ctx context.Context, params SearchParams) ([]domain.Booking, error)

	// ListUpcoming returns all bookings travelling today or later, relative
	// to the injected clock. Always succeeds; may return an empty slice.
	ListUpcoming(ctx context.Context) ([]domain.Booking, error)
}

type bookingSearchUseCase struct {
	bookings domain.BookingStore
	clock    timeutil.Clock
}

// NewBookingSearch creates a BookingSearchUseCase backed by the given store.
// The clock supplies the reference instant for the upcoming-bookings filter.
func NewBookingSearch(bookings domain.BookingStore, clock timeutil.Clock) BookingSearchUseCase {
	return &bookingSearchUseCase{bookings: bookings, clock: clock}
}

func (uc *bookingSearchUseCase) Search(ctx context.Context, params SearchParams) ([]domain.Booking, error) {
	pred, err := domain.BuildPredicate(params.criteria())
	if err != nil {
		return nil, err
	}

	// City criteria resolve through the booking's flight, so load with the
	// flight view joined.
	all, err := uc.bookings.List(ctx, true)
	if err != nil {
		return nil, err
	}

	return filterBookings(all, pred), nil
}

func (uc *bookingSearchUseCase) ListUpcoming(ctx context.Context) ([]domain.Booking, error) {
	all, err := uc.bookings.List(ctx, false)
	if err != nil {
		return nil, err
	}

	today := timeutil.DateOnly(uc.clock.Now())
	upcoming := make([]domain.Booking, 0, len(all))
	for _, b := range all {
		if !timeutil.DateOnly(b.Date).Before(today) {
			upcoming = append(upcoming, b)
		}
	}
	return upcoming, nil
}

// filterBookings applies the predicate to the bookings, preserving store order.
func filterBookings(bookings []domain.Booking, pred domain.Predicate) []domain.Booking {
	result := make([]domain.Booking, 0, len(bookings))
	for i := range bookings {
		if pred(&bookings[i]) {
			result = append(result, bookings[i])
		}
	}
	return result
}
