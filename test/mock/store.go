// Package mock provides test doubles for the flight booking system.
// These doubles are designed for integration testing where we need
// configurable behavior (delays, errors, specific datasets).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/flight-booking/flight-booking-api/internal/domain"
)

// FlightStore is a configurable mock implementation of domain.FlightStore.
// It supports configurable delays and errors for testing failure and
// cancellation paths that the in-memory store never exercises.
type FlightStore struct {
	flights   []domain.Flight
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewFlightStore creates a new mock flight store.
// The store is configured using the builder pattern methods.
func NewFlightStore() *FlightStore {
	return &FlightStore{}
}

// WithFlights configures the store to hold the given flights.
func (s *FlightStore) WithFlights(flights ...domain.Flight) *FlightStore {
	s.flights = flights
	return s
}

// WithError configures the store to return the given error.
func (s *FlightStore) WithError(err error) *FlightStore {
	s.err = err
	return s
}

// WithDelay configures the store to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (s *FlightStore) WithDelay(d time.Duration) *FlightStore {
	s.delay = d
	return s
}

// List implements domain.FlightStore.
func (s *FlightStore) List(ctx context.Context) ([]domain.Flight, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return append([]domain.Flight(nil), s.flights...), nil
}

// GetByNumber implements domain.FlightStore.
func (s *FlightStore) GetByNumber(ctx context.Context, number int) (*domain.Flight, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.flights {
		if s.flights[i].Number == number {
			flight := s.flights[i]
			return &flight, nil
		}
	}
	return nil, domain.ErrFlightNotFound
}

// CallCount returns the number of calls made against the store.
func (s *FlightStore) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

func (s *FlightStore) wait(ctx context.Context) error {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return ctx.Err()
}

// Ensure FlightStore implements domain.FlightStore at compile time.
var _ domain.FlightStore = (*FlightStore)(nil)

// SampleFlights returns the canonical three-flight dataset used across the
// integration tests.
func SampleFlights() []domain.Flight {
	return []domain.Flight{
		{Number: 1, StartTime: "06:00", EndTime: "06:45", Capacity: 12, DepartureCity: "Muttaburra", ArrivalCity: "Camooweal"},
		{Number: 2, StartTime: "09:00", EndTime: "10:15", Capacity: 4, DepartureCity: "Thargomindah", ArrivalCity: "Einasleigh"},
		{Number: 3, StartTime: "13:00", EndTime: "15:00", Capacity: 6, DepartureCity: "Parachilna", ArrivalCity: "Betoota"},
	}
}

// SampleBookings returns the canonical seeded bookings, flights not attached.
func SampleBookings() []domain.Booking {
	return []domain.Booking{
		{ID: 1, Date: time.Date(2018, 5, 10, 0, 0, 0, 0, time.UTC), PassengerName: "Jane Ford", FlightNumber: 2},
		{ID: 2, Date: time.Date(2018, 5, 12, 0, 0, 0, 0, time.UTC), PassengerName: "John Smith", FlightNumber: 3},
	}
}
