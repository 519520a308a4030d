// Package memory provides an in-memory implementation of the flight and
// booking stores. It is the default driver for development and the backing
// store for the integration tests.
package memory

import (
	"context"
	"sync"

	"github.com/flight-booking/flight-booking-api/internal/domain"
)

// Store holds flights and bookings in memory. Flights keep their seeded
// order and bookings their insertion order, so listings are deterministic.
// All operations are safe for concurrent use; Insert serializes the capacity
// admission check with the write under the same lock.
type Store struct {
	mu       sync.RWMutex
	flights  []domain.Flight
	bookings []domain.Booking
	nextID   int
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// SeedFlights loads flights into the store, including any bookings they
// carry. Booking ids are preserved when set, otherwise assigned.
func (s *Store) SeedFlights(flights ...domain.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range flights {
		bookings := f.Bookings
		f.Bookings = nil
		s.flights = append(s.flights, f)

		for _, b := range bookings {
			if b.ID == 0 {
				b.ID = s.nextID
			}
			if b.ID >= s.nextID {
				s.nextID = b.ID + 1
			}
			b.FlightNumber = f.Number
			b.Flight = nil
			s.bookings = append(s.bookings, b)
		}
	}
}

// List implements domain.FlightStore.
func (s *Store) List(_ context.Context) ([]domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flights := make([]domain.Flight, len(s.flights))
	copy(flights, s.flights)
	return flights, nil
}

// GetByNumber implements domain.FlightStore. The returned flight carries its
// bookings joined.
func (s *Store) GetByNumber(_ context.Context, number int) (*domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flight := s.findFlight(number)
	if flight == nil {
		return nil, domain.ErrFlightNotFound
	}

	result := *flight
	for _, b := range s.bookings {
		if b.FlightNumber == number {
			result.Bookings = append(result.Bookings, b)
		}
	}
	return &result, nil
}

// List implements domain.BookingStore.
func (s *Store) ListBookings(_ context.Context, withFlight bool) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]domain.Booking, len(s.bookings))
	copy(bookings, s.bookings)

	if withFlight {
		for i := range bookings {
			if flight := s.findFlight(bookings[i].FlightNumber); flight != nil {
				view := flight.View()
				bookings[i].Flight = &view
			}
		}
	}
	return bookings, nil
}

// GetByID implements domain.BookingStore.
func (s *Store) GetByID(_ context.Context, id int) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			if flight := s.findFlight(b.FlightNumber); flight != nil {
				view := flight.View()
				b.Flight = &view
			}
			return &b, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

// Insert implements domain.BookingStore. The capacity check and the append
// happen under one lock, so concurrent creations cannot overbook a flight.
func (s *Store) Insert(_ context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight := s.findFlight(b.FlightNumber)
	if flight == nil {
		return domain.ErrFlightNotFound
	}

	booked := 0
	for _, existing := range s.bookings {
		if existing.FlightNumber == flight.Number {
			booked++
		}
	}
	if booked >= flight.Capacity {
		return domain.ErrFlightFull
	}

	b.ID = s.nextID
	s.nextID++

	stored := *b
	stored.Flight = nil
	s.bookings = append(s.bookings, stored)

	view := flight.View()
	b.Flight = &view
	return nil
}

// findFlight returns the stored flight with the given number. Callers must
// hold the lock.
func (s *Store) findFlight(number int) *domain.Flight {
	for i := range s.flights {
		if s.flights[i].Number == number {
			return &s.flights[i]
		}
	}
	return nil
}

var (
	_ domain.FlightStore  = (*flightStore)(nil)
	_ domain.BookingStore = (*bookingStore)(nil)
)

// flightStore adapts Store to domain.FlightStore.
type flightStore struct{ *Store }

// bookingStore adapts Store to domain.BookingStore.
type bookingStore struct{ *Store }

func (s bookingStore) List(ctx context.Context, withFlight bool) ([]domain.Booking, error) {
	return s.ListBookings(ctx, withFlight)
}

// Flights returns the store's domain.FlightStore port.
func (s *Store) Flights() domain.FlightStore { return flightStore{s} }

// Bookings returns the store's domain.BookingStore port.
func (s *Store) Bookings() domain.BookingStore { return bookingStore{s} }
