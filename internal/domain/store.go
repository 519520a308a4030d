package domain

import "context"

//go:generate mockgen -source=store.go -destination=mock_store.go -package=domain

// FlightStore is the read port for flights.
type FlightStore interface {
	// List returns all flights in stable store order, without bookings.
	List(ctx context.Context) ([]Flight, error)

	// GetByNumber returns the flight with the given number, bookings joined.
	// Returns ErrFlightNotFound when no such flight exists.
	GetByNumber(ctx context.Context, number int) (*Flight, error)
}

// BookingStore is the read/write port for bookings.
type BookingStore interface {
	// List returns all bookings in insertion order. With withFlight set,
	// each booking carries a detached view of its resolved flight.
	List(ctx context.Context, withFlight bool) ([]Booking, error)

	// GetByID returns the booking with the given id, flight view attached.
	// Returns ErrBookingNotFound when no such booking exists.
	GetByID(ctx context.Context, id int) (*Booking, error)

	// Insert persists a new booking. The capacity admission check (bookings
	// on the target flight must be below its capacity) happens atomically
	// with the insert, so concurrent creations cannot overbook a flight.
	// On success the booking's ID is assigned and its Flight reference is
	// populated with a detached view. Returns ErrFlightNotFound when the
	// flight does not exist and ErrFlightFull when it is at capacity.
	Insert(ctx context.Context, b *Booking) error
}
