package domain

import "errors"

// Sentinel errors surfaced by the booking core. Handlers map them to HTTP
// status codes with errors.Is; wrapped variants keep the chain intact.
var (
	// ErrNoSearchCriteria is returned when a criteria search is attempted
	// with every criterion empty. The message is part of the API contract.
	ErrNoSearchCriteria = errors.New("At least one search argument is required")

	// ErrMissingDateRange is returned when an availability computation is
	// missing either date bound. The message is part of the API contract.
	ErrMissingDateRange = errors.New("Missing required argument.")

	// ErrInvalidBooking is returned when a booking fails its admission rules.
	ErrInvalidBooking = errors.New("invalid booking")

	// ErrFlightNotFound is returned when a flight number resolves to nothing.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrBookingNotFound is returned when a booking id resolves to nothing.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrFlightFull is returned when a booking is refused because the target
	// flight is already at capacity.
	ErrFlightFull = errors.New("flight is at full capacity")
)

// IsInvalidArgument reports whether err represents a caller contract
// violation: a condition that is never transient and never retried.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrNoSearchCriteria) ||
		errors.Is(err, ErrMissingDateRange) ||
		errors.Is(err, ErrInvalidBooking)
}

// IsNotFound reports whether err represents a missing entity lookup.
// "No matching rows" from a search is not a not-found condition; it is an
// empty result.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFlightNotFound) || errors.Is(err, ErrBookingNotFound)
}
