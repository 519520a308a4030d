package domain

import "time"

// Booking represents a passenger booking on a flight for a specific travel date.
type Booking struct {
	// ID is the store-assigned booking identifier (monotonic per store)
	ID int `json:"id"`

	// Date is the travel date. Only the calendar day is significant; the
	// zero time.Time is the "unset" sentinel.
	Date time.Time `json:"date"`

	// PassengerName is the full name of the travelling passenger
	PassengerName string `json:"passengerName"`

	// FlightNumber references the booked flight
	FlightNumber int `json:"flightNumber"`

	// Flight is a derived, detached view of the booked flight for read
	// convenience. It is never persisted as booking state.
	Flight *FlightView `json:"flight,omitempty"`
}

// IsValid reports whether the booking satisfies the admission rules for
// creation: a passenger name, a set travel date, and a positive flight number.
// A violation is a client error, not a system fault.
func (b *Booking) IsValid() bool {
	return b.PassengerName != "" && !b.Date.IsZero() && b.FlightNumber > 0
}

// dateOnly normalizes a time to midnight UTC so bookings compare by calendar
// day regardless of the time-of-day component they were supplied with.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
