package domain

import "time"

// AvailableFlight is a computed (date, flight, remaining capacity) triple
// produced by the availability engine. It is never persisted, and it carries a
// detached FlightView rather than the source flight.
type AvailableFlight struct {
	// Date is the calendar day the flight has capacity on
	Date time.Time `json:"date"`

	// Flight is a detached view of the available flight
	Flight FlightView `json:"flight"`

	// RemainingCapacity is the flight's capacity minus the bookings already
	// recorded for Date. It reflects capacity before honoring the request
	// that asked for it.
	RemainingCapacity int `json:"remainingCapacity"`
}
