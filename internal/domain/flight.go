// Package domain contains the core business entities and rules for the flight
// booking system. These entities are storage-agnostic and form the foundation
// upon which all other components are built.
package domain

// Flight represents a scheduled flight route.
// A flight is identified by its number and owns the bookings made against it.
type Flight struct {
	// Number is the unique flight number (natural key, immutable once created)
	Number int `json:"number"`

	// StartTime is the scheduled departure time of day in HH:MM format
	StartTime string `json:"startTime"`

	// EndTime is the scheduled arrival time of day in HH:MM format
	EndTime string `json:"endTime"`

	// Capacity is the total number of seats on the flight
	Capacity int `json:"capacity"`

	// DepartureCity is the city the flight departs from
	DepartureCity string `json:"departureCity"`

	// ArrivalCity is the city the flight arrives at
	ArrivalCity string `json:"arrivalCity"`

	// Bookings is the collection of bookings made against this flight.
	// Only populated when the flight is loaded with bookings joined.
	Bookings []Booking `json:"bookings,omitempty"`
}

// FlightView is the public projection of a Flight. It deliberately carries no
// bookings so that responses containing a flight never expose other
// passengers' booking details.
type FlightView struct {
	Number        int    `json:"number"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Capacity      int    `json:"capacity"`
	DepartureCity string `json:"departureCity"`
	ArrivalCity   string `json:"arrivalCity"`
}

// View returns the public projection of the flight.
func (f *Flight) View() FlightView {
	return FlightView{
		Number:        f.Number,
		StartTime:     f.StartTime,
		EndTime:       f.EndTime,
		Capacity:      f.Capacity,
		DepartureCity: f.DepartureCity,
		ArrivalCity:   f.ArrivalCity,
	}
}
