package domain

import (
	"strings"
	"time"
)

// Criterion is one independently-suppliable search condition over a booking
// or its related flight. The set of criteria is closed: each variant holds
// its own typed comparison value, so predicates are checkable at compile time
// instead of being assembled from field-name strings at runtime.
type Criterion interface {
	// Matches reports whether the booking satisfies this criterion.
	Matches(b *Booking) bool
}

// Predicate is a boolean test over a booking composed from one or more
// criteria. A predicate holds no per-call state and may be re-evaluated
// against any number of candidate bookings.
type Predicate func(b *Booking) bool

// BuildPredicate combines the supplied criteria into a single conjunctive
// predicate. Criteria are evaluated in slice order and joined with logical
// AND; there is no OR, grouping, or negation.
//
// With zero criteria it fails with ErrNoSearchCriteria, which callers treat
// as an invalid-argument condition.
func BuildPredicate(criteria []Criterion) (Predicate, error) {
	if len(criteria) == 0 {
		return nil, ErrNoSearchCriteria
	}

	return func(b *Booking) bool {
		for _, c := range criteria {
			if !c.Matches(b) {
				return false
			}
		}
		return true
	}, nil
}

// PassengerNameContains matches bookings whose passenger name contains the
// given substring. The comparison is case-sensitive.
func PassengerNameContains(name string) Criterion {
	return passengerNameContains{name: name}
}

// DateEquals matches bookings travelling on the given calendar day.
func DateEquals(date time.Time) Criterion {
	return dateEquals{date: dateOnly(date)}
}

// DateOnOrAfter matches bookings travelling on or after the given calendar day.
func DateOnOrAfter(date time.Time) Criterion {
	return dateOnOrAfter{date: dateOnly(date)}
}

// DateOnOrBefore matches bookings travelling on or before the given calendar day.
func DateOnOrBefore(date time.Time) Criterion {
	return dateOnOrBefore{date: dateOnly(date)}
}

// FlightNumberEquals matches bookings on the flight with the given number.
func FlightNumberEquals(number int) Criterion {
	return flightNumberEquals{number: number}
}

// ArrivalCityContains matches bookings whose flight arrives at a city
// containing the given substring. Resolves through the booking's attached
// flight; bookings without a resolved flight never match.
func ArrivalCityContains(city string) Criterion {
	return arrivalCityContains{city: city}
}

// DepartureCityContains matches bookings whose flight departs from a city
// containing the given substring. Resolves through the booking's attached
// flight; bookings without a resolved flight never match.
func DepartureCityContains(city string) Criterion {
	return departureCityContains{city: city}
}

type passengerNameContains struct{ name string }

func (c passengerNameContains) Matches(b *Booking) bool {
	return strings.Contains(b.PassengerName, c.name)
}

type dateEquals struct{ date time.Time }

func (c dateEquals) Matches(b *Booking) bool {
	return dateOnly(b.Date).Equal(c.date)
}

type dateOnOrAfter struct{ date time.Time }

func (c dateOnOrAfter) Matches(b *Booking) bool {
	return !dateOnly(b.Date).Before(c.date)
}

type dateOnOrBefore struct{ date time.Time }

func (c dateOnOrBefore) Matches(b *Booking) bool {
	return !dateOnly(b.Date).After(c.date)
}

type flightNumberEquals struct{ number int }

func (c flightNumberEquals) Matches(b *Booking) bool {
	if b.Flight != nil {
		return b.Flight.Number == c.number
	}
	return b.FlightNumber == c.number
}

type arrivalCityContains struct{ city string }

func (c arrivalCityContains) Matches(b *Booking) bool {
	return b.Flight != nil && strings.Contains(b.Flight.ArrivalCity, c.city)
}

type departureCityContains struct{ city string }

func (c departureCityContains) Matches(b *Booking) bool {
	return b.Flight != nil && strings.Contains(b.Flight.DepartureCity, c.city)
}
