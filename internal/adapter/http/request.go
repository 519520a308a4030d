// Package http provides the HTTP handler layer for the flight booking API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"strconv"
	"time"

	"github.com/flight-booking/flight-booking-api/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-api/internal/usecase"
)

// maxAvailabilityRangeDays bounds the availability window. Requests spanning
// this many days or more are rejected before the engine runs.
const maxAvailabilityRangeDays = 30

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// parseDate parses a YYYY-MM-DD string into a midnight-UTC time.
func parseDate(s string) (time.Time, error) {
	return time.Parse(timeutil.DateFormat, s)
}

// SearchBookingsRequest carries the raw booking search query parameters.
// All fields are optional; a request with no fields set is an upcoming-list
// request rather than a criteria search.
type SearchBookingsRequest struct {
	PassengerName string `query:"passengerName"`
	Date          string `query:"date"`
	FlightNumber  string `query:"flightNumber"`
	ArrivalCity   string `query:"arrivalCity"`
	DepartureCity string `query:"departureCity"`
}

// HasCriteria reports whether any search parameter was supplied.
func (r *SearchBookingsRequest) HasCriteria() bool {
	return r.PassengerName != "" || r.Date != "" || r.FlightNumber != "" ||
		r.ArrivalCity != "" || r.DepartureCity != ""
}

// ToSearchParams validates the raw query values and converts them to use case
// search parameters.
func (r *SearchBookingsRequest) ToSearchParams() (usecase.SearchParams, error) {
	errs := &ValidationErrors{}
	params := usecase.SearchParams{
		PassengerName: r.PassengerName,
		ArrivalCity:   r.ArrivalCity,
		DepartureCity: r.DepartureCity,
	}

	if r.Date != "" {
		if !datePattern.MatchString(r.Date) {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		} else if parsed, err := parseDate(r.Date); err != nil {
			errs.Add("date", "date is not a valid date")
		} else {
			params.Date = parsed
		}
	}

	if r.FlightNumber != "" {
		number, err := strconv.Atoi(r.FlightNumber)
		if err != nil || number < 1 {
			errs.Add("flightNumber", "flightNumber must be a positive number")
		} else {
			params.FlightNumber = &number
		}
	}

	if errs.HasErrors() {
		return usecase.SearchParams{}, errs
	}
	return params, nil
}

// AvailabilityRequest carries the raw availability query parameters.
type AvailabilityRequest struct {
	StartDate          string `query:"startDate"`
	EndDate            string `query:"endDate"`
	NumberOfPassengers string `query:"numberOfPassengers"`
}

// AvailabilityQuery is the validated form of an AvailabilityRequest.
type AvailabilityQuery struct {
	Start      time.Time
	End        time.Time
	Passengers int
}

// Validate validates the raw query values and returns the parsed window.
// An absent passenger count defaults to zero (no seats requested).
func (r *AvailabilityRequest) Validate() (AvailabilityQuery, error) {
	errs := &ValidationErrors{}
	var q AvailabilityQuery

	q.Start = r.parseBound(errs, "startDate", r.StartDate)
	q.End = r.parseBound(errs, "endDate", r.EndDate)

	if !q.Start.IsZero() && !q.End.IsZero() {
		if q.Start.After(q.End) {
			errs.Add("endDate", "endDate must not be before startDate")
		} else if q.End.Sub(q.Start) >= maxAvailabilityRangeDays*24*time.Hour {
			errs.Add("endDate", "date range must be shorter than 30 days")
		}
	}

	if r.NumberOfPassengers != "" {
		passengers, err := strconv.Atoi(r.NumberOfPassengers)
		if err != nil || passengers < 1 {
			errs.Add("numberOfPassengers", "numberOfPassengers must be a positive number")
		} else {
			q.Passengers = passengers
		}
	}

	if errs.HasErrors() {
		return AvailabilityQuery{}, errs
	}
	return q, nil
}

func (r *AvailabilityRequest) parseBound(errs *ValidationErrors, field, value string) time.Time {
	if value == "" {
		errs.Add(field, field+" is required")
		return time.Time{}
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}
	}
	parsed, err := parseDate(value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}
	}
	return parsed
}
