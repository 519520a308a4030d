// Package integration provides helpers and integration tests for the flight
// booking system. Integration tests verify that components work together
// correctly: HTTP handlers, use cases, and the in-memory store.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-booking/flight-booking-api/internal/adapter/http"
	"github.com/flight-booking/flight-booking-api/internal/adapter/store/memory"
	"github.com/flight-booking/flight-booking-api/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-api/internal/usecase"
)

// ReferenceNow is the instant the test clock is pinned to: the morning of
// 2018-05-11, between the two seeded booking dates.
var ReferenceNow = time.Date(2018, 5, 11, 9, 0, 0, 0, time.UTC)

// TestServer wraps an Echo instance wired against a seeded in-memory store.
type TestServer struct {
	Echo  *echo.Echo
	Store *memory.Store
	Clock *timeutil.MockClock
}

// NewTestServer creates a test server over a freshly seeded store.
func NewTestServer() *TestServer {
	return NewTestServerWithStore(seededStore())
}

// NewTestServerWithStore creates a test server over the given store.
func NewTestServerWithStore(store *memory.Store) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	clock := timeutil.NewMockClock(ReferenceNow)

	flightHandler := httpAdapter.NewFlightHandler(
		usecase.NewFlight(store.Flights(), nil),
		usecase.NewAvailability(store.Flights(), store.Bookings()))
	bookingHandler := httpAdapter.NewBookingHandler(
		usecase.NewBooking(store.Bookings()),
		usecase.NewBookingSearch(store.Bookings(), clock))
	httpAdapter.RegisterRoutes(e, flightHandler, bookingHandler)

	return &TestServer{
		Echo:  e,
		Store: store,
		Clock: clock,
	}
}

func seededStore() *memory.Store {
	store := memory.NewStore()
	memory.SeedDevData(store)
	return store
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get makes a GET request against the given path.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// CreateBooking makes a POST /api/v1/bookings request with the given body.
func (ts *TestServer) CreateBooking(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/bookings",
		Body:   body,
	})
}

// ParseBookings parses the response body as a list of bookings.
func (r *Response) ParseBookings() ([]httpAdapter.BookingDTO, error) {
	var bookings []httpAdapter.BookingDTO
	if err := json.Unmarshal(r.Body, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ParseBooking parses the response body as a single booking.
func (r *Response) ParseBooking() (*httpAdapter.BookingDTO, error) {
	var booking httpAdapter.BookingDTO
	if err := json.Unmarshal(r.Body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ParseFlights parses the response body as a list of flights.
func (r *Response) ParseFlights() ([]httpAdapter.FlightDTO, error) {
	var flights []httpAdapter.FlightDTO
	if err := json.Unmarshal(r.Body, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// ParseFlight parses the response body as a single flight.
func (r *Response) ParseFlight() (*httpAdapter.FlightDTO, error) {
	var flight httpAdapter.FlightDTO
	if err := json.Unmarshal(r.Body, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

// ParseAvailability parses the response body as availability results.
func (r *Response) ParseAvailability() ([]httpAdapter.AvailableFlightDTO, error) {
	var results []httpAdapter.AvailableFlightDTO
	if err := json.Unmarshal(r.Body, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// BookingRequestBody is a helper struct for building create-booking bodies.
type BookingRequestBody struct {
	Date          string `json:"date"`
	PassengerName string `json:"passengerName"`
	FlightNumber  int    `json:"flightNumber"`
}

// DefaultBookingRequest returns a valid create-booking body for testing.
func DefaultBookingRequest() BookingRequestBody {
	return BookingRequestBody{
		Date:          "2018-05-11",
		PassengerName: "Fred Jones",
		FlightNumber:  1,
	}
}
