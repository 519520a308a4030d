// Package http provides the HTTP handler layer for the flight booking API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all flight booking API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, fh *FlightHandler, bh *BookingHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", fh.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Flights group. The available route must be registered before the
	// parameterized route so "available" is not parsed as a flight number.
	flights := api.Group("/flights")
	flights.GET("", fh.ListFlights)
	flights.GET("/available", fh.GetAvailableFlights)
	flights.GET("/:flightNumber", fh.GetFlight)

	// Bookings group
	bookings := api.Group("/bookings")
	bookings.GET("", bh.ListBookings)
	bookings.POST("", bh.CreateBooking)
	bookings.GET("/:id", bh.GetBooking)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, fh *FlightHandler, bh *BookingHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", fh.Health)

	api := e.Group("/api/v1", middleware...)

	flights := api.Group("/flights")
	flights.GET("", fh.ListFlights)
	flights.GET("/available", fh.GetAvailableFlights)
	flights.GET("/:flightNumber", fh.GetFlight)

	bookings := api.Group("/bookings")
	bookings.GET("", bh.ListBookings)
	bookings.POST("", bh.CreateBooking)
	bookings.GET("/:id", bh.GetBooking)
}
