package http

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-api/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-api/internal/usecase"
)

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	flights      usecase.FlightUseCase
	availability usecase.AvailabilityUseCase
}

// NewFlightHandler creates a new FlightHandler with the given use cases.
func NewFlightHandler(flights usecase.FlightUseCase, availability usecase.AvailabilityUseCase) *FlightHandler {
	return &FlightHandler{
		flights:      flights,
		availability: availability,
	}
}

// ListFlights handles GET /api/v1/flights
//
// @Summary List all flights
// @Description Returns all scheduled flights without their booking details
// @Tags flights
// @Produce json
// @Success 200 {array} FlightDTO
// @Router /api/v1/flights [get]
func (h *FlightHandler) ListFlights(c echo.Context) error {
	views, err := h.flights.List(c.Request().Context())
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, ToFlightDTOs(views))
}

// GetFlight handles GET /api/v1/flights/:flightNumber
//
// @Summary Get a flight by number
// @Description Returns a single flight without its booking details
// @Tags flights
// @Produce json
// @Param flightNumber path int true "Flight number"
// @Success 200 {object} FlightDTO
// @Failure 400 {object} response.ErrorDetail "Invalid flight number"
// @Failure 404 {object} response.ErrorDetail "Flight not found"
// @Router /api/v1/flights/{flightNumber} [get]
func (h *FlightHandler) GetFlight(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("flightNumber"))
	if err != nil || number < 1 {
		return response.BadRequest(c, "flightNumber must be a positive number")
	}

	view, err := h.flights.GetByNumber(c.Request().Context(), number)
	if err != nil {
		return handleError(c, err)
	}
	flight := ToFlightDTO(view)
	return response.OK(c, flight)
}

// GetAvailableFlights handles GET /api/v1/flights/available
//
// @Summary Find available flights
// @Description Returns every date and flight combination within the range that still has seats free
// @Tags flights
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end, inclusive (YYYY-MM-DD)"
// @Param numberOfPassengers query int false "Seats required on the flight"
// @Success 200 {array} AvailableFlightDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/flights/available [get]
func (h *FlightHandler) GetAvailableFlights(c echo.Context) error {
	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	query, err := req.Validate()
	if err != nil {
		return handleValidationError(c, err)
	}

	results, err := h.availability.GetAvailableFlights(
		c.Request().Context(), query.Start, query.End, query.Passengers)
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, ToAvailableFlightDTOs(results))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
