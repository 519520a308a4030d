package http

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-api/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-api/internal/domain"
	"github.com/flight-booking/flight-booking-api/internal/usecase"
)

// BookingHandler handles HTTP requests for booking-related endpoints.
type BookingHandler struct {
	bookings usecase.BookingUseCase
	search   usecase.BookingSearchUseCase
}

// NewBookingHandler creates a new BookingHandler with the given use cases.
func NewBookingHandler(bookings usecase.BookingUseCase, search usecase.BookingSearchUseCase) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		search:   search,
	}
}

// ListBookings handles GET /api/v1/bookings
//
// Without query parameters it lists the upcoming bookings. With any search
// parameter it runs a criteria search instead; a search that matches nothing
// is a 404, while an empty upcoming list is a 200 with an empty array.
//
// @Summary List or search bookings
// @Description Lists upcoming bookings, or searches all bookings when any criterion is given
// @Tags bookings
// @Produce json
// @Param passengerName query string false "Substring of the passenger name"
// @Param date query string false "Travel date (YYYY-MM-DD)"
// @Param flightNumber query int false "Booked flight number"
// @Param arrivalCity query string false "Substring of the flight's arrival city"
// @Param departureCity query string false "Substring of the flight's departure city"
// @Success 200 {array} BookingDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No bookings matched the criteria"
// @Router /api/v1/bookings [get]
func (h *BookingHandler) ListBookings(c echo.Context) error {
	var req SearchBookingsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if !req.HasCriteria() {
		bookings, err := h.search.ListUpcoming(c.Request().Context())
		if err != nil {
			return handleError(c, err)
		}
		return response.OK(c, ToBookingDTOs(bookings))
	}

	params, err := req.ToSearchParams()
	if err != nil {
		return handleValidationError(c, err)
	}

	bookings, err := h.search.Search(c.Request().Context(), params)
	if err != nil {
		return handleError(c, err)
	}
	if len(bookings) == 0 {
		return response.NotFoundWithMessage(c, "No bookings matched the search criteria")
	}
	return response.OK(c, ToBookingDTOs(bookings))
}

// GetBooking handles GET /api/v1/bookings/:id
//
// @Summary Get a booking by id
// @Description Returns a single booking with its flight details
// @Tags bookings
// @Produce json
// @Param id path int true "Booking id"
// @Success 200 {object} BookingDTO
// @Failure 400 {object} response.ErrorDetail "Invalid booking id"
// @Failure 404 {object} response.ErrorDetail "Booking not found"
// @Router /api/v1/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return response.BadRequest(c, "id must be a positive number")
	}

	booking, err := h.bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, ToBookingDTO(booking))
}

// CreateBooking handles POST /api/v1/bookings
//
// @Summary Create a booking
// @Description Books a seat on a flight for a passenger and travel date
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "Booking to create"
// @Success 201 {object} BookingDTO
// @Header 201 {string} Location "URL of the created booking"
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Flight not found"
// @Failure 409 {object} response.ErrorDetail "Flight is fully booked"
// @Router /api/v1/bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	booking := ToDomainBooking(&req)
	created, err := h.bookings.Create(c.Request().Context(), &booking)
	if err != nil {
		return handleError(c, err)
	}

	location := fmt.Sprintf("/api/v1/bookings/%d", created.ID)
	return response.CreatedAt(c, location, ToBookingDTO(created))
}

// handleValidationError handles validation errors and returns a 400 response.
func handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func handleError(c echo.Context, err error) error {
	if domain.IsInvalidArgument(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, domain.ErrFlightNotFound) {
		return response.NotFoundWithMessage(c, "Flight not found")
	}
	if errors.Is(err, domain.ErrBookingNotFound) {
		return response.NotFoundWithMessage(c, "Booking not found")
	}

	if errors.Is(err, domain.ErrFlightFull) {
		return response.Conflict(c, "Flight is fully booked")
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Default to internal server error
	return response.InternalServerError(c)
}
