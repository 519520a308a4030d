package http

import (
	"github.com/flight-booking/flight-booking-api/internal/domain"
	"github.com/flight-booking/flight-booking-api/internal/infrastructure/timeutil"
)

// ToFlightDTO converts a domain flight view to its wire representation.
func ToFlightDTO(v *domain.FlightView) FlightDTO {
	return FlightDTO{
		Number:        v.Number,
		StartTime:     v.StartTime,
		EndTime:       v.EndTime,
		Capacity:      v.Capacity,
		DepartureCity: v.DepartureCity,
		ArrivalCity:   v.ArrivalCity,
	}
}

// ToFlightDTOs converts a slice of flight views.
func ToFlightDTOs(views []domain.FlightView) []FlightDTO {
	dtos := make([]FlightDTO, len(views))
	for i := range views {
		dtos[i] = ToFlightDTO(&views[i])
	}
	return dtos
}

// ToBookingDTO converts a domain booking to its wire representation.
func ToBookingDTO(b *domain.Booking) BookingDTO {
	dto := BookingDTO{
		ID:            b.ID,
		Date:          b.Date.Format(timeutil.DateFormat),
		PassengerName: b.PassengerName,
		FlightNumber:  b.FlightNumber,
	}
	if b.Flight != nil {
		flight := ToFlightDTO(b.Flight)
		dto.Flight = &flight
	}
	return dto
}

// ToBookingDTOs converts a slice of bookings.
func ToBookingDTOs(bookings []domain.Booking) []BookingDTO {
	dtos := make([]BookingDTO, len(bookings))
	for i := range bookings {
		dtos[i] = ToBookingDTO(&bookings[i])
	}
	return dtos
}

// ToAvailableFlightDTOs converts availability results.
func ToAvailableFlightDTOs(results []domain.AvailableFlight) []AvailableFlightDTO {
	dtos := make([]AvailableFlightDTO, len(results))
	for i := range results {
		dtos[i] = AvailableFlightDTO{
			Date:              results[i].Date.Format(timeutil.DateFormat),
			Flight:            ToFlightDTO(&results[i].Flight),
			RemainingCapacity: results[i].RemainingCapacity,
		}
	}
	return dtos
}

// ToDomainBooking converts a validated create request to a domain booking.
// The request date must already have passed validation.
func ToDomainBooking(req *CreateBookingRequest) domain.Booking {
	date, _ := parseDate(req.Date)
	return domain.Booking{
		Date:          date,
		PassengerName: req.PassengerName,
		FlightNumber:  req.FlightNumber,
	}
}
