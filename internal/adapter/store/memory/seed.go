package memory

import (
	"time"

	"github.com/flight-booking/flight-booking-api/internal/domain"
)

// SeedDevData loads the development dataset: three outback routes, two of
// them with an existing booking.
func SeedDevData(s *Store) {
	s.SeedFlights(
		domain.Flight{
			Number:        1,
			Capacity:      12,
			StartTime:     "06:00",
			EndTime:       "06:45",
			DepartureCity: "Muttaburra",
			ArrivalCity:   "Camooweal",
		},
		domain.Flight{
			Number:        2,
			Capacity:      4,
			StartTime:     "09:00",
			EndTime:       "10:15",
			DepartureCity: "Thargomindah",
			ArrivalCity:   "Einasleigh",
			Bookings: []domain.Booking{
				{
					ID:            1,
					Date:          time.Date(2018, 5, 10, 0, 0, 0, 0, time.UTC),
					PassengerName: "Jane Ford",
				},
			},
		},
		domain.Flight{
			Number:        3,
			Capacity:      6,
			StartTime:     "13:00",
			EndTime:       "15:00",
			DepartureCity: "Parachilna",
			ArrivalCity:   "Betoota",
			Bookings: []domain.Booking{
				{
					ID:            2,
					Date:          time.Date(2018, 5, 12, 0, 0, 0, 0, time.UTC),
					PassengerName: "John Smith",
				},
			},
		},
	)
}
