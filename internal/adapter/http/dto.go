package http

// FlightDTO is the wire representation of a flight. It is always the public
// projection: booking details never appear inside a flight payload.
type FlightDTO struct {
	Number        int    `json:"number" example:"2"`
	StartTime     string `json:"startTime" example:"09:00"`
	EndTime       string `json:"endTime" example:"10:15"`
	Capacity      int    `json:"capacity" example:"4"`
	DepartureCity string `json:"departureCity" example:"Thargomindah"`
	ArrivalCity   string `json:"arrivalCity" example:"Einasleigh"`
}

// BookingDTO is the wire representation of a booking. Dates are calendar days
// in YYYY-MM-DD format.
type BookingDTO struct {
	ID            int        `json:"id" example:"1"`
	Date          string     `json:"date" example:"2018-05-10"`
	PassengerName string     `json:"passengerName" example:"Jane Ford"`
	FlightNumber  int        `json:"flightNumber" example:"2"`
	Flight        *FlightDTO `json:"flight,omitempty"`
}

// AvailableFlightDTO is the wire representation of one availability result.
type AvailableFlightDTO struct {
	Date              string    `json:"date" example:"2018-05-10"`
	Flight            FlightDTO `json:"flight"`
	RemainingCapacity int       `json:"remainingCapacity" example:"3"`
}

// CreateBookingRequest is the request body for creating a booking.
type CreateBookingRequest struct {
	// Date is the travel date in YYYY-MM-DD format
	Date string `json:"date" example:"2018-05-11"`

	// PassengerName is the full name of the travelling passenger
	PassengerName string `json:"passengerName" example:"Fred Jones"`

	// FlightNumber is the number of the flight to book
	FlightNumber int `json:"flightNumber" example:"1"`
}

// Validate validates the create request and returns any validation errors.
func (r *CreateBookingRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.PassengerName == "" {
		errs.Add("passengerName", "passengerName is required")
	}
	if r.Date == "" {
		errs.Add("date", "date is required")
	} else if _, err := parseDate(r.Date); err != nil {
		errs.Add("date", "date must be a valid date in YYYY-MM-DD format")
	}
	if r.FlightNumber < 1 {
		errs.Add("flightNumber", "flightNumber must be a positive number")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
