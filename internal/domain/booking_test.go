package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingIsValid(t *testing.T) {
	travelDate := time.Date(2018, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		booking Booking
		want    bool
	}{
		{
			name:    "valid booking",
			booking: Booking{PassengerName: "Jane Ford", Date: travelDate, FlightNumber: 2},
			want:    true,
		},
		{
			name:    "missing passenger name",
			booking: Booking{Date: travelDate, FlightNumber: 2},
			want:    false,
		},
		{
			name:    "unset date",
			booking: Booking{PassengerName: "Jane Ford", FlightNumber: 2},
			want:    false,
		},
		{
			name:    "zero flight number",
			booking: Booking{PassengerName: "Jane Ford", Date: travelDate},
			want:    false,
		},
		{
			name:    "negative flight number",
			booking: Booking{PassengerName: "Jane Ford", Date: travelDate, FlightNumber: -1},
			want:    false,
		},
		{
			name:    "empty booking",
			booking: Booking{},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.IsValid())
		})
	}
}

func TestBookingIsValidHasNoSideEffects(t *testing.T) {
	b := Booking{PassengerName: "Joe Bloggs", Date: time.Date(2018, 5, 10, 0, 0, 0, 0, time.UTC), FlightNumber: 1}
	before := b

	_ = b.IsValid()

	assert.Equal(t, before, b)
}
