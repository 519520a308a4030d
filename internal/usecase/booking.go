package usecase

import (
	"context"
	"fmt"

	"github.com/flight-booking/flight-booking-api/internal/domain"
	"github.com/flight-booking/flight-booking-api/internal/infrastructure/timeutil"
)

// BookingUseCase defines booking creation and lookup.
type BookingUseCase interface {
	// Create validates and persists a new booking. The target flight must
	// exist and have a free seat; the capacity admission check is atomic
	// with the insert (the store serializes it per flight). On success the
	// returned booking carries its assigned id and a detached flight view.
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)

	// GetByID returns a single booking with its flight view attached.
	GetByID(ctx context.Context, id int) (*domain.Booking, error)
}

type bookingUseCase struct {
	bookings domain.BookingStore
}

// NewBooking creates a BookingUseCase backed by the given store.
func NewBooking(bookings domain.BookingStore) BookingUseCase {
	return &bookingUseCase{bookings: bookings}
}

func (uc *bookingUseCase) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking == nil || !booking.IsValid() {
		return nil, fmt.Errorf("%w: passenger name, travel date and flight number are required", domain.ErrInvalidBooking)
	}

	// Only the calendar day of the travel date is booking state.
	booking.Date = timeutil.DateOnly(booking.Date)

	if err := uc.bookings.Insert(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (uc *bookingUseCase) GetByID(ctx context.Context, id int) (*domain.Booking, error) {
	return uc.bookings.GetByID(ctx, id)
}
