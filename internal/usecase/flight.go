package usecase

import (
	"context"

	"github.com/flight-booking/flight-booking-api/internal/domain"
)

// FlightCache is an optional read-through cache for the flight list.
// Implementations must tolerate being skipped entirely: a nil cache disables
// caching without changing behavior.
type FlightCache interface {
	// GetFlights returns the cached flight views, or (nil, nil) on a miss.
	GetFlights(ctx context.Context) ([]domain.FlightView, error)

	// SetFlights stores the flight views with the cache's configured TTL.
	SetFlights(ctx context.Context, flights []domain.FlightView) error
}

// FlightUseCase defines the flight read operations.
type FlightUseCase interface {
	// List returns all flights as public views, in store order.
	List(ctx context.Context) ([]domain.FlightView, error)

	// GetByNumber returns a single flight as a public view.
	GetByNumber(ctx context.Context, number int) (*domain.FlightView, error)
}

type flightUseCase struct {
	flights domain.FlightStore
	cache   FlightCache
}

// NewFlight creates a FlightUseCase. The cache may be nil.
func NewFlight(flights domain.FlightStore, cache FlightCache) FlightUseCase {
	return &flightUseCase{flights: flights, cache: cache}
}

func (uc *flightUseCase) List(ctx context.Context) ([]domain.FlightView, error) {
	if uc.cache != nil {
		// Cache errors fall through to the store; the cache is best-effort.
		if cached, err := uc.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := uc.flights.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.FlightView, 0, len(flights))
	for i := range flights {
		views = append(views, flights[i].View())
	}

	if uc.cache != nil {
		_ = uc.cache.SetFlights(ctx, views)
	}
	return views, nil
}

func (uc *flightUseCase) GetByNumber(ctx context.Context, number int) (*domain.FlightView, error) {
	flight, err := uc.flights.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	view := flight.View()
	return &view, nil
}
