// Package postgres persists flights and bookings in PostgreSQL via pgx.
// Capacity admission happens inside the insert transaction: the flight row
// is locked, the booking count is re-checked, and the insert only commits
// when a seat is still free.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flight-booking/flight-booking-api/internal/domain"
	"github.com/flight-booking/flight-booking-api/internal/infrastructure/timeutil"
)

// Store wraps a pgx connection pool and exposes the domain store ports.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to the database at databaseURL and verifies the connection.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Flights returns the flight port backed by this store.
func (s *Store) Flights() domain.FlightStore {
	return &flightStore{s}
}

// Bookings returns the booking port backed by this store.
func (s *Store) Bookings() domain.BookingStore {
	return &bookingStore{s}
}

type flightStore struct {
	*Store
}

type bookingStore struct {
	*Store
}

var (
	_ domain.FlightStore  = (*flightStore)(nil)
	_ domain.BookingStore = (*bookingStore)(nil)
)

const flightColumns = `number, start_time, end_time, capacity, departure_city, arrival_city`

func scanFlight(row pgx.Row) (domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.Number, &f.StartTime, &f.EndTime, &f.Capacity, &f.DepartureCity, &f.ArrivalCity)
	return f, err
}

func (s *flightStore) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (s *flightStore) GetByNumber(ctx context.Context, number int) (*domain.Flight, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE number=$1`, number)
	f, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `SELECT id, date, passenger_name, flight_number FROM bookings WHERE flight_number=$1 ORDER BY id`, number)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Date, &b.PassengerName, &b.FlightNumber); err != nil {
			return nil, err
		}
		b.Date = timeutil.DateOnly(b.Date)
		f.Bookings = append(f.Bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *bookingStore) List(ctx context.Context, withFlight bool) ([]domain.Booking, error) {
	query := `SELECT b.id, b.date, b.passenger_name, b.flight_number FROM bookings b ORDER BY b.id`
	if withFlight {
		query = `SELECT b.id, b.date, b.passenger_name, b.flight_number,
			f.number, f.start_time, f.end_time, f.capacity, f.departure_city, f.arrival_city
			FROM bookings b JOIN flights f ON f.number = b.flight_number ORDER BY b.id`
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if withFlight {
			var f domain.FlightView
			if err := rows.Scan(&b.ID, &b.Date, &b.PassengerName, &b.FlightNumber,
				&f.Number, &f.StartTime, &f.EndTime, &f.Capacity, &f.DepartureCity, &f.ArrivalCity); err != nil {
				return nil, err
			}
			b.Flight = &f
		} else if err := rows.Scan(&b.ID, &b.Date, &b.PassengerName, &b.FlightNumber); err != nil {
			return nil, err
		}
		b.Date = timeutil.DateOnly(b.Date)
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (s *bookingStore) GetByID(ctx context.Context, id int) (*domain.Booking, error) {
	row := s.pool.QueryRow(ctx, `SELECT b.id, b.date, b.passenger_name, b.flight_number,
		f.number, f.start_time, f.end_time, f.capacity, f.departure_city, f.arrival_city
		FROM bookings b JOIN flights f ON f.number = b.flight_number WHERE b.id=$1`, id)

	var b domain.Booking
	var f domain.FlightView
	if err := row.Scan(&b.ID, &b.Date, &b.PassengerName, &b.FlightNumber,
		&f.Number, &f.StartTime, &f.EndTime, &f.Capacity, &f.DepartureCity, &f.ArrivalCity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	b.Date = timeutil.DateOnly(b.Date)
	b.Flight = &f
	return &b, nil
}

func (s *bookingStore) Insert(ctx context.Context, booking *domain.Booking) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE number=$1 FOR UPDATE`, booking.FlightNumber)
	flight, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrFlightNotFound
		}
		return err
	}

	var booked int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE flight_number=$1`, booking.FlightNumber).Scan(&booked); err != nil {
		return err
	}
	if booked >= flight.Capacity {
		return domain.ErrFlightFull
	}

	if err := tx.QueryRow(ctx, `INSERT INTO bookings (date, passenger_name, flight_number) VALUES ($1, $2, $3) RETURNING id`,
		booking.Date, booking.PassengerName, booking.FlightNumber).Scan(&booking.ID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	view := flight.View()
	booking.Flight = &view
	return nil
}

// EnsureSchema creates the tables when they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS flights (
			number         INTEGER PRIMARY KEY,
			start_time     TEXT NOT NULL,
			end_time       TEXT NOT NULL,
			capacity       INTEGER NOT NULL,
			departure_city TEXT NOT NULL,
			arrival_city   TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS bookings (
			id             SERIAL PRIMARY KEY,
			date           DATE NOT NULL,
			passenger_name TEXT NOT NULL,
			flight_number  INTEGER NOT NULL REFERENCES flights(number)
		);
	`)
	return err
}
