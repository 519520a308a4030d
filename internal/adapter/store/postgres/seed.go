package postgres

import (
	"context"
	"time"
)

// SeedDevData loads the development dataset. Flights are upserted by number
// and the sample bookings are only inserted into an empty bookings table, so
// restarting against the same database never duplicates data.
func (s *Store) SeedDevData(ctx context.Context) error {
	flights := []struct {
		number     int
		start, end string
		capacity   int
		from, to   string
	}{
		{1, "06:00", "06:45", 12, "Muttaburra", "Camooweal"},
		{2, "09:00", "10:15", 4, "Thargomindah", "Einasleigh"},
		{3, "13:00", "15:00", 6, "Parachilna", "Betoota"},
	}
	for _, f := range flights {
		_, err := s.pool.Exec(ctx, `INSERT INTO flights (number, start_time, end_time, capacity, departure_city, arrival_city)
			VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (number) DO NOTHING`,
			f.number, f.start, f.end, f.capacity, f.from, f.to)
		if err != nil {
			return err
		}
	}

	var existing int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	bookings := []struct {
		date   time.Time
		name   string
		flight int
	}{
		{time.Date(2018, 5, 10, 0, 0, 0, 0, time.UTC), "Jane Ford", 2},
		{time.Date(2018, 5, 12, 0, 0, 0, 0, time.UTC), "John Smith", 3},
	}
	for _, b := range bookings {
		_, err := s.pool.Exec(ctx, `INSERT INTO bookings (date, passenger_name, flight_number) VALUES ($1, $2, $3)`,
			b.date, b.name, b.flight)
		if err != nil {
			return err
		}
	}
	return nil
}
