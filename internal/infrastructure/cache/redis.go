// Package cache provides a Redis-backed cache for flight data.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-booking/flight-booking-api/internal/domain"
)

const flightsKey = "cache:flights"

// RedisCache caches the flight list as JSON under a single key.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

// NewRedisCache connects a client against the given address. Database 0 is
// the default; a non-empty password enables AUTH.
func NewRedisCache(addr, password string, db int, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		flightsTTL: flightsTTL,
	}
}

// Ping reports whether the Redis server is reachable.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetFlights returns the cached flight views, or (nil, nil) on a miss.
func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.FlightView, error) {
	data, err := c.client.Get(ctx, flightsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.FlightView
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// SetFlights stores the flight views for the configured TTL.
func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.FlightView) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey, payload, c.flightsTTL).Err()
}
