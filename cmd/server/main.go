// Package main is the entry point for the flight booking service.
//
//	@title						Flight Booking API
//	@version					1.0.0
//	@description				A flight booking service with booking search, per-day availability and capacity-safe booking creation.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-booking/flight-booking-api/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-booking/flight-booking-api/docs"

	bookinghttp "github.com/flight-booking/flight-booking-api/internal/adapter/http"
	"github.com/flight-booking/flight-booking-api/internal/adapter/http/middleware"
	"github.com/flight-booking/flight-booking-api/internal/adapter/store/memory"
	"github.com/flight-booking/flight-booking-api/internal/adapter/store/postgres"
	"github.com/flight-booking/flight-booking-api/internal/config"
	"github.com/flight-booking/flight-booking-api/internal/domain"
	"github.com/flight-booking/flight-booking-api/internal/infrastructure/cache"
	"github.com/flight-booking/flight-booking-api/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-api/internal/infrastructure/retry"
	"github.com/flight-booking/flight-booking-api/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-api/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 30 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-booking",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Driver).
		Bool("cache", cfg.CacheEnabled()).
		Msg("Configuration loaded")

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	// Connect the selected store
	flightStore, bookingStore, closeStore, err := setupStore(startupCtx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up store")
	}
	defer closeStore()

	// Optional Redis flight cache
	flightCache := setupCache(startupCtx, cfg, log)

	// Wire use cases
	clock := timeutil.NewRealClock()
	flightUC := usecase.NewFlight(flightStore, flightCache)
	availabilityUC := usecase.NewAvailability(flightStore, bookingStore)
	bookingUC := usecase.NewBooking(bookingStore)
	searchUC := usecase.NewBookingSearch(bookingStore, clock)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Middleware and routes
	middleware.Setup(e, log.Logger)
	bookinghttp.RegisterRoutes(e,
		bookinghttp.NewFlightHandler(flightUC, availabilityUC),
		bookinghttp.NewBookingHandler(bookingUC, searchUC))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupStore connects the store selected by config and returns its ports plus
// a close function.
func setupStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (domain.FlightStore, domain.BookingStore, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		var store *postgres.Store
		// The database may still be starting; retry the initial connection.
		err := retry.Do(ctx, func() error {
			var connectErr error
			store, connectErr = postgres.New(ctx, cfg.Store.DatabaseURL)
			return connectErr
		}, retry.ConnectConfig)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			store.Close()
			return nil, nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		if cfg.Store.SeedDevData {
			if err := store.SeedDevData(ctx); err != nil {
				store.Close()
				return nil, nil, nil, fmt.Errorf("seed dev data: %w", err)
			}
		}
		log.WithStore(cfg.Store.Driver).Info().Msg("Store ready")
		return store.Flights(), store.Bookings(), store.Close, nil

	default:
		store := memory.NewStore()
		if cfg.Store.SeedDevData {
			memory.SeedDevData(store)
		}
		log.WithStore(cfg.Store.Driver).Info().Msg("Store ready")
		return store.Flights(), store.Bookings(), func() {}, nil
	}
}

// setupCache connects the Redis flight cache when configured. The cache is
// best-effort: when Redis is unreachable the service runs without it.
func setupCache(ctx context.Context, cfg *config.Config, log *logger.Logger) usecase.FlightCache {
	if !cfg.CacheEnabled() {
		return nil
	}

	redisCache := cache.NewRedisCache(
		cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, cfg.Cache.FlightsTTL)
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Cache.RedisAddr).
			Msg("Redis unreachable, continuing without flight cache")
		return nil
	}

	log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("Flight cache ready")
	return redisCache
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
