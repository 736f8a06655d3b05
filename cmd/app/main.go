// @title        Travel API
// @version      1.0
// @description  Flight search and booking.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/travelapp/config"
	"github.com/Domenick1991/travelapp/internal/bootstrap"
	"github.com/Domenick1991/travelapp/internal/cache"
	"github.com/Domenick1991/travelapp/internal/kafka"
	"github.com/Domenick1991/travelapp/internal/logger"
	"github.com/Domenick1991/travelapp/internal/repository"
	"github.com/Domenick1991/travelapp/internal/service/booking"
	"github.com/Domenick1991/travelapp/internal/service/flights"
	"github.com/Domenick1991/travelapp/internal/telemetry"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		bootLog := logger.New("")
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.App.Env).With().Str("service", cfg.App.ServiceName).Logger()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, cfg.App.ServiceName, cfg.App.Env, cfg.Telemetry.OTLPEndpoint, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init tracing")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("shutdown tracing")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := repository.MigrateUp(cfg.Database.MigrationURL()); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	defer redisCache.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	flightService := flights.NewFlightService(flightRepo, redisCache, flights.WithLogger(log))
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		booking.WithEvents(producer, cfg.Kafka.BookingEventsTopic),
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithLogger(log),
	)

	servers := bootstrap.NewServers(cfg, flightService, bookingService, log, map[string]bootstrap.HealthCheck{
		"postgres": pool.Ping,
		"redis":    redisCache.Ping,
		"kafka":    producer.CheckConnection,
	})
	if err := servers.Run(ctx, cfg.GRPC.Address); err != nil {
		log.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
	log.Info().Msg("shutdown complete")
}
