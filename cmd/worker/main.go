package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/travelapp/config"
	"github.com/Domenick1991/travelapp/internal/email"
	"github.com/Domenick1991/travelapp/internal/kafka"
	"github.com/Domenick1991/travelapp/internal/logger"
)

// The worker consumes booking notifications and sends confirmation emails.
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
	log := logger.New(cfg.App.Env).With().Str("service", cfg.App.ServiceName+"-worker").Logger()

	topic := cfg.Kafka.NotificationsTopic
	if topic == "" {
		topic = cfg.Kafka.BookingEventsTopic
	}
	if len(cfg.Kafka.Brokers) == 0 || topic == "" {
		log.Fatal().Msg("kafka brokers and a notifications or booking events topic are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewBookingConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, topic, log)
	defer consumer.Close()

	sender := email.NewSender(log)

	log.Info().Str("topic", topic).Str("group_id", cfg.Kafka.GroupID).Msg("worker_started")
	if err := consumer.Consume(ctx, sender.Send); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("consumer stopped")
		os.Exit(1)
	}
	log.Info().Msg("worker stopped")
}
