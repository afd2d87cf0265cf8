package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitFromConfig(cfg)

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal().Msg("KAFKA_BROKERS is required to run the notification worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()
	worker.Run(ctx)

	if err := worker.Client.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}
}
