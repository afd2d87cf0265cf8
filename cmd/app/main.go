package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitFromConfig(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Runner(cfg, helper.ActionUp); err != nil {
			log.Fatal().Err(err).Msg("Automatic migration failed")
		}
	}

	app, err := di.InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := app.Jobs.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	defer func() {
		if err := app.Jobs.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Failed to stop scheduler")
		}
	}()

	app.HTTP.Serve()
}
