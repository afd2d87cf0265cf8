package main

import (
	"os"

	"hotel/config"
	"hotel/helper"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, step-up, drop, version or force <version>")
	}

	cfg := config.Get()

	if err := helper.Runner(cfg, os.Args[1], os.Args[2:]...); err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("Migration failed")
	}
}
