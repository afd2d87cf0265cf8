package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"hotel/config"
	"hotel/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func restore(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("booking transaction failed"))

	assert.Contains(t, buf.String(), "booking transaction failed")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		expected zerolog.Level
	}{
		{name: "debug", logLevel: "debug", expected: zerolog.DebugLevel},
		{name: "info", logLevel: "info", expected: zerolog.InfoLevel},
		{name: "warn", logLevel: "warn", expected: zerolog.WarnLevel},
		{name: "error", logLevel: "error", expected: zerolog.ErrorLevel},
		{name: "invalid falls back to trace", logLevel: "loud", expected: zerolog.TraceLevel},
		{name: "empty falls back to trace", logLevel: "", expected: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestInitFromConfig(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.LogLevel = "warn"
	cfg.App.Name = "hotel"

	assert.NotPanics(t, func() { logger.InitFromConfig(cfg) })
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
