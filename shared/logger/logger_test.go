package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"roombook/config"
	"roombook/shared/logger"
)

func restoreGlobals(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	restoreGlobals(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     zerolog.Level
	}{
		{name: "info", logLevel: "info", want: zerolog.InfoLevel},
		{name: "warn", logLevel: "warn", want: zerolog.WarnLevel},
		{name: "error", logLevel: "error", want: zerolog.ErrorLevel},
		{name: "unknown falls back to trace", logLevel: "loud", want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobals(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer

	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("connection refused"))

	assert.Contains(t, buf.String(), "connection refused")
}
