package main

import (
	"context"

	"roombook/config"
	"roombook/di"
	"roombook/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Room Booking API
// @version 1.0
// @description REST backend for campus room reservations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.IsDevelopment() {
		if err := di.InitializeSeeder().SeedDemoUsers(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed to seed demo users")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
