//go:build wireinject
// +build wireinject

package di

import (
	"roombook/config"
	"roombook/infras/jwt"
	"roombook/infras/otel"
	"roombook/infras/postgres"
	"roombook/infras/redis"
	"roombook/internal/seeder"
	"roombook/permissions"
	"roombook/shared/cache"
	"roombook/transport/http"
	"roombook/transport/http/middleware"
	"roombook/transport/http/router"

	"github.com/google/wire"

	authService "roombook/internal/domains/auth/service"
	bookingRepository "roombook/internal/domains/booking/repository"
	bookingService "roombook/internal/domains/booking/service"
	roomRepository "roombook/internal/domains/room/repository"
	roomService "roombook/internal/domains/room/service"
	userRepository "roombook/internal/domains/user/repository"
	userService "roombook/internal/domains/user/service"

	authHandler "roombook/internal/handlers/auth"
	bookingHandler "roombook/internal/handlers/booking"
	roomHandler "roombook/internal/handlers/room"
	userHandler "roombook/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	roomDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeSeeder() *seeder.Seeder {
	wire.Build(
		configurations,
		wire.NewSet(
			postgres.New,
			otel.New,
		),
		wire.NewSet(
			userRepository.New,
		),
		seeder.New,
	)

	return &seeder.Seeder{}
}
