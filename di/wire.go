//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/mailer"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	infraScheduler "hotel/infras/scheduler"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
	"hotel/transport/scheduler"
	"hotel/transport/worker"

	"github.com/google/wire"

	authService "hotel/internal/domains/auth/service"
	availabilityRepository "hotel/internal/domains/availability/repository"
	availabilityService "hotel/internal/domains/availability/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	checkinRepository "hotel/internal/domains/checkin/repository"
	checkinService "hotel/internal/domains/checkin/service"
	maintenanceService "hotel/internal/domains/maintenance/service"
	notificationService "hotel/internal/domains/notification/service"
	notificationTemplate "hotel/internal/domains/notification/template"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	userRepository "hotel/internal/domains/user/repository"
	userService "hotel/internal/domains/user/service"
	authHandler "hotel/internal/handlers/auth"
	bookingHandler "hotel/internal/handlers/booking"
	checkinHandler "hotel/internal/handlers/checkin"
	roomHandler "hotel/internal/handlers/room"
	userHandler "hotel/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var notificationDomain = wire.NewSet(
	notificationTemplate.New,
	notificationService.NewDeliverer,
	notificationService.NewNotifier,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
	availabilityRepository.New,
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewDetail,
	bookingService.New,
	checkinRepository.New,
	checkinService.New,
	maintenanceService.New,
)

var domains = wire.NewSet(
	notificationDomain,
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
	checkinHandler.New,
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

func InitializeApp() (*App, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		infraScheduler.New,
		scheduler.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}, nil
}

func InitializeWorker() *worker.Worker {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		mailer.New,
		notificationTemplate.New,
		notificationService.NewDeliverer,
		worker.New,
	)

	return &worker.Worker{}
}
