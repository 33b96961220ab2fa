package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/watergo/tanktrip/internal/pkg/config"
	"github.com/watergo/tanktrip/internal/pkg/database"
	"github.com/watergo/tanktrip/internal/pkg/logger"
	nsqpkg "github.com/watergo/tanktrip/internal/pkg/nsq"
	"github.com/watergo/tanktrip/internal/pkg/server"
	wspkg "github.com/watergo/tanktrip/internal/pkg/websocket"
	"github.com/watergo/tanktrip/services/trips/gateway"
	"github.com/watergo/tanktrip/services/trips/handler"
	"github.com/watergo/tanktrip/services/trips/repository"
	"github.com/watergo/tanktrip/services/trips/usecase"
)

func main() {
	appName := "trips-service"
	configPath := "config/trips.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Repositories
	tripRepo := repository.NewTripRepository(configs, postgresClient.GetDB())
	telemetryRepo := repository.NewTelemetryRepository(postgresClient.GetDB())
	locationCache := repository.NewLocationCache(redisClient,
		time.Duration(configs.Telemetry.CacheTTLHours)*time.Hour)

	// Gateways
	tripGW := gateway.NewTripGW(producer)
	otpProvider := gateway.NewMessageCentralGW(configs.OTP)

	// Live tracking hub
	hub := wspkg.NewHub(configs.Telemetry.SubscriberBuffer)

	tripUC, err := usecase.NewTripUC(configs, tripRepo, telemetryRepo, locationCache, tripGW, otpProvider, hub)
	if err != nil {
		zapLogger.Fatal("Failed to initialize trip use case", logger.Err(err))
	}

	tripsHandler := handler.NewHandler(tripUC, hub, configs)
	defer tripsHandler.Stop()

	if err := tripsHandler.InitNSQConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(logger.EchoMiddleware(zapLogger))

	tripsHandler.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": appName})
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
