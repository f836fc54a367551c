package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/DipakAnap/cablink-backend/internal/pkg/config"
	"github.com/DipakAnap/cablink-backend/internal/pkg/database"
	"github.com/DipakAnap/cablink-backend/internal/pkg/health"
	"github.com/DipakAnap/cablink-backend/internal/pkg/jwt"
	"github.com/DipakAnap/cablink-backend/internal/pkg/logger"
	"github.com/DipakAnap/cablink-backend/internal/pkg/middleware"
	nsqpkg "github.com/DipakAnap/cablink-backend/internal/pkg/nsq"
	"github.com/DipakAnap/cablink-backend/internal/pkg/server"

	bookingGateway "github.com/DipakAnap/cablink-backend/services/bookings/gateway"
	bookingHTTP "github.com/DipakAnap/cablink-backend/services/bookings/handler/http"
	bookingRepository "github.com/DipakAnap/cablink-backend/services/bookings/repository"
	bookingUsecase "github.com/DipakAnap/cablink-backend/services/bookings/usecase"
	chatHTTP "github.com/DipakAnap/cablink-backend/services/chat/handler/http"
	chatRepository "github.com/DipakAnap/cablink-backend/services/chat/repository"
	chatUsecase "github.com/DipakAnap/cablink-backend/services/chat/usecase"
	fleetHTTP "github.com/DipakAnap/cablink-backend/services/fleet/handler/http"
	fleetRepository "github.com/DipakAnap/cablink-backend/services/fleet/repository"
	fleetUsecase "github.com/DipakAnap/cablink-backend/services/fleet/usecase"
	"github.com/DipakAnap/cablink-backend/services/notifications"
	notificationGateway "github.com/DipakAnap/cablink-backend/services/notifications/gateway"
	notificationHTTP "github.com/DipakAnap/cablink-backend/services/notifications/handler/http"
	notificationNSQ "github.com/DipakAnap/cablink-backend/services/notifications/handler/nsq"
	notificationRepository "github.com/DipakAnap/cablink-backend/services/notifications/repository"
	notificationUsecase "github.com/DipakAnap/cablink-backend/services/notifications/usecase"
	settingsHTTP "github.com/DipakAnap/cablink-backend/services/settings/handler/http"
	settingsRepository "github.com/DipakAnap/cablink-backend/services/settings/repository"
	settingsUsecase "github.com/DipakAnap/cablink-backend/services/settings/usecase"
	userHTTP "github.com/DipakAnap/cablink-backend/services/users/handler/http"
	userRepository "github.com/DipakAnap/cablink-backend/services/users/repository"
	userUsecase "github.com/DipakAnap/cablink-backend/services/users/usecase"
)

func main() {
	appName := "cablink-api"
	configs := config.InitConfig("config/cablink.env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()
	db := postgresClient.GetDB()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.ProducerAddr)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Repositories
	userRepo := userRepository.NewUserRepo(configs, db)
	fleetRepo := fleetRepository.NewFleetRepo(configs, db)
	settingsRepo := settingsRepository.NewSettingsRepo(db, redisClient)
	bookingRepo := bookingRepository.NewBookingRepo(configs, db)
	notificationRepo := notificationRepository.NewNotificationRepo(db)
	chatRepo := chatRepository.NewChatRepo(configs, db)

	// Gateways
	bookingGW := bookingGateway.NewBookingGW(producer)
	senders := []notifications.ChannelSender{
		notificationGateway.NewEmailSender(configs.Notification),
		notificationGateway.NewSMSSender(configs.Notification),
		notificationGateway.NewWhatsAppSender(configs.Notification),
	}

	// Usecases
	userUC := userUsecase.NewUserUC(userRepo, configs)
	fleetUC := fleetUsecase.NewFleetUC(fleetRepo, configs)
	settingsUC := settingsUsecase.NewSettingsUC(settingsRepo)
	notificationUC := notificationUsecase.NewNotificationUC(notificationRepo, senders, configs)
	bookingUC := bookingUsecase.NewBookingUC(bookingRepo, fleetRepo, userRepo, settingsUC, bookingGW, configs)
	chatUC := chatUsecase.NewChatUC(chatRepo, bookingRepo)

	// NSQ consumer for booking events
	nsqHandler, err := notificationNSQ.NewNotificationHandler(notificationUC, configs.NSQ)
	if err != nil {
		zapLogger.Fatal("Failed to initialize NSQ consumer", logger.Err(err))
	}
	defer nsqHandler.Stop()

	// HTTP handlers
	authHandler := userHTTP.NewAuthHandler(userUC)
	userHandler := userHTTP.NewUserHandler(userUC)
	fleetHandler := fleetHTTP.NewFleetHandler(fleetUC)
	settingsHandler := settingsHTTP.NewSettingsHandler(settingsUC)
	bookingHandler := bookingHTTP.NewBookingHandler(bookingUC)
	notificationHandler := notificationHTTP.NewNotificationHandler(notificationUC)
	chatHandler := chatHTTP.NewChatHandler(chatUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecovery(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	// Public routes
	authHandler.RegisterRoutes(e.Group("/auth"))

	// Protected routes
	authGuard := jwt.EchoMiddleware(configs.JWT)
	userHandler.RegisterRoutes(e.Group("/users", authGuard))
	userHandler.RegisterPlanRoutes(e.Group("/subscriptions", authGuard))
	fleetHandler.RegisterCarRoutes(e.Group("/cars", authGuard))
	fleetHandler.RegisterRouteRoutes(e.Group("/routes", authGuard))
	bookingHandler.RegisterRoutes(e.Group("/bookings", authGuard))
	notificationHandler.RegisterRoutes(e.Group("/notifications", authGuard))
	settingsHandler.RegisterRoutes(e.Group("/settings", authGuard))
	chatHandler.RegisterRoutes(e.Group("/chat", authGuard))

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}
}
