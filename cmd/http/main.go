package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cpn-service/internal/app/config"
	"cpn-service/internal/app/delivery/http/middlewares"
	"cpn-service/internal/app/delivery/http/routers"
	"cpn-service/internal/app/drivers/database"
	"cpn-service/internal/app/drivers/logger"
	"cpn-service/internal/app/drivers/messaging"
	"cpn-service/internal/app/services/core/antecedents"
	"cpn-service/internal/app/services/core/auth"
	"cpn-service/internal/app/services/core/cpn"
	"cpn-service/internal/app/services/core/dashboard"
	"cpn-service/internal/app/services/core/dossiers"
	"cpn-service/internal/app/services/core/users"
	"cpn-service/internal/app/services/shared/eventqueue"
	"cpn-service/internal/app/services/shared/recordsapi"
	"cpn-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("loading timezone failed", zap.Error(err))
	}
	time.Local = location

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer connectCancel()

	mongoDB, err := database.NewMongoDB(connectCtx, driverConfig.MongoDB)
	if err != nil {
		log.Fatal("connecting to mongo failed", zap.Error(err))
	}
	redisClient, err := database.NewRedisClient(connectCtx, driverConfig.Redis)
	if err != nil {
		log.Fatal("connecting to redis failed", zap.Error(err))
	}
	rabbitMQ, err := messaging.NewRabbitMQ(driverConfig.RabbitMQ)
	if err != nil {
		log.Fatal("connecting to rabbitmq failed", zap.Error(err))
	}
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("server starting", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("waiting for pending requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Sessions
	sessionRepository := auth.NewSessionRedisRepository(redisRepository)

	// Records API client; a 401 from the records side destroys the
	// owning session so every browser tab logs out together.
	recordsClient := recordsapi.NewClient(
		bootstrap.InternalConfig.Records,
		bootstrap.Logger,
		func(ctx context.Context, sessionID string) {
			if err := sessionRepository.Delete(ctx, sessionID); err != nil {
				bootstrap.Logger.Error("session destroy after remote 401 failed", zap.Error(err))
			}
		},
	)

	// Events
	eventPublisher, err := eventqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.App.CpnEventQueue)
	if err != nil {
		bootstrap.Logger.Fatal("event queue setup failed", zap.Error(err))
	}

	// Auth
	authRecordsClient := auth.NewAuthRecordsClient(recordsClient)
	authUsecase := auth.NewAuthUsecase(bootstrap.Logger, authRecordsClient, sessionRepository, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(authUsecase, bootstrap.InternalConfig)

	// Dossiers
	dossierRecordsClient := dossiers.NewDossierRecordsClient(recordsClient)
	dossierUsecase := dossiers.NewDossierUsecase(bootstrap.Logger, dossierRecordsClient)
	dossierController := dossiers.NewDossierController(bootstrap.Logger, dossierUsecase)

	// Antecedent definitions
	antecedentRecordsClient := antecedents.NewAntecedentRecordsClient(recordsClient)
	antecedentUsecase := antecedents.NewAntecedentUsecase(bootstrap.Logger, antecedentRecordsClient)
	antecedentController := antecedents.NewAntecedentController(bootstrap.Logger, antecedentUsecase)

	// CPN records
	auditDatabase := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)
	auditRepository := cpn.NewSubmissionAuditMongoRepository(auditDatabase)
	cpnRecordsClient := cpn.NewCpnRecordsClient(recordsClient)
	cpnUsecase := cpn.NewCpnUsecase(bootstrap.Logger, antecedentRecordsClient, cpnRecordsClient, auditRepository, eventPublisher)
	cpnController := cpn.NewCpnController(bootstrap.Logger, cpnUsecase)

	// Users
	userRecordsClient := users.NewUserRecordsClient(recordsClient)
	userUsecase := users.NewUserUsecase(bootstrap.Logger, userRecordsClient)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(bootstrap.Logger, dossierRecordsClient, userRecordsClient, antecedentRecordsClient, auditRepository)
	dashboardController := dashboard.NewDashboardController(bootstrap.Logger, dashboardUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.Logger,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		dossierController,
		antecedentController,
		cpnController,
		userController,
		dashboardController,
	)
}
