package main

import (
	"context"
	"healthcal-service/internal/app/config"
	"healthcal-service/internal/app/delivery/http/controllers"
	"healthcal-service/internal/app/delivery/http/middlewares"
	"healthcal-service/internal/app/delivery/http/routers"
	"healthcal-service/internal/app/drivers/database"
	"healthcal-service/internal/app/drivers/logger"
	"healthcal-service/internal/app/drivers/messaging"
	"healthcal-service/internal/app/drivers/storage"
	"healthcal-service/internal/app/services/core/agenda"
	"healthcal-service/internal/app/services/core/calls"
	"healthcal-service/internal/app/services/core/clients"
	"healthcal-service/internal/app/services/core/exports"
	"healthcal-service/internal/app/services/shared/locker"
	"healthcal-service/internal/app/services/shared/notifier"
	"healthcal-service/internal/app/services/shared/redis"
	minioStorage "healthcal-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location
	logrus.Infof("Successfully set time zone to %s", location.String())

	log := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)

	err = messaging.DeclareQueues(rabbitMQ, internalConfig.RabbitMQ.NotificationQueue, internalConfig.RabbitMQ.AgendaQueue)
	if err != nil {
		logrus.Fatalf("Failed to declare rabbitMQ queues: %v", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	err = storage.EnsureBucket(startupCtx, minioClient, internalConfig.Minio.ExportBucketName)
	cancelStartup()
	if err != nil {
		logrus.Fatalf("Failed to prepare minio bucket %s: %v", internalConfig.Minio.ExportBucketName, err)
	}

	chiRouter := chi.NewRouter()
	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		logrus.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Server listening on %s%s", internalConfig.App.Address, internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Failed to close drivers: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Messaging
	notifierService, err := notifier.NewNotifierService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.NotificationQueue,
		bootstrap.InternalConfig.RabbitMQ.AgendaQueue,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Storage
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio)

	// Clients
	roster, err := clients.LoadRoster(bootstrap.InternalConfig.App.ClientRosterPath)
	if err != nil {
		return err
	}
	clientUsecase := clients.NewClientUsecase(roster, bootstrap.Logger)
	clientController := controllers.NewClientController(bootstrap.Logger, bootstrap.InternalConfig, clientUsecase)

	// Calls
	callRepository := calls.NewCallMongoRepository(bootstrap.MongoDB, bootstrap.InternalConfig.MongoDB.DbName, bootstrap.Logger)
	callUsecase := calls.NewCallUsecase(callRepository, roster, lockerService, notifierService, bootstrap.InternalConfig, bootstrap.Logger)
	callController := controllers.NewCallController(bootstrap.Logger, bootstrap.InternalConfig, callUsecase)

	// Exports
	exportUsecase := exports.NewExportUsecase(callRepository, roster, storageService, bootstrap.InternalConfig, bootstrap.Logger)
	calendarController := controllers.NewCalendarController(bootstrap.Logger, bootstrap.InternalConfig, callUsecase, exportUsecase)

	// Agenda worker
	agendaWorker := agenda.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, callRepository, notifierService)
	agendaWorker.Start(context.Background())
	bootstrap.AgendaWorkerStop = agendaWorker.Stop

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, clientController, calendarController, callController)
	return nil
}
