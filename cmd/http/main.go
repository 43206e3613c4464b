package main

import (
	"context"
	"konsulin-portal/internal/app/config"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/delivery/http/controllers"
	"konsulin-portal/internal/app/delivery/http/middlewares"
	"konsulin-portal/internal/app/delivery/http/routers"
	"konsulin-portal/internal/app/drivers/database"
	"konsulin-portal/internal/app/drivers/logger"
	"konsulin-portal/internal/app/drivers/messaging"
	minioDriver "konsulin-portal/internal/app/drivers/storage"
	"konsulin-portal/internal/app/services/core/applications"
	"konsulin-portal/internal/app/services/core/dashboard"
	"konsulin-portal/internal/app/services/core/notifications"
	"konsulin-portal/internal/app/services/core/profile"
	"konsulin-portal/internal/app/services/portal/analytics"
	portalApplications "konsulin-portal/internal/app/services/portal/applications"
	"konsulin-portal/internal/app/services/portal/complaints"
	portalNotifications "konsulin-portal/internal/app/services/portal/notifications"
	"konsulin-portal/internal/app/services/portal/profiles"
	"konsulin-portal/internal/app/services/portal/psychologists"
	"konsulin-portal/internal/app/services/portal/sessions"
	"konsulin-portal/internal/app/services/portal/transactions"
	"konsulin-portal/internal/app/services/shared/events"
	"konsulin-portal/internal/app/services/shared/jwtmanager"
	"konsulin-portal/internal/app/services/shared/metrics"
	"konsulin-portal/internal/app/services/shared/redis"
	"konsulin-portal/internal/app/services/shared/storage"
	"konsulin-portal/internal/app/services/shared/transport"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Minio:          minioDriver.NewMinio(driverConfig, log),
		Logger:         log,
		AccessLog:      accessLog,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if internalConfig.Portal.UnreadCountBackend == "redis" {
		bootstrap.Redis = database.NewRedisClient(driverConfig, log)
	}
	if internalConfig.Portal.NotificationEventsEnabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig
	requestTimeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Metrics
	metricsService := metrics.NewMetricsService()

	// Booking backend transport
	backend := transport.NewClient(transport.Options{
		BaseUrl:           internalConfig.Backend.BaseUrl,
		Timeout:           time.Duration(internalConfig.Backend.RequestTimeoutInSeconds) * time.Second,
		RequestsPerSecond: internalConfig.Backend.OutboundRequestsPerSecond,
		Burst:             internalConfig.Backend.OutboundBurst,
		Observer:          metricsService,
	}, log)

	// Auth
	jwtManager, err := jwtmanager.NewJWTManager(internalConfig, log)
	if err != nil {
		return err
	}
	middlewares := middlewares.NewMiddlewares(log, internalConfig, jwtManager, metricsService)

	// Sessions
	sessionClient := sessions.NewSessionAPIClient(backend, log)
	sessionFetcher := sessions.NewFetcher(sessionClient)

	// Psychologists
	psychologistClient := psychologists.NewPsychologistAPIClient(backend, log)

	// Notifications
	notificationClient := portalNotifications.NewNotificationAPIClient(backend, log)
	unreadTTL := time.Duration(internalConfig.Portal.UnreadCountTTLInMinutes) * time.Minute
	var unreadBackend contracts.UnreadCountBackend
	if bootstrap.Redis != nil {
		unreadBackend = notifications.NewRedisBackend(redis.NewRedisRepository(bootstrap.Redis), unreadTTL)
	} else {
		unreadBackend = notifications.NewMemoryBackend(unreadTTL)
	}
	notificationService := notifications.NewService(notificationClient, unreadBackend, log)
	notificationService.Observer = metricsService

	if bootstrap.RabbitMQ != nil {
		consumer, err := events.NewConsumer(
			bootstrap.RabbitMQ,
			internalConfig.RabbitMQ.NotificationQueue,
			internalConfig.RabbitMQ.Prefetch,
			notificationService,
			log,
		)
		if err != nil {
			return err
		}
		consumerCtx, stopConsumer := context.WithCancel(context.Background())
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Run(consumerCtx); err != nil {
				log.Error("Notification consumer stopped", zap.Error(err))
			}
		}()
		bootstrap.ConsumerStop = func() {
			stopConsumer()
			wg.Wait()
			if err := consumer.Close(); err != nil {
				log.Warn("Error closing notification consumer channel", zap.Error(err))
			}
		}
	}

	// Profile
	profileUsecase := profile.NewUsecase(
		profiles.NewProfileAPIClient(backend, log),
		internalConfig.Portal.ProfilePictureMaxSizeInMB,
		log,
	)

	// Complaints
	complaintClient := complaints.NewComplaintAPIClient(backend, log)

	// Applications
	applicationClient := portalApplications.NewApplicationAPIClient(backend, log)
	applicationUsecase := applications.NewApplicationUsecase(
		applicationClient,
		storage.NewMinioStorage(bootstrap.Minio),
		internalConfig.Minio.BucketName,
		time.Duration(internalConfig.Minio.PreSignedUrlExpiryTimeInHours)*time.Hour,
		log,
	)

	// Transactions
	transactionFetcher := transactions.NewFetcher(transactions.NewTransactionAPIClient(backend, log))

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(
		sessionFetcher,
		transactionFetcher,
		notificationService,
		internalConfig.Portal.DashboardUpcomingLimit,
		internalConfig.Portal.DashboardTransactionLimit,
		log,
	)

	routers.SetupRoutes(bootstrap.Router, internalConfig, log, bootstrap.AccessLog, middlewares, metricsService.Handler(), routers.Controllers{
		Session:      controllers.NewSessionController(log, sessionClient, sessionFetcher, requestTimeout),
		Psychologist: controllers.NewPsychologistController(log, psychologistClient, psychologists.NewFetcher(psychologistClient), requestTimeout),
		Notification: controllers.NewNotificationController(log, portalNotifications.NewFetcher(notificationClient), notificationService, requestTimeout),
		Profile:      controllers.NewProfileController(log, profileUsecase, internalConfig.App.RequestBodyLimitInMB, requestTimeout),
		Complaint:    controllers.NewComplaintController(log, complaintClient, complaints.NewFetcher(complaintClient), requestTimeout),
		Application:  controllers.NewApplicationController(log, applicationClient, applicationUsecase, portalApplications.NewFetcher(applicationClient), requestTimeout),
		Transaction:  controllers.NewTransactionController(log, transactionFetcher, requestTimeout),
		Analytics:    controllers.NewAnalyticsController(log, analytics.NewAnalyticsAPIClient(backend, log), requestTimeout),
		Dashboard:    controllers.NewDashboardController(log, dashboardUsecase, requestTimeout),
	})
	return nil
}
