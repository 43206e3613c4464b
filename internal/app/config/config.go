package config

import (
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Address:                  utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:           utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMB:     utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MB", 6),
		},
		Backend: Backend{
			BaseUrl:                   utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:5000/api"),
			RequestTimeoutInSeconds:   utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 15),
			OutboundRequestsPerSecond: utils.GetEnvFloat("BACKEND_OUTBOUND_REQUESTS_PER_SECOND", 0),
			OutboundBurst:             utils.GetEnvInt("BACKEND_OUTBOUND_BURST", 5),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
			Issuer: utils.GetEnvString("JWT_ISSUER", ""),
		},
		Portal: Portal{
			DefaultPageSize:           utils.GetEnvInt("PORTAL_DEFAULT_PAGE_SIZE", constvars.DefaultPageSize),
			ListOvertakePolicy:        utils.GetEnvString("PORTAL_LIST_OVERTAKE_POLICY", "discard"),
			UnreadCountBackend:        utils.GetEnvString("PORTAL_UNREAD_COUNT_BACKEND", "memory"),
			UnreadCountTTLInMinutes:   utils.GetEnvInt("PORTAL_UNREAD_COUNT_TTL_IN_MINUTES", 30),
			DashboardUpcomingLimit:    utils.GetEnvInt("PORTAL_DASHBOARD_UPCOMING_LIMIT", 3),
			DashboardTransactionLimit: utils.GetEnvInt("PORTAL_DASHBOARD_TRANSACTION_LIMIT", 5),
			ProfilePictureMaxSizeInMB: utils.GetEnvInt("PORTAL_PROFILE_PICTURE_MAX_SIZE_IN_MB", 2),
			NotificationEventsEnabled: utils.GetEnvBool("PORTAL_NOTIFICATION_EVENTS_ENABLED", false),
		},
		Minio: AppMinio{
			BucketName:                    utils.GetEnvString("MINIO_APPLICATION_BUCKET_NAME", "applications"),
			PreSignedUrlExpiryTimeInHours: utils.GetEnvInt("MINIO_PRE_SIGNED_URL_EXPIRY_TIME_IN_HOURS", 1),
		},
		RabbitMQ: AppRabbitMQ{
			NotificationQueue: utils.GetEnvString("RABBITMQ_NOTIFICATION_QUEUE", "portal_notification_events"),
			Prefetch:          utils.GetEnvInt("RABBITMQ_PREFETCH", 10),
		},
	}
}
