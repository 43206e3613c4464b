package config

type (
	InternalConfig struct {
		App      App
		Backend  Backend
		JWT      JWT
		Portal   Portal
		Minio    AppMinio
		RabbitMQ AppRabbitMQ
	}

	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		Address                  string
		Timezone                 string
		EndpointPrefix           string
		AllowedOrigins           []string
		MaxRequests              int
		ShutdownTimeoutInSeconds int
		RequestTimeoutInSeconds  int
		RequestBodyLimitInMB     int
	}

	// Backend describes the booking API every portal page reads from.
	Backend struct {
		BaseUrl                   string
		RequestTimeoutInSeconds   int
		OutboundRequestsPerSecond float64
		OutboundBurst             int
	}

	JWT struct {
		Secret string
		Issuer string
	}

	Portal struct {
		DefaultPageSize           int
		ListOvertakePolicy        string
		UnreadCountBackend        string
		UnreadCountTTLInMinutes   int
		DashboardUpcomingLimit    int
		DashboardTransactionLimit int
		ProfilePictureMaxSizeInMB int
		NotificationEventsEnabled bool
	}

	AppMinio struct {
		BucketName                    string
		PreSignedUrlExpiryTimeInHours int
	}

	AppRabbitMQ struct {
		NotificationQueue string
		Prefetch          int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
