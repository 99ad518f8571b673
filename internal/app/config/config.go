package config

import (
	"healthcal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
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
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                          utils.GetEnvString("APP_ENV", "development"),
			Port:                         utils.GetEnvString("APP_PORT", ":8080"),
			Version:                      utils.GetEnvString("APP_VERSION", "v1"),
			Address:                      utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                     utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:               utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                  utils.GetEnvInt("APP_MAX_REQUEST", 10),
			MaxMutationRequestsPerMinute: utils.GetEnvInt("APP_MAX_MUTATION_REQUESTS_PER_MINUTE", 30),
			MutationBlockTimeInSeconds:   utils.GetEnvInt("APP_MUTATION_BLOCK_TIME_IN_SECONDS", 60),
			ShutdownTimeoutInSeconds:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:      utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte:   utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			BookingLockTTLInSeconds:      utils.GetEnvInt("APP_BOOKING_LOCK_TTL_IN_SECONDS", 10),
			AgendaCronSpec:               utils.GetEnvString("APP_AGENDA_CRON_SPEC", "0 8 * * *"),
			ClientRosterPath:             utils.GetEnvString("CLIENT_ROSTER_PATH", ""),
		},
		MongoDB: AppMongoDB{
			DbName: utils.GetEnvString("MONGODB_DB_NAME", "healthcal"),
		},
		RabbitMQ: AppRabbitMQ{
			NotificationQueue: utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "healthcal.notifications"),
			AgendaQueue:       utils.GetEnvString("APP_RABBITMQ_AGENDA_QUEUE", "healthcal.agenda"),
		},
		Minio: AppMinio{
			ExportBucketName:         utils.GetEnvString("APP_MINIO_EXPORT_BUCKET_NAME", "healthcal-exports"),
			ExportUrlExpiryInMinutes: utils.GetEnvInt("APP_EXPORT_URL_EXPIRY_IN_MINUTES", 60),
		},
	}
}
