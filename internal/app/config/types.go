package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
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

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	MongoDB  AppMongoDB  `mapstructure:"mongodb"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	Minio    AppMinio    `mapstructure:"minio"`
}

type App struct {
	Env                          string `mapstructure:"env"`
	Port                         string `mapstructure:"port"`
	Version                      string `mapstructure:"version"`
	Address                      string `mapstructure:"address"`
	Timezone                     string `mapstructure:"timezone"`
	EndpointPrefix               string `mapstructure:"endpoint_prefix"`
	MaxRequests                  int    `mapstructure:"max_requests"`
	MaxMutationRequestsPerMinute int    `mapstructure:"max_mutation_requests_per_minute"`
	MutationBlockTimeInSeconds   int    `mapstructure:"mutation_block_time_in_seconds"`
	ShutdownTimeoutInSeconds     int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds      int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte   int    `mapstructure:"request_body_limit_in_megabyte"`
	BookingLockTTLInSeconds      int    `mapstructure:"booking_lock_ttl_in_seconds"`
	// AgendaCronSpec is the cron expression of the daily agenda worker (e.g., "0 8 * * *")
	AgendaCronSpec string `mapstructure:"agenda_cron_spec"`
	// ClientRosterPath points to a YAML roster; empty uses the embedded roster
	ClientRosterPath string `mapstructure:"client_roster_path"`
}

type AppMongoDB struct {
	DbName string `mapstructure:"db_name"`
}

type AppRabbitMQ struct {
	NotificationQueue string `mapstructure:"notification_queue"`
	AgendaQueue       string `mapstructure:"agenda_queue"`
}

type AppMinio struct {
	ExportBucketName         string `mapstructure:"export_bucket_name"`
	ExportUrlExpiryInMinutes int    `mapstructure:"export_url_expiry_in_minutes"`
}
