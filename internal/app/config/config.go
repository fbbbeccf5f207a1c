package config

import (
	"cpn-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "cpn_audit"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level: utils.GetEnvString("LOGGER_LEVEL", "debug"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                 utils.GetEnvString("APP_ENV", "development"),
			Port:                utils.GetEnvString("APP_PORT", ":8081"),
			Version:             utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:            utils.GetEnvString("APP_TIMEZONE", "Africa/Dakar"),
			EndpointPrefix:      utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:         utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SessionExpiryInHour: utils.GetEnvInt("APP_SESSION_EXPIRY_IN_HOUR", 8),
			CpnEventQueue:       utils.GetEnvString("APP_CPN_EVENT_QUEUE", "cpn_record_created_queue"),
		},
		Records: Records{
			BaseUrl:           utils.GetEnvString("RECORDS_BASE_URL", "http://localhost:8080/api/v1"),
			RequestsPerSecond: utils.GetEnvFloat("RECORDS_REQUESTS_PER_SECOND", 25),
			Burst:             utils.GetEnvInt("RECORDS_BURST", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
	}
}
