package config

import (
	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp.Connection
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App     App
		Records Records
		JWT     JWT
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                 string
		Port                string
		Version             string
		Timezone            string
		EndpointPrefix      string
		MaxRequests         int
		ShutdownTimeout     int
		SessionExpiryInHour int
		CpnEventQueue       string
	}

	// Records points at the remote clinic records REST API that this
	// service fronts.
	Records struct {
		BaseUrl           string
		RequestsPerSecond float64
		Burst             int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level string
	}
)
