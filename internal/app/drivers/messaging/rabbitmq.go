package messaging

import (
	"fmt"
	"net/url"

	"cpn-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ dials the broker carrying record-created events.
func NewRabbitMQ(cfg config.RabbitMQ) (*amqp091.Connection, error) {
	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		url.QueryEscape(cfg.Username),
		url.QueryEscape(cfg.Password),
		cfg.Host,
		cfg.Port,
	)
	conn, err := amqp091.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	return conn, nil
}
