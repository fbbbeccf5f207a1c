package eventqueue

import (
	"context"
	"sync"
	"time"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes domain events to RabbitMQ with publisher confirms so
// a created-record notification is never silently lost.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (s *Service) PublishRecordCreated(ctx context.Context, event contracts.RecordCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.ch.PublishWithContext(ctx,
		"",          // default exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrQueuePublishMessage(err, s.queueName)
	}

	select {
	case confirmation := <-s.confirms:
		if !confirmation.Ack {
			s.log.Error("record created event nacked by broker",
				zap.String("queue", s.queueName),
				zap.String("record_id", event.RecordID),
			)
			return exceptions.ErrQueuePublishMessage(nil, s.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublishMessage(ctx.Err(), s.queueName)
	}

	s.log.Info("record created event published",
		zap.String("queue", s.queueName),
		zap.String("record_id", event.RecordID),
	)
	return nil
}
