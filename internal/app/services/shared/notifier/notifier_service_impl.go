package notifier

import (
	"context"
	"healthcal-service/internal/app/contracts"
	"healthcal-service/internal/pkg/constvars"
	"healthcal-service/internal/pkg/dto/requests"
	"healthcal-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channelPublisher is the part of *amqp091.Channel the service needs.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type notifierService struct {
	mu                sync.Mutex
	Channel           channelPublisher
	NotificationQueue string
	AgendaQueue       string
	Log               *zap.Logger
}

func NewNotifierService(rabbitMQConnection *amqp091.Connection, notificationQueue, agendaQueue string, logger *zap.Logger) (contracts.NotifierService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	return &notifierService{
		Channel:           channel,
		NotificationQueue: notificationQueue,
		AgendaQueue:       agendaQueue,
		Log:               logger,
	}, nil
}

func (s *notifierService) PublishCallEvent(ctx context.Context, event *requests.CallEvent) error {
	return s.publish(ctx, s.NotificationQueue, event.Event, event)
}

func (s *notifierService) PublishAgenda(ctx context.Context, agenda *requests.AgendaEvent) error {
	return s.publish(ctx, s.AgendaQueue, agenda.Event, agenda)
}

func (s *notifierService) publish(ctx context.Context, queue, eventName string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("notifierService.publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, queue),
		zap.String(constvars.LoggingEventKey, eventName),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type": "JSON",
		"event":        eventName,
	}
	if requestID != "" {
		headers["request_id"] = requestID
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Type:         eventName,
		Headers:      headers,
	}

	// amqp channels are not safe for concurrent publishing.
	s.mu.Lock()
	err = s.Channel.PublishWithContext(ctx, "", queue, false, false, message)
	s.mu.Unlock()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	s.Log.Info("notifierService.publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, queue),
		zap.String(constvars.LoggingEventKey, eventName),
	)
	return nil
}
