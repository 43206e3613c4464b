package events

import (
	"context"
	"errors"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NotificationEvent is published by the booking backend whenever a user's
// notifications change.
type NotificationEvent struct {
	Type           string    `json:"type"`
	UserID         string    `json:"user_id"`
	NotificationID string    `json:"notification_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Invalidator drops whatever the portal cached for a user.
type Invalidator interface {
	Invalidate(ctx context.Context, userID string) error
}

// Consumer reads notification events from RabbitMQ and invalidates the
// cached unread count of the affected user, so the next read refetches it.
type Consumer struct {
	ch          *amqp.Channel
	queue       string
	invalidator Invalidator
	log         *zap.Logger
}

func NewConsumer(conn *amqp.Connection, queue string, prefetch int, invalidator Invalidator, log *zap.Logger) (*Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	return &Consumer{
		ch:          ch,
		queue:       queue,
		invalidator: invalidator,
		log:         log,
	}, nil
}

// Run consumes until ctx is done or the channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	deliveries, err := c.ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQConsume(err, c.queue)
	}
	c.log.Info("events.Consumer.Run consuming", zap.String("queue", c.queue))

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return exceptions.ErrRabbitMQConsume(errors.New("delivery channel closed"), c.queue)
			}
			c.handle(ctx, delivery)
		}
	}
}

func (c *Consumer) Close() error {
	return c.ch.Close()
}

func (c *Consumer) handle(ctx context.Context, delivery amqp.Delivery) {
	var event NotificationEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil || event.UserID == "" {
		c.log.Error("events.Consumer.handle dropping malformed event",
			zap.String("message_id", delivery.MessageId),
			zap.Error(err),
		)
		if err := delivery.Nack(false, false); err != nil {
			c.log.Error("events.Consumer.handle nack failed", zap.Error(err))
		}
		return
	}

	if err := c.invalidator.Invalidate(ctx, event.UserID); err != nil {
		c.log.Error("events.Consumer.handle invalidation failed, requeueing",
			zap.String(constvars.LoggingUserIDKey, event.UserID),
			zap.Error(err),
		)
		if err := delivery.Nack(false, true); err != nil {
			c.log.Error("events.Consumer.handle nack failed", zap.Error(err))
		}
		return
	}

	if err := delivery.Ack(false); err != nil {
		c.log.Error("events.Consumer.handle ack failed", zap.Error(err))
		return
	}
	c.log.Debug("events.Consumer.handle invalidated unread count",
		zap.String(constvars.LoggingUserIDKey, event.UserID),
		zap.String("type", event.Type),
	)
}
