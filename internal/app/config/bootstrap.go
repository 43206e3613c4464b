package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Minio          *minio.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	AccessLog      *logrus.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// ConsumerStop, if set, stops the notification event consumer.
	ConsumerStop func()
}

// Shutdown releases the drivers in reverse order of use. Optional drivers
// that were never opened are skipped.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.ConsumerStop != nil {
		b.ConsumerStop()
		log.Println("Successfully stopped notification consumer")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.Logger != nil {
		// stdout/stderr sinks return EINVAL on Sync
		_ = b.Logger.Sync()
		log.Println("Successfully closing Logger")
	}

	return nil
}
