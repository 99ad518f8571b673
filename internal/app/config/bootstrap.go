package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// AgendaWorkerStop if set will be called during Shutdown to stop the cron worker
	AgendaWorkerStop func()
}

// Shutdown stops the worker first, then closes the drivers.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.AgendaWorkerStop != nil {
		b.AgendaWorkerStop()
		logrus.Info("Successfully stopped agenda worker")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	logrus.Info("Successfully closing Redis")

	err = b.RabbitMQ.Close()
	if err != nil {
		return err
	}
	logrus.Info("Successfully closing RabbitMQ")

	err = b.MongoDB.Disconnect(ctx)
	if err != nil {
		return err
	}
	logrus.Info("Successfully closing MongoDB")

	// Sync reports EINVAL for stdout on linux.
	_ = b.Logger.Sync()
	logrus.Info("Successfully closing Logger")

	return nil
}
