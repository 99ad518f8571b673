package messaging

import (
	"fmt"
	"healthcal-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		logrus.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	logrus.Info("Successfully connected to rabbitMQ")
	return conn
}

// DeclareQueues makes sure every queue the service publishes to exists and is durable.
func DeclareQueues(conn *amqp091.Connection, queues ...string) error {
	channel, err := conn.Channel()
	if err != nil {
		return err
	}
	defer channel.Close()

	for _, queue := range queues {
		_, err := channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
	}
	return nil
}
