package events

import (
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

func MustDial(url string) *amqp.Connection {
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	return conn
}
