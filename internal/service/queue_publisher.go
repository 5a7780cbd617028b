// Package service publishes domain events to RabbitMQ. Publish errors are
// logged and returned so callers can ignore failures without interrupting
// the main request flow.
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/parkeasy/parkeasy-api/internal/queue"
)

// RabbitPublisher emits session events on the session.completed queue.
// The zero value is usable; URL defaults to the environment broker URL.
type RabbitPublisher struct {
	URL string
}

func NewRabbitPublisher() *RabbitPublisher {
	return &RabbitPublisher{URL: queue.BrokerURL()}
}

// SessionCompleted publishes a SessionCompletedEvent, marked persistent so
// it survives broker restarts. A connection is dialed per publish: end
// session is a low-frequency operation and a dropped connection must never
// linger into the next request.
func (p *RabbitPublisher) SessionCompleted(ctx context.Context, ev queue.SessionCompletedEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queue.SessionQueueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue.SessionQueueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
