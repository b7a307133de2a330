package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

type RabbitMQ struct {
	conn *amqp.Connection

	mu       sync.Mutex
	pub      *amqp.Channel
	declared map[string]bool
	closed   bool
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	config.Logger.Info("connected to RabbitMQ")
	return &RabbitMQ{conn: conn, pub: ch, declared: map[string]bool{}}, nil
}

func declare(ch *amqp.Channel, topic string) error {
	_, err := ch.QueueDeclare(
		topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	return err
}

func (r *RabbitMQ) Publish(ctx context.Context, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if !r.declared[topic] {
		if err := declare(r.pub, topic); err != nil {
			return fmt.Errorf("declare queue %s: %w", topic, err)
		}
		r.declared[topic] = true
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return r.pub.PublishWithContext(ctx,
		"",    // exchange
		topic, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

// Subscribe consumes topic on its own channel. Deliveries are acked on
// success and dropped without requeue when the handler fails.
func (r *RabbitMQ) Subscribe(topic string, handler Handler) error {
	ch, err := r.conn.Channel()
	if err != nil {
		return fmt.Errorf("open consumer channel: %w", err)
	}
	if err := declare(ch, topic); err != nil {
		ch.Close()
		return fmt.Errorf("declare queue %s: %w", topic, err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		ch.Close()
		return err
	}

	msgs, err := ch.Consume(
		topic,
		"",
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		return fmt.Errorf("register consumer: %w", err)
	}

	go func() {
		log := config.Logger.WithField("topic", topic)
		for d := range msgs {
			if err := handler(context.Background(), d.Body); err != nil {
				log.WithError(err).WithFields(logrus.Fields{
					"delivery_tag": d.DeliveryTag,
				}).Error("Job handler failed")
				d.Nack(false, false)
				continue
			}
			d.Ack(false)
		}
		log.Info("Consumer stopped")
	}()
	return nil
}

func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	r.pub.Close()
	return r.conn.Close()
}
