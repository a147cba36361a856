// Package amqp forwards committed ledger events to RabbitMQ and reads them
// back for tailing.
package amqp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"verde/internal/events"
	"verde/internal/logger"
)

const publishTimeout = 5 * time.Second

var errClosed = errors.New("amqp client is closed")

// Client publishes to a durable direct exchange bound to a single queue.
type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

var _ events.Publisher = (*Client)(nil)

// NewClient dials url and declares the exchange, queue and binding.
func NewClient(url, exchangeName, queueName string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// Direct exchange: the queue name doubles as the routing key.
	err = c.channel.QueueBind(c.queueName, c.queueName, c.exchangeName, false, nil)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PublishEvent publishes e as a persistent JSON message.
func (c *Client) PublishEvent(ctx context.Context, e events.Event) error {
	if c.channel == nil || c.channel.IsClosed() {
		return errClosed
	}

	body, err := NewEventMessage(e).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	timestamp := e.OccurredAt
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		c.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    timestamp,
			Type:         e.Name(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	logger.Get().Debugw("published event",
		"event", e.Name(),
		"entity_id", e.EntityID,
		"exchange", c.exchangeName,
		"queue", c.queueName,
	)
	return nil
}

// ConsumeEvents delivers queued events to handler until ctx is done.
// Undecodable messages are dropped; handler failures are requeued.
func (c *Client) ConsumeEvents(ctx context.Context, handler func(events.Event) error) error {
	if c.channel == nil || c.channel.IsClosed() {
		return errClosed
	}

	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	log := logger.Get()
	log.Infow("started consuming events", "queue", c.queueName)

	for {
		select {
		case <-ctx.Done():
			log.Infow("stopping event consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}
			if err := dispatch(delivery.Body, handler); err != nil {
				log.Errorw("failed to handle event message", "error", err, "type", delivery.Type)
				delivery.Nack(false, errors.Is(err, errHandler))
				continue
			}
			delivery.Ack(false)
		}
	}
}

var errHandler = errors.New("handler failed")

// dispatch decodes body and runs handler. Handler failures wrap errHandler so
// the caller can requeue them.
func dispatch(body []byte, handler func(events.Event) error) error {
	msg, err := EventMessageFromJSON(body)
	if err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	if err := handler(msg.Event); err != nil {
		return fmt.Errorf("%w: %s: %v", errHandler, msg.Name, err)
	}
	return nil
}

// Close closes the channel and connection.
func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
