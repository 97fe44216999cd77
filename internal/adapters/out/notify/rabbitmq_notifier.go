package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"buttery/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultPublishTimeout = 5 * time.Second

// Publisher is the part of *amqp.Channel the notifier needs.
type Publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
}

// RabbitMQNotifier publishes persistent JSON messages to a topic exchange.
// The routing key is the event name, e.g. "notification.OrderReady".
type RabbitMQNotifier struct {
	publisher Publisher
	exchange  string
	timeout   time.Duration
	stamper   stamper
}

func NewRabbitMQNotifier(publisher Publisher, exchange string, opts ...Option) *RabbitMQNotifier {
	return &RabbitMQNotifier{
		publisher: publisher,
		exchange:  exchange,
		timeout:   defaultPublishTimeout,
		stamper:   newStamper(opts),
	}
}

func RoutingKey(event ports.Event) string {
	return "notification." + string(event)
}

func (n *RabbitMQNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	msg := n.stamper.stamp(notification)
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	err = n.publisher.PublishWithContext(ctx,
		n.exchange,
		RoutingKey(notification.Event),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    msg.ID,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("publish %s notification: %w", notification.Event, err)
	}
	return nil
}

// RabbitMQConnection owns the connection and channel behind a notifier.
type RabbitMQConnection struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// DialRabbitMQ connects and declares the durable topic exchange.
func DialRabbitMQ(url, exchange string) (*RabbitMQConnection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &RabbitMQConnection{conn: conn, channel: channel}, nil
}

func (c *RabbitMQConnection) Channel() *amqp.Channel {
	return c.channel
}

func (c *RabbitMQConnection) Close() error {
	return errors.Join(c.channel.Close(), c.conn.Close())
}
