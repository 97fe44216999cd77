package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"buttery/internal/adapters/out/notify"
	"buttery/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// notifyBurst lets a payment proof reach every admin chat without waiting.
const notifyBurst = 5

// NewNotifier connects the configured notification transport, throttled to
// NotifyRatePerSecond. The returned func releases the connection.
func NewNotifier(ctx context.Context, cfg Config, logger *slog.Logger) (ports.Notifier, func() error, error) {
	var (
		next    ports.Notifier
		closeFn = func() error { return nil }
	)

	switch cfg.Notifier {
	case NotifierRabbitMQ:
		conn, err := notify.DialRabbitMQ(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			return nil, nil, err
		}
		next = notify.NewRabbitMQNotifier(conn.Channel(), cfg.RabbitMQExchange)
		closeFn = conn.Close
	case NotifierRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis at %s: %w", cfg.RedisAddr, err)
		}
		next = notify.NewRedisNotifier(client, cfg.RedisStream)
		closeFn = client.Close
	default:
		next = notify.NewLogNotifier(logger)
	}

	logger.Info("Notifier ready", "transport", cfg.Notifier, "rate_per_second", cfg.NotifyRatePerSecond)
	return notify.NewRateLimitedNotifier(next, cfg.NotifyRatePerSecond, notifyBurst), closeFn, nil
}
