package notify

import (
	"context"
	"fmt"

	"buttery/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// streamMaxLen caps the stream length; trimming is approximate.
const streamMaxLen = 10000

// RedisNotifier appends notifications to a Redis stream.
type RedisNotifier struct {
	client  redis.Cmdable
	stream  string
	stamper stamper
}

func NewRedisNotifier(client redis.Cmdable, stream string, opts ...Option) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		stream:  stream,
		stamper: newStamper(opts),
	}
}

// XAddArgs is the stream entry written for a stamped message.
func (n *RedisNotifier) XAddArgs(msg Message) *redis.XAddArgs {
	return &redis.XAddArgs{
		Stream: n.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: msg.fields(),
	}
}

func (n *RedisNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	msg := n.stamper.stamp(notification)
	if err := n.client.XAdd(ctx, n.XAddArgs(msg)).Err(); err != nil {
		return fmt.Errorf("append %s notification to %s: %w", notification.Event, n.stream, err)
	}
	return nil
}
