package notify

import (
	"context"
	"log/slog"

	"buttery/internal/core/ports"
)

// LogNotifier writes notifications to the log. It is the default when no
// broker is configured.
type LogNotifier struct {
	logger  *slog.Logger
	stamper stamper
}

func NewLogNotifier(logger *slog.Logger, opts ...Option) *LogNotifier {
	return &LogNotifier{
		logger:  logger.With("component", "notifier"),
		stamper: newStamper(opts),
	}
}

func (n *LogNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	msg := n.stamper.stamp(notification)
	n.logger.InfoContext(ctx, "notification",
		"id", msg.ID,
		"event", msg.Event,
		"recipient_chat_id", msg.RecipientChatID,
		"order_id", msg.OrderID,
		"customer", msg.Customer,
		"text", msg.Text,
		"attachment", msg.Attachment,
	)
	return nil
}
