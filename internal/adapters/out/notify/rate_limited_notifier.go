package notify

import (
	"context"

	"buttery/internal/core/ports"

	"golang.org/x/time/rate"
)

// RateLimitedNotifier throttles outbound notifications. Notify blocks until a
// token is available or ctx is done.
type RateLimitedNotifier struct {
	next    ports.Notifier
	limiter *rate.Limiter
}

// NewRateLimitedNotifier allows perSecond notifications with bursts of burst.
// A non-positive perSecond disables throttling.
func NewRateLimitedNotifier(next ports.Notifier, perSecond float64, burst int) *RateLimitedNotifier {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedNotifier{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (n *RateLimitedNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return err
	}
	return n.next.Notify(ctx, notification)
}
