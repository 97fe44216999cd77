// Package notify delivers ports.Notification values to the transport that
// talks to customers and staff. Every notifier renders the same Message, so a
// consumer reading the RabbitMQ exchange or the Redis stream sees one format.
package notify

import (
	"strconv"
	"time"

	"buttery/internal/core/ports"

	"github.com/google/uuid"
)

// Message is the wire form of a notification.
type Message struct {
	ID              string    `json:"id"`
	Event           string    `json:"event"`
	RecipientChatID int64     `json:"recipient_chat_id"`
	OrderID         int64     `json:"order_id,omitempty"`
	Customer        string    `json:"customer"`
	Text            string    `json:"text"`
	Attachment      string    `json:"attachment,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// Option adjusts how messages are stamped.
type Option func(*stamper)

// WithIDGenerator replaces uuid.New for message ids.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(s *stamper) { s.newID = fn }
}

// WithClock replaces time.Now for message timestamps.
func WithClock(fn func() time.Time) Option {
	return func(s *stamper) { s.now = fn }
}

type stamper struct {
	newID func() uuid.UUID
	now   func() time.Time
}

func newStamper(opts []Option) stamper {
	s := stamper{newID: uuid.New, now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s stamper) stamp(n ports.Notification) Message {
	return Message{
		ID:              s.newID().String(),
		Event:           string(n.Event),
		RecipientChatID: n.RecipientChatID,
		OrderID:         n.OrderID.Int64(),
		Customer:        n.Customer,
		Text:            n.Text,
		Attachment:      n.Attachment,
		OccurredAt:      s.now().UTC(),
	}
}

// fields flattens the message into ordered key/value pairs.
func (m Message) fields() []string {
	out := []string{
		"id", m.ID,
		"event", m.Event,
		"recipient_chat_id", strconv.FormatInt(m.RecipientChatID, 10),
		"order_id", strconv.FormatInt(m.OrderID, 10),
		"customer", m.Customer,
		"text", m.Text,
		"occurred_at", m.OccurredAt.Format(time.RFC3339Nano),
	}
	if m.Attachment != "" {
		out = append(out, "attachment", m.Attachment)
	}
	return out
}
