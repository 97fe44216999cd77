package notify_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"buttery/internal/adapters/out/notify"
	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/ports"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	fixedID  = uuid.MustParse("7f3c9a1e-2b4d-4c6e-8f10-1a2b3c4d5e6f")
	fixedNow = time.Date(2026, 5, 4, 18, 30, 0, 0, time.UTC)
)

func fixedOptions() []notify.Option {
	return []notify.Option{
		notify.WithIDGenerator(func() uuid.UUID { return fixedID }),
		notify.WithClock(func() time.Time { return fixedNow }),
	}
}

func proofNotification() ports.Notification {
	return ports.Notification{
		Event:           ports.EventPaymentProofReceived,
		RecipientChatID: 9001,
		OrderID:         kernel.MustNewID(7),
		Customer:        "alice",
		Text:            "Payment from alice for order 7",
		Attachment:      "photo:AgACAgIAAxkBAAI",
	}
}

type capturedPublish struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakePublisher struct {
	published []capturedPublish
	err       error
}

func (p *fakePublisher) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	_, _ bool,
	msg amqp.Publishing,
) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, capturedPublish{exchange: exchange, key: key, msg: msg})
	return nil
}

func TestRabbitMQNotifierPublishesPersistentJSON(t *testing.T) {
	publisher := &fakePublisher{}
	notifier := notify.NewRabbitMQNotifier(publisher, "buttery.notifications", fixedOptions()...)

	require.NoError(t, notifier.Notify(context.Background(), proofNotification()))
	require.Len(t, publisher.published, 1)

	got := publisher.published[0]
	assert.Equal(t, "buttery.notifications", got.exchange)
	assert.Equal(t, "notification.PaymentProofReceived", got.key)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, fixedID.String(), got.msg.MessageId)

	var msg notify.Message
	require.NoError(t, json.Unmarshal(got.msg.Body, &msg))
	assert.Equal(t, notify.Message{
		ID:              fixedID.String(),
		Event:           "PaymentProofReceived",
		RecipientChatID: 9001,
		OrderID:         7,
		Customer:        "alice",
		Text:            "Payment from alice for order 7",
		Attachment:      "photo:AgACAgIAAxkBAAI",
		OccurredAt:      fixedNow,
	}, msg)
}

func TestRabbitMQNotifierWrapsPublishError(t *testing.T) {
	broken := errors.New("channel closed")
	notifier := notify.NewRabbitMQNotifier(&fakePublisher{err: broken}, "x", fixedOptions()...)

	err := notifier.Notify(context.Background(), proofNotification())
	require.ErrorIs(t, err, broken)
	assert.Contains(t, err.Error(), "PaymentProofReceived")
}

func TestRedisNotifierAppendsToStream(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	notifier := notify.NewRedisNotifier(db, "buttery:notifications", fixedOptions()...)

	redisMock.ExpectXAdd(notifier.XAddArgs(notify.Message{
		ID:              fixedID.String(),
		Event:           "OrderReady",
		RecipientChatID: 1001,
		OrderID:         3,
		Customer:        "bob",
		Text:            "Your order is ready to collect!",
		OccurredAt:      fixedNow,
	})).SetVal("1714847400000-0")

	err := notifier.Notify(context.Background(), ports.Notification{
		Event:           ports.EventOrderReady,
		RecipientChatID: 1001,
		OrderID:         kernel.MustNewID(3),
		Customer:        "bob",
		Text:            "Your order is ready to collect!",
	})
	require.NoError(t, err)
	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestRedisNotifierReturnsStreamError(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	notifier := notify.NewRedisNotifier(db, "buttery:notifications", fixedOptions()...)

	n := proofNotification()
	redisMock.ExpectXAdd(notifier.XAddArgs(notify.Message{
		ID:              fixedID.String(),
		Event:           string(n.Event),
		RecipientChatID: n.RecipientChatID,
		OrderID:         7,
		Customer:        n.Customer,
		Text:            n.Text,
		Attachment:      n.Attachment,
		OccurredAt:      fixedNow,
	})).SetErr(errors.New("READONLY"))

	err := notifier.Notify(context.Background(), n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buttery:notifications")
	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestLogNotifierWritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	require.NoError(t, notify.NewLogNotifier(logger, fixedOptions()...).Notify(context.Background(), proofNotification()))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "notification", record["msg"])
	assert.Equal(t, "notifier", record["component"])
	assert.Equal(t, fixedID.String(), record["id"])
	assert.Equal(t, "PaymentProofReceived", record["event"])
	assert.InDelta(t, 9001, record["recipient_chat_id"], 0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func TestRateLimitedNotifierForwards(t *testing.T) {
	inner := new(MockNotifier)
	n := proofNotification()
	inner.On("Notify", mock.Anything, n).Return(nil).Twice()

	limited := notify.NewRateLimitedNotifier(inner, 0, 0)
	require.NoError(t, limited.Notify(context.Background(), n))
	require.NoError(t, limited.Notify(context.Background(), n))

	inner.AssertExpectations(t)
}

func TestRateLimitedNotifierGivesUpWhenContextEnds(t *testing.T) {
	inner := new(MockNotifier)
	n := proofNotification()
	inner.On("Notify", mock.Anything, n).Return(nil).Once()

	limited := notify.NewRateLimitedNotifier(inner, 0.001, 1)
	require.NoError(t, limited.Notify(context.Background(), n))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, limited.Notify(ctx, n))

	inner.AssertExpectations(t)
}
