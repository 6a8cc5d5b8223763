package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"grubdash/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(
	_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing,
) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher(ch, "grubdash.orders")
	event := order.ChangedEvent{
		OrderID:    "7",
		Status:     order.Preparing,
		Change:     order.ChangeUpdated,
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, p.Publish(t.Context(), event))

	assert.Equal(t, "grubdash.orders", ch.exchange)
	assert.Equal(t, "order.updated", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
	assert.Equal(t, "7", decoded["orderId"])
	assert.Equal(t, "preparing", decoded["status"])
	assert.Equal(t, "updated", decoded["change"])
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := newPublisher(ch, "x")

	err := p.Publish(t.Context(), order.ChangedEvent{OrderID: "1", Change: order.ChangeDeleted})

	require.EqualError(t, err, "channel closed")
	assert.Equal(t, "order.deleted", ch.key)
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}

	require.NoError(t, newPublisher(ch, "x").Close())
	assert.True(t, ch.closed)
}
