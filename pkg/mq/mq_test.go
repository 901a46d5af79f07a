package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange  string
	key       string
	published []amqp.Publishing
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchange = exchange
	f.key = key
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

type mailEvent struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("JSON持久化消息", func(t *testing.T) {
		ch := &fakeChannel{}
		p := &Publisher{channel: ch, exchange: "marketplace.events"}

		err := p.Publish(context.Background(), "mail.send", mailEvent{To: "seller@example.com", Subject: "hi"})
		require.NoError(t, err)

		require.Len(t, ch.published, 1)
		assert.Equal(t, "marketplace.events", ch.exchange)
		assert.Equal(t, "mail.send", ch.key)
		assert.Equal(t, "application/json", ch.published[0].ContentType)
		assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)

		var got mailEvent
		require.NoError(t, json.Unmarshal(ch.published[0].Body, &got))
		assert.Equal(t, "seller@example.com", got.To)
	})

	t.Run("发布失败返回错误", func(t *testing.T) {
		ch := &fakeChannel{err: errors.New("channel closed")}
		p := &Publisher{channel: ch, exchange: "marketplace.events"}

		err := p.Publish(context.Background(), "mail.send", mailEvent{})
		assert.ErrorContains(t, err, "channel closed")
	})

	t.Run("无法序列化的消息", func(t *testing.T) {
		p := &Publisher{channel: &fakeChannel{}, exchange: "x"}
		err := p.Publish(context.Background(), "k", make(chan int))
		assert.ErrorContains(t, err, "消息序列化失败")
	})
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch}
	assert.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
