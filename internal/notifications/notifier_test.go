package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cambix/currency-conversion-api/internal/models"
)

type capturePublisher struct {
	published [][]byte
	err       error
}

func (p *capturePublisher) Publish(ctx context.Context, body []byte) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, body)
	return nil
}

type captureBroadcaster struct {
	messages [][]byte
}

func (b *captureBroadcaster) Broadcast(message []byte) {
	b.messages = append(b.messages, message)
}

func conversionEvent() models.ConversionEvent {
	return models.ConversionEvent{
		ID:              "d8f1c2aa-0000-0000-0000-000000000001",
		FromCurrency:    "USD",
		ToCurrency:      "EUR",
		OriginalAmount:  decimal.RequireFromString("100"),
		ConvertedAmount: decimal.RequireFromString("85.00"),
		Rate:            decimal.RequireFromString("0.85"),
		RateSource:      "manual",
	}
}

func TestNotifier_PublishConversion(t *testing.T) {
	t.Run("delivers to queue and subscribers", func(t *testing.T) {
		queue := &capturePublisher{}
		hub := &captureBroadcaster{}
		n := NewNotifier(queue, hub)

		n.PublishConversion(context.Background(), conversionEvent())

		assert.Len(t, queue.published, 1)
		assert.Len(t, hub.messages, 1)
		assert.Equal(t, queue.published[0], hub.messages[0])

		var event models.Event
		assert.NoError(t, json.Unmarshal(queue.published[0], &event))
		assert.Equal(t, models.EventTypeConversion, event.Type)
		assert.NotEmpty(t, event.Timestamp)
	})

	t.Run("queue failure never blocks the broadcast", func(t *testing.T) {
		queue := &capturePublisher{err: errors.New("broker unreachable")}
		hub := &captureBroadcaster{}
		n := NewNotifier(queue, hub)

		n.PublishConversion(context.Background(), conversionEvent())

		assert.Empty(t, queue.published)
		assert.Len(t, hub.messages, 1)
	})

	t.Run("nil collaborators are tolerated", func(t *testing.T) {
		n := NewNotifier(nil, nil)
		n.PublishConversion(context.Background(), conversionEvent())
	})
}

func TestNotifier_BroadcastConversion(t *testing.T) {
	queue := &capturePublisher{}
	hub := &captureBroadcaster{}
	n := NewNotifier(queue, hub)

	n.BroadcastConversion(conversionEvent())

	assert.Empty(t, queue.published)
	assert.Len(t, hub.messages, 1)
}

func TestNotifier_PublishRateUpdate(t *testing.T) {
	queue := &capturePublisher{}
	hub := &captureBroadcaster{}
	n := NewNotifier(queue, hub)

	n.PublishRateUpdate(context.Background(), models.RateEvent{
		Action:       "update",
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Rate:         decimal.RequireFromString("0.86"),
		Source:       "manual",
	})

	assert.Len(t, queue.published, 1)
	assert.Len(t, hub.messages, 1)

	var event models.Event
	assert.NoError(t, json.Unmarshal(queue.published[0], &event))
	assert.Equal(t, models.EventTypeRateUpdate, event.Type)
}
