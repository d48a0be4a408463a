package notifications

import (
	"context"
	"encoding/json"

	"github.com/cambix/currency-conversion-api/internal/logger"
	"github.com/cambix/currency-conversion-api/internal/models"
)

// QueuePublisher writes raw event payloads to the durable queue.
type QueuePublisher interface {
	Publish(ctx context.Context, body []byte) error
}

// Broadcaster delivers payloads to live subscribers.
type Broadcaster interface {
	Broadcast(message []byte)
}

// Notifier fans conversion and rate-change events out to the queue and the
// live subscriber channel. Every delivery is best-effort: failures are logged
// and never surfaced to the caller.
type Notifier struct {
	queue QueuePublisher
	hub   Broadcaster
}

func NewNotifier(queue QueuePublisher, hub Broadcaster) *Notifier {
	return &Notifier{queue: queue, hub: hub}
}

func (n *Notifier) marshal(event models.Event) []byte {
	body, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "type", event.Type, "error", err)
		return nil
	}
	return body
}

func (n *Notifier) publish(ctx context.Context, event models.Event, body []byte) {
	if n.queue == nil {
		logger.Log.Warnw("queue publisher not configured, skipping publish", "type", event.Type)
		return
	}
	if err := n.queue.Publish(ctx, body); err != nil {
		logger.Log.Errorw("failed to publish event to queue", "type", event.Type, "error", err)
	}
}

func (n *Notifier) broadcast(body []byte) {
	if n.hub == nil {
		return
	}
	n.hub.Broadcast(body)
}

// PublishConversion sends a logged conversion to the queue and to live
// subscribers.
func (n *Notifier) PublishConversion(ctx context.Context, data models.ConversionEvent) {
	event := models.NewEvent(models.EventTypeConversion, data)
	body := n.marshal(event)
	if body == nil {
		return
	}
	n.publish(ctx, event, body)
	n.broadcast(body)
}

// BroadcastConversion delivers an unpersisted conversion to live subscribers
// only; the durable queue is reserved for logged conversions.
func (n *Notifier) BroadcastConversion(data models.ConversionEvent) {
	event := models.NewEvent(models.EventTypeConversion, data)
	if body := n.marshal(event); body != nil {
		n.broadcast(body)
	}
}

// PublishRateUpdate sends a rate change to the queue and to live subscribers.
func (n *Notifier) PublishRateUpdate(ctx context.Context, data models.RateEvent) {
	event := models.NewEvent(models.EventTypeRateUpdate, data)
	body := n.marshal(event)
	if body == nil {
		return
	}
	n.publish(ctx, event, body)
	n.broadcast(body)
}
