package queue

import (
	"context"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/cambix/currency-conversion-api/internal/logger"
	"github.com/cambix/currency-conversion-api/internal/models"
)

// Publisher writes events to a durable RabbitMQ queue. The connection is
// established lazily on first use and reused; a failed publish drops the
// channel so the next call reconnects.
type Publisher struct {
	mu        sync.Mutex
	url       string
	queueName string
	conn      *amqp.Connection
	ch        *amqp.Channel
}

func NewPublisher(url, queueName string) *Publisher {
	return &Publisher{url: url, queueName: queueName}
}

// QueueName returns the queue this publisher writes to.
func (p *Publisher) QueueName() string {
	return p.queueName
}

// connect dials the broker and declares the durable queue. Callers hold p.mu.
func (p *Publisher) connect() error {
	if p.ch != nil && p.conn != nil && !p.conn.IsClosed() {
		return nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}

	if _, err := ch.QueueDeclare(p.queueName, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return err
	}

	p.conn = conn
	p.ch = ch
	logger.Log.Infow("connected to RabbitMQ", "queue", p.queueName)
	return nil
}

// reset discards the current connection state. Callers hold p.mu.
func (p *Publisher) reset() {
	if p.ch != nil {
		p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
}

// Publish sends a persistent message to the queue.
func (p *Publisher) Publish(ctx context.Context, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connect(); err != nil {
		return err
	}

	err := p.ch.PublishWithContext(ctx, "", p.queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		p.reset()
	}
	return err
}

// Status inspects the queue depth and consumer count. A broken connection is
// reported in the status, not returned as an error.
func (p *Publisher) Status(ctx context.Context) models.QueueStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connect(); err != nil {
		return models.QueueStatus{Connected: false, Error: err.Error()}
	}

	q, err := p.ch.QueueInspect(p.queueName)
	if err != nil {
		p.reset()
		return models.QueueStatus{Connected: false, Error: err.Error()}
	}

	return models.QueueStatus{
		Connected:     true,
		QueueName:     q.Name,
		MessageCount:  q.Messages,
		ConsumerCount: q.Consumers,
	}
}

// Purge removes all pending messages and returns how many were dropped.
func (p *Publisher) Purge(ctx context.Context) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connect(); err != nil {
		return 0, err
	}

	purged, err := p.ch.QueuePurge(p.queueName, false)
	if err != nil {
		p.reset()
		return 0, err
	}
	return purged, nil
}

// Close tears down the broker connection.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}
