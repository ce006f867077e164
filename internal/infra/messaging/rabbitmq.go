package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrDeliveriesClosed = errs.New("deliveries channel closed")

// RabbitPublisher keeps one connection and channel open and redials after
// the broker drops them.
type RabbitPublisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitPublisher(url, queue string) *RabbitPublisher {
	return &RabbitPublisher{url: url, queue: queue}
}

func (p *RabbitPublisher) Publish(ctx context.Context, msg notification.Message) error {
	body, err := msg.Encode()
	if err != nil {
		return errs.Wrap(err, "encode message")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID.String(),
		Type:         string(msg.Kind),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.reset()
		return errs.Wrap(err, "rabbitmq publish")
	}
	return nil
}

// channel must be called with mu held.
func (p *RabbitPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq dial")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq channel")
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq queue declare")
	}
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *RabbitPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

type RabbitConsumer struct {
	url      string
	queue    string
	prefetch int
	logger   *slog.Logger
}

func NewRabbitConsumer(url, queue string, logger *slog.Logger) *RabbitConsumer {
	return &RabbitConsumer{url: url, queue: queue, prefetch: 50, logger: logger}
}

// Run reconnects with exponential backoff, capped at 30s, until ctx ends.
func (c *RabbitConsumer) Run(ctx context.Context, handle Handler) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.logger.Warn("rabbitmq dial failed", "error", err.Error(), "retry_in", backoff.String())
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn, handle)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Warn("rabbitmq consume loop ended, reconnecting", "error", err.Error())
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *RabbitConsumer) consume(ctx context.Context, conn *amqp.Connection, handle Handler) error {
	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "channel open")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		c.logger.Warn("rabbitmq qos failed", "error", err.Error())
	}
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "queue declare")
	}
	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errs.Wrap(err, "queue consume")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}
			if handleBody(ctx, c.logger, d.Body, handle) {
				_ = d.Ack(false)
			} else {
				// no requeue, a broken mailbox would otherwise spin
				_ = d.Nack(false, false)
			}
		}
	}
}

func (c *RabbitConsumer) Close() error { return nil }

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
