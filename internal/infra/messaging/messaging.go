// Package messaging moves notification messages from the outbox relay to
// the mail sender, either in-process or through RabbitMQ or Kafka.
package messaging

import (
	"context"
	"log/slog"

	"gaming-zone-booking/internal/domain/notification"
)

const (
	DriverDirect   = "direct"
	DriverRabbitMQ = "rabbitmq"
	DriverKafka    = "kafka"
)

// Handler processes one delivered message.
type Handler func(ctx context.Context, msg notification.Message) error

// Consumer runs until ctx is cancelled.
type Consumer interface {
	Run(ctx context.Context, handle Handler) error
	Close() error
}

// DirectPublisher skips the broker and sends immediately.
type DirectPublisher struct {
	sender notification.Sender
}

func NewDirectPublisher(sender notification.Sender) *DirectPublisher {
	return &DirectPublisher{sender: sender}
}

func (p *DirectPublisher) Publish(ctx context.Context, msg notification.Message) error {
	return p.sender.Send(ctx, msg)
}

// handleBody decodes and dispatches a raw payload. It reports whether the
// message should be acknowledged; payloads that can never decode are dropped.
func handleBody(ctx context.Context, logger *slog.Logger, body []byte, handle Handler) bool {
	msg, err := notification.Decode(body)
	if err != nil {
		logger.Error("dropping undecodable notification", "error", err.Error())
		return true
	}
	if err := handle(ctx, msg); err != nil {
		logger.Warn("notification handler failed",
			"message_id", msg.ID.String(),
			"kind", string(msg.Kind),
			"error", err.Error())
		return false
	}
	return true
}
