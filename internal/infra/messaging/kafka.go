package messaging

import (
	"context"
	"log/slog"

	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/pkg/errs"

	"github.com/IBM/sarama"
)

type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (*KafkaPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, errs.Wrap(err, "create kafka producer")
	}
	return newKafkaPublisher(producer, topic, logger), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, logger: logger}
}

// Publish keys by booking id so every message for one booking lands on the
// same partition, in order.
func (p *KafkaPublisher) Publish(ctx context.Context, msg notification.Message) error {
	body, err := msg.Encode()
	if err != nil {
		return errs.Wrap(err, "encode message")
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(msg.Data.BookingID.String()),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("kind"), Value: []byte(msg.Kind)},
		},
	})
	if err != nil {
		return errs.Wrap(err, "kafka publish")
	}
	p.logger.DebugContext(ctx, "notification published",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"message_id", msg.ID.String())
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

type KafkaConsumer struct {
	group  sarama.ConsumerGroup
	topics []string
	logger *slog.Logger
}

func NewKafkaConsumer(brokers []string, groupID, topic string, logger *slog.Logger) (*KafkaConsumer, error) {
	cfg := sarama.NewConfig()
	cfg.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRoundRobin
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, errs.Wrap(err, "create kafka consumer group")
	}
	return &KafkaConsumer{group: group, topics: []string{topic}, logger: logger}, nil
}

// Run rejoins the group after every rebalance until ctx ends.
func (c *KafkaConsumer) Run(ctx context.Context, handle Handler) error {
	h := &groupHandler{handle: handle, logger: c.logger}
	for {
		if err := c.group.Consume(ctx, c.topics, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errs.Wrap(err, "kafka consume")
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *KafkaConsumer) Close() error {
	return c.group.Close()
}

type groupHandler struct {
	handle Handler
	logger *slog.Logger
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim leaves failed messages unmarked; the next successful mark on
// the partition moves the offset past them.
func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		if handleBody(session.Context(), h.logger, message.Value, h.handle) {
			session.MarkMessage(message, "")
		}
	}
	return nil
}
