package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"paysecure-gateway/config"
	"paysecure-gateway/internal/core/domain"

	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer is the subset of *kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher on a Kafka topic. Messages are
// keyed by sender id so one sender's events stay ordered within a partition.
type Publisher struct {
	writer Writer
	topic  string
	log    zerolog.Logger
}

// NewPublisher creates an async Kafka publisher for cfg.Topic.
func NewPublisher(cfg config.KafkaConfig, log zerolog.Logger) (*Publisher, error) {
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka topic is not configured")
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are not configured")
	}

	topic := cfg.Topic
	writer := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		Async:                  true,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafkago.Message, err error) {
			if err != nil {
				log.Error().Err(err).Str("topic", topic).Int("count", len(messages)).Msg("async kafka write failed")
			}
		},
	}

	return newPublisher(writer, topic, log), nil
}

func newPublisher(w Writer, topic string, log zerolog.Logger) *Publisher {
	return &Publisher{writer: w, topic: topic, log: log}
}

// PublishTransaction emits a settlement event.
func (p *Publisher) PublishTransaction(ctx context.Context, event domain.TransactionEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal transaction event: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(event.SenderID.String()),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte("transaction." + string(event.Status))},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}

	p.log.Debug().Str("topic", p.topic).Str("tx_id", event.TransactionID.String()).Msg("transaction event published")
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *Publisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer for %s: %w", p.topic, err)
	}
	return nil
}

// NoopPublisher drops every event. Used when kafka.enabled is false.
type NoopPublisher struct{}

func (NoopPublisher) PublishTransaction(context.Context, domain.TransactionEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
