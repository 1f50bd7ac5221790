// Package kafka publishes order change events to a Kafka topic.
// Publishing is best-effort from the caller's point of view: command
// handlers log failures and never surface them, so a broker outage does
// not fail a committed business operation.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"shop/internal/core/ports"

	"github.com/IBM/sarama"
)

// OrderEventPublisher implements ports.OrderEventPublisher on a sarama
// synchronous producer. Events are keyed by order ID, so all events of one
// order land on the same partition in order.
type OrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewOrderEventPublisher creates a publisher with an idempotent sync producer.
func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) (*OrderEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1 // required for idempotence

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &OrderEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}, nil
}

// PublishOrderChanged sends one order change event to the configured topic.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.OrderID),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to send message to kafka",
			"topic", p.topic,
			"event_type", event.EventType,
			"order_id", event.OrderID,
			"error", err,
		)
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.DebugContext(ctx, "order event published",
		"topic", p.topic,
		"event_type", event.EventType,
		"order_id", event.OrderID,
		"partition", partition,
		"offset", offset,
	)

	return nil
}

// Close shuts down the underlying producer.
func (p *OrderEventPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}
