// Package kafka publishes audit records to a Kafka topic. Records are JSON
// encoded and keyed by their kind so all records of one kind land on the
// same partition.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"custody/internal/core/domain/model/audit"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the slice of kafka.Writer the publisher needs; tests
// substitute a recording fake.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AuditPublisher implements ports.AuditPublisher over a Kafka topic.
type AuditPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewAuditPublisher creates a publisher writing to the given broker and topic.
func NewAuditPublisher(brokerURL, topic string) *AuditPublisher {
	return newAuditPublisherWithWriter(&kafka.Writer{
		Addr:     kafka.TCP(brokerURL),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	})
}

func newAuditPublisherWithWriter(writer messageWriter) *AuditPublisher {
	return &AuditPublisher{
		writer: writer,
		logger: slog.Default().With("component", "kafka_audit_publisher"),
	}
}

// Publish encodes the record as JSON and writes it keyed by record kind.
func (p *AuditPublisher) Publish(ctx context.Context, record audit.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(record.Kind()),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("audit record write failed", "kind", record.Kind(), "error", err)
		return err
	}

	p.logger.Debug("audit record published", "kind", record.Kind())
	return nil
}

// Close shuts down the underlying writer.
func (p *AuditPublisher) Close() error {
	return p.writer.Close()
}
