package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Message kinds carried in the report_kind header.
const (
	KindBasin   = "basin"
	KindSummary = "summary"
)

// summaryKey keys the whole-report message; basin messages are keyed by basin.
const summaryKey = "summary"

// Publisher produces finished reports to a Kafka topic.
// It implements pipeline.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the given topic.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish writes one message per basin followed by a summary message in a
// single WriteMessages call.
func (p *Publisher) Publish(ctx context.Context, report domain.Report) error {
	msgs, err := reportMessages(report)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish report: %w", err)
	}
	p.logger.Info("report published", "topic", p.writer.Topic, "messages", len(msgs))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// reportMessages serializes each basin report and the full report.
func reportMessages(report domain.Report) ([]kafkago.Message, error) {
	generatedAt := []byte(report.GeneratedAt.Format(time.RFC3339))
	msgs := make([]kafkago.Message, 0, len(report.Basins)+1)

	for _, b := range report.Basins {
		msg, err := serializeToMessage(string(b.Basin), KindBasin, generatedAt, b)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}

	msg, err := serializeToMessage(summaryKey, KindSummary, generatedAt, report)
	if err != nil {
		return nil, err
	}
	return append(msgs, msg), nil
}

func serializeToMessage(key, kind string, generatedAt []byte, v any) (kafkago.Message, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize %s report: %w", kind, err)
	}
	return kafkago.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "report_kind", Value: []byte(kind)},
			{Key: "generated_at", Value: generatedAt},
		},
	}, nil
}
