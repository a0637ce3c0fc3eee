package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/neo-impact-etl/internal/config"
	"github.com/couchcryptid/neo-impact-etl/internal/domain"
	"github.com/couchcryptid/neo-impact-etl/internal/observability"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes derived hazardous-asteroid records to the sink topic,
// one message per record, keyed by asteroid ID.
type Writer struct {
	writer  *kafkago.Writer
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, metrics: metrics, logger: logger}
}

// PublishResults serializes and publishes the whole result set in a single
// WriteMessages call for efficiency.
func (w *Writer) PublishResults(ctx context.Context, results domain.ResultSet) error {
	if len(results) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(results))
	for i := range results {
		msg, err := serializeToMessage(results[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish results: %w", err)
	}
	w.metrics.RecordsPublished.Add(float64(len(msgs)))
	w.logger.Info("results published", "records", len(msgs), "topic", w.writer.Topic)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a HazardousAsteroid into a Kafka message.
func serializeToMessage(rec domain.HazardousAsteroid) (kafkago.Message, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize record %s: %w", rec.ID, err)
	}
	return kafkago.Message{
		Key:   []byte(rec.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "potential_impact", Value: []byte(strconv.FormatBool(rec.PotentialImpact))},
			{Key: "retrieved_at", Value: []byte(rec.RetrievedAt.Format(time.RFC3339))},
		},
	}, nil
}
