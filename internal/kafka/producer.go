package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"

	"autoblog/config"
	"autoblog/internal/model"
)

// LogProducer publishes shipped log entries.
type LogProducer interface {
	Produce(ctx context.Context, logs []model.LogEntry) error
	Close() error
}

type kafkaLogProducer struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaLogProducer(lc fx.Lifecycle, cfg *config.Config) (LogProducer, error) {
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.LogTopic == "" {
		return nil, errors.New("kafka configuration missing")
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.LogTopic,
		Balancer:     &kafka.Hash{},
		BatchSize:    cfg.Shipping.BatchSize,
		BatchTimeout: cfg.Shipping.MaxBatchWait,
		RequiredAcks: kafka.RequireOne,
	}
	p := &kafkaLogProducer{
		writer: writer,
		topic:  cfg.Kafka.LogTopic,
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Closing Kafka producer")
			return p.Close()
		},
	})
	log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.LogTopic).Msg("Kafka producer initialized")
	return p, nil
}

// Produce writes synchronously so the shipper only advances its file offset
// once the batch is acknowledged.
func (p *kafkaLogProducer) Produce(ctx context.Context, logs []model.LogEntry) error {
	if len(logs) == 0 {
		return nil
	}
	messages := make([]kafka.Message, 0, len(logs))
	for _, entry := range logs {
		value, err := json.Marshal(entry)
		if err != nil {
			log.Error().Err(err).Int64("offset", entry.Offset).Msg("Failed to marshal log entry for Kafka")
			continue
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(entry.SourceFile),
			Value: value,
		})
	}
	if len(messages) == 0 {
		log.Warn().Msg("No valid messages to produce.")
		return nil
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("write %d messages to %s: %w", len(messages), p.topic, err)
	}
	log.Debug().Int("message_count", len(messages)).Str("topic", p.topic).Msg("Produced log entries to Kafka")
	return nil
}

func (p *kafkaLogProducer) Close() error {
	return p.writer.Close()
}
