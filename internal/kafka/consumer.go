package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"

	"autoblog/config"
	"autoblog/internal/model"
)

// LogConsumer reads shipped entries with manual commits.
type LogConsumer interface {
	// FetchMessage returns the raw message even when decoding fails so the
	// caller can still commit past it.
	FetchMessage(ctx context.Context) (*model.LogEntry, kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaLogConsumer struct {
	reader *kafka.Reader
}

func NewKafkaLogConsumer(lc fx.Lifecycle, cfg *config.Config) (LogConsumer, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.ConsumerGroup,
		Topic:          cfg.Kafka.LogTopic,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		MaxWait:        cfg.Shipping.MaxBatchWait,
		CommitInterval: 0,
		StartOffset:    kafka.FirstOffset,
	})
	c := &kafkaLogConsumer{reader: reader}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Str("group", cfg.Kafka.ConsumerGroup).Msg("Closing Kafka consumer")
			return c.Close()
		},
	})
	log.Info().
		Strs("brokers", cfg.Kafka.Brokers).
		Str("topic", cfg.Kafka.LogTopic).
		Str("group", cfg.Kafka.ConsumerGroup).
		Msg("Kafka consumer initialized")
	return c, nil
}

func (c *kafkaLogConsumer) FetchMessage(ctx context.Context) (*model.LogEntry, kafka.Message, error) {
	msg, err := c.reader.FetchMessage(ctx)
	if err != nil {
		return nil, kafka.Message{}, err
	}
	var entry model.LogEntry
	if err := json.Unmarshal(msg.Value, &entry); err != nil {
		log.Error().Err(err).Int("partition", msg.Partition).Int64("offset", msg.Offset).Msg("Failed to unmarshal Kafka message value")
		return nil, msg, err
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = msg.Time
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	return &entry, msg, nil
}

func (c *kafkaLogConsumer) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	if err := c.reader.CommitMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Int("count", len(msgs)).Msg("Failed to commit Kafka messages")
		return err
	}
	log.Debug().Int("count", len(msgs)).Int64("last_offset", msgs[len(msgs)-1].Offset).Msg("Committed Kafka messages")
	return nil
}

func (c *kafkaLogConsumer) Close() error {
	return c.reader.Close()
}
