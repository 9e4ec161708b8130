package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"autoblog/config"
	"autoblog/internal/elasticsearch"
	"autoblog/internal/kafka"
	"autoblog/internal/metrics"
	"autoblog/internal/model"
)

// LogIndexerService moves shipped entries from Kafka into Elasticsearch.
type LogIndexerService interface {
	Run(ctx context.Context, wg *sync.WaitGroup)
}

type logIndexerService struct {
	consumer    kafka.LogConsumer
	logStore    elasticsearch.LogStore
	batchSize   int
	maxWaitTime time.Duration
	retryDelay  time.Duration
}

func NewLogIndexerService(
	consumer kafka.LogConsumer,
	logStore elasticsearch.LogStore,
	cfg *config.Config,
) LogIndexerService {
	batchSize := cfg.Shipping.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	maxWait := cfg.Shipping.MaxBatchWait
	if maxWait <= 0 {
		maxWait = 5 * time.Second
	}
	return &logIndexerService{
		consumer:    consumer,
		logStore:    logStore,
		batchSize:   batchSize,
		maxWaitTime: maxWait,
		retryDelay:  time.Second,
	}
}

func (s *logIndexerService) Run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	log.Info().Msg("Starting log indexer loop...")

	for {
		if ctx.Err() != nil {
			log.Info().Msg("Log indexer loop stopping due to context cancellation.")
			return
		}

		err := s.processBatch(ctx)
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) {
			log.Info().Msg("Context cancelled during batch processing.")
			return
		}
		log.Error().Err(err).Msg("Error processing indexer batch")
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.retryDelay):
		}
	}
}

// processBatch collects up to batchSize messages or until maxWaitTime has
// passed, stores the decodable ones and commits all of them. Nothing is
// committed when the store fails, so the batch is redelivered.
func (s *logIndexerService) processBatch(ctx context.Context) error {
	entries := make([]model.LogEntry, 0, s.batchSize)
	messages := make([]kafkaGo.Message, 0, s.batchSize)
	deadline := time.Now().Add(s.maxWaitTime)

	for len(messages) < s.batchSize {
		fetchCtx, cancel := context.WithDeadline(ctx, deadline)
		entry, msg, err := s.consumer.FetchMessage(fetchCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, context.DeadlineExceeded) {
				break
			}
			if msg.Topic != "" {
				// Undecodable message: commit past it with the batch.
				messages = append(messages, msg)
				continue
			}
			return fmt.Errorf("failed to fetch kafka message: %w", err)
		}

		entries = append(entries, *entry)
		messages = append(messages, msg)
	}

	if len(messages) == 0 {
		return nil
	}

	if err := s.logStore.StoreLogs(ctx, entries); err != nil {
		return fmt.Errorf("failed storing logs: %w", err)
	}
	metrics.Global().IndexedEntries.Add(float64(len(entries)))

	if err := s.consumer.CommitMessages(ctx, messages...); err != nil {
		return fmt.Errorf("failed committing kafka messages: %w", err)
	}
	log.Debug().Int("stored", len(entries)).Int("committed", len(messages)).Msg("Indexed and committed batch.")
	return nil
}
