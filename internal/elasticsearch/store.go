package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"autoblog/config"
	"autoblog/internal/model"
)

// LogStore indexes shipped log entries.
type LogStore interface {
	StoreLogs(ctx context.Context, logs []model.LogEntry) error
	Close(ctx context.Context) error
}

type elasticLogStore struct {
	client          *elasticsearch.Client
	indexPrefix     string
	numWorkers      int
	flushBytes      int
	flushInterval   time.Duration
	countSuccessful uint64
	countFailed     uint64
}

func newTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConnsPerHost:   10,
		ResponseHeaderTimeout: 10 * time.Second,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
	}
}

func clientConfig(cfg config.ElasticsearchConfig) elasticsearch.Config {
	return elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
		Transport: newTransport(),
	}
}

func NewElasticLogStore(lc fx.Lifecycle, cfg *config.Config) (LogStore, error) {
	if len(cfg.Elasticsearch.Addresses) == 0 {
		return nil, errors.New("elasticsearch configuration missing")
	}

	var esClient *elasticsearch.Client
	operation := func() error {
		var err error
		esClient, err = elasticsearch.NewClient(clientConfig(cfg.Elasticsearch))
		if err != nil {
			log.Warn().Err(err).Msg("Attempt failed: error creating the Elasticsearch client")
			return err
		}

		res, err := esClient.Info(esClient.Info.WithContext(context.Background()))
		if err != nil {
			log.Warn().Err(err).Msg("Attempt failed: Elasticsearch Info() call")
			return err
		}
		defer res.Body.Close()
		if res.IsError() {
			err := fmt.Errorf("elasticsearch Info() returned error status: %s", res.Status())
			log.Warn().Err(err).Msg("Attempt failed: Elasticsearch ping returned error status")
			return err
		}
		log.Info().Msg("Elasticsearch client initialized and connection verified")
		return nil
	}

	connectBackoff := backoff.NewExponentialBackOff()
	connectBackoff.InitialInterval = 2 * time.Second
	connectBackoff.MaxInterval = 15 * time.Second
	connectBackoff.MaxElapsedTime = 90 * time.Second

	log.Info().Strs("addresses", cfg.Elasticsearch.Addresses).Msg("Connecting to Elasticsearch with retries...")
	if err := backoff.Retry(operation, connectBackoff); err != nil {
		return nil, fmt.Errorf("connect to elasticsearch: %w", err)
	}

	templateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := EnsureIndexTemplate(templateCtx, esClient, cfg.Elasticsearch.LogIndex); err != nil {
		log.Warn().Err(err).Msg("Could not install index template, relying on dynamic mapping")
	}
	cancel()

	store := newElasticLogStore(esClient, cfg.Elasticsearch)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Closing Elasticsearch log store...")
			return store.Close(ctx)
		},
	})

	return store, nil
}

func newElasticLogStore(client *elasticsearch.Client, cfg config.ElasticsearchConfig) *elasticLogStore {
	return &elasticLogStore{
		client:        client,
		indexPrefix:   cfg.LogIndex,
		numWorkers:    cfg.BulkWorkers,
		flushBytes:    cfg.FlushBytes,
		flushInterval: cfg.FlushInterval,
	}
}

// StoreLogs indexes one batch and waits for Elasticsearch to answer for every
// item. A nil error means the whole batch was accepted.
func (s *elasticLogStore) StoreLogs(ctx context.Context, logs []model.LogEntry) error {
	if len(logs) == 0 {
		return nil
	}

	var batchFailed, flushErrors uint64
	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client:        s.client,
		NumWorkers:    s.numWorkers,
		FlushBytes:    s.flushBytes,
		FlushInterval: s.flushInterval,
		OnError: func(ctx context.Context, err error) {
			atomic.AddUint64(&flushErrors, 1)
			log.Error().Err(err).Msg("BulkIndexer error")
		},
	})
	if err != nil {
		return fmt.Errorf("create bulk indexer: %w", err)
	}

	for _, entry := range logs {
		data, err := json.Marshal(entry)
		if err != nil {
			log.Error().Err(err).Msg("Failed to marshal log entry for Elasticsearch")
			atomic.AddUint64(&batchFailed, 1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action: "index",
			Index:  IndexName(s.indexPrefix, entry.Timestamp),
			Body:   bytes.NewReader(data),
			OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
				atomic.AddUint64(&s.countSuccessful, 1)
			},
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				atomic.AddUint64(&batchFailed, 1)
				if err != nil {
					log.Error().Err(err).Msg("Bulk index item failed")
					return
				}
				log.Error().Str("type", res.Error.Type).Str("reason", res.Error.Reason).Msg("Bulk index item rejected")
			},
		})
		if err != nil {
			log.Error().Err(err).Msg("Failed to add item to BulkIndexer")
			atomic.AddUint64(&batchFailed, 1)
		}
	}

	closeErr := bi.Close(ctx)
	failed := atomic.LoadUint64(&batchFailed)
	atomic.AddUint64(&s.countFailed, failed)
	log.Debug().
		Int("count", len(logs)).
		Uint64("failed", failed).
		Uint64("flushed", bi.Stats().NumFlushed).
		Msg("Indexed log batch in Elasticsearch")

	if closeErr != nil {
		return fmt.Errorf("flush bulk indexer: %w", closeErr)
	}
	if atomic.LoadUint64(&flushErrors) > 0 {
		return errors.New("bulk request to Elasticsearch failed")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d log entries failed bulk indexing", failed, len(logs))
	}
	return nil
}

func (s *elasticLogStore) Close(ctx context.Context) error {
	log.Info().
		Uint64("indexed", atomic.LoadUint64(&s.countSuccessful)).
		Uint64("failed", atomic.LoadUint64(&s.countFailed)).
		Msg("Elasticsearch log store final stats")
	return nil
}

// IndexName returns the daily index for a log entry, e.g. "autoblog-logs-2024-05-01".
func IndexName(prefix string, ts time.Time) string {
	if ts.IsZero() {
		ts = time.Now()
	}
	return fmt.Sprintf("%s-%s", prefix, ts.UTC().Format("2006-01-02"))
}
