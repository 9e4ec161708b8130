package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoblog/internal/model"
)

type queuedMessage struct {
	entry *model.LogEntry
	msg   kafkaGo.Message
	err   error
}

type fakeConsumer struct {
	mu        sync.Mutex
	queue     []queuedMessage
	committed []kafkaGo.Message
}

func (c *fakeConsumer) FetchMessage(ctx context.Context) (*model.LogEntry, kafkaGo.Message, error) {
	c.mu.Lock()
	if len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		c.mu.Unlock()
		return next.entry, next.msg, next.err
	}
	c.mu.Unlock()
	<-ctx.Done()
	return nil, kafkaGo.Message{}, ctx.Err()
}

func (c *fakeConsumer) CommitMessages(ctx context.Context, msgs ...kafkaGo.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.committed = append(c.committed, msgs...)
	return nil
}

func (c *fakeConsumer) Close() error { return nil }

type fakeLogStore struct {
	stored []model.LogEntry
	err    error
}

func (s *fakeLogStore) StoreLogs(ctx context.Context, entries []model.LogEntry) error {
	if s.err != nil {
		return s.err
	}
	s.stored = append(s.stored, entries...)
	return nil
}

func (s *fakeLogStore) Close(ctx context.Context) error { return nil }

func newQueued(offset int64, raw string) queuedMessage {
	return queuedMessage{
		entry: &model.LogEntry{Raw: raw, Offset: offset},
		msg:   kafkaGo.Message{Topic: "logs", Offset: offset},
	}
}

func newTestIndexer(consumer *fakeConsumer, store *fakeLogStore, batchSize int) *logIndexerService {
	return &logIndexerService{
		consumer:    consumer,
		logStore:    store,
		batchSize:   batchSize,
		maxWaitTime: 20 * time.Millisecond,
		retryDelay:  time.Millisecond,
	}
}

func TestProcessBatch_StoresThenCommits(t *testing.T) {
	consumer := &fakeConsumer{queue: []queuedMessage{newQueued(0, "a"), newQueued(1, "b")}}
	store := &fakeLogStore{}
	indexer := newTestIndexer(consumer, store, 10)

	require.NoError(t, indexer.processBatch(context.Background()))
	assert.Len(t, store.stored, 2)
	assert.Len(t, consumer.committed, 2)
}

func TestProcessBatch_StoreFailureSkipsCommit(t *testing.T) {
	consumer := &fakeConsumer{queue: []queuedMessage{newQueued(0, "a")}}
	store := &fakeLogStore{err: errors.New("cluster red")}
	indexer := newTestIndexer(consumer, store, 10)

	err := indexer.processBatch(context.Background())
	assert.ErrorIs(t, err, store.err)
	assert.Empty(t, consumer.committed)
}

func TestProcessBatch_CommitsPastUndecodableMessage(t *testing.T) {
	bad := queuedMessage{msg: kafkaGo.Message{Topic: "logs", Offset: 0}, err: errors.New("invalid character")}
	consumer := &fakeConsumer{queue: []queuedMessage{bad, newQueued(1, "ok")}}
	store := &fakeLogStore{}
	indexer := newTestIndexer(consumer, store, 10)

	require.NoError(t, indexer.processBatch(context.Background()))
	assert.Len(t, store.stored, 1)
	assert.Len(t, consumer.committed, 2)
}

func TestProcessBatch_RespectsBatchSize(t *testing.T) {
	consumer := &fakeConsumer{queue: []queuedMessage{newQueued(0, "a"), newQueued(1, "b"), newQueued(2, "c")}}
	store := &fakeLogStore{}
	indexer := newTestIndexer(consumer, store, 2)

	require.NoError(t, indexer.processBatch(context.Background()))
	assert.Len(t, store.stored, 2)
	require.NoError(t, indexer.processBatch(context.Background()))
	assert.Len(t, store.stored, 3)
}

func TestRun_StopsOnCancel(t *testing.T) {
	consumer := &fakeConsumer{queue: []queuedMessage{newQueued(0, "a")}}
	store := &fakeLogStore{}
	indexer := newTestIndexer(consumer, store, 10)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go indexer.Run(ctx, &wg)

	assert.Eventually(t, func() bool {
		consumer.mu.Lock()
		defer consumer.mu.Unlock()
		return len(consumer.committed) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	wg.Wait()
}
