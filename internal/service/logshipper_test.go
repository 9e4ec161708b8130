package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoblog/config"
	"autoblog/internal/filestate"
	"autoblog/internal/model"
	"autoblog/internal/parser"
)

type fakeProducer struct {
	batches [][]model.LogEntry
	err     error
}

func (p *fakeProducer) Produce(ctx context.Context, entries []model.LogEntry) error {
	if p.err != nil {
		return p.err
	}
	cp := make([]model.LogEntry, len(entries))
	copy(cp, entries)
	p.batches = append(p.batches, cp)
	return nil
}

func (p *fakeProducer) Close() error { return nil }

func (p *fakeProducer) raws() []string {
	var out []string
	for _, b := range p.batches {
		for _, e := range b {
			out = append(out, e.Raw)
		}
	}
	return out
}

func newTestShipper(t *testing.T, batchSize int) (LogShipperService, *fakeProducer, filestate.Manager, string) {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")
	cfg := &config.Config{
		Log:      config.LogConfig{FilePath: logPath},
		Shipping: config.ShippingConfig{BatchSize: batchSize},
	}
	state := filestate.NewManager(filepath.Join(dir, "state.json"))
	producer := &fakeProducer{}
	return NewLogShipperService(cfg, state, parser.NewLogParser(), producer), producer, state, logPath
}

func appendFile(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.WriteString(content)
	require.NoError(t, err)
}

func TestShipLogs_ShipsNewLinesOnce(t *testing.T) {
	shipper, producer, state, logPath := newTestShipper(t, 100)
	appendFile(t, logPath, "a\nb\nc\n")

	require.NoError(t, shipper.ShipLogs(context.Background()))
	assert.Equal(t, []string{"a", "b", "c"}, producer.raws())

	offsets, err := state.Load()
	require.NoError(t, err)
	assert.Equal(t, int64(6), offsets[logPath])

	require.NoError(t, shipper.ShipLogs(context.Background()))
	assert.Len(t, producer.batches, 1)
}

func TestShipLogs_HoldsPartialLine(t *testing.T) {
	shipper, producer, _, logPath := newTestShipper(t, 100)
	appendFile(t, logPath, "first\nsec")

	require.NoError(t, shipper.ShipLogs(context.Background()))
	assert.Equal(t, []string{"first"}, producer.raws())

	appendFile(t, logPath, "ond\n")
	require.NoError(t, shipper.ShipLogs(context.Background()))
	assert.Equal(t, []string{"first", "second"}, producer.raws())
}

func TestShipLogs_SkipsBlankLinesAndCarriageReturns(t *testing.T) {
	shipper, producer, _, logPath := newTestShipper(t, 100)
	appendFile(t, logPath, "one\r\n\n  \ntwo\n")

	require.NoError(t, shipper.ShipLogs(context.Background()))
	assert.Equal(t, []string{"one", "two"}, producer.raws())
	assert.Equal(t, int64(9), producer.batches[0][1].Offset)
}

func TestShipLogs_ResetsOffsetAfterTruncation(t *testing.T) {
	shipper, producer, _, logPath := newTestShipper(t, 100)
	appendFile(t, logPath, "old line one\nold line two\n")
	require.NoError(t, shipper.ShipLogs(context.Background()))

	require.NoError(t, os.WriteFile(logPath, []byte("new\n"), 0o644))
	require.NoError(t, shipper.ShipLogs(context.Background()))

	assert.Equal(t, []string{"old line one", "old line two", "new"}, producer.raws())
}

func TestShipLogs_ProducerFailureKeepsOffset(t *testing.T) {
	shipper, producer, state, logPath := newTestShipper(t, 100)
	appendFile(t, logPath, "a\nb\n")
	producer.err = errors.New("broker unavailable")

	err := shipper.ShipLogs(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, producer.err)

	offsets, err := state.Load()
	require.NoError(t, err)
	assert.Zero(t, offsets[logPath])

	producer.err = nil
	require.NoError(t, shipper.ShipLogs(context.Background()))
	assert.Equal(t, []string{"a", "b"}, producer.raws())
}

func TestShipLogs_FlushesInBatches(t *testing.T) {
	shipper, producer, _, logPath := newTestShipper(t, 2)
	appendFile(t, logPath, "1\n2\n3\n4\n5\n")

	require.NoError(t, shipper.ShipLogs(context.Background()))
	require.Len(t, producer.batches, 3)
	assert.Len(t, producer.batches[0], 2)
	assert.Len(t, producer.batches[1], 2)
	assert.Len(t, producer.batches[2], 1)
}

func TestShipLogs_MissingFile(t *testing.T) {
	shipper, producer, _, _ := newTestShipper(t, 100)

	assert.Error(t, shipper.ShipLogs(context.Background()))
	assert.Empty(t, producer.batches)
}

func TestShipLogs_PlainLinesInheritPreviousTimestamp(t *testing.T) {
	shipper, producer, _, logPath := newTestShipper(t, 100)
	appendFile(t, logPath, `{"level":"error","time":"2024-05-01T10:00:00Z","message":"boom"}`+"\n"+
		"goroutine 1 [running]:\n")

	require.NoError(t, shipper.ShipLogs(context.Background()))
	require.Len(t, producer.batches, 1)
	entries := producer.batches[0]
	require.Len(t, entries, 2)

	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(entries[0].Timestamp))
	assert.True(t, want.Equal(entries[1].Timestamp), "got %s", entries[1].Timestamp)
	assert.Less(t, entries[0].Offset, entries[1].Offset)
}

func TestShipLogs_PlainFirstLineGetsShippingTime(t *testing.T) {
	shipper, producer, _, logPath := newTestShipper(t, 100)
	appendFile(t, logPath, "no time here\n")

	before := time.Now().UTC()
	require.NoError(t, shipper.ShipLogs(context.Background()))
	require.Len(t, producer.raws(), 1)
	assert.False(t, producer.batches[0][0].Timestamp.Before(before.Add(-time.Second)))
}

func TestShipLogs_IdleCycleLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	shipper, _, _, logPath := newTestShipper(t, 100)
	appendFile(t, logPath, "a\n")

	require.NoError(t, shipper.ShipLogs(context.Background()))
	assert.Contains(t, buf.String(), `"level":"info"`)

	buf.Reset()
	require.NoError(t, shipper.ShipLogs(context.Background()))
	assert.NotContains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), "Finished log shipping cycle.")
}
