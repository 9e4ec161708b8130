package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"autoblog/config"
	"autoblog/internal/filestate"
	"autoblog/internal/kafka"
	"autoblog/internal/metrics"
	"autoblog/internal/model"
	"autoblog/internal/parser"
)

// LogShipperService ships new lines of the application log to Kafka.
type LogShipperService interface {
	ShipLogs(ctx context.Context) error
}

type logShipperService struct {
	parser      parser.LogParser
	producer    kafka.LogProducer
	stateMgr    filestate.Manager
	filePath    string
	batchSize   int
	processLock sync.Mutex
}

func NewLogShipperService(
	cfg *config.Config,
	stateMgr filestate.Manager,
	parser parser.LogParser,
	producer kafka.LogProducer,
) LogShipperService {
	batchSize := cfg.Shipping.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	return &logShipperService{
		parser:    parser,
		producer:  producer,
		stateMgr:  stateMgr,
		filePath:  cfg.Log.FilePath,
		batchSize: batchSize,
	}
}

// ShipLogs sends every complete line written since the previous run. A run
// that overlaps a still-running one is skipped.
func (s *logShipperService) ShipLogs(ctx context.Context) error {
	if !s.processLock.TryLock() {
		log.Warn().Msg("Log shipping already in progress, skipping run.")
		return nil
	}
	defer s.processLock.Unlock()

	startTime := time.Now()
	offsets, err := s.stateMgr.Load()
	if err != nil {
		return fmt.Errorf("failed to load shipping state: %w", err)
	}

	lastOffset := offsets[s.filePath]
	newOffset, shipped, shipErr := s.shipFile(ctx, lastOffset)
	if newOffset != lastOffset {
		offsets[s.filePath] = newOffset
		if err := s.stateMgr.Save(offsets); err != nil {
			return fmt.Errorf("failed to save shipping state: %w", err)
		}
	}
	if shipErr != nil {
		return shipErr
	}

	// Idle cycles stay at debug so they are not shipped on the next run.
	evt := log.Info()
	if shipped == 0 {
		evt = log.Debug()
	}
	evt.
		Str("file", s.filePath).
		Int("entries_shipped", shipped).
		Int64("offset", newOffset).
		Dur("duration", time.Since(startTime)).
		Msg("Finished log shipping cycle.")
	return nil
}

// shipFile returns the offset up to which every line has been acknowledged
// by Kafka, which is what the next run resumes from.
func (s *logShipperService) shipFile(ctx context.Context, lastOffset int64) (int64, int, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		return lastOffset, 0, fmt.Errorf("failed to open log file %s: %w", s.filePath, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return lastOffset, 0, fmt.Errorf("failed to stat log file %s: %w", s.filePath, err)
	}
	if info.Size() < lastOffset {
		log.Warn().Str("file", s.filePath).Int64("last_offset", lastOffset).Int64("current_size", info.Size()).Msg("Log file truncated or rotated, resetting offset.")
		lastOffset = 0
	}
	if _, err := file.Seek(lastOffset, io.SeekStart); err != nil {
		return lastOffset, 0, fmt.Errorf("failed to seek %s to offset %d: %w", s.filePath, lastOffset, err)
	}

	reader := bufio.NewReader(file)
	committed := lastOffset
	cursor := lastOffset
	shipped := 0
	var lastTimestamp time.Time
	batch := make([]model.LogEntry, 0, s.batchSize)

	flush := func() error {
		if len(batch) > 0 {
			if err := s.producer.Produce(ctx, batch); err != nil {
				return fmt.Errorf("kafka produce error: %w", err)
			}
			shipped += len(batch)
			metrics.Global().ShippedEntries.Add(float64(len(batch)))
			batch = batch[:0]
		}
		committed = cursor
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return committed, shipped, err
		}

		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			// A line without its newline is still being written.
			break
		}
		if err != nil {
			return committed, shipped, fmt.Errorf("error reading %s: %w", s.filePath, err)
		}

		lineStart := cursor
		cursor += int64(len(line))
		text := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		entry, err := s.parser.Parse(text, s.filePath, lineStart)
		if errors.Is(err, parser.ErrEmptyLine) {
			continue
		}
		if err != nil {
			log.Warn().Err(err).Int64("offset", lineStart).Msg("Skipping unparseable log line")
			continue
		}
		// Lines without a time of their own (panics, stack traces) belong to
		// the entry before them; offset keeps them ordered.
		if entry.Timestamp.IsZero() {
			entry.Timestamp = lastTimestamp
			if entry.Timestamp.IsZero() {
				entry.Timestamp = time.Now().UTC()
			}
		}
		lastTimestamp = entry.Timestamp
		batch = append(batch, *entry)

		if len(batch) >= s.batchSize {
			if err := flush(); err != nil {
				return committed, shipped, err
			}
		}
	}

	if err := flush(); err != nil {
		return committed, shipped, err
	}
	return committed, shipped, nil
}
