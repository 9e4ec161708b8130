package logfile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"autoblog/internal/repository"
)

const readChunk = 64 * 1024

type tailRepository struct {
	path string
}

// NewTailRepository serves log lines straight from the application log file.
func NewTailRepository(path string) repository.LogRepository {
	return &tailRepository{path: path}
}

func (r *tailRepository) Tail(ctx context.Context, lines int) ([]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log file: %w", err)
	}
	return TailLines(ctx, f, info.Size(), lines)
}

// TailLines returns the last n lines of the first size bytes of r, oldest
// first, without line terminators. It reads backwards in chunks so large logs
// are never loaded whole.
func TailLines(ctx context.Context, r io.ReaderAt, size int64, n int) ([]string, error) {
	if n <= 0 || size == 0 {
		return []string{}, nil
	}

	var buf []byte
	pos := size
	for pos > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		readSize := int64(readChunk)
		if pos < readSize {
			readSize = pos
		}
		pos -= readSize

		chunk := make([]byte, readSize)
		if _, err := r.ReadAt(chunk, pos); err != nil && err != io.EOF {
			return nil, fmt.Errorf("read log file at %d: %w", pos, err)
		}
		buf = append(chunk, buf...)

		if bytes.Count(trimFinalNewline(buf), []byte{'\n'}) >= n {
			break
		}
	}

	all := bytes.Split(trimFinalNewline(buf), []byte{'\n'})
	// Unless the whole file was read, the first element is a partial line.
	if pos > 0 {
		all = all[1:]
	}
	if len(all) > n {
		all = all[len(all)-n:]
	}

	out := make([]string, len(all))
	for i, line := range all {
		out[i] = string(bytes.TrimSuffix(line, []byte{'\r'}))
	}
	return out, nil
}

func trimFinalNewline(b []byte) []byte {
	return bytes.TrimSuffix(b, []byte{'\n'})
}
