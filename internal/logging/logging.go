package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"autoblog/config"
)

// Setup points the global zerolog logger at stdout and the application log
// file. The returned file must be closed on shutdown.
func Setup(cfg config.LogConfig) (*os.File, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	f, err := OpenFile(cfg.FilePath)
	if err != nil {
		return nil, err
	}

	log.Logger = zerolog.New(io.MultiWriter(os.Stdout, f)).With().Timestamp().Logger()
	return f, nil
}

// OpenFile opens path for appending, creating parent directories.
func OpenFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, nil
}
