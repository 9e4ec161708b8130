package filestate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// Offsets maps a log file path to the byte offset already shipped.
type Offsets map[string]int64

// Manager persists shipping offsets between runs.
type Manager interface {
	Load() (Offsets, error)
	Save(offsets Offsets) error
	Path() string
}

type jsonFileManager struct {
	path string
	mu   sync.RWMutex
}

func NewManager(path string) Manager {
	return &jsonFileManager{path: path}
}

// Load returns an empty map when the state file does not exist yet or is empty.
func (m *jsonFileManager) Load() (Offsets, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := os.ReadFile(m.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info().Str("file", m.path).Msg("No shipping state yet, starting from the beginning")
		return Offsets{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file %s: %w", m.path, err)
	}
	if len(data) == 0 {
		return Offsets{}, nil
	}

	offsets := Offsets{}
	if err := json.Unmarshal(data, &offsets); err != nil {
		return nil, fmt.Errorf("decode state file %s: %w", m.path, err)
	}
	log.Debug().Str("file", m.path).Int("files_tracked", len(offsets)).Msg("Loaded shipping state")
	return offsets, nil
}

// Save writes through a temp file and rename so a crash never leaves a
// half-written state file.
func (m *jsonFileManager) Save(offsets Offsets) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.MarshalIndent(offsets, "", "  ")
	if err != nil {
		return fmt.Errorf("encode shipping state: %w", err)
	}

	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state directory: %w", err)
		}
	}

	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace state file: %w", err)
	}
	log.Debug().Str("file", m.path).Int("files_tracked", len(offsets)).Msg("Saved shipping state")
	return nil
}

func (m *jsonFileManager) Path() string {
	return m.path
}
