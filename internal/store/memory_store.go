package store

import (
	"context"
	"sync"

	"autoblog/internal/model"
	"autoblog/internal/repository"
)

// MemoryStore keeps every registry in process memory. It backs the
// "memory" database driver and the service tests.
type MemoryStore struct {
	mu          sync.RWMutex
	settings    *model.Settings
	feeds       []model.Feed
	llmConfigs  []model.LLMConfig
	automations []model.Automation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Settings() repository.SettingsRepository      { return memorySettings{s} }
func (s *MemoryStore) Feeds() repository.FeedRepository             { return memoryFeeds{s} }
func (s *MemoryStore) LLMConfigs() repository.LLMConfigRepository   { return memoryLLMConfigs{s} }
func (s *MemoryStore) Automations() repository.AutomationRepository { return memoryAutomations{s} }

type memorySettings struct{ s *MemoryStore }

func (m memorySettings) Get(ctx context.Context) (*model.Settings, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	if m.s.settings == nil {
		return nil, repository.ErrNotFound
	}
	cp := *m.s.settings
	return &cp, nil
}

func (m memorySettings) Save(ctx context.Context, settings *model.Settings) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	settings.ID = model.SettingsID
	cp := *settings
	m.s.settings = &cp
	return nil
}

type memoryFeeds struct{ s *MemoryStore }

func (m memoryFeeds) Create(ctx context.Context, feed *model.Feed) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.feeds = append(m.s.feeds, *feed)
	return nil
}

func (m memoryFeeds) List(ctx context.Context) ([]model.Feed, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return append([]model.Feed{}, m.s.feeds...), nil
}

type memoryLLMConfigs struct{ s *MemoryStore }

func (m memoryLLMConfigs) Create(ctx context.Context, cfg *model.LLMConfig) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.llmConfigs = append(m.s.llmConfigs, *cfg)
	return nil
}

func (m memoryLLMConfigs) List(ctx context.Context) ([]model.LLMConfig, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return append([]model.LLMConfig{}, m.s.llmConfigs...), nil
}

type memoryAutomations struct{ s *MemoryStore }

func (m memoryAutomations) Create(ctx context.Context, automation *model.Automation) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.automations = append(m.s.automations, *automation)
	return nil
}

func (m memoryAutomations) List(ctx context.Context) ([]model.Automation, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return append([]model.Automation{}, m.s.automations...), nil
}
