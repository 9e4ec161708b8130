package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"autoblog/internal/metrics"
	"autoblog/internal/model"
	"autoblog/internal/repository"
)

type LLMConfigService interface {
	AddConfig(ctx context.Context, name, llmType string) (*model.LLMConfig, error)
	ListConfigs(ctx context.Context) ([]model.LLMConfig, error)
}

type llmConfigService struct {
	repo repository.LLMConfigRepository
}

func NewLLMConfigService(repo repository.LLMConfigRepository) LLMConfigService {
	return &llmConfigService{repo: repo}
}

func (s *llmConfigService) AddConfig(ctx context.Context, name, llmType string) (*model.LLMConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrInvalidName
	}
	t, err := model.ParseLLMType(strings.ToLower(strings.TrimSpace(llmType)))
	if err != nil {
		return nil, err
	}

	cfg := &model.LLMConfig{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      t,
		CreatedAt: time.Now().UTC(),
	}
	log.Info().Str("name", cfg.Name).Str("type", string(cfg.Type)).Msg("Adding LLM configuration")
	if err := s.repo.Create(ctx, cfg); err != nil {
		return nil, fmt.Errorf("add llm config %q: %w", name, err)
	}
	metrics.Global().RegistryWrites.WithLabelValues("llm_configs").Inc()
	return cfg, nil
}

func (s *llmConfigService) ListConfigs(ctx context.Context) ([]model.LLMConfig, error) {
	return s.repo.List(ctx)
}
