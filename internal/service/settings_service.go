package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"autoblog/config"
	"autoblog/internal/metrics"
	"autoblog/internal/model"
	"autoblog/internal/repository"
)

type SettingsService interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, draft model.SettingsDraft) (*model.Settings, error)
	SetProxyURL(ctx context.Context, proxyURL string) (*model.Settings, error)
}

type settingsService struct {
	repo     repository.SettingsRepository
	defaults model.SettingsDraft
	now      func() time.Time
}

func NewSettingsService(cfg *config.Config, repo repository.SettingsRepository) SettingsService {
	defaults := model.DefaultSettingsDraft()
	if t, err := model.ParseLLMType(cfg.Settings.LLMType); err == nil {
		defaults.LLMType = t
	} else {
		log.Warn().Err(err).Msg("Ignoring LLM_TYPE default")
	}
	defaults.ProxyURL = cfg.Settings.ProxyURL

	return &settingsService{
		repo:     repo,
		defaults: defaults,
		now:      time.Now,
	}
}

// Get returns the saved settings, or the configured defaults before the
// first save.
func (s *settingsService) Get(ctx context.Context) (*model.Settings, error) {
	current, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &model.Settings{
			ID:       model.SettingsID,
			LLMType:  s.defaults.LLMType,
			ProxyURL: s.defaults.ProxyURL,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return current, nil
}

func (s *settingsService) Update(ctx context.Context, draft model.SettingsDraft) (*model.Settings, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return s.save(ctx, draft)
}

func (s *settingsService) SetProxyURL(ctx context.Context, proxyURL string) (*model.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	draft := current.Draft()
	draft.ProxyURL = proxyURL
	return s.save(ctx, draft)
}

func (s *settingsService) save(ctx context.Context, draft model.SettingsDraft) (*model.Settings, error) {
	settings := &model.Settings{
		ID:        model.SettingsID,
		LLMType:   draft.LLMType,
		ProxyURL:  draft.ProxyURL,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("persist settings: %w", err)
	}
	metrics.Global().SettingsSaves.Inc()

	log.Info().
		Str("llm_type", string(settings.LLMType)).
		Str("proxy_url", settings.ProxyURL).
		Msg("Settings saved")
	return settings, nil
}
