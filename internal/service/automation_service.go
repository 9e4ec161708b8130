package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"autoblog/internal/metrics"
	"autoblog/internal/model"
	"autoblog/internal/repository"
)

// AutomationService stores named schedules. Nothing runs them yet; the
// schedule is parsed so a future runner can trust every stored record.
type AutomationService interface {
	AddAutomation(ctx context.Context, name, schedule string) (*model.Automation, error)
	ListAutomations(ctx context.Context) ([]model.Automation, error)
}

type automationService struct {
	repo   repository.AutomationRepository
	parser cron.Parser
}

func NewAutomationService(repo repository.AutomationRepository) AutomationService {
	return &automationService{
		repo:   repo,
		parser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

func (s *automationService) AddAutomation(ctx context.Context, name, schedule string) (*model.Automation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrInvalidName
	}
	schedule = strings.TrimSpace(schedule)
	if _, err := s.parser.Parse(schedule); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidSchedule, err)
	}

	automation := &model.Automation{
		ID:        uuid.NewString(),
		Name:      name,
		Schedule:  schedule,
		CreatedAt: time.Now().UTC(),
	}
	log.Info().Str("name", automation.Name).Str("schedule", automation.Schedule).Msg("Adding automation")
	if err := s.repo.Create(ctx, automation); err != nil {
		return nil, fmt.Errorf("add automation %q: %w", name, err)
	}
	metrics.Global().RegistryWrites.WithLabelValues("automations").Inc()
	return automation, nil
}

func (s *automationService) ListAutomations(ctx context.Context) ([]model.Automation, error) {
	return s.repo.List(ctx)
}
