package repository

import (
	"context"
	"errors"

	"autoblog/internal/model"
)

var ErrNotFound = errors.New("record not found")

type SettingsRepository interface {
	// Get returns ErrNotFound until the first Save.
	Get(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, settings *model.Settings) error
}

type FeedRepository interface {
	Create(ctx context.Context, feed *model.Feed) error
	List(ctx context.Context) ([]model.Feed, error)
}

type LLMConfigRepository interface {
	Create(ctx context.Context, cfg *model.LLMConfig) error
	List(ctx context.Context) ([]model.LLMConfig, error)
}

type AutomationRepository interface {
	Create(ctx context.Context, automation *model.Automation) error
	List(ctx context.Context) ([]model.Automation, error)
}
