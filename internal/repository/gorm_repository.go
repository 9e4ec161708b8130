package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"autoblog/internal/model"
)

type gormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) SettingsRepository {
	return &gormSettingsRepository{db: db}
}

func (r *gormSettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	err := r.db.WithContext(ctx).First(&s, model.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &s, nil
}

func (r *gormSettingsRepository) Save(ctx context.Context, settings *model.Settings) error {
	settings.ID = model.SettingsID
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

type gormFeedRepository struct {
	db *gorm.DB
}

func NewGormFeedRepository(db *gorm.DB) FeedRepository {
	return &gormFeedRepository{db: db}
}

func (r *gormFeedRepository) Create(ctx context.Context, feed *model.Feed) error {
	if err := r.db.WithContext(ctx).Create(feed).Error; err != nil {
		return fmt.Errorf("create feed: %w", err)
	}
	return nil
}

func (r *gormFeedRepository) List(ctx context.Context) ([]model.Feed, error) {
	feeds := []model.Feed{}
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&feeds).Error; err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	return feeds, nil
}

type gormLLMConfigRepository struct {
	db *gorm.DB
}

func NewGormLLMConfigRepository(db *gorm.DB) LLMConfigRepository {
	return &gormLLMConfigRepository{db: db}
}

func (r *gormLLMConfigRepository) Create(ctx context.Context, cfg *model.LLMConfig) error {
	if err := r.db.WithContext(ctx).Create(cfg).Error; err != nil {
		return fmt.Errorf("create llm config: %w", err)
	}
	return nil
}

func (r *gormLLMConfigRepository) List(ctx context.Context) ([]model.LLMConfig, error) {
	configs := []model.LLMConfig{}
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("list llm configs: %w", err)
	}
	return configs, nil
}

type gormAutomationRepository struct {
	db *gorm.DB
}

func NewGormAutomationRepository(db *gorm.DB) AutomationRepository {
	return &gormAutomationRepository{db: db}
}

func (r *gormAutomationRepository) Create(ctx context.Context, automation *model.Automation) error {
	if err := r.db.WithContext(ctx).Create(automation).Error; err != nil {
		return fmt.Errorf("create automation: %w", err)
	}
	return nil
}

func (r *gormAutomationRepository) List(ctx context.Context) ([]model.Automation, error) {
	automations := []model.Automation{}
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&automations).Error; err != nil {
		return nil, fmt.Errorf("list automations: %w", err)
	}
	return automations, nil
}
