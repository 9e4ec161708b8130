package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"autoblog/internal/metrics"
	"autoblog/internal/model"
	"autoblog/internal/repository"
)

// FeedService keeps the list of RSS feeds. Fetching them is not implemented.
type FeedService interface {
	AddFeed(ctx context.Context, rawURL string) (*model.Feed, error)
	ListFeeds(ctx context.Context) ([]model.Feed, error)
}

type feedService struct {
	repo repository.FeedRepository
}

func NewFeedService(repo repository.FeedRepository) FeedService {
	return &feedService{repo: repo}
}

func (s *feedService) AddFeed(ctx context.Context, rawURL string) (*model.Feed, error) {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidFeedURL, rawURL)
	}

	feed := &model.Feed{
		ID:        uuid.NewString(),
		URL:       u.String(),
		CreatedAt: time.Now().UTC(),
	}
	log.Info().Str("url", feed.URL).Msg("Adding RSS feed")
	if err := s.repo.Create(ctx, feed); err != nil {
		return nil, err
	}
	metrics.Global().RegistryWrites.WithLabelValues("feeds").Inc()
	return feed, nil
}

func (s *feedService) ListFeeds(ctx context.Context) ([]model.Feed, error) {
	log.Debug().Msg("Retrieving RSS feeds")
	return s.repo.List(ctx)
}
