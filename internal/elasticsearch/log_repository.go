package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/rs/zerolog/log"

	"autoblog/config"
	"autoblog/internal/model"
	"autoblog/internal/repository"
)

type elasticsearchLogRepository struct {
	esTypedClient *elasticsearch.TypedClient
	indexPrefix   string
}

func NewElasticsearchLogRepository(cfg *config.Config) (repository.LogRepository, error) {
	typedClient, err := elasticsearch.NewTypedClient(clientConfig(cfg.Elasticsearch))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create typed Elasticsearch client")
		return nil, err
	}

	return &elasticsearchLogRepository{
		esTypedClient: typedClient,
		indexPrefix:   cfg.Elasticsearch.LogIndex,
	}, nil
}

// Tail returns the raw text of the newest shipped entries, oldest first.
func (r *elasticsearchLogRepository) Tail(ctx context.Context, lines int) ([]string, error) {
	if lines <= 0 {
		return []string{}, nil
	}
	indexPattern := fmt.Sprintf("%s-*", r.indexPrefix)
	desc := sortorder.Desc

	searchRequest := &search.Request{
		Query: &types.Query{MatchAll: &types.MatchAllQuery{}},
		Size:  &lines,
		Sort: []types.SortCombinations{
			types.SortOptions{SortOptions: map[string]types.FieldSort{"@timestamp": {Order: &desc}}},
			types.SortOptions{SortOptions: map[string]types.FieldSort{"offset": {Order: &desc}}},
		},
	}

	res, err := r.esTypedClient.Search().
		Index(indexPattern).
		Request(searchRequest).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch search failed: %w", err)
	}

	out := make([]string, 0, len(res.Hits.Hits))
	for i := len(res.Hits.Hits) - 1; i >= 0; i-- {
		hit := res.Hits.Hits[i]
		if hit.Source_ == nil {
			continue
		}
		var entry model.LogEntry
		if err := json.Unmarshal(hit.Source_, &entry); err != nil {
			log.Error().Err(err).Msg("Error unmarshalling Elasticsearch hit source")
			continue
		}
		out = append(out, entry.Raw)
	}

	log.Debug().Int("requested", lines).Int("returned", len(out)).Msg("Elasticsearch log tail")
	return out, nil
}
