package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/rs/zerolog/log"
)

// indexTemplateBody maps the daily log indexes so that sorting on
// @timestamp and offset works from the first document.
func indexTemplateBody(prefix string) ([]byte, error) {
	body := map[string]interface{}{
		"index_patterns": []string{prefix + "-*"},
		"template": map[string]interface{}{
			"settings": map[string]interface{}{
				"number_of_shards":   1,
				"number_of_replicas": 0,
			},
			"mappings": map[string]interface{}{
				"properties": map[string]interface{}{
					"@timestamp":  map[string]string{"type": "date"},
					"level":       map[string]string{"type": "keyword"},
					"message":     map[string]string{"type": "text"},
					"raw_log":     map[string]interface{}{"type": "text", "index": false},
					"source_file": map[string]string{"type": "keyword"},
					"offset":      map[string]string{"type": "long"},
				},
			},
		},
	}
	return json.Marshal(body)
}

// EnsureIndexTemplate installs or replaces the template for prefix-*.
func EnsureIndexTemplate(ctx context.Context, es *elasticsearch.Client, prefix string) error {
	body, err := indexTemplateBody(prefix)
	if err != nil {
		return err
	}

	req := esapi.IndicesPutIndexTemplateRequest{
		Name: prefix,
		Body: bytes.NewReader(body),
	}
	res, err := req.Do(ctx, es)
	if err != nil {
		return fmt.Errorf("put index template %s: %w", prefix, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("put index template %s: %s", prefix, res.String())
	}
	log.Info().Str("template", prefix).Msg("Elasticsearch index template installed")
	return nil
}
