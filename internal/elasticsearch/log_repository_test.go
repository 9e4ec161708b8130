package elasticsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoblog/config"
)

func TestTail_SortsNewestFirstAndReturnsOldestFirst(t *testing.T) {
	var body map[string]interface{}
	var path string
	esCfg := newFakeElasticsearch(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{
			"took": 1,
			"timed_out": false,
			"_shards": {"total": 1, "successful": 1, "skipped": 0, "failed": 0},
			"hits": {
				"total": {"value": 2, "relation": "eq"},
				"max_score": null,
				"hits": [
					{"_index": "autoblog-logs-2024-05-01", "_id": "3", "_source": {"raw_log": "third", "offset": 12}},
					{"_index": "autoblog-logs-2024-05-01", "_id": "2", "_source": {"raw_log": "second", "offset": 6}}
				]
			}
		}`))
	})

	repo, err := NewElasticsearchLogRepository(&config.Config{Elasticsearch: esCfg})
	require.NoError(t, err)

	lines, err := repo.Tail(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "third"}, lines)

	assert.True(t, strings.HasSuffix(path, "/autoblog-logs-*/_search"), "path %s", path)
	assert.EqualValues(t, 2, body["size"])
	assert.Equal(t, []interface{}{
		map[string]interface{}{"@timestamp": map[string]interface{}{"order": "desc"}},
		map[string]interface{}{"offset": map[string]interface{}{"order": "desc"}},
	}, body["sort"])
}

func TestTail_NonPositiveLinesSkipsSearch(t *testing.T) {
	called := false
	esCfg := newFakeElasticsearch(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	repo, err := NewElasticsearchLogRepository(&config.Config{Elasticsearch: esCfg})
	require.NoError(t, err)

	lines, err := repo.Tail(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.False(t, called)
}

func TestTail_SearchErrorIsReturned(t *testing.T) {
	esCfg := newFakeElasticsearch(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"index_not_found_exception","reason":"no such index"},"status":404}`))
	})

	repo, err := NewElasticsearchLogRepository(&config.Config{Elasticsearch: esCfg})
	require.NoError(t, err)

	_, err = repo.Tail(context.Background(), 5)
	assert.Error(t, err)
}
