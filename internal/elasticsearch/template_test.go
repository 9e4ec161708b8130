package elasticsearch

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexTemplateBody(t *testing.T) {
	raw, err := indexTemplateBody("autoblog-logs")
	require.NoError(t, err)

	var body struct {
		IndexPatterns []string `json:"index_patterns"`
		Template      struct {
			Mappings struct {
				Properties map[string]map[string]interface{} `json:"properties"`
			} `json:"mappings"`
		} `json:"template"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, []string{"autoblog-logs-*"}, body.IndexPatterns)
	props := body.Template.Mappings.Properties
	assert.Equal(t, "date", props["@timestamp"]["type"])
	assert.Equal(t, "long", props["offset"]["type"])
	assert.Equal(t, "keyword", props["level"]["type"])
}

func TestIndexName(t *testing.T) {
	ts := time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*3600))
	assert.Equal(t, "autoblog-logs-2024-05-02", IndexName("autoblog-logs", ts))
}
