package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper isolates a test from viper's global state.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, splitList(" a:9092, ,b:9092 "))
	assert.Empty(t, splitList(""))
}

func TestNewConfig_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, LogSourceFile, cfg.Log.Source)
	assert.Equal(t, "logs/app.log", cfg.Log.FilePath)
	assert.Equal(t, DatabaseDriverMemory, cfg.Database.Driver)
	assert.Equal(t, "local", cfg.Settings.LLMType)
	assert.False(t, cfg.Shipping.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Shipping.MaxBatchWait)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestNewConfig_Environment(t *testing.T) {
	resetViper(t)
	t.Setenv("LOG_SOURCE", "Elasticsearch")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("LOG_SHIPPING_ENABLED", "true")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, LogSourceElasticsearch, cfg.Log.Source)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Shipping.Enabled)
}

func TestNewConsoleConfig(t *testing.T) {
	resetViper(t)
	t.Setenv("CONSOLE_API_URL", "http://api.local:9000/")

	cfg := NewConsoleConfig()
	assert.Equal(t, "http://api.local:9000", cfg.APIURL)
	assert.Equal(t, "/", cfg.StartRoute)
	assert.Equal(t, "logs/console.log", cfg.DiagLog)
	assert.Zero(t, cfg.Timeout)
}
