package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	LogSourceFile          = "file"
	LogSourceElasticsearch = "elasticsearch"

	DatabaseDriverMemory   = "memory"
	DatabaseDriverMySQL    = "mysql"
	DatabaseDriverPostgres = "postgres"
)

type Config struct {
	Server        ServerConfig
	Log           LogConfig
	Settings      SettingsConfig
	Database      DatabaseConfig
	Kafka         KafkaConfig
	Shipping      ShippingConfig
	Elasticsearch ElasticsearchConfig
}

type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level    string
	FilePath string // Application log file, also what /api/logs tails
	Source   string // "file" or "elasticsearch"
}

// SettingsConfig holds the defaults used until settings are saved once.
type SettingsConfig struct {
	LLMType  string
	ProxyURL string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string // Full postgres DSN, takes precedence over the discrete fields
}

type KafkaConfig struct {
	Brokers       []string
	LogTopic      string
	ConsumerGroup string
}

type ShippingConfig struct {
	Enabled      bool
	Schedule     string
	BatchSize    int
	MaxBatchWait time.Duration
	StatePath    string
}

type ElasticsearchConfig struct {
	Addresses     []string
	Username      string
	Password      string
	LogIndex      string
	BulkWorkers   int           // Number of concurrent goroutines for bulk indexing
	FlushBytes    int           // Flush threshold for bulk indexer
	FlushInterval time.Duration // Flush interval for bulk indexer
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FILE_PATH", "logs/app.log")
	viper.SetDefault("LOG_SOURCE", LogSourceFile)
	viper.SetDefault("LLM_TYPE", "local")
	viper.SetDefault("PROXY_URL", "")
	viper.SetDefault("DATABASE_DRIVER", DatabaseDriverMemory)
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "3306")
	viper.SetDefault("DATABASE_NAME", "autoblog")
	viper.SetDefault("KAFKA_BROKERS", "localhost:9092")
	viper.SetDefault("KAFKA_LOG_TOPIC", "autoblog_logs")
	viper.SetDefault("KAFKA_CONSUMER_GROUP", "autoblog_log_indexer")
	viper.SetDefault("LOG_SHIPPING_ENABLED", false)
	viper.SetDefault("LOG_SHIPPING_SCHEDULE", "*/30 * * * * *") // Every 30 seconds
	viper.SetDefault("LOG_SHIPPING_BATCH_SIZE", 100)
	viper.SetDefault("LOG_SHIPPING_MAX_BATCH_WAIT", "5s")
	viper.SetDefault("LOG_SHIPPING_STATE_PATH", "./log_state.json")
	viper.SetDefault("ELASTICSEARCH_ADDRESSES", "http://localhost:9200")
	viper.SetDefault("ELASTICSEARCH_LOG_INDEX", "autoblog-logs")
	viper.SetDefault("ELASTICSEARCH_BULK_WORKERS", 2)
	viper.SetDefault("ELASTICSEARCH_FLUSH_BYTES", 1048576) // 1MB
	viper.SetDefault("ELASTICSEARCH_FLUSH_INTERVAL", "5s")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("No .env config file read, using environment and defaults")
	}

	var config Config
	config.Server.Port = viper.GetString("SERVER_PORT")

	config.Log.Level = strings.ToLower(viper.GetString("LOG_LEVEL"))
	config.Log.FilePath = viper.GetString("LOG_FILE_PATH")
	config.Log.Source = strings.ToLower(viper.GetString("LOG_SOURCE"))

	config.Settings.LLMType = strings.ToLower(viper.GetString("LLM_TYPE"))
	config.Settings.ProxyURL = viper.GetString("PROXY_URL")

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.URL = viper.GetString("DATABASE_URL")

	// --- Kafka ---
	config.Kafka.Brokers = splitList(viper.GetString("KAFKA_BROKERS"))
	config.Kafka.LogTopic = viper.GetString("KAFKA_LOG_TOPIC")
	config.Kafka.ConsumerGroup = viper.GetString("KAFKA_CONSUMER_GROUP")

	// --- Log shipping ---
	config.Shipping.Enabled = viper.GetBool("LOG_SHIPPING_ENABLED")
	config.Shipping.Schedule = viper.GetString("LOG_SHIPPING_SCHEDULE")
	config.Shipping.BatchSize = viper.GetInt("LOG_SHIPPING_BATCH_SIZE")
	config.Shipping.MaxBatchWait = viper.GetDuration("LOG_SHIPPING_MAX_BATCH_WAIT")
	config.Shipping.StatePath = viper.GetString("LOG_SHIPPING_STATE_PATH")

	// --- Elasticsearch ---
	config.Elasticsearch.Addresses = splitList(viper.GetString("ELASTICSEARCH_ADDRESSES"))
	config.Elasticsearch.Username = viper.GetString("ELASTICSEARCH_USERNAME")
	config.Elasticsearch.Password = viper.GetString("ELASTICSEARCH_PASSWORD")
	config.Elasticsearch.LogIndex = viper.GetString("ELASTICSEARCH_LOG_INDEX")
	config.Elasticsearch.BulkWorkers = viper.GetInt("ELASTICSEARCH_BULK_WORKERS")
	config.Elasticsearch.FlushBytes = viper.GetInt("ELASTICSEARCH_FLUSH_BYTES")
	config.Elasticsearch.FlushInterval = viper.GetDuration("ELASTICSEARCH_FLUSH_INTERVAL")

	log.Info().
		Str("port", config.Server.Port).
		Str("log_source", config.Log.Source).
		Str("database_driver", config.Database.Driver).
		Bool("log_shipping", config.Shipping.Enabled).
		Msg("Config loaded")
	return &config, nil
}

// ConsoleConfig configures the terminal client.
type ConsoleConfig struct {
	APIURL     string
	StartRoute string
	DiagLog    string
	Timeout    time.Duration
}

// NewConsoleConfig reads the console keys. Flags bound into viper by the caller
// override the environment.
func NewConsoleConfig() *ConsoleConfig {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("CONSOLE_API_URL", "http://localhost:8080")
	viper.SetDefault("CONSOLE_START_ROUTE", "/")
	viper.SetDefault("CONSOLE_DIAG_LOG", "logs/console.log")
	viper.SetDefault("CONSOLE_HTTP_TIMEOUT", "0s")

	// The console must not print to the terminal it draws on, so a missing
	// .env is silently ignored here.
	_ = viper.ReadInConfig()

	return &ConsoleConfig{
		APIURL:     strings.TrimRight(viper.GetString("CONSOLE_API_URL"), "/"),
		StartRoute: viper.GetString("CONSOLE_START_ROUTE"),
		DiagLog:    viper.GetString("CONSOLE_DIAG_LOG"),
		Timeout:    viper.GetDuration("CONSOLE_HTTP_TIMEOUT"),
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
