package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	LogRequests    *prometheus.CounterVec
	SettingsSaves  prometheus.Counter
	RegistryWrites *prometheus.CounterVec
	ShippedEntries prometheus.Counter
	IndexedEntries prometheus.Counter
}

var (
	once   sync.Once
	global *Metrics
)

func Global() *Metrics {
	once.Do(func() {
		global = &Metrics{
			LogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "autoblog",
				Name:      "log_requests_total",
				Help:      "Log tail requests served, by result",
			}, []string{"result"}),
			SettingsSaves: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "autoblog",
				Name:      "settings_saves_total",
				Help:      "Settings records persisted",
			}),
			RegistryWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "autoblog",
				Name:      "registry_writes_total",
				Help:      "Records added to the feed, llm config and automation registries",
			}, []string{"registry"}),
			ShippedEntries: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "autoblog",
				Name:      "log_entries_shipped_total",
				Help:      "Log entries produced to Kafka",
			}),
			IndexedEntries: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "autoblog",
				Name:      "log_entries_indexed_total",
				Help:      "Log entries handed to the Elasticsearch bulk indexer",
			}),
		}
		prometheus.MustRegister(
			global.LogRequests,
			global.SettingsSaves,
			global.RegistryWrites,
			global.ShippedEntries,
			global.IndexedEntries,
		)
	})
	return global
}
