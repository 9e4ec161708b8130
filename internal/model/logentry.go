package model

import "time"

// LogEntry is one application log line as shipped to Kafka and indexed in
// Elasticsearch. Raw is the verbatim line and is what /api/logs returns.
type LogEntry struct {
	Timestamp  time.Time `json:"@timestamp"`
	Level      string    `json:"level"`
	Message    string    `json:"message"`
	Raw        string    `json:"raw_log"`
	SourceFile string    `json:"source_file"`
	Offset     int64     `json:"offset"`
}
