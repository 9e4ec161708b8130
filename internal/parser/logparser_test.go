package parser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoblog/internal/parser"
)

func TestLogParser_Parse(t *testing.T) {
	logParser := parser.NewLogParser()

	tests := []struct {
		name          string
		line          string
		expectLevel   string
		expectMessage string
		expectTime    time.Time
	}{
		{
			name:          "Zerolog JSON Line",
			line:          `{"level":"info","time":"2024-05-01T10:00:00Z","message":"Starting HTTP server on port 8080"}`,
			expectLevel:   "INFO",
			expectMessage: "Starting HTTP server on port 8080",
			expectTime:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:          "Zerolog JSON With Unix Time",
			line:          `{"level":"error","time":1714557600,"message":"Error retrieving logs"}`,
			expectLevel:   "ERROR",
			expectMessage: "Error retrieving logs",
			expectTime:    time.Unix(1714557600, 0).UTC(),
		},
		{
			name:          "Zerolog JSON Without Level",
			line:          `{"time":"2024-05-01T10:00:00+02:00","message":"no level"}`,
			expectLevel:   "UNKNOWN",
			expectMessage: "no level",
			expectTime:    time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			name:          "Plain Text With Level Word",
			line:          "2024/05/01 10:00:00 WARNING disk almost full",
			expectLevel:   "WARN",
			expectMessage: "2024/05/01 10:00:00 WARNING disk almost full",
		},
		{
			name:          "Broken JSON Treated As Text",
			line:          `{"level":"info",`,
			expectLevel:   "INFO",
			expectMessage: `{"level":"info",`,
		},
		{
			name:          "Zerolog JSON Without Time",
			line:          `{"level":"debug","message":"tick"}`,
			expectLevel:   "DEBUG",
			expectMessage: "tick",
		},
		{
			name:          "Plain Text Without Level",
			line:          "panicking is not a level",
			expectLevel:   "UNKNOWN",
			expectMessage: "panicking is not a level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := logParser.Parse(tt.line, "logs/app.log", 42)

			require.NoError(t, err)
			require.NotNil(t, entry)
			assert.Equal(t, tt.expectLevel, entry.Level)
			assert.Equal(t, tt.expectMessage, entry.Message)
			assert.Equal(t, tt.line, entry.Raw)
			assert.Equal(t, "logs/app.log", entry.SourceFile)
			assert.Equal(t, int64(42), entry.Offset)
			if tt.expectTime.IsZero() {
				assert.True(t, entry.Timestamp.IsZero(), "line carries no time, got %s", entry.Timestamp)
			} else {
				assert.True(t, tt.expectTime.Equal(entry.Timestamp), "got %s", entry.Timestamp)
			}
		})
	}
}

func TestLogParser_EmptyLine(t *testing.T) {
	logParser := parser.NewLogParser()

	for _, line := range []string{"", "   ", "\t"} {
		entry, err := logParser.Parse(line, "logs/app.log", 0)

		assert.ErrorIs(t, err, parser.ErrEmptyLine)
		assert.Nil(t, entry)
	}
}
