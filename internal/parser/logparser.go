package parser

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"autoblog/internal/model"
	"autoblog/internal/util"
)

var ErrEmptyLine = errors.New("empty log line")

// LogParser turns one log line into an entry. Timestamp is left zero when
// the line does not carry its own time.
type LogParser interface {
	Parse(line string, sourceFile string, offset int64) (*model.LogEntry, error)
}

type jsonLogParser struct {
	levelRegex *regexp.Regexp
}

// NewLogParser reads zerolog JSON lines and falls back to plain text for
// anything else written to the log file.
func NewLogParser() LogParser {
	return &jsonLogParser{
		levelRegex: regexp.MustCompile(`(?i)\b(trace|debug|info|warn|warning|error|fatal|panic)\b`),
	}
}

func (p *jsonLogParser) Parse(line string, sourceFile string, offset int64) (*model.LogEntry, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, ErrEmptyLine
	}

	entry := &model.LogEntry{
		Raw:        line,
		SourceFile: sourceFile,
		Offset:     offset,
	}

	if strings.HasPrefix(trimmed, "{") {
		var fields map[string]interface{}
		if err := json.Unmarshal([]byte(trimmed), &fields); err == nil {
			p.fillFromJSON(entry, fields)
			return entry, nil
		}
		log.Trace().Str("line", line).Msg("Brace-prefixed log line is not JSON, treating as text")
	}

	entry.Message = trimmed
	entry.Level = "UNKNOWN"
	if m := p.levelRegex.FindStringSubmatch(trimmed); m != nil {
		entry.Level = normalizeLevel(m[1])
	}
	return entry, nil
}

func (p *jsonLogParser) fillFromJSON(entry *model.LogEntry, fields map[string]interface{}) {
	if raw, ok := fields["time"]; ok {
		if ts, err := util.ParseTimeValue(raw); err == nil {
			entry.Timestamp = ts
		}
	}

	entry.Level = "UNKNOWN"
	if lvl, ok := fields["level"].(string); ok && lvl != "" {
		entry.Level = normalizeLevel(lvl)
	}
	if msg, ok := fields["message"].(string); ok {
		entry.Message = msg
	}
}

func normalizeLevel(level string) string {
	level = strings.ToUpper(level)
	if level == "WARNING" {
		return "WARN"
	}
	return level
}
