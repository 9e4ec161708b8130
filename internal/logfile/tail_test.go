package logfile_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoblog/internal/logfile"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTailRepository_Tail(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		lines    int
		expected []string
	}{
		{
			name:     "Last Two Of Three",
			content:  "a\nb\nc\n",
			lines:    2,
			expected: []string{"b", "c"},
		},
		{
			name:     "Fewer Lines Than Requested",
			content:  "a\nb\n",
			lines:    100,
			expected: []string{"a", "b"},
		},
		{
			name:     "No Trailing Newline",
			content:  "a\nb\nc",
			lines:    2,
			expected: []string{"b", "c"},
		},
		{
			name:     "CRLF Terminators",
			content:  "a\r\nb\r\n",
			lines:    5,
			expected: []string{"a", "b"},
		},
		{
			name:     "Blank Lines Kept",
			content:  "a\n\nb\n",
			lines:    3,
			expected: []string{"a", "", "b"},
		},
		{
			name:     "Empty File",
			content:  "",
			lines:    10,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := logfile.NewTailRepository(writeLog(t, tt.content))

			got, err := repo.Tail(context.Background(), tt.lines)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTailRepository_SpansChunks(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20000; i++ {
		fmt.Fprintf(&b, "line %05d %s\n", i, strings.Repeat("x", 20))
	}
	repo := logfile.NewTailRepository(writeLog(t, b.String()))

	got, err := repo.Tail(context.Background(), 5000)

	require.NoError(t, err)
	require.Len(t, got, 5000)
	assert.True(t, strings.HasPrefix(got[0], "line 15000 "), got[0])
	assert.True(t, strings.HasPrefix(got[4999], "line 19999 "), got[4999])
}

func TestTailRepository_MissingFile(t *testing.T) {
	repo := logfile.NewTailRepository(filepath.Join(t.TempDir(), "missing.log"))

	got, err := repo.Tail(context.Background(), 10)

	assert.Error(t, err)
	assert.Nil(t, got)
}
