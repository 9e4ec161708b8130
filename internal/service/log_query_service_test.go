package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoblog/internal/dto"
)

type fakeLogRepository struct {
	lines     []string
	err       error
	requested int
}

func (r *fakeLogRepository) Tail(ctx context.Context, lines int) ([]string, error) {
	r.requested = lines
	return r.lines, r.err
}

func TestTailLogs_ClampsLineCount(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		expected  int
	}{
		{"zero uses default", 0, dto.DefaultLogLines},
		{"negative uses default", -5, dto.DefaultLogLines},
		{"within range", 25, 25},
		{"capped", dto.MaxLogLines + 1, dto.MaxLogLines},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeLogRepository{lines: []string{"a"}}
			_, err := NewLogQueryService(repo).TailLogs(context.Background(), dto.LogTailRequest{Lines: tt.requested})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, repo.requested)
		})
	}
}

func TestTailLogs_NilBecomesEmpty(t *testing.T) {
	resp, err := NewLogQueryService(&fakeLogRepository{}).TailLogs(context.Background(), dto.LogTailRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Logs)
	assert.Empty(t, resp.Logs)
}

func TestTailLogs_PropagatesError(t *testing.T) {
	repo := &fakeLogRepository{err: errors.New("permission denied")}
	resp, err := NewLogQueryService(repo).TailLogs(context.Background(), dto.LogTailRequest{Lines: 10})
	assert.Error(t, err)
	assert.Nil(t, resp)
}
