package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoblog/internal/model"
)

func TestFetchLogs(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected []string
		wantErr  bool
	}{
		{"lines", http.StatusOK, `{"logs":["a","b","c"]}`, []string{"a", "b", "c"}, false},
		{"empty", http.StatusOK, `{"logs":[]}`, []string{}, false},
		{"missing logs field", http.StatusOK, `{"message":"ok"}`, nil, true},
		{"null logs", http.StatusOK, `{"logs":null}`, nil, true},
		{"invalid json", http.StatusOK, `not json`, nil, true},
		{"server error", http.StatusInternalServerError, `{"message":"Error retrieving logs"}`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/logs", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			logs, err := NewClient(srv.URL+"/", 0).FetchLogs(context.Background())
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, logs)
		})
	}
}

func TestFetchLogs_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 0).FetchLogs(context.Background())
	assert.Error(t, err)
}

func TestFetchLogs_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(srv.URL, 0).FetchLogs(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveSettings(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/settings", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, 0).SaveSettings(context.Background(), model.SettingsDraft{LLMType: model.LLMTypeAPI, ProxyURL: "http://x"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"llmType": "api", "proxyUrl": "http://x"}, got)
}

func TestSaveSettings_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, 0).SaveSettings(context.Background(), model.SettingsDraft{LLMType: "remote"})
	assert.Error(t, err)
}
