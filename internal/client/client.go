package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"autoblog/internal/dto"
	"autoblog/internal/model"
)

// ErrMissingLogs is returned when a 2xx log response has no logs array.
var ErrMissingLogs = errors.New("response has no logs array")

// Client talks to the autoblog API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for baseURL. A zero timeout means requests only
// end when their context does.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// FetchLogs issues one GET /api/logs. Any non-2xx status, an undecodable
// body or a body without a logs array is an error.
func (c *Client) FetchLogs(ctx context.Context) ([]string, error) {
	url := c.BaseURL + "/api/logs"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("GET %s: status %s", url, resp.Status)
	}

	var body struct {
		Logs *[]string `json:"logs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	if body.Logs == nil {
		return nil, ErrMissingLogs
	}
	return *body.Logs, nil
}

// SaveSettings sends the draft with PUT /api/settings.
func (c *Client) SaveSettings(ctx context.Context, draft model.SettingsDraft) error {
	url := c.BaseURL + "/api/settings"
	b, err := json.Marshal(dto.SettingsRequest{
		LLMType:  string(draft.LLMType),
		ProxyURL: draft.ProxyURL,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("PUT %s: status %s", url, resp.Status)
	}
	return nil
}
