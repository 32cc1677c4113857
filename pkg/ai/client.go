package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"career-hub/pkg/ai/formatters"
)

// Client calls the ai-service chat endpoint.
type Client struct {
	BaseURL         string
	HTTP            *http.Client
	DefaultLanguage string
	// Backoff is the wait before the second attempt; it doubles per retry.
	Backoff time.Duration
}

// NewClient returns a client for the ai-service at baseURL. An empty baseURL
// yields a disabled client.
func NewClient(baseURL, language string) *Client {
	if language == "" {
		language = "english"
	}
	return &Client{
		BaseURL:         strings.TrimRight(baseURL, "/"),
		HTTP:            &http.Client{Timeout: 60 * time.Second},
		DefaultLanguage: language,
		Backoff:         time.Second,
	}
}

func (c *Client) Enabled() bool { return c != nil && c.BaseURL != "" }

// Formatter turns a payload into a structured result via the ai-service.
type Formatter interface {
	Format(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error)
}

func (c *Client) NewSummaryFormatter() Formatter {
	return formatters.NewSummaryFormatter(c.Chat, c.DefaultLanguage)
}

type chatRequest struct {
	Agent string `json:"agent"`
	Input string `json:"input"`
}

type chatResponse struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

// Chat sends input to /v1/chat and returns the agent output.
func (c *Client) Chat(ctx context.Context, input string) (string, error) {
	if !c.Enabled() {
		return "", errors.New("ai-service not configured")
	}
	body, err := json.Marshal(chatRequest{Agent: "auto", Input: input})
	if err != nil {
		return "", err
	}

	resp, err := c.doPostWithRetry(ctx, "/v1/chat", body)
	if err != nil {
		return "", errors.Wrap(err, "ai-service chat")
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read ai-service response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.Unmarshal(rb, &out); err != nil {
		return "", errors.Wrap(err, "decode ai-service response")
	}
	slog.Debug("ai.client: chat completed", "agent", out.Agent, "output_len", len(out.Output))
	return out.Output, nil
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
// Transport errors and 5xx responses are retried.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		switch {
		case err != nil:
			lastErr = err
		case resp.StatusCode >= http.StatusInternalServerError:
			resp.Body.Close()
			lastErr = fmt.Errorf("ai-service returned status %d", resp.StatusCode)
		default:
			return resp, nil
		}
		slog.Warn("ai.client: attempt failed", "attempt", i+1, "error", lastErr)

		// exponential backoff before retrying
		if i < attempts-1 {
			backoff := c.Backoff * time.Duration(1<<i)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}
