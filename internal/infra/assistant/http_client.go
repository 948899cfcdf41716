// Package assistant talks to the remote text-generation endpoint backing the
// in-app advice assistant.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"agriconnect/config"
	"agriconnect/internal/domain/service"

	"github.com/pkg/errors"
)

// FallbackReply is returned whenever the endpoint is unreachable or
// misbehaves. The assistant is advisory, so a dead collaborator must never
// turn into a request failure.
const FallbackReply = "AI is not available right now"

type httpClient struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

type askRequest struct {
	Prompt string `json:"prompt"`
}

type askResponse struct {
	Reply string `json:"reply"`
}

// NewHTTPClient creates an AssistantService backed by the configured
// text-generation endpoint.
func NewHTTPClient(cfg *config.Config, logger *slog.Logger) service.AssistantService {
	return &httpClient{
		endpoint: cfg.Remote.AssistantURL,
		client: &http.Client{
			Timeout: cfg.Remote.Timeout,
		},
		logger: logger,
	}
}

// Ask sends the prompt and returns the generated reply, falling back to the
// canned reply on any failure.
func (c *httpClient) Ask(ctx context.Context, prompt string) (string, error) {
	if c.endpoint == "" {
		return FallbackReply, nil
	}

	reply, err := c.ask(ctx, prompt)
	if err != nil {
		c.logger.Warn("assistant endpoint failed",
			slog.Any("error", err),
		)

		return FallbackReply, nil
	}

	return reply, nil
}

func (c *httpClient) ask(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(askRequest{Prompt: prompt})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode prompt")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build assistant request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "assistant request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("assistant returned non-success status: %d", resp.StatusCode)
	}

	var parsed askResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode assistant reply")
	}
	if parsed.Reply == "" {
		return "", errors.New("assistant returned empty reply")
	}

	return parsed.Reply, nil
}
