// Package openai implements the llm.Client capability against an
// OpenAI-compatible chat-completions endpoint.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/brandbrain/metrics-pipeline/internal/llm"
	"github.com/brandbrain/metrics-pipeline/pkg/config"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
}

type Client struct {
	client *http.Client
	apiKey string
	apiURL string
	model  string
}

func New(opts Opts) *Client {
	apiURL := strings.TrimRight(opts.Config.OpenAI.BaseURL, "/")
	return &Client{
		client: &http.Client{Timeout: opts.Config.OpenAI.Timeout},
		apiKey: opts.Config.OpenAI.APIKey,
		apiURL: apiURL,
		model:  opts.Config.OpenAI.Model,
	}
}

var _ llm.Client = (*Client)(nil)

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []llm.Message  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the conversation and returns the assistant's reply text.
// The response is requested as a JSON object so callers can parse it into a
// fixed schema.
func (c *Client) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	if c.model == "" {
		return "", errors.New("openai model is required")
	}

	payload, err := json.Marshal(chatRequest{
		Model:          c.model,
		Messages:       messages,
		Temperature:    0.7,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("openai: unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("openai: empty choices in response")
	}

	return parsed.Choices[0].Message.Content, nil
}
