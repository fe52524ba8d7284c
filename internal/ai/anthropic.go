package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pocketprep/pocketprep/internal/common"
	"github.com/pocketprep/pocketprep/internal/service"
)

const anthropicAPI = "https://api.anthropic.com/v1/messages"

// anthropicGenerator implements Generator against the Anthropic Messages API.
type anthropicGenerator struct {
	httpClient *http.Client
	apiKey     string
	model      string
	maxTokens  int
	retryOpts  service.RetryOptions
}

func newAnthropicGenerator(cfg Config) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: anthropic API key not set", common.ErrMissingConfig)
	}

	model := cfg.Model
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	return &anthropicGenerator{
		apiKey:     cfg.APIKey,
		model:      model,
		maxTokens:  maxTokens,
		retryOpts:  retryOpts,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (g *anthropicGenerator) Available() bool {
	return g.apiKey != ""
}

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	Messages  []apiMessage `json:"messages"`
	Stream    bool         `json:"stream,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Respond sends a single non-streaming request, retrying transient failures.
func (g *anthropicGenerator) Respond(ctx context.Context, prompt string) (string, error) {
	var result string

	err := common.WithRetry(ctx, func() error {
		text, err := g.call(ctx, prompt)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}
		result = text
		return nil
	}, g.retryOpts)

	if err != nil {
		return "", err
	}
	return result, nil
}

func (g *anthropicGenerator) call(ctx context.Context, prompt string) (string, error) {
	body, err := g.post(ctx, prompt, false)
	if err != nil {
		return "", err
	}
	defer func() { _ = body.Close() }()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var resp apiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if resp.Error != nil {
		return "", fmt.Errorf("api error: %s", resp.Error.Message)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return resp.Content[0].Text, nil
}

// Stream sends a streaming request, forwarding the accumulated text to
// onUpdate on every content delta. Streaming requests are not retried:
// partial output may already have been observed by the caller.
func (g *anthropicGenerator) Stream(ctx context.Context, prompt string, onUpdate func(string)) error {
	body, err := g.post(ctx, prompt, true)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	var accumulated strings.Builder

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			continue
		}

		var event streamEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			// Skip malformed events; the stream itself may still be healthy.
			continue
		}

		switch event.Type {
		case "content_block_delta":
			if event.Delta.Text != "" {
				accumulated.WriteString(event.Delta.Text)
				onUpdate(accumulated.String())
			}
		case "error":
			return fmt.Errorf("api stream error: %s", event.Err.Message)
		case "message_stop":
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stream: %w", err)
	}
	return nil
}

type streamEvent struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
	Err struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *anthropicGenerator) post(ctx context.Context, prompt string, stream bool) (io.ReadCloser, error) {
	reqBody := apiRequest{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Messages: []apiMessage{
			{Role: "user", Content: prompt},
		},
		Stream: stream,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicAPI, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, common.ErrRateLimit
		}
		return nil, fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body))
	}

	return resp.Body, nil
}
