// Package ai wraps the language model capability behind a small generator
// interface so that a remote API, a local model CLI, or a test stub can be
// substituted without changing callers.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pocketprep/pocketprep/internal/common"
)

// Generator is the language model capability boundary. Stream delivers the
// cumulative response text on every update; delivered text is never
// retracted. Neither method falls back on failure — that is the caller's
// responsibility.
type Generator interface {
	// Available reports whether the capability can serve requests at all.
	Available() bool
	// Respond sends a single-shot request and returns the full response.
	Respond(ctx context.Context, prompt string) (string, error)
	// Stream sends a request and invokes onUpdate with the cumulative
	// response text each time new output arrives.
	Stream(ctx context.Context, prompt string, onUpdate func(string)) error
}

// Config holds configuration for constructing a generator.
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	LocalPath  string
	MaxTokens  int
	MaxRetries int
	RetryDelay time.Duration
}

// NewGenerator creates a generator for the configured provider.
func NewGenerator(cfg Config) (Generator, error) {
	switch strings.ToLower(cfg.Provider) {
	case "anthropic":
		return newAnthropicGenerator(cfg)
	case "local":
		return newLocalGenerator(cfg)
	case "none", "":
		return unavailableGenerator{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported AI provider %q", common.ErrInvalidConfig, cfg.Provider)
	}
}

// unavailableGenerator is the null backend used when no provider is
// configured. Every request reports the capability as absent.
type unavailableGenerator struct{}

func (unavailableGenerator) Available() bool { return false }

func (unavailableGenerator) Respond(_ context.Context, _ string) (string, error) {
	return "", common.ErrNotAvailable
}

func (unavailableGenerator) Stream(_ context.Context, _ string, _ func(string)) error {
	return common.ErrNotAvailable
}
