package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// localGenerator implements Generator by shelling out to an on-device model
// CLI. It is the stand-in for a platform model capability: availability means
// the binary is on PATH.
type localGenerator struct {
	cliPath string
	model   string
}

func newLocalGenerator(cfg Config) (Generator, error) {
	cliPath := cfg.LocalPath
	if cliPath == "" {
		cliPath = "claude"
	}

	model := cfg.Model
	if model == "" {
		model = "sonnet"
	}

	return &localGenerator{cliPath: cliPath, model: model}, nil
}

func (g *localGenerator) Available() bool {
	_, err := exec.LookPath(g.cliPath)
	return err == nil
}

// localResponse represents the JSON response from the model CLI.
type localResponse struct {
	Result  string `json:"result"`
	Type    string `json:"type"`
	IsError bool   `json:"is_error"`
}

func (g *localGenerator) Respond(ctx context.Context, prompt string) (string, error) {
	args := []string{
		"-p", prompt,
		"--output-format", "json",
		"--model", g.model,
		"--max-turns", "1",
	}

	cmdCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, 60*time.Second)
		defer cancel()
	}

	cmd := exec.CommandContext(cmdCtx, g.cliPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("model CLI error: %s", stderr.String())
		}
		return "", fmt.Errorf("failed to execute model CLI: %w", err)
	}

	var response localResponse
	if err := json.Unmarshal(stdout.Bytes(), &response); err != nil {
		// Not JSON; treat the raw output as the response text.
		return strings.TrimSpace(stdout.String()), nil
	}

	if response.IsError {
		return "", fmt.Errorf("model CLI reported an error")
	}
	if response.Result == "" {
		return "", fmt.Errorf("empty response from model CLI")
	}

	return response.Result, nil
}

// Stream satisfies the Generator contract for a backend with no native
// streaming: the full response is delivered as a single cumulative update.
func (g *localGenerator) Stream(ctx context.Context, prompt string, onUpdate func(string)) error {
	response, err := g.Respond(ctx, prompt)
	if err != nil {
		return err
	}
	onUpdate(response)
	return nil
}
