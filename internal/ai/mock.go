package ai

import (
	"context"
	"sync"

	"github.com/pocketprep/pocketprep/internal/common"
)

// MockGenerator is a scripted Generator for tests. When Chunks is set, Stream
// delivers them as successive cumulative updates; otherwise Response is
// delivered in one update.
type MockGenerator struct {
	Err         error
	StreamErr   error
	Response    string
	Chunks      []string
	prompts     []string
	mu          sync.Mutex
	Unavailable bool
}

// Available reports the scripted availability.
func (m *MockGenerator) Available() bool {
	return !m.Unavailable
}

// Respond returns the scripted response or error.
func (m *MockGenerator) Respond(_ context.Context, prompt string) (string, error) {
	m.recordPrompt(prompt)
	if m.Unavailable {
		return "", common.ErrNotAvailable
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Stream delivers the scripted chunks as cumulative updates.
func (m *MockGenerator) Stream(ctx context.Context, prompt string, onUpdate func(string)) error {
	m.recordPrompt(prompt)
	if m.Unavailable {
		return common.ErrNotAvailable
	}
	if m.StreamErr != nil {
		return m.StreamErr
	}
	if m.Err != nil {
		return m.Err
	}

	chunks := m.Chunks
	if len(chunks) == 0 {
		chunks = []string{m.Response}
	}
	for _, chunk := range chunks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		onUpdate(chunk)
	}
	return nil
}

// Prompts returns a copy of every prompt the mock has seen.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	prompts := make([]string, len(m.prompts))
	copy(prompts, m.prompts)
	return prompts
}

func (m *MockGenerator) recordPrompt(prompt string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
}
