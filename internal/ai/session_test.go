package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketprep/pocketprep/internal/common"
	"github.com/pocketprep/pocketprep/internal/model"
)

func TestSessionRespond(t *testing.T) {
	mock := &MockGenerator{Response: "Clothing: Socks, Shirts"}
	session := NewSession(mock)

	response, err := session.Respond(context.Background(), "What should I pack?", nil)
	require.NoError(t, err)
	assert.Equal(t, "Clothing: Socks, Shirts", response)

	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	assert.True(t, strings.HasPrefix(prompts[0], "You are PocketPrep AI"))
	assert.True(t, strings.HasSuffix(prompts[0], "User: What should I pack?"))
}

func TestSessionRespondWithTripContext(t *testing.T) {
	mock := &MockGenerator{Response: "Clothing: Swimsuit"}
	session := NewSession(mock)

	trip := &model.TripContext{
		Type:     model.TripTypeBeach,
		Duration: model.DurationWeek,
		Climate:  model.ClimateHot,
	}

	_, err := session.Respond(context.Background(), "What should I pack?", trip)
	require.NoError(t, err)

	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0],
		"User: A 1 week beach vacation in hot & sunny weather. What should I pack?")
}

func TestSessionRespondNotAvailable(t *testing.T) {
	mock := &MockGenerator{Unavailable: true}
	session := NewSession(mock)

	_, err := session.Respond(context.Background(), "pack for a hike", nil)
	assert.ErrorIs(t, err, common.ErrNotAvailable)
	assert.Empty(t, mock.Prompts())
}

func TestSessionRespondWrapsGeneratorError(t *testing.T) {
	mock := &MockGenerator{Err: errors.New("connection refused")}
	session := NewSession(mock)

	_, err := session.Respond(context.Background(), "pack for a hike", nil)
	assert.ErrorIs(t, err, common.ErrSessionFailed)
}

func TestSessionTranscriptCarriesAcrossTurns(t *testing.T) {
	mock := &MockGenerator{Response: "Toiletries & Hygiene: SPF 50 Sunscreen"}
	session := NewSession(mock)

	_, err := session.Respond(context.Background(), "beach trip", nil)
	require.NoError(t, err)
	_, err = session.Respond(context.Background(), "add sunscreen", nil)
	require.NoError(t, err)

	prompts := mock.Prompts()
	require.Len(t, prompts, 2)
	assert.Contains(t, prompts[1], "User: beach trip")
	assert.Contains(t, prompts[1], "Assistant: Toiletries & Hygiene: SPF 50 Sunscreen")
	assert.True(t, strings.HasSuffix(prompts[1], "User: add sunscreen"))
}

func TestSessionResetClearsTranscript(t *testing.T) {
	mock := &MockGenerator{Response: "Electronics: Charger"}
	session := NewSession(mock)

	_, err := session.Respond(context.Background(), "weekend trip", nil)
	require.NoError(t, err)

	session.Reset()

	_, err = session.Respond(context.Background(), "camping trip", nil)
	require.NoError(t, err)

	prompts := mock.Prompts()
	require.Len(t, prompts, 2)
	assert.NotContains(t, prompts[1], "weekend trip")
}

func TestSessionStreamDeliversCumulativeUpdates(t *testing.T) {
	mock := &MockGenerator{Chunks: []string{
		"Clothing:",
		"Clothing: Socks",
		"Clothing: Socks, Shirts",
	}}
	session := NewSession(mock)

	var updates []string
	err := session.StreamResponse(context.Background(), "what to pack", nil, func(partial string) {
		updates = append(updates, partial)
	})
	require.NoError(t, err)
	require.Len(t, updates, 3)
	assert.Equal(t, "Clothing: Socks, Shirts", updates[2])
}

func TestSessionStreamRecordsFinalText(t *testing.T) {
	mock := &MockGenerator{Chunks: []string{"Clothing: So", "Clothing: Socks"}}
	session := NewSession(mock)

	err := session.StreamResponse(context.Background(), "first", nil, func(string) {})
	require.NoError(t, err)

	mock.Chunks = []string{"ok"}
	err = session.StreamResponse(context.Background(), "second", nil, func(string) {})
	require.NoError(t, err)

	prompts := mock.Prompts()
	require.Len(t, prompts, 2)
	assert.Contains(t, prompts[1], "Assistant: Clothing: Socks")
}

func TestNewGeneratorProviders(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantErr   bool
		available bool
	}{
		{
			name:      "none provider is never available",
			cfg:       Config{Provider: "none"},
			available: false,
		},
		{
			name:      "empty provider defaults to unavailable",
			cfg:       Config{},
			available: false,
		},
		{
			name:      "anthropic with key is available",
			cfg:       Config{Provider: "anthropic", APIKey: "sk-test"},
			available: true,
		},
		{
			name:    "anthropic without key fails",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "unknown provider fails",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewGenerator(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.available, gen.Available())
		})
	}
}

func TestAnthropicMissingKeyError(t *testing.T) {
	_, err := newAnthropicGenerator(Config{})
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}
