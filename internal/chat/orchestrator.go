// Package chat sequences the suggestion conversation: user query, streaming
// model call, response parsing, and the deterministic fallback when the model
// cannot serve. All mutable conversation state lives behind one mutex and is
// published to observers as immutable snapshots.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pocketprep/pocketprep/internal/ai"
	"github.com/pocketprep/pocketprep/internal/common"
	"github.com/pocketprep/pocketprep/internal/model"
	"github.com/pocketprep/pocketprep/internal/suggest"
)

// State is the orchestrator's position in the suggestion flow.
type State int

// Orchestrator states. A turn moves Idle -> Streaming -> Success; the next
// send or a reset returns it to Idle. Failed is reserved for surfacing
// turn-level errors, but the suggestion flow absorbs every failure into the
// local fallback, so users only ever observe Success.
const (
	StateIdle State = iota
	StateStreaming
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStreaming:
		return "streaming"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Assistant message text preceding a structured suggestion set.
const (
	parsedMessage   = "Here's what I'd suggest packing:"
	fallbackMessage = "Here are some suggestions I'd recommend:"
)

// Snapshot is an immutable view of the conversation published to observers.
type Snapshot struct {
	TripContext   *model.TripContext
	StreamingText string
	ErrorMessage  string
	Messages      []model.ChatMessage
	Suggestions   []model.SuggestionCategory
	State         State
}

// Orchestrator owns the suggestion conversation. One send may be in flight at
// a time; a newer send cancels the older stream, and a generation counter
// discards any late callbacks from it.
type Orchestrator struct {
	session *ai.Session

	mu            sync.Mutex
	state         State
	messages      []model.ChatMessage
	suggestions   []model.SuggestionCategory
	streamingText string
	errorMessage  string
	tripContext   *model.TripContext
	generation    int
	cancel        context.CancelFunc
	subscribers   []chan Snapshot

	wg sync.WaitGroup
}

// New creates an orchestrator over the given session.
func New(session *ai.Session) *Orchestrator {
	return &Orchestrator{session: session, state: StateIdle}
}

// Snapshot returns a copy of the current conversation state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

func (o *Orchestrator) snapshotLocked() Snapshot {
	messages := make([]model.ChatMessage, len(o.messages))
	copy(messages, o.messages)
	suggestions := make([]model.SuggestionCategory, len(o.suggestions))
	copy(suggestions, o.suggestions)
	return Snapshot{
		State:         o.state,
		Messages:      messages,
		Suggestions:   suggestions,
		StreamingText: o.streamingText,
		ErrorMessage:  o.errorMessage,
		TripContext:   o.tripContext,
	}
}

// Subscribe returns a channel receiving a snapshot after every state change.
// Slow receivers miss intermediate snapshots rather than blocking the
// conversation.
func (o *Orchestrator) Subscribe() <-chan Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	ch := make(chan Snapshot, 16)
	o.subscribers = append(o.subscribers, ch)
	return ch
}

func (o *Orchestrator) publishLocked() {
	snapshot := o.snapshotLocked()
	for _, ch := range o.subscribers {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// SendMessage starts a suggestion turn for the given user text. Empty text is
// ignored. Any in-flight turn is cancelled first; its remaining callbacks are
// discarded.
func (o *Orchestrator) SendMessage(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
	}
	o.generation++
	generation := o.generation

	ctx, cancel := context.WithCancel(context.Background())
	o.cancel = cancel

	o.messages = append(o.messages, model.ChatMessage{
		Text:      text,
		FromUser:  true,
		Timestamp: time.Now(),
	})
	o.suggestions = nil
	o.errorMessage = ""
	o.streamingText = ""
	o.state = StateStreaming
	trip := o.tripContext
	o.publishLocked()
	o.mu.Unlock()

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		o.runTurn(ctx, generation, text, trip)
	}()
}

// SendWithContext stores a trip context for this conversation and synthesizes
// the opening query from it. Follow-up sends keep carrying the same context.
func (o *Orchestrator) SendWithContext(tripType model.TripType, duration model.TripDuration, climate model.TripClimate) {
	trip := &model.TripContext{Type: tripType, Duration: duration, Climate: climate}

	o.mu.Lock()
	o.tripContext = trip
	o.mu.Unlock()

	query := fmt.Sprintf("I'm going on %s. What should I pack?", trip.PromptDescription())
	o.SendMessage(query)
}

// runTurn drives one turn: stream, then a single non-streaming retry, then
// the deterministic local fallback. The turn always ends with a populated
// suggestion set.
func (o *Orchestrator) runTurn(ctx context.Context, generation int, query string, trip *model.TripContext) {
	streamErr := o.session.StreamResponse(ctx, query, trip, func(partial string) {
		o.mu.Lock()
		defer o.mu.Unlock()
		if generation != o.generation {
			return
		}
		o.streamingText = partial
		o.publishLocked()
	})

	if streamErr == nil {
		o.mu.Lock()
		defer o.mu.Unlock()
		if generation != o.generation {
			return
		}
		o.completeWithTextLocked(o.streamingText)
		return
	}

	if ctx.Err() != nil {
		return
	}

	// A single-shot retry only makes sense for transient stream failures;
	// an absent capability fails identically and goes straight to fallback.
	err := streamErr
	if common.IsRetryable(streamErr) || !errors.Is(streamErr, common.ErrNotAvailable) {
		slog.Debug("Streaming attempt failed, retrying single-shot", "error", streamErr)
		var response string
		response, err = o.session.Respond(ctx, query, trip)
		if err == nil {
			o.mu.Lock()
			defer o.mu.Unlock()
			if generation != o.generation {
				return
			}
			o.completeWithTextLocked(response)
			return
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if generation != o.generation {
		return
	}
	if ctx.Err() != nil {
		return
	}

	slog.Debug("Model unavailable, using local fallback", "error", err)
	o.streamingText = ""
	o.suggestions = suggest.Fallback(query)
	o.messages = append(o.messages, model.ChatMessage{
		Text:      fallbackMessage,
		Timestamp: time.Now(),
	})
	o.state = StateSuccess
	o.publishLocked()
}

// completeWithTextLocked finishes a turn from final model text. Parsed
// categories become the suggestion set; text that parses to nothing is shown
// verbatim as the assistant message.
func (o *Orchestrator) completeWithTextLocked(final string) {
	categories := suggest.Parse(final)

	messageText := parsedMessage
	if len(categories) == 0 {
		messageText = final
	}

	o.streamingText = ""
	o.suggestions = categories
	o.messages = append(o.messages, model.ChatMessage{
		Text:      messageText,
		Timestamp: time.Now(),
	})
	o.state = StateSuccess
	o.publishLocked()
}

// RemoveSuggestion drops the named item from the active suggestion set,
// pruning any category it leaves empty.
func (o *Orchestrator) RemoveSuggestion(item string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.suggestions = model.RemoveItem(o.suggestions, item)
	o.publishLocked()
}

// Suggestions returns the active suggested item names across all categories.
func (o *Orchestrator) Suggestions() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return model.FlattenSuggestions(o.suggestions)
}

// ClearChat cancels any in-flight turn and resets every piece of ephemeral
// conversation state, including the session transcript and trip context.
func (o *Orchestrator) ClearChat() {
	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	o.generation++
	o.messages = nil
	o.suggestions = nil
	o.streamingText = ""
	o.errorMessage = ""
	o.tripContext = nil
	o.state = StateIdle
	o.publishLocked()
	o.mu.Unlock()

	o.session.Reset()
}

// Wait blocks until every started turn goroutine has finished.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}
