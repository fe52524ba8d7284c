package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pocketprep/pocketprep/internal/common"
	"github.com/pocketprep/pocketprep/internal/model"
)

// systemPrompt is the fixed instruction seeding every conversation. The
// parser depends on the category-colon-items format it mandates.
const systemPrompt = `You are PocketPrep AI, an expert packing assistant.

RULES:
1. When the user describes a trip, activity, or event, suggest 12-20 essential items to pack.
2. ALWAYS organize items into categories using this exact format:
   Category Name: Item1, Item2, Item3
   Each category on a new line. Use a colon after the category name.
3. Use these category names: Electronics, Clothing, Documents, Toiletries & Hygiene, Food & Snacks, Health & Safety, Outdoor Gear, Accessories, Comfort, Footwear
4. Only include relevant categories — skip empty ones.
5. Consider the trip duration, climate, and activity type.
6. Be specific (e.g. "Hiking boots" not just "Shoes", "SPF 50 Sunscreen" not just "Sunscreen").
7. For follow-up messages, remember context. If user says "add sunscreen", add it to the relevant category.
8. Keep responses practical and concise. No lengthy explanations — just the categorized items.

Example output:
Electronics: Phone Charger, Portable Battery, Headphones
Clothing: T-Shirts (3), Shorts (2), Light Jacket, Swimsuit
Toiletries & Hygiene: SPF 50 Sunscreen, Toothbrush, Deodorant
Health & Safety: First Aid Kit, Insect Repellent`

// turn is one exchange held in the session transcript.
type turn struct {
	prompt   string
	response string
}

// Session owns the multi-turn conversational state over a Generator. The
// transcript is created lazily on the first request and replaced wholesale by
// Reset; the generator itself is stateless between calls.
type Session struct {
	generator Generator
	mu        sync.Mutex
	turns     []turn
}

// NewSession creates a session over the given generator. No conversational
// state exists until the first request.
func NewSession(generator Generator) *Session {
	return &Session{generator: generator}
}

// Available reports whether the underlying capability can serve requests.
func (s *Session) Available() bool {
	return s.generator.Available()
}

// Reset discards all conversational state. The next request starts a fresh
// context seeded with the system instructions.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}

// Close tears the session down. Equivalent to Reset; named separately so
// owners can express end-of-life rather than restart.
func (s *Session) Close() {
	s.Reset()
}

// Respond sends a single-shot request. A TripContext, when present, is
// rendered as a natural-language preamble ahead of the query.
func (s *Session) Respond(ctx context.Context, query string, trip *model.TripContext) (string, error) {
	if !s.generator.Available() {
		return "", common.ErrNotAvailable
	}

	prompt := s.composePrompt(query, trip)
	response, err := s.generator.Respond(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrSessionFailed, err)
	}

	s.record(query, trip, response)
	return response, nil
}

// StreamResponse sends a request and forwards cumulative partial text to
// onUpdate until the model signals completion. The final text is recorded in
// the transcript for follow-up turns.
func (s *Session) StreamResponse(ctx context.Context, query string, trip *model.TripContext, onUpdate func(string)) error {
	if !s.generator.Available() {
		return common.ErrNotAvailable
	}

	prompt := s.composePrompt(query, trip)

	var final string
	err := s.generator.Stream(ctx, prompt, func(partial string) {
		final = partial
		onUpdate(partial)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrSessionFailed, err)
	}

	s.record(query, trip, final)
	return nil
}

// composePrompt builds the full request: system instructions, prior turns,
// and the current user text with its optional context preamble.
func (s *Session) composePrompt(query string, trip *model.TripContext) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	userText := query
	if trip != nil {
		userText = trip.PromptDescription() + ". " + query
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")
	for _, t := range s.turns {
		b.WriteString("User: ")
		b.WriteString(t.prompt)
		b.WriteString("\nAssistant: ")
		b.WriteString(t.response)
		b.WriteString("\n\n")
	}
	b.WriteString("User: ")
	b.WriteString(userText)
	return b.String()
}

func (s *Session) record(query string, trip *model.TripContext, response string) {
	userText := query
	if trip != nil {
		userText = trip.PromptDescription() + ". " + query
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turn{prompt: userText, response: response})
}
