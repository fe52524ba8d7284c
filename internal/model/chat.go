package model

import "time"

// ChatMessage is one turn in the suggestion conversation. Session-local;
// cleared when the chat is reset.
type ChatMessage struct {
	Timestamp time.Time
	Text      string
	FromUser  bool
}
