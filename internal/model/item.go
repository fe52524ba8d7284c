package model

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single packable thing belonging to exactly one list. Category is
// free text used for display grouping; any value is legal.
type Item struct {
	CreatedAt    time.Time
	LastPackedAt *time.Time
	ID           string
	ListID       string
	Name         string
	Icon         string
	Category     string
	Notes        string
	TimesUsed    int
	Packed       bool
}

// NewItem creates an item for the given list with a fresh ID.
func NewItem(listID, name, icon, category string) Item {
	if category == "" {
		category = "Other"
	}
	return Item{
		ID:        uuid.NewString(),
		ListID:    listID,
		Name:      name,
		Icon:      icon,
		Category:  category,
		CreatedAt: time.Now(),
	}
}
