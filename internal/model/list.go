// Package model defines the core domain types shared across the application.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PackingList is a named collection of items to pack. Lists own their items:
// deleting a list deletes every item in it.
type PackingList struct {
	CreatedAt  time.Time
	ID         string
	Name       string
	Icon       string
	ColorHex   string
	Items      []Item
	IsTemplate bool
}

// NewPackingList creates a list with a fresh ID and sensible display defaults.
func NewPackingList(name string) PackingList {
	return PackingList{
		ID:        uuid.NewString(),
		Name:      name,
		Icon:      "bag",
		ColorHex:  "#007AFF",
		CreatedAt: time.Now(),
	}
}

// PackedCount returns the number of items marked as packed.
func (l *PackingList) PackedCount() int {
	count := 0
	for _, item := range l.Items {
		if item.Packed {
			count++
		}
	}
	return count
}

// TotalCount returns the number of items in the list.
func (l *PackingList) TotalCount() int {
	return len(l.Items)
}

// Progress returns the packed fraction in [0,1]. An empty list reports 0.
func (l *PackingList) Progress() float64 {
	total := l.TotalCount()
	if total == 0 {
		return 0
	}
	return float64(l.PackedCount()) / float64(total)
}
