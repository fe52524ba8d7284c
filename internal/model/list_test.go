package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackingListProgress(t *testing.T) {
	tests := []struct {
		name       string
		packed     int
		total      int
		want       float64
		wantPacked int
	}{
		{name: "empty list", packed: 0, total: 0, want: 0},
		{name: "nothing packed", packed: 0, total: 4, want: 0},
		{name: "two of three", packed: 2, total: 3, want: 2.0 / 3.0},
		{name: "fully packed", packed: 3, total: 3, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewPackingList("Weekend")
			for i := 0; i < tt.total; i++ {
				item := NewItem(list.ID, "Thing", "star", "Other")
				item.Packed = i < tt.packed
				list.Items = append(list.Items, item)
			}

			assert.Equal(t, tt.packed, list.PackedCount())
			assert.Equal(t, tt.total, list.TotalCount())
			assert.InDelta(t, tt.want, list.Progress(), 1e-9)
		})
	}
}

func TestPackingListProgressAfterToggle(t *testing.T) {
	list := NewPackingList("Trip")
	for i := 0; i < 3; i++ {
		item := NewItem(list.ID, "Thing", "star", "Other")
		item.Packed = i < 2
		list.Items = append(list.Items, item)
	}
	assert.InDelta(t, 2.0/3.0, list.Progress(), 1e-9)

	list.Items[2].Packed = true
	assert.Equal(t, 1.0, list.Progress())
}

func TestNewItemDefaultsCategory(t *testing.T) {
	item := NewItem("list-1", "Mystery Object", "star", "")
	assert.Equal(t, "Other", item.Category)
	assert.Equal(t, "list-1", item.ListID)
	assert.NotEmpty(t, item.ID)
}
