package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pocketprep/pocketprep/internal/model"
)

func TestRenderListsEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderLists(&buf, nil)
	assert.Contains(t, buf.String(), "No lists yet")
}

func TestRenderListsShowsCountsAndProgress(t *testing.T) {
	list := model.NewPackingList("Trip")
	list.Items = []model.Item{
		{ID: "1", ListID: list.ID, Name: "Socks", Packed: true},
		{ID: "2", ListID: list.ID, Name: "Charger"},
	}

	var buf bytes.Buffer
	RenderLists(&buf, []model.PackingList{list})

	out := buf.String()
	assert.Contains(t, out, "Trip")
	assert.Contains(t, out, "(2 items)")
	assert.Contains(t, out, "1/2 packed")
	assert.Contains(t, out, list.ID)
}

func TestRenderListDetailGroupsByCategory(t *testing.T) {
	list := model.NewPackingList("Camping")
	list.Items = []model.Item{
		{ID: "1", ListID: list.ID, Name: "Tent", Category: "Outdoor Gear"},
		{ID: "2", ListID: list.ID, Name: "Charger", Category: "Electronics", Packed: true},
		{ID: "3", ListID: list.ID, Name: "Rope", Category: "Outdoor Gear", Notes: "20m"},
	}

	var buf bytes.Buffer
	RenderListDetail(&buf, &list)

	out := buf.String()
	assert.Contains(t, out, "Outdoor Gear")
	assert.Contains(t, out, "Electronics")
	assert.Contains(t, out, "[ ] Tent")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "20m")

	// Category headers appear once each, in first-seen order.
	assert.Equal(t, 1, strings.Count(out, "Outdoor Gear"))
	assert.Less(t, strings.Index(out, "Outdoor Gear"), strings.Index(out, "Electronics"))
}

func TestRenderListDetailEmptyList(t *testing.T) {
	list := model.NewPackingList("Empty")

	var buf bytes.Buffer
	RenderListDetail(&buf, &list)
	assert.Contains(t, buf.String(), "This list is empty")
}

func TestRenderSuggestions(t *testing.T) {
	categories := []model.SuggestionCategory{
		{Name: "Electronics", Items: []string{"Phone Charger", "Portable Battery"}},
		{Name: "Clothing", Items: []string{"Rain Jacket"}},
	}

	var buf bytes.Buffer
	RenderSuggestions(&buf, categories)

	out := buf.String()
	assert.Contains(t, out, "Electronics")
	assert.Contains(t, out, "- Phone Charger")
	assert.Contains(t, out, "- Rain Jacket")
}

func TestRenderChatMessage(t *testing.T) {
	var buf bytes.Buffer
	RenderChatMessage(&buf, model.ChatMessage{Text: "pack for a hike", FromUser: true})
	RenderChatMessage(&buf, model.ChatMessage{Text: "Here's what I'd suggest packing:"})

	out := buf.String()
	assert.Contains(t, out, "pack for a hike")
	assert.Contains(t, out, "Here's what I'd suggest packing:")
}
