package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveItem(t *testing.T) {
	categories := []SuggestionCategory{
		{Name: "Electronics", Items: []string{"Phone Charger", "Headphones"}},
		{Name: "Clothing", Items: []string{"Rain Jacket"}},
	}

	got := RemoveItem(categories, "Headphones")
	assert.Len(t, got, 2)
	assert.Equal(t, []string{"Phone Charger"}, got[0].Items)

	// Removing the last item of a category prunes the category itself.
	got = RemoveItem(got, "Rain Jacket")
	assert.Len(t, got, 1)
	assert.Equal(t, "Electronics", got[0].Name)

	// Unknown items leave the set untouched.
	got = RemoveItem(got, "Submarine")
	assert.Len(t, got, 1)
	assert.Equal(t, []string{"Phone Charger"}, got[0].Items)
}

func TestFlattenSuggestions(t *testing.T) {
	categories := []SuggestionCategory{
		{Name: "A", Items: []string{"x", "y"}},
		{Name: "B", Items: []string{"z"}},
	}
	assert.Equal(t, []string{"x", "y", "z"}, FlattenSuggestions(categories))
	assert.Nil(t, FlattenSuggestions(nil))
}
