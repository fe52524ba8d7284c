package model

// SuggestionCategory groups suggested item names under a display name. It is
// derived from AI or fallback output and only materializes into Items when the
// user commits a list creation.
type SuggestionCategory struct {
	Name  string
	Items []string
}

// RemoveItem returns the categories with the named item removed from whichever
// category holds it. Categories left empty by the removal are pruned.
func RemoveItem(categories []SuggestionCategory, item string) []SuggestionCategory {
	result := make([]SuggestionCategory, 0, len(categories))
	for _, cat := range categories {
		kept := make([]string, 0, len(cat.Items))
		for _, it := range cat.Items {
			if it != item {
				kept = append(kept, it)
			}
		}
		if len(kept) > 0 {
			result = append(result, SuggestionCategory{Name: cat.Name, Items: kept})
		}
	}
	return result
}

// FlattenSuggestions returns every suggested item name across categories,
// preserving category order.
func FlattenSuggestions(categories []SuggestionCategory) []string {
	var items []string
	for _, cat := range categories {
		items = append(items, cat.Items...)
	}
	return items
}
