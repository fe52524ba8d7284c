// Package suggest turns raw model output into structured packing suggestions
// and provides the deterministic local fallback used when no model is
// available.
package suggest

import (
	"strings"

	"github.com/pocketprep/pocketprep/internal/model"
)

// Parse converts raw model output into suggestion categories. It never fails:
// lines of the form "Category: item1, item2" become categories; if no line
// parses, the whole text is reinterpreted as one flat comma-separated list
// under "Suggestions"; if that also yields nothing the result is empty, which
// callers must treat as a valid outcome.
func Parse(raw string) []model.SuggestionCategory {
	var categories []model.SuggestionCategory

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		idx := strings.Index(trimmed, ":")
		if idx < 0 {
			continue
		}

		name := strings.TrimSpace(trimmed[:idx])
		items := splitItems(trimmed[idx+1:])
		if name != "" && len(items) > 0 {
			categories = append(categories, model.SuggestionCategory{Name: name, Items: items})
		}
	}

	if len(categories) == 0 {
		if items := splitItems(raw); len(items) > 0 {
			categories = append(categories, model.SuggestionCategory{Name: "Suggestions", Items: items})
		}
	}

	return categories
}

// splitItems splits a comma-separated item list, trimming whitespace and
// dropping empty pieces.
func splitItems(s string) []string {
	var items []string
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			items = append(items, piece)
		}
	}
	return items
}

// Serialize renders categories back into the line-per-category wire format
// the model is instructed to produce.
func Serialize(categories []model.SuggestionCategory) string {
	lines := make([]string, 0, len(categories))
	for _, cat := range categories {
		lines = append(lines, cat.Name+": "+strings.Join(cat.Items, ", "))
	}
	return strings.Join(lines, "\n")
}
