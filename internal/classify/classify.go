// Package classify infers a display category and icon for packing items from
// their names using ordered keyword rules.
package classify

import "strings"

// rule maps a set of keyword substrings to a result label. Rules are evaluated
// in slice order and the first rule with any matching keyword wins, so slice
// order determines correctness.
type rule struct {
	result   string
	keywords []string
}

func matchRules(rules []rule, name, fallback string) string {
	lowered := strings.ToLower(name)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.result
			}
		}
	}
	return fallback
}

// CategoryFor returns the display category for an item name. Names matching no
// rule fall back to "Other".
func CategoryFor(name string) string {
	return matchRules(categoryRules(), name, "Other")
}

// IconFor returns the icon token for an item name. The icon table is finer
// grained than the category table and independently ordered.
func IconFor(name string) string {
	return matchRules(iconRules(), name, "checkmark.circle")
}

// Classify returns both the category and icon for an item name.
func Classify(name string) (category, icon string) {
	return CategoryFor(name), IconFor(name)
}
