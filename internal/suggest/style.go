package suggest

import "strings"

// styleRule maps category-name keywords to a presentation value. Evaluated in
// order, first match wins. This table keys on the category name, not on item
// names; it is distinct from the item classification rules.
type styleRule struct {
	result   string
	keywords []string
}

var iconStyles = []styleRule{
	{result: "iphone", keywords: []string{"electronic", "tech"}},
	{result: "tshirt", keywords: []string{"cloth", "wear", "apparel"}},
	{result: "doc.text", keywords: []string{"document", "travel doc"}},
	{result: "drop", keywords: []string{"toiletr", "hygiene", "personal care"}},
	{result: "fork.knife", keywords: []string{"food", "snack", "drink"}},
	{result: "cross.case", keywords: []string{"health", "medic", "first aid", "safety"}},
	{result: "gamecontroller", keywords: []string{"entertain", "fun"}},
	{result: "bag", keywords: []string{"accessor", "gear", "misc"}},
	{result: "tent", keywords: []string{"outdoor", "camping", "adventure"}},
	{result: "umbrella", keywords: []string{"protection", "weather"}},
	{result: "bed.double", keywords: []string{"comfort", "sleep"}},
	{result: "shoe.2", keywords: []string{"footwear", "shoe"}},
}

var colorStyles = []styleRule{
	{result: "#4facfe", keywords: []string{"electronic", "tech"}},
	{result: "#764ba2", keywords: []string{"cloth", "wear"}},
	{result: "#f093fb", keywords: []string{"document"}},
	{result: "#43e97b", keywords: []string{"toiletr", "hygiene"}},
	{result: "#38f9d7", keywords: []string{"food", "snack"}},
	{result: "#f5576c", keywords: []string{"health", "medic", "safety"}},
	{result: "#fa709a", keywords: []string{"outdoor", "camping"}},
	{result: "#667eea", keywords: []string{"accessor", "gear"}},
}

func matchStyle(rules []styleRule, name, fallback string) string {
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

// CategoryIcon returns the icon token for a suggestion category name.
func CategoryIcon(name string) string {
	return matchStyle(iconStyles, name, "star")
}

// CategoryColor returns the accent color for a suggestion category name.
func CategoryColor(name string) string {
	return matchStyle(colorStyles, name, "#fee140")
}
