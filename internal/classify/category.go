package classify

// Category is a fixed reference category used for icon and color lookup in
// list views. Items store their category as free text; this set only backs
// the picker and styling, it does not constrain the data layer.
type Category struct {
	Name     string
	Icon     string
	ColorHex string
}

// Categories returns the reference category set in display order.
func Categories() []Category {
	return []Category{
		{Name: "Electronics", Icon: "iphone", ColorHex: "#007AFF"},
		{Name: "Clothing", Icon: "tshirt", ColorHex: "#AF52DE"},
		{Name: "Documents", Icon: "doc.text", ColorHex: "#FF9500"},
		{Name: "Toiletries", Icon: "drop", ColorHex: "#32ADE6"},
		{Name: "Food & Drinks", Icon: "fork.knife", ColorHex: "#34C759"},
		{Name: "Health & Medicine", Icon: "cross.case", ColorHex: "#FF3B30"},
		{Name: "Entertainment", Icon: "gamecontroller", ColorHex: "#FF2D55"},
		{Name: "Accessories", Icon: "bag", ColorHex: "#5856D6"},
		{Name: "Other", Icon: "star", ColorHex: "#8E8E93"},
	}
}

// LookupCategory returns the reference category with the given name, falling
// back to Other for names outside the fixed set.
func LookupCategory(name string) Category {
	cats := Categories()
	for _, c := range cats {
		if c.Name == name {
			return c
		}
	}
	return cats[len(cats)-1]
}
