// Package templates holds the built-in starter lists and their seeding logic.
package templates

import (
	"context"
	"fmt"

	"github.com/pocketprep/pocketprep/internal/model"
	"github.com/pocketprep/pocketprep/internal/service"
)

// template defines one built-in starter list.
type template struct {
	name  string
	icon  string
	color string
	items []templateItem
}

type templateItem struct {
	name     string
	icon     string
	category string
}

// builtins returns the starter templates in display order.
func builtins() []template {
	return []template{
		{
			name:  "College",
			icon:  "book",
			color: "#007AFF",
			items: []templateItem{
				{"Laptop", "laptopcomputer", "Electronics"},
				{"Notebook", "book.closed", "Accessories"},
				{"ID Card", "person.text.rectangle", "Documents"},
				{"Charger", "cable.connector", "Electronics"},
				{"Pen", "pencil", "Accessories"},
				{"Water Bottle", "waterbottle", "Food & Drinks"},
				{"Calculator", "function", "Electronics"},
				{"Headphones", "headphones", "Electronics"},
			},
		},
		{
			name:  "Gym",
			icon:  "dumbbell",
			color: "#FF3B30",
			items: []templateItem{
				{"Workout Clothes", "tshirt", "Clothing"},
				{"Sneakers", "shoe.2", "Clothing"},
				{"Water Bottle", "waterbottle", "Food & Drinks"},
				{"Towel", "tablecloth", "Accessories"},
				{"Headphones", "headphones", "Electronics"},
				{"Gym Bag", "bag", "Accessories"},
				{"Protein Bar", "fork.knife", "Food & Drinks"},
				{"Deodorant", "drop", "Toiletries"},
			},
		},
		{
			name:  "Travel",
			icon:  "airplane",
			color: "#FF9500",
			items: []templateItem{
				{"Passport", "doc.text", "Documents"},
				{"Phone Charger", "cable.connector", "Electronics"},
				{"Toiletries", "drop", "Toiletries"},
				{"Clothes", "tshirt", "Clothing"},
				{"Wallet", "creditcard", "Accessories"},
				{"Sunglasses", "sunglasses", "Accessories"},
				{"Medications", "cross.case", "Health & Medicine"},
				{"Camera", "camera", "Electronics"},
				{"Travel Pillow", "bed.double", "Accessories"},
				{"Snacks", "fork.knife", "Food & Drinks"},
			},
		},
		{
			name:  "Beach Day",
			icon:  "sun.max",
			color: "#FFCC00",
			items: []templateItem{
				{"Sunscreen", "sun.max.trianglebadge.exclamationmark", "Health & Medicine"},
				{"Towel", "tablecloth", "Accessories"},
				{"Swimsuit", "tshirt", "Clothing"},
				{"Sunglasses", "sunglasses", "Accessories"},
				{"Water Bottle", "waterbottle", "Food & Drinks"},
				{"Sandals", "shoe.2", "Clothing"},
				{"Beach Bag", "bag", "Accessories"},
				{"Book", "book.closed", "Entertainment"},
			},
		},
		{
			name:  "Camping",
			icon:  "tent",
			color: "#34C759",
			items: []templateItem{
				{"Tent", "tent", "Accessories"},
				{"Sleeping Bag", "bed.double", "Accessories"},
				{"Flashlight", "flashlight.on.fill", "Electronics"},
				{"First Aid Kit", "cross.case", "Health & Medicine"},
				{"Water Bottle", "waterbottle", "Food & Drinks"},
				{"Insect Repellent", "ant", "Health & Medicine"},
				{"Matches", "flame", "Accessories"},
				{"Warm Jacket", "tshirt", "Clothing"},
			},
		},
		{
			name:  "Business Trip",
			icon:  "briefcase",
			color: "#5856D6",
			items: []templateItem{
				{"Laptop", "laptopcomputer", "Electronics"},
				{"Business Cards", "person.text.rectangle", "Documents"},
				{"Charger", "cable.connector", "Electronics"},
				{"Formal Wear", "tshirt", "Clothing"},
				{"Notebook", "book.closed", "Accessories"},
				{"ID / Badge", "person.text.rectangle", "Documents"},
				{"Dress Shoes", "shoe.2", "Clothing"},
				{"Portfolio", "folder", "Documents"},
			},
		},
	}
}

// Names returns the built-in template names in display order.
func Names() []string {
	b := builtins()
	names := make([]string, len(b))
	for i, t := range b {
		names[i] = t.name
	}
	return names
}

// Seed inserts any built-in templates the store does not already hold. Seeding
// is idempotent: templates present by name are left alone.
func Seed(ctx context.Context, store service.Store) error {
	existing, err := store.GetTemplates(ctx)
	if err != nil {
		return fmt.Errorf("failed to load existing templates: %w", err)
	}

	present := make(map[string]bool, len(existing))
	for _, list := range existing {
		present[list.Name] = true
	}

	for _, t := range builtins() {
		if present[t.name] {
			continue
		}

		list := model.NewPackingList(t.name)
		list.Icon = t.icon
		list.ColorHex = t.color
		list.IsTemplate = true
		for _, item := range t.items {
			list.Items = append(list.Items, model.NewItem(list.ID, item.name, item.icon, item.category))
		}

		if err := store.CreateList(ctx, &list); err != nil {
			return fmt.Errorf("failed to seed template %q: %w", t.name, err)
		}
	}

	return nil
}

// Duplicate materializes a template into a regular list named "<name> Copy",
// with fresh IDs and every item unpacked.
func Duplicate(ctx context.Context, store service.Store, templateID string) (*model.PackingList, error) {
	source, err := store.GetList(ctx, templateID)
	if err != nil {
		return nil, err
	}

	list := model.NewPackingList(source.Name + " Copy")
	list.Icon = source.Icon
	list.ColorHex = source.ColorHex
	for _, item := range source.Items {
		list.Items = append(list.Items, model.NewItem(list.ID, item.Name, item.Icon, item.Category))
	}

	if err := store.CreateList(ctx, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
