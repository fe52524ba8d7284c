package suggest

import (
	"github.com/pocketprep/pocketprep/internal/classify"
	"github.com/pocketprep/pocketprep/internal/model"
)

// BuildList materializes selected suggestion item names into a new packing
// list. Each item's category and icon are inferred from its name; the caller
// persists the result.
func BuildList(name string, itemNames []string) model.PackingList {
	list := model.NewPackingList(name)
	for _, itemName := range itemNames {
		category, icon := classify.Classify(itemName)
		list.Items = append(list.Items, model.NewItem(list.ID, itemName, icon, category))
	}
	return list
}
