package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"github.com/pocketprep/pocketprep/internal/classify"
	"github.com/pocketprep/pocketprep/internal/model"
	"github.com/pocketprep/pocketprep/internal/suggest"
)

// RenderLists writes a summary line per list.
func RenderLists(w io.Writer, lists []model.PackingList) {
	if len(lists) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No lists yet. Create one with 'pocketprep lists create'."))
		return
	}

	for _, list := range lists {
		fmt.Fprintf(w, "%s  %s  %s\n",
			BoldStyle.Render(list.Name),
			SubtleStyle.Render(fmt.Sprintf("(%d items)", list.TotalCount())),
			renderProgressLabel(&list))
		fmt.Fprintln(w, SubtleStyle.Render("  id: "+list.ID))
	}
}

// RenderListDetail writes a full list view: items grouped by category with
// packed markers, followed by a packing progress bar.
func RenderListDetail(w io.Writer, list *model.PackingList) {
	fmt.Fprintln(w, TitleStyle.Render(list.Name))

	if list.TotalCount() == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("This list is empty."))
		return
	}

	grouped := groupByCategory(list.Items)
	for _, group := range grouped {
		style := CategoryStyle(classify.LookupCategory(group.name).ColorHex)
		fmt.Fprintln(w, style.Render(group.name))
		for _, item := range group.items {
			marker := "[ ]"
			name := item.Name
			if item.Packed {
				marker = "[x]"
				name = PackedStyle.Render(name)
			}
			fmt.Fprintf(w, "  %s %s\n", marker, name)
			if item.Notes != "" {
				fmt.Fprintln(w, SubtleStyle.Render("      "+item.Notes))
			}
		}
	}

	fmt.Fprintln(w)
	RenderPackingProgress(w, list)
}

// RenderPackingProgress draws a static progress bar for the list's packed
// fraction.
func RenderPackingProgress(w io.Writer, list *model.PackingList) {
	total := list.TotalCount()
	if total == 0 {
		return
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Packed[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	if err := bar.Set(list.PackedCount()); err != nil {
		slog.Warn("Failed to render progress bar", "error", err)
	}
	fmt.Fprintln(w)
}

// RenderSuggestions writes suggestion categories with their accent colors.
func RenderSuggestions(w io.Writer, categories []model.SuggestionCategory) {
	for _, cat := range categories {
		style := CategoryStyle(suggest.CategoryColor(cat.Name))
		fmt.Fprintf(w, "%s  %s\n",
			style.Render(cat.Name),
			SubtleStyle.Render(suggest.CategoryIcon(cat.Name)))
		for _, item := range cat.Items {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}
}

// RenderChatMessage writes one chat turn with role-appropriate styling.
func RenderChatMessage(w io.Writer, msg model.ChatMessage) {
	if msg.FromUser {
		fmt.Fprintln(w, UserMessageStyle.Render("You: ")+msg.Text)
		return
	}
	fmt.Fprintln(w, AssistantMessageStyle.Render(msg.Text))
}

func renderProgressLabel(list *model.PackingList) string {
	if list.TotalCount() == 0 {
		return SubtleStyle.Render("empty")
	}
	label := fmt.Sprintf("%d/%d packed", list.PackedCount(), list.TotalCount())
	if list.PackedCount() == list.TotalCount() {
		return SuccessStyle.Render(label)
	}
	return label
}

type categoryGroup struct {
	name  string
	items []model.Item
}

// groupByCategory buckets items by category, preserving first-seen category
// order and item order within each category.
func groupByCategory(items []model.Item) []categoryGroup {
	index := make(map[string]int)
	var groups []categoryGroup
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, categoryGroup{name: item.Category})
		}
		groups[i].items = append(groups[i].items, item)
	}
	return groups
}
