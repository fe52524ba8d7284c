package suggest

import (
	"testing"

	"github.com/pocketprep/pocketprep/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []model.SuggestionCategory
	}{
		{
			name:  "two categories",
			input: "A: x, y\nB: z",
			want: []model.SuggestionCategory{
				{Name: "A", Items: []string{"x", "y"}},
				{Name: "B", Items: []string{"z"}},
			},
		},
		{
			name:  "trims whitespace everywhere",
			input: "  Electronics :  Phone Charger ,  Headphones  \n\n  Clothing: T-Shirts (3)  ",
			want: []model.SuggestionCategory{
				{Name: "Electronics", Items: []string{"Phone Charger", "Headphones"}},
				{Name: "Clothing", Items: []string{"T-Shirts (3)"}},
			},
		},
		{
			name:  "skips colonless lines in primary pass",
			input: "Here is what I suggest\nElectronics: Phone Charger\nHope that helps",
			want: []model.SuggestionCategory{
				{Name: "Electronics", Items: []string{"Phone Charger"}},
			},
		},
		{
			name:  "drops empty item pieces",
			input: "Electronics: Phone Charger,, ,Headphones,",
			want: []model.SuggestionCategory{
				{Name: "Electronics", Items: []string{"Phone Charger", "Headphones"}},
			},
		},
		{
			name:  "only first colon splits",
			input: "Documents: Visa: if needed, Passport",
			want: []model.SuggestionCategory{
				{Name: "Documents", Items: []string{"Visa: if needed", "Passport"}},
			},
		},
		{
			name:  "no colon anywhere becomes flat Suggestions",
			input: "x, y, z",
			want: []model.SuggestionCategory{
				{Name: "Suggestions", Items: []string{"x", "y", "z"}},
			},
		},
		{
			name:  "empty input yields nothing",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace-only input yields nothing",
			input: "  \n\t\n  ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assertCategoriesEqual(t, tt.want, got)
		})
	}
}

func TestParseIdempotentOnCleanInput(t *testing.T) {
	input := "Electronics: Phone Charger, Portable Battery\nClothing: T-Shirts (3), Swimsuit"
	first := Parse(input)
	second := Parse(Serialize(first))
	assertCategoriesEqual(t, first, second)
}

func TestCategoryStyle(t *testing.T) {
	tests := []struct {
		category  string
		wantIcon  string
		wantColor string
	}{
		{category: "Electronics", wantIcon: "iphone", wantColor: "#4facfe"},
		{category: "Toiletries & Hygiene", wantIcon: "drop", wantColor: "#43e97b"},
		{category: "Health & Safety", wantIcon: "cross.case", wantColor: "#f5576c"},
		{category: "Outdoor Gear", wantIcon: "tent", wantColor: "#fa709a"},
		{category: "Footwear", wantIcon: "shoe.2", wantColor: "#fee140"},
		{category: "Suggestions", wantIcon: "star", wantColor: "#fee140"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := CategoryIcon(tt.category); got != tt.wantIcon {
				t.Errorf("CategoryIcon(%q) = %q, want %q", tt.category, got, tt.wantIcon)
			}
			if got := CategoryColor(tt.category); got != tt.wantColor {
				t.Errorf("CategoryColor(%q) = %q, want %q", tt.category, got, tt.wantColor)
			}
		})
	}
}

func assertCategoriesEqual(t *testing.T, want, got []model.SuggestionCategory) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d (%+v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Name != want[i].Name {
			t.Errorf("category[%d].Name = %q, want %q", i, got[i].Name, want[i].Name)
		}
		if len(got[i].Items) != len(want[i].Items) {
			t.Errorf("category[%d] has %d items, want %d", i, len(got[i].Items), len(want[i].Items))
			continue
		}
		for j := range want[i].Items {
			if got[i].Items[j] != want[i].Items[j] {
				t.Errorf("category[%d].Items[%d] = %q, want %q", i, j, got[i].Items[j], want[i].Items[j])
			}
		}
	}
}
