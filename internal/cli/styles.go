// Package cli provides styled terminal output for packing lists and
// suggestions using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (packing blue).
	PrimaryColor = lipgloss.Color("#007AFF")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#34C759") // Green
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FF9500") // Orange
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF3B30") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#8E8E93") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 2)

	// UserMessageStyle formats the user's side of the suggestion chat.
	UserMessageStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(PrimaryColor)

	// AssistantMessageStyle formats the assistant's side of the chat.
	AssistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF"))

	// StreamingStyle formats in-flight partial response text.
	StreamingStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// PackedStyle formats packed item names.
	PackedStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Strikethrough(true)
)

// CategoryStyle returns a style using the accent color assigned to a
// suggestion category name.
func CategoryStyle(hexColor string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor))
}
