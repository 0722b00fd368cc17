// Package cli provides input decoding and styled output for the funcdrills
// command line.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#7D56F4")
	// SuccessColor marks accepted values.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// DeclinedColor marks sentinel and false results.
	DeclinedColor = lipgloss.Color("#FFE66D") // Yellow
	// SubtleColor is used for secondary text.
	SubtleColor = lipgloss.Color("#666666") // Gray
)

// styles is the set of styles bound to one output renderer.
type styles struct {
	label    lipgloss.Style
	value    lipgloss.Style
	declined lipgloss.Style
	key      lipgloss.Style
	subtle   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		label: r.NewStyle().
			Bold(true).
			Foreground(PrimaryColor),
		value: r.NewStyle().
			Foreground(SuccessColor),
		declined: r.NewStyle().
			Foreground(DeclinedColor),
		key: r.NewStyle().
			Bold(true).
			PaddingRight(2),
		subtle: r.NewStyle().
			Foreground(SubtleColor),
	}
}
