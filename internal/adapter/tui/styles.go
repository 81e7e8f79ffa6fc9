package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the styled components of the catalog view.
type Styles struct {
	Header   lipgloss.Style
	Badge    lipgloss.Style
	CartInfo lipgloss.Style

	Title    lipgloss.Style
	Author   lipgloss.Style
	Muted    lipgloss.Style
	Price    lipgloss.Style
	OldPrice lipgloss.Style

	Selected lipgloss.Style
	Error    lipgloss.Style
	Alert    lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("62")).
			Padding(0, 2).
			Bold(true),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Italic(true),

		CartInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),

		Title: lipgloss.NewStyle().Bold(true),

		Author: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),

		Price: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),

		OldPrice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),

		Alert: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("196")).
			Padding(0, 1).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
