package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#6b7280")
	danger = lipgloss.Color("#e53935")
)

type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	SortActive  lipgloss.Style
	Sort        lipgloss.Style
	Name        lipgloss.Style
	Selected    lipgloss.Style
	Price       lipgloss.Style
	Description lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Overlay     lipgloss.Style
	Close       lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		Label:       lipgloss.NewStyle().Foreground(muted),
		SortActive:  lipgloss.NewStyle().Bold(true).Underline(true).Foreground(accent),
		Sort:        lipgloss.NewStyle().Foreground(muted),
		Name:        lipgloss.NewStyle().Bold(true),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Price:       lipgloss.NewStyle().Foreground(accent),
		Description: lipgloss.NewStyle().Foreground(muted),
		Status:      lipgloss.NewStyle().Foreground(muted).Italic(true),
		Error:       lipgloss.NewStyle().Foreground(danger),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Width(overlayWidth),
		Close: lipgloss.NewStyle().Foreground(danger).Bold(true),
	}
}
