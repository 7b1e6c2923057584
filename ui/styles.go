package ui

import (
	"github.com/AnTengye/contractdash/model"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles bundles the palette for one theme.
type Styles struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Chip     lipgloss.Style
	ChipOn   lipgloss.Style
	Modal    lipgloss.Style
	Label    lipgloss.Style
	Table    table.Styles
	Statuses map[model.Status]lipgloss.Style
}

// StylesFor returns the light or dark theme.
func StylesFor(dark bool) Styles {
	fg, bg, muted, accent, border := lipgloss.Color("235"), lipgloss.Color("255"), lipgloss.Color("244"), lipgloss.Color("25"), lipgloss.Color("250")
	if dark {
		fg, bg, muted, accent, border = lipgloss.Color("252"), lipgloss.Color("235"), lipgloss.Color("243"), lipgloss.Color("75"), lipgloss.Color("240")
	}

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(border).
		BorderBottom(true).
		Bold(true).
		Foreground(fg)
	ts.Cell = ts.Cell.Foreground(fg)
	ts.Selected = ts.Selected.Foreground(bg).Background(accent).Bold(false)

	return Styles{
		App:     lipgloss.NewStyle().Foreground(fg).Background(bg).Padding(0, 1),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:   lipgloss.NewStyle().Foreground(muted),
		Accent:  lipgloss.NewStyle().Foreground(accent),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Chip:    lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		ChipOn:  lipgloss.NewStyle().Foreground(bg).Background(accent).Padding(0, 1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Label: lipgloss.NewStyle().Bold(true).Width(16),
		Table: ts,
		Statuses: map[model.Status]lipgloss.Style{
			model.StatusDraft:      lipgloss.NewStyle().Foreground(muted),
			model.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			model.StatusFinalized:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			model.StatusExpired:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		},
	}
}
