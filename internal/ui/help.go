package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the key-binding overlay. Any key closes it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	bindings := []struct{ key, desc string }{
		{"a", "Add a record"},
		{"e / enter", "Edit the selected record"},
		{"d", "Delete the selected record (type \"delete\" to confirm)"},
		{"t", "Open the trash"},
		{"r", "Restore the selected trashed record"},
		{"j/k g/G", "Move selection"},
		{"T", "Cycle theme"},
		{"h / ?", "This help"},
		{"q / Ctrl+C", "Quit"},
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Keys"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		b.WriteString(styles.AccentText.Render(padRight(bind.key, 12)))
		b.WriteString(styles.Text.Render(bind.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("press any key to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
