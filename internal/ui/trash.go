package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rolodeck/rolodeck/internal/event"
	"github.com/rolodeck/rolodeck/internal/record"
)

func (m Model) selectedTrashRecord() (record.Record, bool) {
	if m.trashRow < 0 || m.trashRow >= len(m.trash) {
		return record.Record{}, false
	}
	return m.trash[m.trashRow], true
}

// handleTrashKey processes keyboard input for the trash view.
func (m Model) handleTrashKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "t", "q":
		m.currentView = ViewTable
		return m, nil

	case "j", "down":
		if m.trashRow < len(m.trash)-1 {
			m.trashRow++
		}
		return m, nil

	case "k", "up":
		if m.trashRow > 0 {
			m.trashRow--
		}
		return m, nil

	case "r", "enter":
		rec, ok := m.selectedTrashRecord()
		if !ok {
			return m, nil
		}
		m.bus.Publish(event.RequestRestore{ID: rec.ID})
		return m, m.syncState()
	}

	return m, nil
}

// renderTrash renders the deleted history with deletion timestamps.
func (m Model) renderTrash() string {
	styles := m.theme.Styles()

	if len(m.trash) == 0 {
		empty := styles.MutedText.Render("Trash is empty")
		return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, empty)
	}

	var lines []string
	lines = append(lines, styles.AccentText.Bold(true).Render("Trash"))
	lines = append(lines, styles.FaintText.Render("Most recent deletions, oldest evicted first"))
	lines = append(lines, "")
	for i, rec := range m.trash {
		row := padRight(rec.Name, 24) +
			padRight(rec.Email, 26) +
			"deleted " + rec.Timestamp.Format("2006-01-02 15:04")
		if i == m.trashRow {
			lines = append(lines, styles.Selected.Render(row))
		} else {
			lines = append(lines, styles.Text.Render(row))
		}
	}
	lines = append(lines, "")
	lines = append(lines, styles.FaintText.Render("r restore · esc back"))

	body := strings.Join(lines, "\n")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Render(body)

	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Top, box)
}
