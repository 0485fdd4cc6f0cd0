package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rolodeck/rolodeck/internal/controller"
	"github.com/rolodeck/rolodeck/internal/event"
	"github.com/rolodeck/rolodeck/internal/prefs"
	"github.com/rolodeck/rolodeck/internal/record"
)

// updateTable clamps the selection when the record list changes, keeping
// the same record selected by id when it still exists.
func (m *Model) updateTable(prevSelected string) {
	if len(m.records) == 0 {
		m.selectedRow = 0
		return
	}
	if prevSelected != "" {
		if idx := record.IndexByID(m.records, prevSelected); idx >= 0 {
			m.selectedRow = idx
			return
		}
	}
	if m.selectedRow >= len(m.records) {
		m.selectedRow = len(m.records) - 1
	}
}

func (m Model) selectedRecord() (record.Record, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.records) {
		return record.Record{}, false
	}
	return m.records[m.selectedRow], true
}

// handleTableKey processes keyboard input for the table view.
func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		if m.selectedRow < len(m.records)-1 {
			m.selectedRow++
		}
		return m, nil

	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case "g", "home":
		m.selectedRow = 0
		return m, nil

	case "G", "end":
		if len(m.records) > 0 {
			m.selectedRow = len(m.records) - 1
		}
		return m, nil

	case "a":
		m.form.reset()
		m.currentView = ViewForm
		return m, nil

	case "e", "enter":
		rec, ok := m.selectedRecord()
		if !ok {
			return m, nil
		}
		m.bus.Publish(event.RequestEdit{ID: rec.ID})
		if m.ctrl.Mode() == controller.ModeEdit {
			m.form.load(m.ctrl.Draft())
			m.currentView = ViewForm
		}
		return m, nil

	case "d":
		rec, ok := m.selectedRecord()
		if !ok {
			return m, nil
		}
		m.confirm.open(rec.ID, rec.Name)
		return m, nil

	case "t":
		m.trashRow = 0
		m.currentView = ViewTrash
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil
	}

	return m, nil
}

// renderTable renders the active record list.
func (m Model) renderTable() string {
	styles := m.theme.Styles()

	if len(m.records) == 0 {
		empty := styles.MutedText.Render("No records yet — press a to add one")
		return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, empty)
	}

	width := m.width - 4
	if width < 40 {
		width = 40
	}

	var lines []string
	lines = append(lines, styles.FaintText.Render(m.tableHeader(width)))
	for i, rec := range m.records {
		row := m.formatRow(rec, width)
		if i == m.selectedRow {
			lines = append(lines, styles.Selected.Render(row))
		} else {
			lines = append(lines, styles.Text.Render(row))
		}
	}

	body := strings.Join(lines, "\n")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Render(body)

	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Top, box)
}

// Column widths for the record table. Name gets whatever is left.
const (
	colPhone = 12
	colEmail = 24
	colCity  = 16
	colAge   = 4
)

func (m Model) tableHeader(width int) string {
	nameWidth := nameColumnWidth(width)
	var b strings.Builder
	b.WriteString(padRight("Name", nameWidth))
	b.WriteString(padRight("Phone", colPhone))
	b.WriteString(padRight("Email", colEmail))
	b.WriteString(padRight("City", colCity))
	b.WriteString(padRight("Age", colAge))
	return b.String()
}

func (m Model) formatRow(rec record.Record, width int) string {
	nameWidth := nameColumnWidth(width)
	var b strings.Builder
	b.WriteString(padRight(rec.Name, nameWidth))
	b.WriteString(padRight(rec.Phone, colPhone))
	b.WriteString(padRight(rec.Email, colEmail))
	b.WriteString(padRight(rec.City, colCity))
	b.WriteString(padRight(strconv.Itoa(rec.Age), colAge))
	return b.String()
}

func nameColumnWidth(width int) int {
	w := width - colPhone - colEmail - colCity - colAge
	if w < 12 {
		w = 12
	}
	return w
}
