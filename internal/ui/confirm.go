package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rolodeck/rolodeck/internal/controller"
	"github.com/rolodeck/rolodeck/internal/event"
)

// confirmState is the typed-confirmation dialog for deletes. The user must
// type the confirmation word exactly; anything else keeps the dialog open.
type confirmState struct {
	active     bool
	targetID   string
	targetName string
	input      textinput.Model
}

func newConfirmState() confirmState {
	ti := textinput.New()
	ti.Placeholder = controller.ConfirmationWord
	ti.CharLimit = 16
	ti.Prompt = "> "
	return confirmState{input: ti}
}

func (c *confirmState) open(id, name string) {
	c.active = true
	c.targetID = id
	c.targetName = name
	c.input.SetValue("")
	c.input.Focus()
}

func (c *confirmState) close() {
	c.active = false
	c.targetID = ""
	c.targetName = ""
	c.input.Blur()
}

// handleConfirmKey processes keyboard input while the dialog is open.
// Esc dismisses it without touching anything.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.confirm.close()
		return m, nil

	case "enter":
		m.bus.Publish(event.RequestDelete{
			ID:           m.confirm.targetID,
			Confirmation: m.confirm.input.Value(),
		})
		if m.ctrl.DeleteRejected() {
			// Mismatch: the dialog stays open, the banner explains.
			m.confirm.input.SetValue("")
			return m, m.syncState()
		}
		m.confirm.close()
		return m, m.syncState()
	}

	var cmd tea.Cmd
	m.confirm.input, cmd = m.confirm.input.Update(msg)
	return m, cmd
}

// renderConfirm renders the confirmation dialog centered over the content
// area.
func (m Model) renderConfirm() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Delete " + m.confirm.targetName + "?"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("Type \"" + controller.ConfirmationWord + "\" to confirm:"))
	b.WriteString("\n")
	b.WriteString(m.confirm.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter confirm · esc cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, box)
}
