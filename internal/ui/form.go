package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rolodeck/rolodeck/internal/event"
	"github.com/rolodeck/rolodeck/internal/record"
	"github.com/rolodeck/rolodeck/internal/validate"
)

// fieldLabels maps validated field names to form labels, in validate.Fields
// order.
var fieldLabels = map[string]string{
	validate.FieldName:        "Name",
	validate.FieldPhone:       "Phone",
	validate.FieldEmail:       "Email",
	validate.FieldDateOfBirth: "Date of birth",
	validate.FieldAge:         "Age",
	validate.FieldCountry:     "Country",
	validate.FieldState:       "State",
	validate.FieldCity:        "City",
	validate.FieldZip:         "Zip",
}

var fieldPlaceholders = map[string]string{
	validate.FieldName:        "Ana Maria",
	validate.FieldPhone:       "5551234567",
	validate.FieldEmail:       "ana@example.com",
	validate.FieldDateOfBirth: "2000-01-01",
	validate.FieldAge:         "24",
	validate.FieldCountry:     "USA",
	validate.FieldState:       "California",
	validate.FieldCity:        "Los Angeles",
	validate.FieldZip:         "90001",
}

// formState holds the input widgets and per-field errors for one form
// instance. editingID is empty in create mode and the bound record id in
// edit mode.
type formState struct {
	inputs    []textinput.Model
	focus     int
	errors    map[string]string
	editingID string
}

func newFormState() formState {
	inputs := make([]textinput.Model, len(validate.Fields))
	for i, field := range validate.Fields {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[field]
		ti.CharLimit = 64
		ti.Prompt = ""
		inputs[i] = ti
	}
	f := formState{inputs: inputs, errors: make(map[string]string)}
	f.inputs[0].Focus()
	return f
}

// reset clears every input and returns the form to create mode.
func (f *formState) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
	f.errors = make(map[string]string)
	f.editingID = ""
}

// load binds the form to an existing record for editing.
func (f *formState) load(rec record.Record) {
	f.reset()
	f.editingID = rec.ID
	f.setValue(validate.FieldName, rec.Name)
	f.setValue(validate.FieldPhone, rec.Phone)
	f.setValue(validate.FieldEmail, rec.Email)
	f.setValue(validate.FieldDateOfBirth, rec.DateOfBirth)
	f.setValue(validate.FieldAge, strconv.Itoa(rec.Age))
	f.setValue(validate.FieldCountry, rec.Country)
	f.setValue(validate.FieldState, rec.State)
	f.setValue(validate.FieldCity, rec.City)
	f.setValue(validate.FieldZip, rec.Zip)
}

func (f *formState) setValue(field, value string) {
	for i, name := range validate.Fields {
		if name == field {
			f.inputs[i].SetValue(value)
			return
		}
	}
}

func (f *formState) value(field string) string {
	for i, name := range validate.Fields {
		if name == field {
			return f.inputs[i].Value()
		}
	}
	return ""
}

// record builds a Record from the current input values. The id is left
// empty; the caller binds it for updates.
func (f *formState) record() record.Record {
	age, _ := strconv.Atoi(strings.TrimSpace(f.value(validate.FieldAge)))
	return record.Record{
		Name:        strings.TrimSpace(f.value(validate.FieldName)),
		Phone:       strings.TrimSpace(f.value(validate.FieldPhone)),
		Email:       strings.TrimSpace(f.value(validate.FieldEmail)),
		DateOfBirth: strings.TrimSpace(f.value(validate.FieldDateOfBirth)),
		Age:         age,
		Country:     strings.TrimSpace(f.value(validate.FieldCountry)),
		State:       strings.TrimSpace(f.value(validate.FieldState)),
		City:        strings.TrimSpace(f.value(validate.FieldCity)),
		Zip:         strings.TrimSpace(f.value(validate.FieldZip)),
	}
}

// validateField re-checks one field and sets or clears its inline error.
func (f *formState) validateField(i int) {
	field := validate.Fields[i]
	if msg := validate.Check(field, f.inputs[i].Value()); msg != "" {
		f.errors[field] = msg
	} else {
		delete(f.errors, field)
	}
}

// validateAll checks every field and reports whether the form is clean.
func (f *formState) validateAll() bool {
	for i := range f.inputs {
		f.validateField(i)
	}
	return len(f.errors) == 0
}

func (f *formState) focusIndex(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *formState) focusNext() {
	f.focusIndex((f.focus + 1) % len(f.inputs))
}

func (f *formState) focusPrev() {
	f.focusIndex((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

// handleFormKey processes keyboard input for the form view.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ctrl.CancelEdit()
		m.form.reset()
		m.currentView = ViewTable
		return m, nil

	case "tab", "down":
		m.form.validateField(m.form.focus)
		m.form.focusNext()
		return m, nil

	case "shift+tab", "up":
		m.form.validateField(m.form.focus)
		m.form.focusPrev()
		return m, nil

	case "enter":
		if m.form.focus == len(m.form.inputs)-1 {
			return m.submitForm()
		}
		m.form.validateField(m.form.focus)
		m.form.focusNext()
		return m, nil

	case "ctrl+s":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// submitForm validates and publishes the create or update event. Dispatch
// is synchronous, so the store already reflects the outcome when Publish
// returns.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if !m.form.validateAll() {
		return m, nil
	}

	rec := m.form.record()
	before := m.ctrl.Revision()
	if m.form.editingID != "" {
		rec.ID = m.form.editingID
		m.bus.Publish(event.SubmitUpdate{Record: rec})
	} else {
		m.bus.Publish(event.SubmitCreate{Record: rec})
	}

	if errs := m.ctrl.FieldErrors(); len(errs) > 0 {
		m.form.errors = errs
		return m, nil
	}
	if m.ctrl.Revision() == before {
		// Mutation did not land (persist failure); the notice explains.
		return m, m.syncState()
	}

	m.form.reset()
	m.currentView = ViewTable
	return m, m.syncState()
}

// renderForm renders the form view.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	title := "Add record"
	if m.form.editingID != "" {
		title = "Edit record #" + m.form.editingID
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n\n")

	for i, field := range validate.Fields {
		label := fieldLabels[field]
		labelStyle := styles.MutedText
		if i == m.form.focus {
			labelStyle = styles.AccentText
		}
		b.WriteString(labelStyle.Render(padRight(label, 14)))
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := m.form.errors[field]; ok {
			b.WriteString(strings.Repeat(" ", 14))
			b.WriteString(styles.DangerText.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter/tab next field · ctrl+s save · esc cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, box)
}
