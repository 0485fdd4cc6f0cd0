// Package ui implements the Bubble Tea interface: the record table, the
// entry form, the trash view, and the typed-confirmation delete dialog.
//
// The views never mutate the store. Key handlers publish events on the bus;
// the controller applies the transition synchronously during Publish, and
// the handler then re-reads the store snapshot before returning. The only
// timer is the notification banner's auto-dismiss tick, which touches
// nothing but the banner.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rolodeck/rolodeck/internal/controller"
	"github.com/rolodeck/rolodeck/internal/event"
	"github.com/rolodeck/rolodeck/internal/prefs"
	"github.com/rolodeck/rolodeck/internal/record"
	"github.com/rolodeck/rolodeck/internal/store"
)

// View represents the current active view.
type View int

const (
	ViewTable View = iota
	ViewForm
	ViewTrash
)

const noticeTimeout = 3 * time.Second

// Options configures the UI.
type Options struct {
	Context    context.Context
	Bus        *event.Bus
	Controller *controller.Controller
	Store      *store.Store
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	bus       *event.Bus
	ctrl      *controller.Controller
	store     *store.Store
	prefsPath string

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Data state: snapshots re-read after every published event.
	records     []record.Record
	trash       []record.Record
	selectedRow int
	trashRow    int

	form    formState
	confirm confirmState

	// Notification banner
	notice    controller.Notice
	hasNotice bool
	noticeSeq int
}

// New creates the root model.
func New(opts Options) Model {
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	m := Model{
		bus:         opts.Bus,
		ctrl:        opts.Controller,
		store:       opts.Store,
		prefsPath:   prefsPath,
		theme:       GetTheme(opts.ThemeName),
		currentView: ViewTable,
		form:        newFormState(),
		confirm:     newConfirmState(),
	}
	m.records = opts.Store.Active()
	m.trash = opts.Store.DeletedHistory()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textinput.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case dismissNoticeMsg:
		// A newer notice re-arms the timer; only the matching tick clears.
		if msg.seq == m.noticeSeq {
			m.hasNotice = false
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch {
	case m.confirm.active:
		content = m.renderConfirm()
	case m.currentView == ViewForm:
		content = m.renderForm()
	case m.currentView == ViewTrash:
		content = m.renderTrash()
	default:
		content = m.renderTable()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(m.renderBanner())
	return b.String()
}

// handleKey routes keyboard input. The confirmation dialog and the form
// capture keys because typing is their whole point.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}
	if m.confirm.active {
		return m.handleConfirmKey(msg)
	}

	switch m.currentView {
	case ViewForm:
		return m.handleFormKey(msg)
	case ViewTrash:
		if s := msg.String(); s == "h" || s == "?" {
			m.showHelp = true
			return m, nil
		}
		return m.handleTrashKey(msg)
	default:
		if s := msg.String(); s == "h" || s == "?" {
			m.showHelp = true
			return m, nil
		}
		return m.handleTableKey(msg)
	}
}

// syncState re-reads the store snapshots after a published event and picks
// up any pending notification. Selection is preserved by record id.
func (m *Model) syncState() tea.Cmd {
	prevSelected := ""
	if rec, ok := m.selectedRecord(); ok {
		prevSelected = rec.ID
	}

	m.records = m.store.Active()
	m.trash = m.store.DeletedHistory()
	m.updateTable(prevSelected)
	if m.trashRow >= len(m.trash) {
		m.trashRow = max(len(m.trash)-1, 0)
	}

	if n, ok := m.ctrl.TakeNotice(); ok {
		m.notice = n
		m.hasNotice = true
		m.noticeSeq++
		seq := m.noticeSeq
		return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
			return dismissNoticeMsg{seq: seq}
		})
	}
	return nil
}

func (m Model) contentHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	parts := []string{
		styles.Logo.Render("ROLODECK"),
		styles.MutedText.Render(fmt.Sprintf("%d records", len(m.records))),
	}
	if len(m.trash) > 0 {
		parts = append(parts, styles.WarningText.Render(fmt.Sprintf("%d in trash", len(m.trash))))
	}
	parts = append(parts, styles.FaintText.Render(m.theme.Name))
	return strings.Join(parts, styles.FaintText.Render("  ·  "))
}

func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	var hint string
	switch {
	case m.confirm.active:
		hint = "enter confirm · esc cancel"
	case m.currentView == ViewForm:
		hint = "enter/tab next · ctrl+s save · esc cancel"
	case m.currentView == ViewTrash:
		hint = "j/k move · r restore · esc back"
	default:
		hint = "a add · e edit · d delete · t trash · T theme · h help · q quit"
	}
	return styles.FaintText.Render(hint)
}

func (m Model) renderBanner() string {
	if !m.hasNotice {
		return ""
	}
	styles := m.theme.Styles()
	if m.notice.Kind == controller.NoticeWarn {
		return styles.WarningText.Render(m.notice.Text)
	}
	return styles.SuccessText.Render(m.notice.Text)
}

type dismissNoticeMsg struct {
	seq int
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Cancellation is a clean shutdown, not a failure.
		return nil
	}
	return err
}
