// Package controller implements the application's state machine: it owns
// every mutation of the record store and is driven purely by bus events, so
// the add/edit/delete/restore protocol is testable without any UI surface.
package controller

import (
	"time"

	"github.com/rolodeck/rolodeck/internal/event"
	"github.com/rolodeck/rolodeck/internal/record"
	"github.com/rolodeck/rolodeck/internal/store"
	"github.com/rolodeck/rolodeck/internal/validate"
)

// ConfirmationWord is the literal the user must type before a delete goes
// through. A friction step, not a security mechanism.
const ConfirmationWord = "delete"

// Mode says what the form is bound to.
type Mode int

const (
	// ModeCreate: the form captures a new record.
	ModeCreate Mode = iota
	// ModeEdit: the form is bound to an existing record's id.
	ModeEdit
)

// NoticeKind classifies a notification banner entry.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeWarn
)

// Notice is a transient user-facing notification.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Controller subscribes to every event topic and is the sole mutator of
// the store. Views publish events and then read the controller and store
// back; dispatch is synchronous, so by the time Publish returns the
// transition has fully happened.
type Controller struct {
	store *store.Store

	mode      Mode
	editingID string
	draft     record.Record

	fieldErrors    map[string]string
	notice         *Notice
	deleteRejected bool
	revision       uint64

	now func() time.Time
}

// New wires a controller to the bus and store. The store must already be
// open; the controller takes over all mutation from here on.
func New(bus *event.Bus, st *store.Store) *Controller {
	c := &Controller{store: st, now: time.Now}
	bus.Subscribe(event.TopicSubmitCreate, c.handle)
	bus.Subscribe(event.TopicSubmitUpdate, c.handle)
	bus.Subscribe(event.TopicRequestEdit, c.handle)
	bus.Subscribe(event.TopicRequestDelete, c.handle)
	bus.Subscribe(event.TopicRequestRestore, c.handle)
	return c
}

func (c *Controller) handle(ev event.Event) {
	switch ev := ev.(type) {
	case event.SubmitCreate:
		c.submitCreate(ev.Record)
	case event.SubmitUpdate:
		c.submitUpdate(ev.Record)
	case event.RequestEdit:
		c.requestEdit(ev.ID)
	case event.RequestDelete:
		c.requestDelete(ev.ID, ev.Confirmation)
	case event.RequestRestore:
		c.requestRestore(ev.ID)
	}
}

func (c *Controller) submitCreate(rec record.Record) {
	if errs := validate.CheckAll(rec); len(errs) > 0 {
		c.fieldErrors = errs
		return
	}

	now := c.now()
	rec.ID = record.NewID(now)
	rec.Timestamp = now
	if err := c.store.Add(rec); err != nil {
		c.warn("Could not save record: " + err.Error())
		return
	}

	c.fieldErrors = nil
	c.success("Record added")
	c.revision++
	// Create mode persists across submissions.
}

func (c *Controller) submitUpdate(rec record.Record) {
	if c.mode != ModeEdit || rec.ID != c.editingID {
		return
	}
	if errs := validate.CheckAll(rec); len(errs) > 0 {
		c.fieldErrors = errs
		return
	}

	ok, err := c.store.Update(rec)
	if err != nil {
		c.warn("Could not save record: " + err.Error())
		return
	}
	if !ok {
		return
	}

	c.fieldErrors = nil
	c.mode = ModeCreate
	c.editingID = ""
	c.draft = record.Record{}
	c.success("Record updated")
	c.revision++
}

func (c *Controller) requestEdit(id string) {
	active := c.store.Active()
	idx := record.IndexByID(active, id)
	if idx < 0 {
		return
	}
	c.mode = ModeEdit
	c.editingID = id
	c.draft = active[idx]
	c.fieldErrors = nil
	c.revision++
}

func (c *Controller) requestDelete(id, confirmation string) {
	c.deleteRejected = false
	if confirmation != ConfirmationWord {
		c.deleteRejected = true
		c.warn("Type \"" + ConfirmationWord + "\" to confirm")
		return
	}

	ok, err := c.store.Delete(id)
	if err != nil {
		c.warn("Could not delete record: " + err.Error())
		return
	}
	if !ok {
		return
	}

	if c.mode == ModeEdit && c.editingID == id {
		c.CancelEdit()
	}
	c.success("Record moved to trash")
	c.revision++
}

func (c *Controller) requestRestore(id string) {
	ok, err := c.store.Restore(id)
	if err != nil {
		c.warn("Could not restore record: " + err.Error())
		return
	}
	if !ok {
		return
	}
	c.success("Record restored")
	c.revision++
}

// CancelEdit drops the form binding and returns to create mode. Called by
// the form view when the user backs out; closing without submitting is a
// no-op on the data.
func (c *Controller) CancelEdit() {
	c.mode = ModeCreate
	c.editingID = ""
	c.draft = record.Record{}
	c.fieldErrors = nil
}

// Mode reports whether the form is creating or editing.
func (c *Controller) Mode() Mode {
	return c.mode
}

// EditingID returns the bound record id in edit mode, "" otherwise.
func (c *Controller) EditingID() string {
	return c.editingID
}

// Draft returns the record loaded by the last edit request.
func (c *Controller) Draft() record.Record {
	return c.draft.Clone()
}

// FieldErrors returns the per-field messages from the last rejected
// submission, nil when the last submission passed.
func (c *Controller) FieldErrors() map[string]string {
	return c.fieldErrors
}

// DeleteRejected reports whether the most recent delete request was turned
// away for a confirmation mismatch; the dialog should stay open.
func (c *Controller) DeleteRejected() bool {
	return c.deleteRejected
}

// TakeNotice returns and clears the pending notification.
func (c *Controller) TakeNotice() (Notice, bool) {
	if c.notice == nil {
		return Notice{}, false
	}
	n := *c.notice
	c.notice = nil
	return n, true
}

// Revision increments after every completed mutation. Views compare it to
// decide when to re-read the store.
func (c *Controller) Revision() uint64 {
	return c.revision
}

func (c *Controller) success(text string) {
	c.notice = &Notice{Kind: NoticeSuccess, Text: text}
}

func (c *Controller) warn(text string) {
	c.notice = &Notice{Kind: NoticeWarn, Text: text}
}
