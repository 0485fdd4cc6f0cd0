package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolodeck/rolodeck/internal/event"
	"github.com/rolodeck/rolodeck/internal/record"
	"github.com/rolodeck/rolodeck/internal/store"
	"github.com/rolodeck/rolodeck/internal/validate"
)

func newTestController(t *testing.T) (*event.Bus, *Controller, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	bus := event.New()
	c := New(bus, st)

	// Deterministic clock that advances a millisecond per call, so every
	// generated id is distinct.
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	c.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}
	return bus, c, st
}

func anaRecord() record.Record {
	return record.Record{
		Name:        "Ana",
		Phone:       "5551234567",
		Email:       "ana@x.com",
		DateOfBirth: "2000-01-01",
		Age:         24,
		Country:     "USA",
		State:       "California",
		City:        "Los Angeles",
		Zip:         "90001",
	}
}

func TestSubmitCreate_AnaScenario(t *testing.T) {
	bus, c, st := newTestController(t)

	bus.Publish(event.SubmitCreate{Record: anaRecord()})

	active := st.Active()
	require.Len(t, active, 1)
	got := active[0]
	assert.NotEmpty(t, got.ID, "create must assign an id")
	assert.False(t, got.Timestamp.IsZero(), "create must stamp a timestamp")
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "5551234567", got.Phone)
	assert.Equal(t, "ana@x.com", got.Email)
	assert.Equal(t, "2000-01-01", got.DateOfBirth)
	assert.Equal(t, 24, got.Age)
	assert.Equal(t, "USA", got.Country)
	assert.Equal(t, "California", got.State)
	assert.Equal(t, "Los Angeles", got.City)
	assert.Equal(t, "90001", got.Zip)

	assert.Equal(t, ModeCreate, c.Mode(), "create mode persists after a submission")
	notice, ok := c.TakeNotice()
	require.True(t, ok)
	assert.Equal(t, NoticeSuccess, notice.Kind)
}

func TestSubmitCreate_PrependsAndAssignsUniqueIDs(t *testing.T) {
	bus, _, st := newTestController(t)

	first := anaRecord()
	second := anaRecord()
	second.Name = "Ben"
	second.Email = "ben@x.com"

	bus.Publish(event.SubmitCreate{Record: first})
	bus.Publish(event.SubmitCreate{Record: second})

	active := st.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "Ben", active[0].Name, "newest record sits at position 0")
	assert.NotEqual(t, active[0].ID, active[1].ID, "ids must be unique across the active set")
}

func TestSubmitCreate_InvalidRecordRejected(t *testing.T) {
	bus, c, st := newTestController(t)

	bad := anaRecord()
	bad.Email = "a@b"
	bad.Phone = "12345"
	bus.Publish(event.SubmitCreate{Record: bad})

	assert.Empty(t, st.Active(), "invalid submission must not reach the store")
	errs := c.FieldErrors()
	require.NotNil(t, errs)
	assert.Contains(t, errs, validate.FieldEmail)
	assert.Contains(t, errs, validate.FieldPhone)

	_, ok := c.TakeNotice()
	assert.False(t, ok, "validation failures surface inline, not as a banner")
}

func TestRequestEdit_LoadsDraftAndEntersEditMode(t *testing.T) {
	bus, c, st := newTestController(t)
	bus.Publish(event.SubmitCreate{Record: anaRecord()})
	id := st.Active()[0].ID

	bus.Publish(event.RequestEdit{ID: id})

	assert.Equal(t, ModeEdit, c.Mode())
	assert.Equal(t, id, c.EditingID())
	assert.Equal(t, "Ana", c.Draft().Name)
}

func TestRequestEdit_UnknownIDIsSilentNoOp(t *testing.T) {
	bus, c, _ := newTestController(t)

	bus.Publish(event.RequestEdit{ID: "404"})

	assert.Equal(t, ModeCreate, c.Mode())
	assert.Empty(t, c.EditingID())
}

func TestSubmitUpdate_ReplacesByIDAndReturnsToCreateMode(t *testing.T) {
	bus, c, st := newTestController(t)
	bus.Publish(event.SubmitCreate{Record: anaRecord()})
	id := st.Active()[0].ID
	bus.Publish(event.RequestEdit{ID: id})

	updated := anaRecord()
	updated.ID = id
	updated.Name = "Ana Maria"
	bus.Publish(event.SubmitUpdate{Record: updated})

	active := st.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Ana Maria", active[0].Name)
	assert.Equal(t, id, active[0].ID, "edit preserves the original id")
	assert.Equal(t, ModeCreate, c.Mode(), "update returns the form to create mode")
	assert.Empty(t, c.EditingID())
}

func TestSubmitUpdate_IDMismatchIgnored(t *testing.T) {
	bus, c, st := newTestController(t)
	bus.Publish(event.SubmitCreate{Record: anaRecord()})
	id := st.Active()[0].ID
	bus.Publish(event.RequestEdit{ID: id})

	rogue := anaRecord()
	rogue.ID = "not-the-bound-id"
	rogue.Name = "Mallory"
	bus.Publish(event.SubmitUpdate{Record: rogue})

	assert.Equal(t, "Ana", st.Active()[0].Name, "mismatched update must not mutate")
	assert.Equal(t, ModeEdit, c.Mode(), "form stays bound")
}

func TestSubmitUpdate_InvalidKeepsEditMode(t *testing.T) {
	bus, c, st := newTestController(t)
	bus.Publish(event.SubmitCreate{Record: anaRecord()})
	id := st.Active()[0].ID
	bus.Publish(event.RequestEdit{ID: id})

	bad := anaRecord()
	bad.ID = id
	bad.Name = ""
	bus.Publish(event.SubmitUpdate{Record: bad})

	assert.Equal(t, "Ana", st.Active()[0].Name)
	assert.Equal(t, ModeEdit, c.Mode())
	assert.Contains(t, c.FieldErrors(), validate.FieldName)
}

func TestRequestDelete_ConfirmationMismatchAborts(t *testing.T) {
	bus, c, st := newTestController(t)
	bus.Publish(event.SubmitCreate{Record: anaRecord()})
	id := st.Active()[0].ID

	bus.Publish(event.RequestDelete{ID: id, Confirmation: "DELETE"})

	assert.True(t, c.DeleteRejected(), "case-sensitive mismatch keeps the dialog open")
	assert.Len(t, st.Active(), 1, "aborted delete must not mutate")
	assert.Empty(t, st.DeletedHistory())

	notice, ok := c.TakeNotice()
	require.True(t, ok)
	assert.Equal(t, NoticeWarn, notice.Kind)
}

func TestRequestDelete_TypedConfirmationMovesToTrash(t *testing.T) {
	bus, c, st := newTestController(t)
	bus.Publish(event.SubmitCreate{Record: anaRecord()})
	id := st.Active()[0].ID

	bus.Publish(event.RequestDelete{ID: id, Confirmation: "delete"})

	assert.False(t, c.DeleteRejected())
	assert.Empty(t, st.Active())
	trash := st.DeletedHistory()
	require.Len(t, trash, 1)
	assert.Equal(t, id, trash[0].ID)
}

func TestRequestDelete_BoundRecordDropsEditMode(t *testing.T) {
	bus, c, st := newTestController(t)
	bus.Publish(event.SubmitCreate{Record: anaRecord()})
	id := st.Active()[0].ID
	bus.Publish(event.RequestEdit{ID: id})

	bus.Publish(event.RequestDelete{ID: id, Confirmation: "delete"})

	assert.Equal(t, ModeCreate, c.Mode(), "deleting the bound record unbinds the form")
}

func TestDeleteThenRestore_RoundTrip(t *testing.T) {
	bus, _, st := newTestController(t)
	bus.Publish(event.SubmitCreate{Record: anaRecord()})
	ben := anaRecord()
	ben.Name = "Ben"
	ben.Email = "ben@x.com"
	bus.Publish(event.SubmitCreate{Record: ben})
	id := st.Active()[1].ID // Ana, the older record

	bus.Publish(event.RequestDelete{ID: id, Confirmation: "delete"})
	bus.Publish(event.RequestRestore{ID: id})

	active := st.Active()
	require.Len(t, active, 2)
	assert.Equal(t, id, active[1].ID, "restored record is appended at the end")
	assert.Empty(t, st.DeletedHistory(), "restore clears the history entry")
}

func TestRequestRestore_UnknownIDIsSilentNoOp(t *testing.T) {
	bus, c, st := newTestController(t)

	bus.Publish(event.RequestRestore{ID: "404"})

	assert.Empty(t, st.Active())
	_, ok := c.TakeNotice()
	assert.False(t, ok)
}

func TestRevision_BumpsOnEveryCompletedMutation(t *testing.T) {
	bus, c, st := newTestController(t)
	require.Zero(t, c.Revision())

	bus.Publish(event.SubmitCreate{Record: anaRecord()})
	assert.Equal(t, uint64(1), c.Revision())

	id := st.Active()[0].ID
	bus.Publish(event.RequestDelete{ID: id, Confirmation: "nope"})
	assert.Equal(t, uint64(1), c.Revision(), "aborted delete is not a mutation")

	bus.Publish(event.RequestDelete{ID: id, Confirmation: "delete"})
	assert.Equal(t, uint64(2), c.Revision())
}
