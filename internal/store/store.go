package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rolodeck/rolodeck/internal/record"
)

// HistoryCap bounds the trash. Deleting past the cap evicts the oldest
// entry, so a delete is reversible only within this window.
const HistoryCap = 3

// DefaultDir is where the store lives unless overridden.
const DefaultDir = "~/.local/share/rolodeck"

// Store holds the active record set (most-recent-first) and the deleted
// history (oldest-first, capped at HistoryCap). Every mutation persists
// before it returns, so in-memory state and the files on disk always agree
// at the call boundary. Construct with Open and inject where needed; the
// program runs exactly one instance but nothing here enforces or assumes
// that.
type Store struct {
	dir    string
	active []record.Record
	trash  []record.Record

	now func() time.Time
}

// Open creates the store directory if needed and loads both entries.
// An unusable directory or a corrupt entry is fatal here rather than
// surfacing later as silent data loss.
func Open(dir string) (*Store, error) {
	if dir == "" {
		dir = DefaultDir
	}
	resolved, err := expandPath(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve store dir: %w", err)
	}
	if err := os.MkdirAll(resolved, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	active, err := readEntry(filepath.Join(resolved, activeEntry))
	if err != nil {
		return nil, err
	}
	trash, err := readEntry(filepath.Join(resolved, trashEntry))
	if err != nil {
		return nil, err
	}

	return &Store{
		dir:    resolved,
		active: active,
		trash:  trash,
		now:    time.Now,
	}, nil
}

// Active returns a snapshot of the active set, most recent first. Mutating
// the returned slice does not affect the store.
func (s *Store) Active() []record.Record {
	return record.CloneAll(s.active)
}

// SetActive replaces the active set and persists it, preserving order.
func (s *Store) SetActive(recs []record.Record) error {
	cloned := record.CloneAll(recs)
	if err := writeEntry(filepath.Join(s.dir, activeEntry), cloned); err != nil {
		return err
	}
	s.active = cloned
	return nil
}

// DeletedHistory returns a snapshot of the trash, oldest first.
func (s *Store) DeletedHistory() []record.Record {
	return record.CloneAll(s.trash)
}

// SetDeletedHistory replaces the trash and persists it. The caller is
// responsible for enforcing HistoryCap when it bypasses Delete.
func (s *Store) SetDeletedHistory(recs []record.Record) error {
	cloned := record.CloneAll(recs)
	if err := writeEntry(filepath.Join(s.dir, trashEntry), cloned); err != nil {
		return err
	}
	s.trash = cloned
	return nil
}

// Add prepends a record to the active set and persists.
func (s *Store) Add(rec record.Record) error {
	next := append([]record.Record{rec.Clone()}, s.active...)
	return s.SetActive(next)
}

// Update replaces the active record with rec's id in place. Returns false
// without touching anything when the id is not active.
func (s *Store) Update(rec record.Record) (bool, error) {
	idx := record.IndexByID(s.active, rec.ID)
	if idx < 0 {
		return false, nil
	}
	next := record.CloneAll(s.active)
	next[idx] = rec.Clone()
	return true, s.SetActive(next)
}

// Delete moves the record with the given id from the active set to the
// trash in one step: it is stamped with the deletion time, appended to the
// trash, and the oldest trash entry is evicted past HistoryCap. Both
// entries persist before Delete returns, so no intermediate state is ever
// observable. Returns false for an id that is not active.
func (s *Store) Delete(id string) (bool, error) {
	idx := record.IndexByID(s.active, id)
	if idx < 0 {
		return false, nil
	}

	removed := s.active[idx].Clone()
	removed.Timestamp = s.now()

	nextActive := make([]record.Record, 0, len(s.active)-1)
	nextActive = append(nextActive, record.CloneAll(s.active[:idx])...)
	nextActive = append(nextActive, record.CloneAll(s.active[idx+1:])...)

	nextTrash := append(record.CloneAll(s.trash), removed)
	if len(nextTrash) > HistoryCap {
		nextTrash = nextTrash[len(nextTrash)-HistoryCap:]
	}

	if err := writeEntry(filepath.Join(s.dir, activeEntry), nextActive); err != nil {
		return false, err
	}
	if err := writeEntry(filepath.Join(s.dir, trashEntry), nextTrash); err != nil {
		return false, err
	}
	s.active = nextActive
	s.trash = nextTrash
	return true, nil
}

// Restore moves the record with the given id from the trash back to the
// end of the active set. Returns false for an id that is not in the trash.
func (s *Store) Restore(id string) (bool, error) {
	idx := record.IndexByID(s.trash, id)
	if idx < 0 {
		return false, nil
	}

	restored := s.trash[idx].Clone()

	nextTrash := make([]record.Record, 0, len(s.trash)-1)
	nextTrash = append(nextTrash, record.CloneAll(s.trash[:idx])...)
	nextTrash = append(nextTrash, record.CloneAll(s.trash[idx+1:])...)

	nextActive := append(record.CloneAll(s.active), restored)

	if err := writeEntry(filepath.Join(s.dir, activeEntry), nextActive); err != nil {
		return false, err
	}
	if err := writeEntry(filepath.Join(s.dir, trashEntry), nextTrash); err != nil {
		return false, err
	}
	s.active = nextActive
	s.trash = nextTrash
	return true, nil
}

// Dir returns the resolved store directory.
func (s *Store) Dir() string {
	return s.dir
}
