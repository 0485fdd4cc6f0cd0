// Package record defines the personal-record model shared by the store,
// controller, and UI.
package record

import (
	"strconv"
	"time"
)

// Record is one stored form submission.
type Record struct {
	ID          string    `toml:"id" json:"id"`
	Name        string    `toml:"name" json:"name"`
	Phone       string    `toml:"phone" json:"phone"`
	Email       string    `toml:"email" json:"email"`
	DateOfBirth string    `toml:"date_of_birth" json:"dateOfBirth"`
	Age         int       `toml:"age" json:"age"`
	Country     string    `toml:"country" json:"country"`
	State       string    `toml:"state" json:"state"`
	City        string    `toml:"city" json:"city"`
	Zip         string    `toml:"zip" json:"zip"`
	// Timestamp is the creation time while the record is active and the
	// deletion time once it sits in the trash.
	Timestamp time.Time `toml:"timestamp" json:"timestamp"`
	// RestoreHistory is reserved for tracking repeated restores. Nothing
	// writes it yet.
	RestoreHistory []string `toml:"restore_history,omitempty" json:"restoreHistory,omitempty"`
}

// NewID derives a record id from the given instant. Ids are the Unix
// millisecond timestamp stringified, which is monotonic enough for a
// single-operator tool where submissions arrive at human speed.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Clone returns a copy that shares no mutable state with r.
func (r Record) Clone() Record {
	dup := r
	if len(r.RestoreHistory) > 0 {
		dup.RestoreHistory = make([]string, len(r.RestoreHistory))
		copy(dup.RestoreHistory, r.RestoreHistory)
	}
	return dup
}

// CloneAll deep-copies a record slice. A nil or empty input yields nil.
func CloneAll(recs []Record) []Record {
	if len(recs) == 0 {
		return nil
	}
	dup := make([]Record, len(recs))
	for i, r := range recs {
		dup[i] = r.Clone()
	}
	return dup
}

// IndexByID returns the position of the record with the given id, or -1.
func IndexByID(recs []Record, id string) int {
	for i, r := range recs {
		if r.ID == id {
			return i
		}
	}
	return -1
}
