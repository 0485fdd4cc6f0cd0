// Package store owns the durable record state for rolodeck: the active
// record set and the bounded trash of recently deleted records.
//
// # Overview
//
// The store is the single source of truth the controller mutates and the
// views render from. It keeps both collections in memory and mirrors every
// mutation to disk before returning, so in-memory state and the files on
// disk always agree at the call boundary.
//
// # Persistence layout
//
// The store directory (default ~/.local/share/rolodeck) holds one named
// entry per collection:
//
//	active.toml   the active set, most recent first
//	trash.toml    the deleted history, oldest first, at most 3 entries
//
// Each entry is a TOML document with a single record list. A missing file
// reads as an empty list; a corrupt file fails Open rather than silently
// losing data.
//
// # Mutation semantics
//
// Reads return defensive copies. Writes persist before the in-memory swap,
// so a failed write leaves the previous state intact and observable.
//
// Delete and Restore move a record between the two collections in a single
// call: the record is stamped, both entries are rewritten, and only then
// does memory update. There is no staged or pending state between them.
//
// # Concurrency
//
// None. All access happens on the UI event loop; callbacks run to
// completion before the next begins, so the store needs no locking.
package store
