// Package store owns the deck map and its persistence.
//
// # Overview
//
// The Store is the single authority over deck data. UI screens read cloned
// deck snapshots and mutate exclusively through Store methods; every mutating
// operation persists the whole map synchronously before returning, so there
// is no deferred or batched write and no partial-failure state.
//
// # Persistence
//
// The data file is a TOML document mapping deck name to a mapping from word
// text to entry fields (part_of_speech, meaning, example, status). Save
// writes to a temporary file and renames it over the previous one, so a
// crash mid-write leaves the prior valid file untouched.
//
// Load never fails outward: a missing or unparsable file yields a store
// holding a single empty Default deck. The store is never empty — deleting
// the last deck re-seeds Default.
//
// # Error Handling
//
// Three kinds of failure, per the project-wide policy that no error leaves
// the in-memory model unusable:
//
//   - Validation (ErrEmptyName, ErrDuplicateName, ErrEmptyWord,
//     ErrEmptyMeaning, ErrDeckFull): the operation aborts with no state
//     change. Match with errors.Is.
//   - Not found: silent no-op where safe (deleting an already-gone word),
//     ErrNotFound where the caller named a deck that must exist.
//   - Persistence (*SaveError): the in-memory mutation is kept and the error
//     is surfaced as a warning; memory is authoritative until the next
//     successful save.
//
// # Concurrency
//
// All Store calls happen on the foreground event loop. There is no internal
// locking and no cross-process coordination; the data file is single-writer.
package store
