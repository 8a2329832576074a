// Package ui implements the wordkeep terminal interface on Bubble Tea.
//
// # Overview
//
// One root Model owns all screens; a screen enum routes key messages to the
// view that currently has the keyboard. Screens:
//
//   - deck select: every deck with word/mastery counts, the collection rank,
//     and deck management (create, rename, copy, delete, xlsx import)
//   - main menu: actions for the current deck plus the mastery bar
//   - word editor: add/edit form; a changed word field renames the entry
//   - quiz: scope picker, then flash cards with reveal, status keys, speech
//     and clamped previous/next navigation
//   - word list: filterable, searchable, optionally shuffled table with
//     hide-meanings mode and per-row speak/edit/delete
//   - random word: draws from the lexicon, saving hands off to the editor
//
// A modal prompt (one-line text input or y/n confirm) overlays any screen
// and owns the keyboard while open.
//
// # State and concurrency
//
// The update loop is the only writer of application state. Store mutations
// happen inline in Update and persist synchronously; a failed save becomes a
// warning on the notice line while the in-memory change stays applied. The
// speech worker is the only background goroutine and it never touches model
// state: its Started/Finished/Failed events arrive as messages through a
// self-rearming listen command.
//
// # Search debounce
//
// The word-list search field does not recompute on every keystroke. Each
// edit bumps a sequence number and schedules a tick; only the tick carrying
// the newest sequence reruns the query, so a fast typist triggers exactly
// one recompute after the last key.
package ui
