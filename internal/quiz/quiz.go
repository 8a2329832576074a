// Package quiz implements card-review sessions over a scoped deck subset.
//
// A session snapshots and shuffles its word order at start and never
// reorders it afterwards: a word whose status stops matching the original
// scope stays reachable for the remainder of the session. Sessions are
// ephemeral and never persisted; abandoning one is simply dropping it.
package quiz

import (
	"errors"
	"math/rand"

	"github.com/wordkeep/wordkeep/internal/deck"
)

// ErrEmptyScope reports that no word in the deck matches the requested
// scope. It is informational: the caller shows a notice instead of starting
// a session.
var ErrEmptyScope = errors.New("no words for this scope")

// Scope restricts a session to a status subset of the deck.
type Scope string

const (
	ScopeAll     Scope = "all"
	ScopeUnknown Scope = "unknown"
	ScopePartial Scope = "partial"
	ScopeKnown   Scope = "known"
)

// Matches reports whether an entry status falls inside the scope.
func (sc Scope) Matches(st deck.Status) bool {
	switch sc {
	case ScopeAll:
		return true
	case ScopeUnknown:
		return st == deck.StatusUnknown
	case ScopePartial:
		return st == deck.StatusPartial
	case ScopeKnown:
		return st == deck.StatusKnown
	}
	return false
}

// StatusWriter is the slice of the store a session needs to record answers.
type StatusWriter interface {
	SetWordStatus(deckName, word string, st deck.Status) error
}

// Session is one quiz run: a shuffled word order plus a cursor.
type Session struct {
	deckName string
	scope    Scope
	order    []string
	cursor   int
	entries  map[string]deck.Entry
}

// Start computes the scope's candidate set from d, shuffles it once, and
// returns a session positioned on the first word. An empty candidate set
// yields ErrEmptyScope and no session.
func Start(deckName string, d *deck.Deck, scope Scope, rng *rand.Rand) (*Session, error) {
	var order []string
	entries := make(map[string]deck.Entry)
	for _, w := range d.Words() {
		e, ok := d.Get(w)
		if !ok || !scope.Matches(e.Status) {
			continue
		}
		order = append(order, w)
		entries[w] = e
	}
	if len(order) == 0 {
		return nil, ErrEmptyScope
	}

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	return &Session{
		deckName: deckName,
		scope:    scope,
		order:    order,
		entries:  entries,
	}, nil
}

// DeckName returns the deck this session reviews.
func (s *Session) DeckName() string { return s.deckName }

// Scope returns the scope the session was started with.
func (s *Session) Scope() Scope { return s.scope }

// Len returns the number of words in the session.
func (s *Session) Len() int { return len(s.order) }

// Pos returns the zero-based cursor position.
func (s *Session) Pos() int { return s.cursor }

// Word returns the word text at the cursor.
func (s *Session) Word() string { return s.order[s.cursor] }

// Entry returns the entry for the word at the cursor. It is a pure read and
// never mutates session state.
func (s *Session) Entry() deck.Entry { return s.entries[s.Word()] }

// Next advances the cursor by one. At the last word it is a silent no-op.
func (s *Session) Next() {
	if s.cursor < len(s.order)-1 {
		s.cursor++
	}
}

// Prev moves the cursor back by one. At the first word it is a silent no-op.
func (s *Session) Prev() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// SetStatus writes st onto the word at the cursor through the store, which
// persists immediately. The session's order is never reordered or filtered
// by a status change.
func (s *Session) SetStatus(st deck.Status, w StatusWriter) error {
	word := s.Word()
	e := s.entries[word]
	e.Status = st
	s.entries[word] = e
	return w.SetWordStatus(s.deckName, word, st)
}
