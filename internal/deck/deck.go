package deck

import (
	"fmt"
	"sort"
)

// MaxWords is the hard cap on entries per deck. It is enforced on net-new
// insertion and bulk import, not on renames of existing words.
const MaxWords = 100

// Status is the three-state mastery tag carried by every entry.
type Status string

const (
	StatusUnknown Status = "unknown"
	StatusPartial Status = "partial"
	StatusKnown   Status = "known"
)

// ParseStatus maps a stored string onto a Status. Unrecognized values fall
// back to StatusUnknown so an old or hand-edited data file stays loadable.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusPartial:
		return StatusPartial
	case StatusKnown:
		return StatusKnown
	default:
		return StatusUnknown
	}
}

// Valid reports whether st is one of the three known statuses.
func (st Status) Valid() bool {
	return st == StatusUnknown || st == StatusPartial || st == StatusKnown
}

func (st Status) String() string { return string(st) }

// Entry holds everything stored for a single word. The word text itself is
// the entry's identity and lives in the owning Deck, not here.
type Entry struct {
	PartOfSpeech string
	Meaning      string
	Example      string
	Status       Status
}

// Deck is a capped collection of word entries keyed by word text. It keeps
// the order words were added in so list views stay stable across refreshes.
type Deck struct {
	entries map[string]Entry
	order   []string
}

// New returns an empty deck ready for use.
func New() *Deck {
	return &Deck{entries: make(map[string]Entry)}
}

// FromEntries builds a deck from a plain map, ordering words
// lexicographically. Used when loading a data file, where the original
// insertion order is not recorded.
func FromEntries(m map[string]Entry) *Deck {
	d := New()
	words := make([]string, 0, len(m))
	for w := range m {
		words = append(words, w)
	}
	sort.Strings(words)
	for _, w := range words {
		d.Set(w, m[w])
	}
	return d
}

// Len returns the number of entries.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Get returns the entry for word and whether it exists.
func (d *Deck) Get(word string) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	e, ok := d.entries[word]
	return e, ok
}

// Set inserts or replaces the entry for word. New words are appended to the
// deck's natural order; existing words keep their position.
func (d *Deck) Set(word string, e Entry) {
	if !e.Status.Valid() {
		e.Status = StatusUnknown
	}
	if _, ok := d.entries[word]; !ok {
		d.order = append(d.order, word)
	}
	d.entries[word] = e
}

// Delete removes word from the deck. Deleting an absent word is a no-op.
func (d *Deck) Delete(word string) {
	if _, ok := d.entries[word]; !ok {
		return
	}
	delete(d.entries, word)
	for i, w := range d.order {
		if w == word {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Words returns the word texts in natural (insertion) order. The returned
// slice is a copy.
func (d *Deck) Words() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Entries returns a copy of the underlying word map.
func (d *Deck) Entries() map[string]Entry {
	out := make(map[string]Entry, len(d.entries))
	for w, e := range d.entries {
		out[w] = e
	}
	return out
}

// Clone returns a deep, independent copy of the deck. Mutating the clone
// never affects the original.
func (d *Deck) Clone() *Deck {
	if d == nil {
		return New()
	}
	dup := &Deck{
		entries: make(map[string]Entry, len(d.entries)),
		order:   make([]string, len(d.order)),
	}
	for w, e := range d.entries {
		dup.entries[w] = e
	}
	copy(dup.order, d.order)
	return dup
}

// Equal reports whether two decks hold the same word map, ignoring order.
func (d *Deck) Equal(other *Deck) bool {
	if d.Len() != other.Len() {
		return false
	}
	for w, e := range d.entries {
		oe, ok := other.entries[w]
		if !ok || oe != e {
			return false
		}
	}
	return true
}

func (d *Deck) String() string {
	return fmt.Sprintf("deck(%d words)", d.Len())
}
