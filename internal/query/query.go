// Package query filters, searches, and orders a deck for the word-list view.
//
// Apply is synchronous, side-effect free, and cheap enough to run on every
// keystroke; debouncing rapid calls is the caller's concern. Given the same
// inputs and Shuffle off it is idempotent, so re-running it after a mutation
// is always safe.
package query

import (
	"math/rand"
	"strings"

	"github.com/wordkeep/wordkeep/internal/deck"
)

// NoSelection is the Selection value meaning no row is selected.
const NoSelection = -1

// Options control one Apply pass.
type Options struct {
	// Search keeps only words whose lowercased text contains the lowercased
	// search text. Empty means no text filter.
	Search string
	// Statuses keeps only entries whose status is in the set (OR semantics).
	// Empty or nil means no status filter.
	Statuses map[deck.Status]bool
	// Shuffle randomly permutes the surviving rows. Off preserves the deck's
	// natural insertion order.
	Shuffle bool
	// PrevSelection is the word selected before this pass. When it survives
	// the filters, Selection resolves to its new index; otherwise selection
	// is cleared.
	PrevSelection string
	// Rand is the shuffle source. Nil uses the shared global source.
	Rand *rand.Rand
}

// Row is one surviving (word, entry) pair.
type Row struct {
	Word  string
	Entry deck.Entry
}

// Result is an ordered, addressable result set plus the selection cursor.
type Result struct {
	Rows      []Row
	Selection int
}

// Apply runs the filter pipeline over d: status filter, then substring
// search, then optional shuffle, then selection restore.
func Apply(d *deck.Deck, opts Options) Result {
	rows := make([]Row, 0, d.Len())
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	for _, w := range d.Words() {
		e, ok := d.Get(w)
		if !ok {
			continue
		}
		if len(opts.Statuses) > 0 && !opts.Statuses[e.Status] {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(w), search) {
			continue
		}
		rows = append(rows, Row{Word: w, Entry: e})
	}

	if opts.Shuffle {
		shuffle := rand.Shuffle
		if opts.Rand != nil {
			shuffle = opts.Rand.Shuffle
		}
		shuffle(len(rows), func(i, j int) {
			rows[i], rows[j] = rows[j], rows[i]
		})
	}

	res := Result{Rows: rows, Selection: NoSelection}
	if opts.PrevSelection != "" {
		for i, r := range rows {
			if r.Word == opts.PrevSelection {
				res.Selection = i
				break
			}
		}
	}
	return res
}
