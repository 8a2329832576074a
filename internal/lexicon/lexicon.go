// Package lexicon loads the bundled word list backing the random-word
// challenge. The list is read once at startup and never written back; words
// only reach a deck when the user explicitly saves a drawn one.
package lexicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"
)

// Lexicon is a static read-only word list.
type Lexicon struct {
	words []string
}

// Empty returns a lexicon with no words.
func Empty() *Lexicon { return &Lexicon{} }

// Load reads a lexicon file: a JSON object whose keys are the words (values
// are ignored). A missing file yields an empty lexicon and no error so the
// rest of the application stays usable; any other failure is returned.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Lexicon{}, nil
		}
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	words := make([]string, 0, len(raw))
	for w := range raw {
		if w != "" {
			words = append(words, w)
		}
	}
	sort.Strings(words)
	return &Lexicon{words: words}, nil
}

// Len returns the number of words available.
func (l *Lexicon) Len() int { return len(l.words) }

// Random draws one word with uniform probability. An empty lexicon returns
// "" and false. A nil rng uses the shared global source.
func (l *Lexicon) Random(rng *rand.Rand) (string, bool) {
	if len(l.words) == 0 {
		return "", false
	}
	if rng != nil {
		return l.words[rng.Intn(len(l.words))], true
	}
	return l.words[rand.Intn(len(l.words))], true
}
