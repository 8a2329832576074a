package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/wordkeep/wordkeep/internal/deck"
)

// DefaultDeckName is the deck seeded whenever the store would otherwise be
// empty. The store is never without at least one deck.
const DefaultDeckName = "Default"

// Validation errors. All are recoverable: the operation aborts with no state
// change and the caller surfaces a message.
var (
	ErrEmptyName     = errors.New("name is empty")
	ErrDuplicateName = errors.New("name already exists")
	ErrEmptyWord     = errors.New("word is empty")
	ErrEmptyMeaning  = errors.New("meaning is empty")
	ErrDeckFull      = errors.New("deck is full")
	ErrNotFound      = errors.New("not found")
)

// SaveError wraps a persistence failure. The in-memory mutation that
// triggered the save is kept; callers surface the error as a warning and the
// user may retry on the next mutation.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return fmt.Sprintf("save decks: %v", e.Err) }
func (e *SaveError) Unwrap() error { return e.Err }

// Store owns the deck map and its persistence. It is built for a
// single-threaded foreground context: every call completes fully before the
// next begins and no internal locking is needed.
type Store struct {
	path    string
	decks   map[string]*deck.Deck
	current string
}

// wireEntry is the on-disk shape of a word entry. Field names match the
// historical data file.
type wireEntry struct {
	PartOfSpeech string `toml:"part_of_speech"`
	Meaning      string `toml:"meaning"`
	Example      string `toml:"example"`
	Status       string `toml:"status"`
}

// Open loads the deck file at path, falling back to a store holding a single
// empty Default deck when the file is missing or unparsable. A corrupt file
// is a silent reset, not an error.
func Open(path string) *Store {
	s := &Store{path: path, decks: make(map[string]*deck.Deck)}

	data, err := os.ReadFile(path)
	if err == nil {
		var wire map[string]map[string]wireEntry
		if toml.Unmarshal(data, &wire) == nil {
			for name, words := range wire {
				entries := make(map[string]deck.Entry, len(words))
				for w, we := range words {
					entries[w] = deck.Entry{
						PartOfSpeech: we.PartOfSpeech,
						Meaning:      we.Meaning,
						Example:      we.Example,
						Status:       deck.ParseStatus(we.Status),
					}
				}
				s.decks[name] = deck.FromEntries(entries)
			}
		}
	}

	s.ensureNotEmpty()
	s.current = s.firstDeck()
	return s
}

// Save writes the whole deck map to the data file via a temp-file-then-rename
// sequence, so a crash mid-write never corrupts the previous valid file.
func (s *Store) Save() error {
	wire := make(map[string]map[string]wireEntry, len(s.decks))
	for name, d := range s.decks {
		words := make(map[string]wireEntry, d.Len())
		for w, e := range d.Entries() {
			words[w] = wireEntry{
				PartOfSpeech: e.PartOfSpeech,
				Meaning:      e.Meaning,
				Example:      e.Example,
				Status:       e.Status.String(),
			}
		}
		wire[name] = words
	}

	data, err := toml.Marshal(wire)
	if err != nil {
		return &SaveError{Err: fmt.Errorf("marshal decks: %w", err)}
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &SaveError{Err: fmt.Errorf("create data dir: %w", err)}
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &SaveError{Err: fmt.Errorf("write temp file: %w", err)}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return &SaveError{Err: fmt.Errorf("rename temp file: %w", err)}
	}
	return nil
}

// Path returns the data file location.
func (s *Store) Path() string { return s.path }

// Decks returns all deck names, sorted.
func (s *Store) Decks() []string {
	names := make([]string, 0, len(s.decks))
	for name := range s.decks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Deck returns an independent snapshot of the named deck, or nil when the
// deck does not exist. Mutating the snapshot never affects the store.
func (s *Store) Deck(name string) *deck.Deck {
	d, ok := s.decks[name]
	if !ok {
		return nil
	}
	return d.Clone()
}

// Has reports whether a deck with the given name exists.
func (s *Store) Has(name string) bool {
	_, ok := s.decks[name]
	return ok
}

// CurrentDeck returns the current deck name, repointing to an arbitrary
// existing deck when the remembered one is gone.
func (s *Store) CurrentDeck() string {
	if _, ok := s.decks[s.current]; !ok {
		s.current = s.firstDeck()
	}
	return s.current
}

// SetCurrentDeck points the current-deck marker at name.
func (s *Store) SetCurrentDeck(name string) error {
	if _, ok := s.decks[name]; !ok {
		return fmt.Errorf("deck %q: %w", name, ErrNotFound)
	}
	s.current = name
	return nil
}

// CreateDeck adds a new empty deck.
func (s *Store) CreateDeck(name string) error {
	name, err := s.validateNewName(name)
	if err != nil {
		return err
	}
	s.decks[name] = deck.New()
	return s.Save()
}

// RenameDeck moves a deck under a new name, preserving its contents. The
// current-deck marker follows the rename.
func (s *Store) RenameDeck(oldName, newName string) error {
	d, ok := s.decks[oldName]
	if !ok {
		return fmt.Errorf("deck %q: %w", oldName, ErrNotFound)
	}
	newName, err := s.validateNewName(newName)
	if err != nil {
		return err
	}
	delete(s.decks, oldName)
	s.decks[newName] = d
	if s.current == oldName {
		s.current = newName
	}
	return s.Save()
}

// DeleteDeck removes a deck. Deleting an absent deck is a no-op. When the
// last deck goes away the Default deck is re-seeded, and the current-deck
// marker is repointed if it was the one deleted.
func (s *Store) DeleteDeck(name string) error {
	if _, ok := s.decks[name]; !ok {
		return nil
	}
	delete(s.decks, name)
	s.ensureNotEmpty()
	if s.current == name {
		s.current = s.firstDeck()
	}
	return s.Save()
}

// CopyDeck duplicates src under newName. The copy is deep: mutating it never
// affects the source.
func (s *Store) CopyDeck(src, newName string) error {
	d, ok := s.decks[src]
	if !ok {
		return fmt.Errorf("deck %q: %w", src, ErrNotFound)
	}
	newName, err := s.validateNewName(newName)
	if err != nil {
		return err
	}
	s.decks[newName] = d.Clone()
	return s.Save()
}

// AdoptDeck installs an externally built deck (bulk import) under name,
// failing when the name is taken or empty.
func (s *Store) AdoptDeck(name string, d *deck.Deck) error {
	name, err := s.validateNewName(name)
	if err != nil {
		return err
	}
	s.decks[name] = d.Clone()
	return s.Save()
}

// UpsertWord inserts or updates a word in a deck. prevWord names the word
// being edited; when the word text changed, the edit is a delete-then-insert
// under the new key. The word cap applies to net-new insertion only: editing
// an existing word, including renaming it, is always permitted even at the
// cap.
func (s *Store) UpsertWord(deckName, prevWord, word string, e deck.Entry) error {
	d, ok := s.decks[deckName]
	if !ok {
		return fmt.Errorf("deck %q: %w", deckName, ErrNotFound)
	}

	word = strings.TrimSpace(word)
	if word == "" {
		return ErrEmptyWord
	}
	e.Meaning = strings.TrimSpace(e.Meaning)
	if e.Meaning == "" {
		return ErrEmptyMeaning
	}

	editing := prevWord != ""
	if editing && prevWord != word {
		d.Delete(prevWord)
	}
	if !editing {
		if _, exists := d.Get(word); !exists && d.Len() >= deck.MaxWords {
			return ErrDeckFull
		}
	}

	e.PartOfSpeech = strings.TrimSpace(e.PartOfSpeech)
	e.Example = strings.TrimSpace(e.Example)
	d.Set(word, e)
	return s.Save()
}

// SetWordStatus updates the mastery tag of a word in place and persists. A
// missing deck or word is a silent no-op.
func (s *Store) SetWordStatus(deckName, word string, st deck.Status) error {
	d, ok := s.decks[deckName]
	if !ok {
		return nil
	}
	e, ok := d.Get(word)
	if !ok {
		return nil
	}
	e.Status = st
	d.Set(word, e)
	return s.Save()
}

// DeleteWord removes a word from a deck. A missing deck or word is a silent
// no-op; nothing is persisted in that case.
func (s *Store) DeleteWord(deckName, word string) error {
	d, ok := s.decks[deckName]
	if !ok {
		return nil
	}
	if _, ok := d.Get(word); !ok {
		return nil
	}
	d.Delete(word)
	return s.Save()
}

// Reset discards every deck and reinstates the initial single empty Default
// deck.
func (s *Store) Reset() error {
	s.decks = map[string]*deck.Deck{DefaultDeckName: deck.New()}
	s.current = DefaultDeckName
	return s.Save()
}

func (s *Store) validateNewName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if _, ok := s.decks[name]; ok {
		return "", fmt.Errorf("deck %q: %w", name, ErrDuplicateName)
	}
	return name, nil
}

func (s *Store) ensureNotEmpty() {
	if len(s.decks) == 0 {
		s.decks[DefaultDeckName] = deck.New()
	}
}

func (s *Store) firstDeck() string {
	names := s.Decks()
	return names[0]
}
