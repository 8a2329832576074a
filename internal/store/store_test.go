package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/wordkeep/wordkeep/internal/deck"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "decks.toml"))
}

func TestOpen_MissingFileSeedsDefault(t *testing.T) {
	s := testStore(t)
	if got := s.Decks(); !reflect.DeepEqual(got, []string{DefaultDeckName}) {
		t.Fatalf("Decks() = %v, want [Default]", got)
	}
	if s.CurrentDeck() != DefaultDeckName {
		t.Fatalf("CurrentDeck() = %q, want Default", s.CurrentDeck())
	}
}

func TestOpen_CorruptFileSeedsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s := Open(path)
	if got := s.Decks(); !reflect.DeepEqual(got, []string{DefaultDeckName}) {
		t.Fatalf("Decks() = %v, want [Default]", got)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks.toml")
	s := Open(path)
	if err := s.CreateDeck("여행"); err != nil {
		t.Fatalf("CreateDeck: %v", err)
	}
	words := map[string]deck.Entry{
		"run":    {PartOfSpeech: "verb", Meaning: "to move fast", Example: "Run!", Status: deck.StatusKnown},
		"arrêt":  {Meaning: "stop", Status: deck.StatusPartial},
		"단어":     {Meaning: "word"},
		"naïveté": {PartOfSpeech: "noun", Meaning: "innocence"},
	}
	for w, e := range words {
		if err := s.UpsertWord("여행", "", w, e); err != nil {
			t.Fatalf("UpsertWord(%q): %v", w, err)
		}
	}

	loaded := Open(path)
	if !loaded.Deck("여행").Equal(s.Deck("여행")) {
		t.Fatalf("round-trip deck mismatch:\nsaved  %v\nloaded %v",
			s.Deck("여행").Entries(), loaded.Deck("여행").Entries())
	}
	got, _ := loaded.Deck("여행").Get("run")
	if got.Status != deck.StatusKnown {
		t.Fatalf("Status after round-trip = %q, want known", got.Status)
	}
}

func TestSave_LeavesPreviousFileOnTempWriteFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decks.toml")
	s := Open(path)
	if err := s.Save(); err != nil {
		t.Fatalf("initial Save: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	// Make the directory unwritable so the temp file cannot be created.
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("Chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err = s.CreateDeck("Extra")
	var se *SaveError
	if !errors.As(err, &se) {
		t.Fatalf("CreateDeck error = %v, want *SaveError", err)
	}
	// In-memory state is retained despite the failed write.
	if !s.Has("Extra") {
		t.Fatal("Extra deck lost after failed save; memory must stay authoritative")
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("previous file changed by a failed save")
	}
}

func TestCreateDeck_Validation(t *testing.T) {
	s := testStore(t)
	if err := s.CreateDeck("  "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("CreateDeck(blank) = %v, want ErrEmptyName", err)
	}
	if err := s.CreateDeck(DefaultDeckName); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("CreateDeck(Default) = %v, want ErrDuplicateName", err)
	}
}

func TestRenameDeck_MovesContentsAndCurrent(t *testing.T) {
	s := testStore(t)
	if err := s.UpsertWord(DefaultDeckName, "", "run", deck.Entry{Meaning: "to move fast"}); err != nil {
		t.Fatalf("UpsertWord: %v", err)
	}
	if err := s.RenameDeck(DefaultDeckName, "Verbs"); err != nil {
		t.Fatalf("RenameDeck: %v", err)
	}
	if s.Has(DefaultDeckName) {
		t.Fatal("old deck name still present after rename")
	}
	if _, ok := s.Deck("Verbs").Get("run"); !ok {
		t.Fatal("contents lost in rename")
	}
	if s.CurrentDeck() != "Verbs" {
		t.Fatalf("CurrentDeck() = %q, want Verbs", s.CurrentDeck())
	}
}

func TestDeleteDeck_ReseedsDefaultAndRepointsCurrent(t *testing.T) {
	s := testStore(t)
	if err := s.DeleteDeck(DefaultDeckName); err != nil {
		t.Fatalf("DeleteDeck: %v", err)
	}
	if got := s.Decks(); !reflect.DeepEqual(got, []string{DefaultDeckName}) {
		t.Fatalf("Decks() = %v, want re-seeded [Default]", got)
	}
	if s.CurrentDeck() != DefaultDeckName {
		t.Fatalf("CurrentDeck() = %q, want Default", s.CurrentDeck())
	}

	// Deleting an absent deck is a no-op.
	if err := s.DeleteDeck("Nope"); err != nil {
		t.Fatalf("DeleteDeck(absent) = %v, want nil", err)
	}
}

func TestCopyDeck_DeepCopy(t *testing.T) {
	s := testStore(t)
	if err := s.UpsertWord(DefaultDeckName, "", "run", deck.Entry{Meaning: "to move fast"}); err != nil {
		t.Fatalf("UpsertWord: %v", err)
	}
	if err := s.CopyDeck(DefaultDeckName, "Default_copy"); err != nil {
		t.Fatalf("CopyDeck: %v", err)
	}
	if err := s.SetWordStatus("Default_copy", "run", deck.StatusKnown); err != nil {
		t.Fatalf("SetWordStatus: %v", err)
	}
	e, _ := s.Deck(DefaultDeckName).Get("run")
	if e.Status != deck.StatusUnknown {
		t.Fatalf("source status = %q after mutating copy, want unknown", e.Status)
	}
}

func TestUpsertWord_RequiredFields(t *testing.T) {
	s := testStore(t)
	tests := []struct {
		name    string
		word    string
		meaning string
		want    error
	}{
		{"blank word", "  ", "meaning", ErrEmptyWord},
		{"blank meaning", "run", "  ", ErrEmptyMeaning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.UpsertWord(DefaultDeckName, "", tt.word, deck.Entry{Meaning: tt.meaning})
			if !errors.Is(err, tt.want) {
				t.Fatalf("UpsertWord = %v, want %v", err, tt.want)
			}
		})
	}
	if s.Deck(DefaultDeckName).Len() != 0 {
		t.Fatal("failed validation must not mutate the deck")
	}
}

func fillDeck(t *testing.T, s *Store, deckName string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		w := string(rune('a'+i%26)) + string(rune('a'+(i/26)%26)) + string(rune('a'+i/676))
		if err := s.UpsertWord(deckName, "", w, deck.Entry{Meaning: "m"}); err != nil {
			t.Fatalf("UpsertWord #%d: %v", i, err)
		}
	}
}

func TestUpsertWord_CapOnNetNewOnly(t *testing.T) {
	s := testStore(t)
	fillDeck(t, s, DefaultDeckName, deck.MaxWords)

	// The 101st new word is rejected.
	err := s.UpsertWord(DefaultDeckName, "", "overflow", deck.Entry{Meaning: "m"})
	if !errors.Is(err, ErrDeckFull) {
		t.Fatalf("UpsertWord(101st) = %v, want ErrDeckFull", err)
	}
	if s.Deck(DefaultDeckName).Len() != deck.MaxWords {
		t.Fatalf("Len = %d, want %d", s.Deck(DefaultDeckName).Len(), deck.MaxWords)
	}

	existing := s.Deck(DefaultDeckName).Words()[0]

	// Editing an existing word at the cap succeeds.
	if err := s.UpsertWord(DefaultDeckName, existing, existing, deck.Entry{Meaning: "updated"}); err != nil {
		t.Fatalf("edit at cap: %v", err)
	}
	// So does renaming it: delete-then-insert under the new key.
	if err := s.UpsertWord(DefaultDeckName, existing, "renamed", deck.Entry{Meaning: "updated"}); err != nil {
		t.Fatalf("rename at cap: %v", err)
	}
	d := s.Deck(DefaultDeckName)
	if _, ok := d.Get(existing); ok {
		t.Fatalf("old key %q still present after rename", existing)
	}
	if _, ok := d.Get("renamed"); !ok {
		t.Fatal("new key missing after rename")
	}
	if d.Len() != deck.MaxWords {
		t.Fatalf("Len after rename = %d, want %d", d.Len(), deck.MaxWords)
	}
}

func TestSetWordStatus_MissingIsNoOp(t *testing.T) {
	s := testStore(t)
	if err := s.SetWordStatus(DefaultDeckName, "ghost", deck.StatusKnown); err != nil {
		t.Fatalf("SetWordStatus(missing word) = %v, want nil", err)
	}
	if err := s.SetWordStatus("NoDeck", "ghost", deck.StatusKnown); err != nil {
		t.Fatalf("SetWordStatus(missing deck) = %v, want nil", err)
	}
}

func TestDeleteWord_MissingIsNoOp(t *testing.T) {
	s := testStore(t)
	if err := s.DeleteWord(DefaultDeckName, "ghost"); err != nil {
		t.Fatalf("DeleteWord(missing) = %v, want nil", err)
	}
}

func TestCurrentDeck_FallsBackWhenGone(t *testing.T) {
	s := testStore(t)
	if err := s.CreateDeck("Alpha"); err != nil {
		t.Fatalf("CreateDeck: %v", err)
	}
	if err := s.SetCurrentDeck("Alpha"); err != nil {
		t.Fatalf("SetCurrentDeck: %v", err)
	}
	if err := s.DeleteDeck("Alpha"); err != nil {
		t.Fatalf("DeleteDeck: %v", err)
	}
	if got := s.CurrentDeck(); got != DefaultDeckName {
		t.Fatalf("CurrentDeck() = %q, want Default", got)
	}
}

func TestReset_ReturnsToInitialState(t *testing.T) {
	s := testStore(t)
	if err := s.CreateDeck("Alpha"); err != nil {
		t.Fatalf("CreateDeck: %v", err)
	}
	if err := s.UpsertWord("Alpha", "", "run", deck.Entry{Meaning: "m"}); err != nil {
		t.Fatalf("UpsertWord: %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := s.Decks(); !reflect.DeepEqual(got, []string{DefaultDeckName}) {
		t.Fatalf("Decks() = %v, want [Default]", got)
	}
	if s.Deck(DefaultDeckName).Len() != 0 {
		t.Fatal("Default deck not empty after reset")
	}
}

func TestAdoptDeck_RejectsDuplicateName(t *testing.T) {
	s := testStore(t)
	d := deck.New()
	d.Set("run", deck.Entry{Meaning: "to move fast"})
	if err := s.AdoptDeck(DefaultDeckName, d); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("AdoptDeck(Default) = %v, want ErrDuplicateName", err)
	}
	if err := s.AdoptDeck("Imported", d); err != nil {
		t.Fatalf("AdoptDeck: %v", err)
	}
	if _, ok := s.Deck("Imported").Get("run"); !ok {
		t.Fatal("adopted deck missing contents")
	}
}
