package query

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/wordkeep/wordkeep/internal/deck"
)

func testDeck() *deck.Deck {
	d := deck.New()
	d.Set("run", deck.Entry{Meaning: "to move fast", Status: deck.StatusUnknown})
	d.Set("Runway", deck.Entry{Meaning: "airstrip", Status: deck.StatusKnown})
	d.Set("walk", deck.Entry{Meaning: "to move slowly", Status: deck.StatusPartial})
	d.Set("prune", deck.Entry{Meaning: "to trim", Status: deck.StatusKnown})
	return d
}

func words(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Word
	}
	return out
}

func TestApply_NoFiltersReturnsInsertionOrder(t *testing.T) {
	res := Apply(testDeck(), Options{})
	want := []string{"run", "Runway", "walk", "prune"}
	if got := words(res.Rows); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
	if res.Selection != NoSelection {
		t.Fatalf("Selection = %d, want %d", res.Selection, NoSelection)
	}
}

func TestApply_StatusFilterORSemantics(t *testing.T) {
	res := Apply(testDeck(), Options{Statuses: map[deck.Status]bool{
		deck.StatusKnown:   true,
		deck.StatusPartial: true,
	}})
	want := []string{"Runway", "walk", "prune"}
	if got := words(res.Rows); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestApply_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		search string
		want   []string
	}{
		{"run", []string{"run", "Runway", "prune"}},
		{"RUN", []string{"run", "Runway", "prune"}},
		{"way", []string{"Runway"}},
		{"  walk  ", []string{"walk"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		res := Apply(testDeck(), Options{Search: tt.search})
		if got := words(res.Rows); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Apply(search=%q) = %v, want %v", tt.search, got, tt.want)
		}
	}
}

func TestApply_SearchAndStatusCompose(t *testing.T) {
	res := Apply(testDeck(), Options{
		Search:   "run",
		Statuses: map[deck.Status]bool{deck.StatusKnown: true},
	})
	want := []string{"Runway", "prune"}
	if got := words(res.Rows); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestApply_ShuffleIsPermutationOfSameSet(t *testing.T) {
	res := Apply(testDeck(), Options{Shuffle: true, Rand: rand.New(rand.NewSource(1))})
	got := words(res.Rows)
	want := []string{"Runway", "prune", "run", "walk"}
	sort.Strings(got)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("shuffled set = %v, want permutation of %v", got, want)
	}
}

func TestApply_Idempotent(t *testing.T) {
	d := testDeck()
	opts := Options{Search: "run", Statuses: map[deck.Status]bool{deck.StatusKnown: true}}
	first := Apply(d, opts)
	second := Apply(d, opts)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated Apply differs:\nfirst  %v\nsecond %v", first, second)
	}
}

func TestApply_SelectionRestored(t *testing.T) {
	res := Apply(testDeck(), Options{Search: "run", PrevSelection: "prune"})
	if res.Selection != 2 {
		t.Fatalf("Selection = %d, want 2", res.Selection)
	}
	if res.Rows[res.Selection].Word != "prune" {
		t.Fatalf("selected word = %q, want prune", res.Rows[res.Selection].Word)
	}
}

func TestApply_SelectionClearedWhenFilteredOut(t *testing.T) {
	res := Apply(testDeck(), Options{
		Statuses:      map[deck.Status]bool{deck.StatusKnown: true},
		PrevSelection: "walk", // partial, filtered out
	})
	if res.Selection != NoSelection {
		t.Fatalf("Selection = %d, want %d", res.Selection, NoSelection)
	}
}

func TestApply_EmptyDeck(t *testing.T) {
	res := Apply(deck.New(), Options{Search: "x", PrevSelection: "x"})
	if len(res.Rows) != 0 || res.Selection != NoSelection {
		t.Fatalf("Result = %+v, want empty rows and no selection", res)
	}
}
