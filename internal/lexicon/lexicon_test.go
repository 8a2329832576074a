package lexicon

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func writeLexicon(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingFileIsEmptyLexicon(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if l.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", l.Len())
	}
	if w, ok := l.Random(nil); ok || w != "" {
		t.Fatalf("Random() = %q, %v; want empty, false", w, ok)
	}
}

func TestLoad_ParsesWordKeys(t *testing.T) {
	path := writeLexicon(t, `{"ambivalent": 1, "serendipity": 1, "zephyr": 1}`)
	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
}

func TestLoad_CorruptFileIsError(t *testing.T) {
	path := writeLexicon(t, `not json at all`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load(corrupt) = nil error, want error")
	}
}

func TestRandom_DrawsFromList(t *testing.T) {
	path := writeLexicon(t, `{"alpha": 1, "beta": 1}`)
	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rng := rand.New(rand.NewSource(7))
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		w, ok := l.Random(rng)
		if !ok {
			t.Fatal("Random() = false on non-empty lexicon")
		}
		if w != "alpha" && w != "beta" {
			t.Fatalf("Random() = %q, not in lexicon", w)
		}
		seen[w] = true
	}
	if len(seen) != 2 {
		t.Fatalf("50 draws over 2 words hit %d distinct words, want 2", len(seen))
	}
}
