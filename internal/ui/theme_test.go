package ui

import "testing"

func TestGetTheme_UnknownFallsBackToNavy(t *testing.T) {
	got := GetTheme("NoSuchTheme")
	if got.Name != "Navy" {
		t.Fatalf("GetTheme fallback = %q, want Navy", got.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	if len(names) < 2 {
		t.Fatalf("ThemeNames() = %v, want at least 2 themes", names)
	}

	current := names[0]
	seen := map[string]bool{}
	for range names {
		seen[current] = true
		current = NextTheme(current)
	}
	if current != names[0] {
		t.Fatalf("cycle did not return to %q, got %q", names[0], current)
	}
	for _, name := range names {
		if !seen[name] {
			t.Fatalf("theme %q never visited in cycle", name)
		}
	}
}

func TestNextTheme_UnknownStartsAtFirst(t *testing.T) {
	if got := NextTheme("NoSuchTheme"); got != ThemeNames()[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, ThemeNames()[0])
	}
}
