package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/wordkeep/wordkeep/internal/deck"
)

func writeSheet(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetCellStr(sheet, cell, val); err != nil {
				t.Fatalf("SetCellStr: %v", err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "import.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestReadDeck_FourColumns(t *testing.T) {
	path := writeSheet(t, [][]string{
		{"run", "verb", "to move fast", "Run, Forrest!"},
		{"ambivalent", "adjective", "having mixed feelings", ""},
	})

	d, err := ReadDeck(path)
	if err != nil {
		t.Fatalf("ReadDeck: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	e, ok := d.Get("run")
	if !ok {
		t.Fatal("run missing from imported deck")
	}
	want := deck.Entry{PartOfSpeech: "verb", Meaning: "to move fast", Example: "Run, Forrest!", Status: deck.StatusUnknown}
	if e != want {
		t.Fatalf("entry = %+v, want %+v", e, want)
	}
}

func TestReadDeck_SkipsBlankWordRows(t *testing.T) {
	path := writeSheet(t, [][]string{
		{"run", "verb", "to move fast", ""},
		{"", "noun", "orphaned meaning", ""},
		{"  ", "noun", "whitespace word", ""},
		{"walk", "verb", "to move slowly", ""},
	})

	d, err := ReadDeck(path)
	if err != nil {
		t.Fatalf("ReadDeck: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (blank word rows skipped)", d.Len())
	}
}

func TestReadDeck_MissingPartOfSpeechBecomesNull(t *testing.T) {
	path := writeSheet(t, [][]string{
		{"run"},
	})
	d, err := ReadDeck(path)
	if err != nil {
		t.Fatalf("ReadDeck: %v", err)
	}
	e, _ := d.Get("run")
	if e.PartOfSpeech != "null" {
		t.Fatalf("PartOfSpeech = %q, want null", e.PartOfSpeech)
	}
}

func TestReadDeck_RejectsOver100RowsWholesale(t *testing.T) {
	rows := make([][]string, deck.MaxWords+1)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("word%03d", i), "noun", "meaning", ""}
	}
	path := writeSheet(t, rows)

	d, err := ReadDeck(path)
	if !errors.Is(err, ErrTooManyRows) {
		t.Fatalf("ReadDeck(101 rows) = %v, want ErrTooManyRows", err)
	}
	if d != nil {
		t.Fatal("deck returned despite rejection; rejection must be wholesale")
	}
}

func TestReadDeck_Exactly100RowsAccepted(t *testing.T) {
	rows := make([][]string, deck.MaxWords)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("word%03d", i), "noun", "meaning", ""}
	}
	path := writeSheet(t, rows)

	d, err := ReadDeck(path)
	if err != nil {
		t.Fatalf("ReadDeck(100 rows): %v", err)
	}
	if d.Len() != deck.MaxWords {
		t.Fatalf("Len() = %d, want %d", d.Len(), deck.MaxWords)
	}
}

func TestReadDeck_MissingFile(t *testing.T) {
	if _, err := ReadDeck(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Fatal("ReadDeck(absent) = nil error, want error")
	}
}
