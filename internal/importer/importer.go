// Package importer builds decks from xlsx spreadsheets.
//
// The expected layout is four positional columns — A word, B part of speech,
// C meaning, D example — with no header row and at most 100 data rows. Rows
// with a blank word cell are skipped; a sheet with more than 100 rows is
// rejected wholesale rather than truncated.
package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/wordkeep/wordkeep/internal/deck"
)

// ErrTooManyRows reports a sheet exceeding the per-deck word cap.
var ErrTooManyRows = fmt.Errorf("a deck can hold at most %d words", deck.MaxWords)

// missingPartOfSpeech is recorded for an absent part-of-speech cell, for
// compatibility with decks imported by earlier releases.
const missingPartOfSpeech = "null"

// ReadDeck parses the first sheet of the xlsx file at path into a new deck.
// Every imported entry starts with status unknown.
func ReadDeck(path string) (*deck.Deck, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) > deck.MaxWords {
		return nil, ErrTooManyRows
	}

	d := deck.New()
	for _, row := range rows {
		word := cell(row, 0)
		if word == "" {
			continue
		}
		pos := cell(row, 1)
		if pos == "" {
			pos = missingPartOfSpeech
		}
		d.Set(word, deck.Entry{
			PartOfSpeech: pos,
			Meaning:      cell(row, 2),
			Example:      cell(row, 3),
			Status:       deck.StatusUnknown,
		})
	}
	return d, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
