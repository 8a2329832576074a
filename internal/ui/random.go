package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wordkeep/wordkeep/internal/deck"
)

// randomState drives the random-word challenge screen.
type randomState struct {
	word string
}

func (m Model) drawRandomWord() (tea.Model, tea.Cmd) {
	w, ok := m.lex.Random(nil)
	if !ok {
		m.random.word = ""
		return m.withNotice(noticeInfo, "no lexicon file found, random words unavailable"), nil
	}
	m.random.word = w
	return m.clearNotice(), nil
}

func (m Model) updateRandom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.gotoScreen(screenMenu), nil

	case key.Matches(msg, m.keys.Draw):
		return m.drawRandomWord()

	case key.Matches(msg, m.keys.Speak):
		if m.random.word != "" {
			return m.speak(m.random.word), nil
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		w := m.random.word
		if w == "" {
			return m, nil
		}
		if _, exists := m.store.Deck(m.store.CurrentDeck()).Get(w); exists {
			return m.withNotice(noticeWarn, w+" is already in this deck"), nil
		}
		// Saving a drawn word is an add: the deck cap still applies when
		// the form is submitted.
		m.editor = newEditorStateWithWord("", w, deck.Entry{}, screenRandom)
		return m.gotoScreen(screenEditor), nil
	}
	return m, nil
}

func (m Model) viewRandom() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Random word") + "\n\n")

	if m.random.word == "" {
		b.WriteString(m.styles.MutedText.Render("nothing drawn") + "\n")
	} else {
		b.WriteString(m.styles.Panel.Render(m.styles.Title.Render(m.random.word)) + "\n")
	}

	b.WriteString("\n" + m.footer(screenKeys{
		short: []key.Binding{m.keys.Draw, m.keys.Save, m.keys.Speak, m.keys.Back},
	}))
	return b.String()
}
