package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wordkeep/wordkeep/internal/deck"
)

const (
	fieldWord = iota
	fieldPartOfSpeech
	fieldMeaning
	fieldExample
	fieldCount
)

var fieldLabels = [fieldCount]string{"Word", "Part of speech", "Meaning", "Example"}

// editorState drives the add/edit word form. prevWord is empty when adding;
// when set, submitting replaces that word (a changed word field renames it).
type editorState struct {
	prevWord string
	status   deck.Status // preserved across edits; unknown for new words
	inputs   [fieldCount]textinput.Model
	focus    int
	returnTo screen
}

func newEditorState(prevWord string, e deck.Entry, returnTo screen) editorState {
	return newEditorStateWithWord(prevWord, prevWord, e, returnTo)
}

// newEditorStateWithWord prefills the word field independently of prevWord.
// The random-word screen uses it: the drawn word is prefilled but saving is
// still an add, so the deck cap applies.
func newEditorStateWithWord(prevWord, word string, e deck.Entry, returnTo screen) editorState {
	s := editorState{prevWord: prevWord, status: e.Status, returnTo: returnTo}
	initial := [fieldCount]string{word, e.PartOfSpeech, e.Meaning, e.Example}
	for i := range s.inputs {
		in := textinput.New()
		in.CharLimit = 200
		in.Width = 40
		in.SetValue(initial[i])
		s.inputs[i] = in
	}
	s.inputs[fieldWord].Focus()
	return s
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.leaveEditor(), nil

	case key.Matches(msg, m.keys.NextFld), key.Matches(msg, m.keys.Down):
		m.editor = m.editor.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevFld), key.Matches(msg, m.keys.Up):
		m.editor = m.editor.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.submitEditor(), nil
	}

	var cmd tea.Cmd
	m.editor.inputs[m.editor.focus], cmd = m.editor.inputs[m.editor.focus].Update(msg)
	return m, cmd
}

func (e editorState) moveFocus(delta int) editorState {
	e.inputs[e.focus].Blur()
	e.focus = (e.focus + delta + fieldCount) % fieldCount
	e.inputs[e.focus].Focus()
	return e
}

func (m Model) submitEditor() Model {
	word := strings.TrimSpace(m.editor.inputs[fieldWord].Value())
	entry := deck.Entry{
		PartOfSpeech: strings.TrimSpace(m.editor.inputs[fieldPartOfSpeech].Value()),
		Meaning:      strings.TrimSpace(m.editor.inputs[fieldMeaning].Value()),
		Example:      strings.TrimSpace(m.editor.inputs[fieldExample].Value()),
		Status:       m.editor.status,
	}

	err := m.store.UpsertWord(m.store.CurrentDeck(), m.editor.prevWord, word, entry)
	if err != nil {
		return m.report(err)
	}
	m = m.leaveEditor()
	return m.withNotice(noticeInfo, "saved "+word)
}

func (m Model) leaveEditor() Model {
	dest := m.editor.returnTo
	if dest == screenList {
		m.list = m.list.refresh(m.store)
	}
	return m.gotoScreen(dest)
}

func (m Model) viewEditor() string {
	var b strings.Builder
	title := "Add word"
	if m.editor.prevWord != "" {
		title = "Edit " + m.editor.prevWord
	}
	b.WriteString(m.styles.Title.Render(title) + "\n\n")

	for i := range m.editor.inputs {
		label := fieldLabels[i]
		if i == m.editor.focus {
			b.WriteString(m.styles.AccentText.Render(label) + "\n")
		} else {
			b.WriteString(m.styles.MutedText.Render(label) + "\n")
		}
		b.WriteString(m.editor.inputs[i].View() + "\n")
	}

	b.WriteString("\n" + m.footer(screenKeys{
		short: []key.Binding{m.keys.NextFld, m.keys.Enter, m.keys.Back},
	}))
	return b.String()
}
