package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wordkeep/wordkeep/internal/importer"
)

// promptAction names what happens when a prompt is submitted.
type promptAction int

const (
	actionCreateDeck promptAction = iota
	actionRenameDeck
	actionCopyDeck
	actionImportDeck
	actionDeleteDeck
	actionDeleteWord
	actionReset
)

// promptState is a modal overlay: either a one-line text prompt or a y/n
// confirmation. While open it owns the keyboard.
type promptState struct {
	action  promptAction
	title   string
	confirm bool
	target  string // deck or word the action applies to
	input   textinput.Model
}

func newTextPrompt(action promptAction, title, target, initial string) *promptState {
	in := textinput.New()
	in.CharLimit = 120
	in.Width = 40
	in.SetValue(initial)
	in.Focus()
	return &promptState{action: action, title: title, target: target, input: in}
}

func newConfirmPrompt(action promptAction, title, target string) *promptState {
	return &promptState{action: action, title: title, target: target, confirm: true}
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.prompt

	if p.confirm {
		switch msg.String() {
		case "y", "Y", "enter":
			m.prompt = nil
			return m.submitPrompt(*p, ""), nil
		case "n", "N", "esc":
			m.prompt = nil
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.prompt = nil
		return m, nil
	case "enter":
		value := strings.TrimSpace(p.input.Value())
		m.prompt = nil
		return m.submitPrompt(*p, value), nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return m, cmd
}

func (m Model) submitPrompt(p promptState, value string) Model {
	switch p.action {
	case actionCreateDeck:
		if err := m.store.CreateDeck(value); err != nil {
			return m.report(err)
		}
		m.decks = m.decks.refresh(m.store)
		return m.withNotice(noticeInfo, "created deck "+value)

	case actionRenameDeck:
		if err := m.store.RenameDeck(p.target, value); err != nil {
			return m.report(err)
		}
		m.decks = m.decks.refresh(m.store)
		return m.withNotice(noticeInfo, "renamed deck to "+value)

	case actionCopyDeck:
		if err := m.store.CopyDeck(p.target, value); err != nil {
			return m.report(err)
		}
		m.decks = m.decks.refresh(m.store)
		return m.withNotice(noticeInfo, "copied deck to "+value)

	case actionImportDeck:
		if value == "" {
			return m.withNotice(noticeWarn, "no file given")
		}
		d, err := importer.ReadDeck(value)
		if err != nil {
			return m.report(err)
		}
		name := strings.TrimSuffix(filepath.Base(value), filepath.Ext(value))
		if err := m.store.AdoptDeck(name, d); err != nil {
			return m.report(err)
		}
		m.decks = m.decks.refresh(m.store)
		return m.withNotice(noticeInfo, "imported deck "+name)

	case actionDeleteDeck:
		if err := m.store.DeleteDeck(p.target); err != nil {
			return m.report(err)
		}
		m.decks = m.decks.refresh(m.store)
		return m.withNotice(noticeInfo, "deleted deck "+p.target)

	case actionDeleteWord:
		if err := m.store.DeleteWord(m.store.CurrentDeck(), p.target); err != nil {
			return m.report(err)
		}
		m.list = m.list.refresh(m.store)
		return m.withNotice(noticeInfo, "deleted "+p.target)

	case actionReset:
		if err := m.store.Reset(); err != nil {
			return m.report(err)
		}
		m.decks = m.decks.refresh(m.store)
		m = m.gotoScreen(screenDecks)
		return m.withNotice(noticeInfo, "all data reset")
	}
	return m
}

func (m Model) viewPrompt() string {
	p := m.prompt
	title := m.styles.Title.Render(p.title)
	if p.confirm {
		hint := m.styles.MutedText.Render("y to confirm, n to cancel")
		return m.styles.FocusedPanel.Render(title + "\n" + hint)
	}
	return m.styles.FocusedPanel.Render(title + "\n" + p.input.View())
}
