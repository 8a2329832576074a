package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wordkeep/wordkeep/internal/deck"
)

var menuItems = []string{
	"Quiz",
	"Word list",
	"Add word",
	"Random word",
	"Switch deck",
	"Reset all data",
	"Quit",
}

const (
	menuQuiz = iota
	menuList
	menuAddWord
	menuRandom
	menuSwitchDeck
	menuReset
	menuQuit
)

// menuState drives the per-deck main menu.
type menuState struct {
	cursor int
	bar    progress.Model
}

func newMenuState() menuState {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return menuState{bar: bar}
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.decks = m.decks.refresh(m.store)
		return m.gotoScreen(screenDecks), nil

	case key.Matches(msg, m.keys.Up):
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.menu.cursor < len(menuItems)-1 {
			m.menu.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.selectMenuItem()
	}
	return m, nil
}

func (m Model) selectMenuItem() (tea.Model, tea.Cmd) {
	switch m.menu.cursor {
	case menuQuiz:
		m.scope = newScopeState()
		return m.gotoScreen(screenScope), nil

	case menuList:
		m.list = newListState(m.width, m.height).refresh(m.store)
		return m.gotoScreen(screenList), nil

	case menuAddWord:
		m.editor = newEditorState("", deck.Entry{}, screenMenu)
		return m.gotoScreen(screenEditor), nil

	case menuRandom:
		m.random = randomState{}
		m = m.gotoScreen(screenRandom)
		return m.drawRandomWord()

	case menuSwitchDeck:
		m.decks = m.decks.refresh(m.store)
		return m.gotoScreen(screenDecks), nil

	case menuReset:
		m.prompt = newConfirmPrompt(actionReset, "Delete all decks and start over?", "")
		return m, nil

	case menuQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewMenu() string {
	name := m.store.CurrentDeck()
	st := deck.ComputeStats(m.store.Deck(name))

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(name) + "\n")
	b.WriteString(m.styles.MutedText.Render(
		fmt.Sprintf("%d words, %d mastered", st.Total, st.Mastered)) + "\n")
	b.WriteString(m.menu.bar.ViewAs(st.Progress) + "\n\n")

	for i, item := range menuItems {
		if i == m.menu.cursor {
			b.WriteString(m.styles.Selected.Render("> "+item) + "\n")
		} else {
			b.WriteString(m.styles.Text.Render("  "+item) + "\n")
		}
	}

	b.WriteString("\n" + m.footer(screenKeys{
		short: []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Back},
	}))
	return b.String()
}
