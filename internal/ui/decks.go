package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wordkeep/wordkeep/internal/config"
	"github.com/wordkeep/wordkeep/internal/deck"
)

// decksState drives the deck-select screen.
type decksState struct {
	names  []string
	cursor int
}

func newDecksState(s deckLister) decksState {
	return decksState{}.refresh(s)
}

// deckLister is the slice of the store the deck screen reads.
type deckLister interface {
	Decks() []string
	Deck(name string) *deck.Deck
	CurrentDeck() string
}

func (d decksState) refresh(s deckLister) decksState {
	selected := d.selected()
	d.names = s.Decks()
	d.cursor = 0
	for i, name := range d.names {
		if name == selected {
			d.cursor = i
			break
		}
	}
	return d
}

func (d decksState) selected() string {
	if d.cursor >= 0 && d.cursor < len(d.names) {
		return d.names[d.cursor]
	}
	return ""
}

func (m Model) updateDecks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.decks.cursor > 0 {
			m.decks.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.decks.cursor < len(m.decks.names)-1 {
			m.decks.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		name := m.decks.selected()
		if name == "" {
			return m, nil
		}
		if err := m.store.SetCurrentDeck(name); err != nil {
			return m.report(err), nil
		}
		m.menu = newMenuState()
		return m.gotoScreen(screenMenu), nil

	case key.Matches(msg, m.keys.NewDeck):
		m.prompt = newTextPrompt(actionCreateDeck, "New deck name", "", "")
		return m, nil

	case key.Matches(msg, m.keys.RenameDeck):
		name := m.decks.selected()
		if name == "" {
			return m, nil
		}
		m.prompt = newTextPrompt(actionRenameDeck, "Rename deck "+name, name, name)
		return m, nil

	case key.Matches(msg, m.keys.CopyDeck):
		name := m.decks.selected()
		if name == "" {
			return m, nil
		}
		m.prompt = newTextPrompt(actionCopyDeck, "Copy deck "+name+" as", name, name+" copy")
		return m, nil

	case key.Matches(msg, m.keys.DeleteDeck):
		name := m.decks.selected()
		if name == "" {
			return m, nil
		}
		m.prompt = newConfirmPrompt(actionDeleteDeck, "Delete deck "+name+"?", name)
		return m, nil

	case key.Matches(msg, m.keys.Import):
		m.prompt = newTextPrompt(actionImportDeck, "Import xlsx file path", "", "")
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme(), nil
	}
	return m, nil
}

// cycleTheme switches to the next theme and persists the choice.
func (m Model) cycleTheme() Model {
	m.cfg.Theme = NextTheme(m.theme.Name)
	m.theme = GetTheme(m.cfg.Theme)
	m.styles = m.theme.Styles()
	if err := config.Save(m.configPath, m.cfg); err != nil {
		return m.withNotice(noticeWarn, "theme applied, but saving config failed: "+err.Error())
	}
	return m.withNotice(noticeInfo, "theme: "+m.cfg.Theme)
}

func (m Model) viewDecks() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("wordkeep") + "\n\n")

	var all []*deck.Deck
	for i, name := range m.decks.names {
		d := m.store.Deck(name)
		all = append(all, d)
		st := deck.ComputeStats(d)

		line := fmt.Sprintf("%-24s %3d words  %3d mastered  %3.0f%%",
			name, st.Total, st.Mastered, st.Progress*100)
		if i == m.decks.cursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = m.styles.Text.Render("  " + line)
		}
		if name == m.store.CurrentDeck() {
			line += m.styles.AccentText.Render(" *")
		}
		b.WriteString(line + "\n")
	}

	mastered := deck.MasteredAll(all)
	b.WriteString("\n" + m.styles.AccentText.Render(
		fmt.Sprintf("Rank: %s (%d words mastered)", deck.Rank(mastered), mastered)))

	b.WriteString("\n\n" + m.footer(screenKeys{
		short: []key.Binding{
			m.keys.Enter, m.keys.NewDeck, m.keys.RenameDeck, m.keys.CopyDeck,
			m.keys.DeleteDeck, m.keys.Import, m.keys.Theme, m.keys.Quit,
		},
	}))
	return b.String()
}
