package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wordkeep/wordkeep/internal/deck"
	"github.com/wordkeep/wordkeep/internal/query"
	"github.com/wordkeep/wordkeep/internal/store"
)

// searchDebounce is how long the search field stays quiet before the table
// recomputes. Every keystroke bumps a sequence number; only the tick
// carrying the newest sequence triggers a refresh.
const searchDebounce = 200 * time.Millisecond

const hiddenCell = "•••"

// listState drives the word-list screen: a filterable, searchable,
// optionally shuffled table over the current deck.
type listState struct {
	table     table.Model
	search    textinput.Model
	searching bool
	searchSeq int

	filters map[deck.Status]bool
	shuffle bool
	hide    bool

	result query.Result

	ready  bool
	width  int
	height int
}

func newListState(width, height int) listState {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 80
	search.Width = 30

	tbl := table.New(
		table.WithColumns(listColumns(width)),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)

	return listState{
		table:   tbl,
		search:  search,
		filters: make(map[deck.Status]bool),
		ready:   true,
		width:   width,
		height:  height,
	}
}

func listColumns(width int) []table.Column {
	// Fixed columns; meaning and example share what is left.
	rest := width - 16 - 12 - 9 - 10
	if rest < 20 {
		rest = 40
	}
	return []table.Column{
		{Title: "Word", Width: 16},
		{Title: "Part of speech", Width: 12},
		{Title: "Meaning", Width: rest / 2},
		{Title: "Example", Width: rest / 2},
		{Title: "Status", Width: 9},
	}
}

func tableHeight(height int) int {
	h := height - 8
	if h < 4 {
		h = 4
	}
	return h
}

func (l listState) resize(width, height int) listState {
	if !l.ready || width == 0 {
		return l
	}
	l.width = width
	l.height = height
	l.table.SetColumns(listColumns(width))
	l.table.SetHeight(tableHeight(height))
	return l
}

// selectedWord returns the word under the table cursor, or "".
func (l listState) selectedWord() string {
	i := l.table.Cursor()
	if i < 0 || i >= len(l.result.Rows) {
		return ""
	}
	return l.result.Rows[i].Word
}

// queryOptions translates the screen toggles into a query pass.
func (l listState) queryOptions() query.Options {
	opts := query.Options{
		Search:        l.search.Value(),
		Shuffle:       l.shuffle,
		PrevSelection: l.selectedWord(),
	}
	for st, on := range l.filters {
		if on {
			if opts.Statuses == nil {
				opts.Statuses = make(map[deck.Status]bool)
			}
			opts.Statuses[st] = true
		}
	}
	return opts
}

// refresh reruns the query over the current deck and rebuilds the table,
// restoring the selection when the selected word survives the filters.
func (l listState) refresh(s *store.Store) listState {
	d := s.Deck(s.CurrentDeck())
	l.result = query.Apply(d, l.queryOptions())

	rows := make([]table.Row, len(l.result.Rows))
	for i, r := range l.result.Rows {
		meaning, example := r.Entry.Meaning, r.Entry.Example
		if l.hide {
			meaning, example = hiddenCell, hiddenCell
		}
		rows[i] = table.Row{r.Word, r.Entry.PartOfSpeech, meaning, example, r.Entry.Status.String()}
	}
	l.table.SetRows(rows)

	if l.result.Selection != query.NoSelection {
		l.table.SetCursor(l.result.Selection)
	} else {
		l.table.SetCursor(0)
	}
	return l
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		return m.updateListSearch(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return m.gotoScreen(screenMenu), nil

	case key.Matches(msg, m.keys.Search):
		m.list.searching = true
		m.list.search.Focus()
		return m, nil

	case key.Matches(msg, m.keys.SetUnknown):
		return m.toggleListFilter(deck.StatusUnknown), nil
	case key.Matches(msg, m.keys.SetPartial):
		return m.toggleListFilter(deck.StatusPartial), nil
	case key.Matches(msg, m.keys.SetKnown):
		return m.toggleListFilter(deck.StatusKnown), nil

	case key.Matches(msg, m.keys.Shuffle):
		m.list.shuffle = !m.list.shuffle
		m.list = m.list.refresh(m.store)
		return m, nil

	case key.Matches(msg, m.keys.HideMeanings):
		m.list.hide = !m.list.hide
		m.list = m.list.refresh(m.store)
		return m, nil

	case key.Matches(msg, m.keys.Speak):
		if w := m.list.selectedWord(); w != "" {
			return m.speak(w), nil
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		w := m.list.selectedWord()
		if w == "" {
			return m, nil
		}
		entry, ok := m.store.Deck(m.store.CurrentDeck()).Get(w)
		if !ok {
			return m, nil
		}
		m.editor = newEditorState(w, entry, screenList)
		return m.gotoScreen(screenEditor), nil

	case key.Matches(msg, m.keys.Delete):
		w := m.list.selectedWord()
		if w == "" {
			return m, nil
		}
		m.prompt = newConfirmPrompt(actionDeleteWord, "Delete "+w+"?", w)
		return m, nil
	}

	var cmd tea.Cmd
	m.list.table, cmd = m.list.table.Update(msg)
	return m, cmd
}

func (m Model) updateListSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.list.searching = false
		m.list.search.Blur()
		return m, nil
	case "enter":
		m.list.searching = false
		m.list.search.Blur()
		m.list = m.list.refresh(m.store)
		return m, nil
	}

	var cmd tea.Cmd
	m.list.search, cmd = m.list.search.Update(msg)

	m.list.searchSeq++
	seq := m.list.searchSeq
	debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
	return m, tea.Batch(cmd, debounce)
}

func (m Model) toggleListFilter(st deck.Status) Model {
	m.list.filters[st] = !m.list.filters[st]
	m.list = m.list.refresh(m.store)
	return m
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.store.CurrentDeck()) + "  ")
	b.WriteString(m.styles.MutedText.Render(fmt.Sprintf("%d words", len(m.list.result.Rows))) + "\n")

	if m.list.searching || m.list.search.Value() != "" {
		b.WriteString(m.list.search.View() + "\n")
	} else {
		b.WriteString(m.styles.MutedText.Render(m.filterSummary()) + "\n")
	}

	b.WriteString(m.list.table.View() + "\n")

	b.WriteString(m.footer(screenKeys{
		short: []key.Binding{
			m.keys.Search, m.keys.SetUnknown, m.keys.SetPartial, m.keys.SetKnown,
			m.keys.Shuffle, m.keys.HideMeanings, m.keys.Speak, m.keys.Edit,
			m.keys.Delete, m.keys.Back,
		},
	}))
	return b.String()
}

func (m Model) filterSummary() string {
	var parts []string
	for _, st := range []deck.Status{deck.StatusUnknown, deck.StatusPartial, deck.StatusKnown} {
		if m.list.filters[st] {
			parts = append(parts, st.String())
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "all statuses")
	}
	if m.list.shuffle {
		parts = append(parts, "shuffled")
	}
	if m.list.hide {
		parts = append(parts, "meanings hidden")
	}
	return strings.Join(parts, " · ")
}
