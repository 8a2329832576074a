package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines every binding the UI reacts to. Each screen surfaces its
// own subset through the help footer.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
	Back    key.Binding
	Quit    key.Binding
	Theme   key.Binding
	NextFld key.Binding
	PrevFld key.Binding

	// Deck screen
	NewDeck    key.Binding
	RenameDeck key.Binding
	CopyDeck   key.Binding
	DeleteDeck key.Binding
	Import     key.Binding

	// Word actions
	Speak  key.Binding
	Edit   key.Binding
	Delete key.Binding

	// Quiz / status
	Reveal     key.Binding
	SetUnknown key.Binding
	SetPartial key.Binding
	SetKnown   key.Binding

	// Word list
	Search       key.Binding
	Shuffle      key.Binding
	HideMeanings key.Binding

	// Random word
	Draw key.Binding
	Save key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		NextFld: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevFld: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),

		NewDeck: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new deck"),
		),
		RenameDeck: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		CopyDeck: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		DeleteDeck: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import xlsx"),
		),

		Speak: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pronounce"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),

		Reveal: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "reveal"),
		),
		SetUnknown: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "unknown"),
		),
		SetPartial: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "partial"),
		),
		SetKnown: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "known"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shuffle"),
		),
		HideMeanings: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide meanings"),
		),

		Draw: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new word"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save to deck"),
		),
	}
}

// screenKeys adapts a per-screen binding list to the bubbles help
// component.
type screenKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (s screenKeys) ShortHelp() []key.Binding  { return s.short }
func (s screenKeys) FullHelp() [][]key.Binding { return s.full }
